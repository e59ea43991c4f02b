package network

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/pkg/errors"
)

// ErrMultiByteVersion is returned when a network can't be expressed as a
// btcd chaincfg.Params because its address versions are wider than a byte.
var ErrMultiByteVersion = errors.New("address version wider than one byte")

// ChainParams projects the network onto a btcd chaincfg.Params, with the
// extended key magics of the given purpose, so that btcutil addresses, WIF
// and hdkeychain helpers can be used with it. The result is a fresh value
// and is not registered with chaincfg.
func (p *Params) ChainParams(purpose KeyPurpose) (*chaincfg.Params, error) {
	if len(p.PubKeyHash) != 1 || len(p.ScriptHash) != 1 {
		return nil, errors.Wrapf(ErrMultiByteVersion, "%s", p.Name)
	}
	hdPriv, err := p.HDPrivateKeyID(purpose)
	if err != nil {
		return nil, err
	}
	hdPub, err := p.HDPublicKeyID(purpose)
	if err != nil {
		return nil, err
	}

	genesis := *p.GenesisHash
	return &chaincfg.Params{
		Name:                     p.Name,
		DefaultPort:              p.DefaultPorts.TCP,
		GenesisHash:              &genesis,
		PowLimit:                 p.PowLimit,
		PowLimitBits:             p.PowLimitBits(),
		CoinbaseMaturity:         p.CoinbaseMaturity,
		TargetTimespan:           p.TargetTimespan,
		TargetTimePerBlock:       p.TargetSpacing,
		RetargetAdjustmentFactor: 4,
		Bech32HRPSegwit:          p.SegwitHRP,
		PubKeyHashAddrID:         p.PubKeyHash[0],
		ScriptHashAddrID:         p.ScriptHash[0],
		PrivateKeyID:             p.WIF,
		HDPrivateKeyID:           hdPriv,
		HDPublicKeyID:            hdPub,
		HDCoinType:               p.HDCoinType,
	}, nil
}

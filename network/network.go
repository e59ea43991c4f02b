package network

import (
	"fmt"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkg/errors"
)

// CheckpointInterval is the number of blocks covered by a single checkpoint.
// It is fixed by the checkpoint file format and does not depend on the
// retarget interval of the chain.
const CheckpointInterval = 2016

var (
	bigOne = big.NewInt(1)

	// defaultPowLimit is the highest proof of work target used by the
	// Bitcoin derived chains, 0xffff << 208, or 0x1d00ffff in compact form.
	defaultPowLimit = new(big.Int).Lsh(big.NewInt(0xffff), 208)

	// stakeMinWorkLimit is 2^236 - 1.
	stakeMinWorkLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)
)

// Checkpoint pins the hash and the cumulative target of a completed 2016
// block interval.
type Checkpoint struct {
	Hash   *chainhash.Hash
	Target *big.Int
}

// AuxPowParams describes merge-mining support.
type AuxPowParams struct {
	ChainID     uint32
	StartHeight uint32
	// VersionBit is the header version bit flagging a merge-mined block.
	VersionBit uint32
}

// DGWParams enables Dark Gravity Wave retargeting from ForkHeight on.
type DGWParams struct {
	ForkHeight uint32
	PastBlocks uint32
}

// CutoverTarget is the target reported once proof-of-stake takes over.
type CutoverTarget int

const (
	// CutoverPowLimit reports the network proof of work limit.
	CutoverPowLimit CutoverTarget = iota
	// CutoverZero reports zero, the target is not computable by PoW rules.
	CutoverZero
)

func (c CutoverTarget) String() string {
	switch c {
	case CutoverPowLimit:
		return "powlimit"
	case CutoverZero:
		return "zero"
	default:
		return fmt.Sprintf("CutoverTarget(%d)", int(c))
	}
}

// StakeParams describes the proof-of-stake transition of a chain.
type StakeParams struct {
	StartHeight uint32
	// AlwaysActive marks pure proof-of-stake chains with no PoW phase.
	AlwaysActive  bool
	CutoverTarget CutoverTarget
	MinWorkLimit  *big.Int
}

// LookbackParams makes the windowed retarget read its first header
// ExtraBlocks further back once the retarget height is past AfterHeight.
type LookbackParams struct {
	AfterHeight uint32
	ExtraBlocks uint32
}

// Ports are the default electrum server ports.
type Ports struct {
	TCP string
	SSL string
}

// BaseUnit is a display unit and its number of decimals.
type BaseUnit struct {
	Name     string
	Decimals int
}

// Params defines a network by its parameters. A Params value is built once
// from the static tables of this package and must not be mutated afterwards.
type Params struct {
	Name      string
	ShortCode string
	Testnet   bool

	// Address encoding magics, PubKeyHash and ScriptHash may span more than
	// one byte.
	WIF        byte
	PubKeyHash []byte
	ScriptHash []byte
	// Human-readable part for Bech32 encoded segwit addresses, as defined
	// in BIP 173. Empty when the chain has no segwit.
	SegwitHRP string

	// BIP32 hierarchical deterministic extended key magics by purpose
	HDPrivateKeys map[KeyPurpose]uint32
	HDPublicKeys  map[KeyPurpose]uint32
	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType uint32

	GenesisHash *chainhash.Hash
	// Checkpoints ordered from oldest to newest, one per 2016 blocks.
	Checkpoints []Checkpoint

	TargetTimespan time.Duration
	TargetSpacing  time.Duration
	// PowLimit is the highest target any retarget may produce.
	PowLimit *big.Int

	AuxPow   *AuxPowParams
	DGW      *DGWParams
	Stake    *StakeParams
	Lookback *LookbackParams

	CoinbaseMaturity    uint16
	Coin                int64
	TotalSupplyLimit    int64
	SignedMessagePrefix []byte
	DecimalPoint        int
	BaseUnits           []BaseUnit
	DefaultPorts        Ports
	PaymentURIScheme    string
	// MaxIncomingMsgSize bounds server messages, AuxPoW headers are bigger.
	MaxIncomingMsgSize int

	// DataDir is the wallet data subdirectory, empty for the default one.
	DataDir         string
	OpenAliasPrefix string
	PaymentRequest  PaymentRequestTypes
	BlockExplorers  map[string]BlockExplorer
}

// Interval returns the number of blocks between two retargets.
func (p *Params) Interval() uint32 {
	return uint32(p.TargetTimespan / p.TargetSpacing)
}

// TargetTimespanSeconds returns the retarget timespan in whole seconds.
func (p *Params) TargetTimespanSeconds() int64 {
	return int64(p.TargetTimespan / time.Second)
}

// TargetSpacingSeconds returns the block spacing in whole seconds.
func (p *Params) TargetSpacingSeconds() int64 {
	return int64(p.TargetSpacing / time.Second)
}

// PowLimitBits returns PowLimit in compact form.
func (p *Params) PowLimitBits() uint32 {
	return blockchain.BigToCompact(p.PowLimit)
}

// MaxCheckpointHeight returns the last height covered by the checkpoints.
func (p *Params) MaxCheckpointHeight() uint32 {
	if len(p.Checkpoints) == 0 {
		return 0
	}
	return uint32(len(p.Checkpoints))*CheckpointInterval - 1
}

// RevGenesisBytes returns the genesis hash in wire byte order.
func (p *Params) RevGenesisBytes() []byte {
	return p.GenesisHash.CloneBytes()
}

// Validate checks the consistency of the parameters.
func (p *Params) Validate() error {
	if p.Name == "" {
		return errors.New("missing network name")
	}
	if len(p.PubKeyHash) == 0 || len(p.ScriptHash) == 0 {
		return errors.Errorf("%s: missing address version", p.Name)
	}
	if p.TargetSpacing < time.Second || p.TargetTimespan < p.TargetSpacing {
		return errors.Errorf("%s: invalid target timespan/spacing", p.Name)
	}
	if p.TargetTimespan%time.Second != 0 || p.TargetSpacing%time.Second != 0 {
		return errors.Errorf("%s: target timespan and spacing must be whole seconds", p.Name)
	}
	if p.TargetTimespan%p.TargetSpacing != 0 {
		return errors.Errorf(
			"%s: target timespan %v is not a multiple of spacing %v",
			p.Name, p.TargetTimespan, p.TargetSpacing,
		)
	}
	if p.PowLimit == nil || p.PowLimit.Sign() <= 0 {
		return errors.Errorf("%s: missing pow limit", p.Name)
	}
	if blockchain.CompactToBig(p.PowLimitBits()).Cmp(p.PowLimit) != 0 {
		return errors.Errorf("%s: pow limit has no exact compact encoding", p.Name)
	}
	if p.DGW != nil && p.DGW.PastBlocks == 0 {
		return errors.Errorf("%s: dgw window must not be empty", p.Name)
	}
	if err := checkInvertible(p.HDPrivateKeys); err != nil {
		return errors.Wrapf(err, "%s: private hd keys", p.Name)
	}
	if err := checkInvertible(p.HDPublicKeys); err != nil {
		return errors.Wrapf(err, "%s: public hd keys", p.Name)
	}
	for name, be := range p.BlockExplorers {
		if be.URL == "" {
			return errors.Errorf("%s: explorer %q has no url", p.Name, name)
		}
	}
	for i, c := range p.Checkpoints {
		if c.Hash == nil || c.Target == nil {
			return errors.Errorf("%s: incomplete checkpoint %d", p.Name, i)
		}
	}
	return nil
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash. It panics on error since it is only called with
// hard-coded hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}

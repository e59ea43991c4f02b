package network_test

import (
	"encoding/hex"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulpemventures/go-netparams/block"
	"github.com/vulpemventures/go-netparams/network"
)

var defaultNetworks = []*network.Params{
	&network.BitcoinMainNet,
	&network.BitcoinTestNet,
	&network.BitcoinRegTest,
	&network.BitcoinSimNet,
	&network.NamecoinMainNet,
	&network.CrowncoinMainNet,
	&network.DonuMainNet,
	&network.AbosomMainNet,
}

func TestDefaultNetworksAreValid(t *testing.T) {
	for _, params := range defaultNetworks {
		t.Run(params.Name, func(t *testing.T) {
			require.NoError(t, params.Validate())
			assert.Equal(t, uint32(0x1d00ffff), params.PowLimitBits())
			assert.Equal(
				t,
				params.TargetTimespanSeconds(),
				int64(params.Interval())*params.TargetSpacingSeconds(),
			)
		})
	}
}

func TestIntervals(t *testing.T) {
	assert.Equal(t, uint32(2016), network.BitcoinMainNet.Interval())
	assert.Equal(t, uint32(2016), network.NamecoinMainNet.Interval())
	assert.Equal(t, uint32(20160), network.CrowncoinMainNet.Interval())
	assert.Equal(t, uint32(10080), network.DonuMainNet.Interval())
}

func TestPowLimit(t *testing.T) {
	want, ok := new(big.Int).SetString(
		"00000000FFFF0000000000000000000000000000000000000000000000000000", 16,
	)
	require.True(t, ok)
	assert.Equal(t, 0, want.Cmp(network.BitcoinMainNet.PowLimit))
}

func TestRevGenesisBytes(t *testing.T) {
	b := network.BitcoinMainNet.RevGenesisBytes()
	assert.Equal(
		t,
		"6fe28c0ab6f1b372c1a6a246ae63f74f931e8365e15a089c68d6190000000000",
		hex.EncodeToString(b),
	)
	assert.Equal(
		t,
		"000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f",
		network.BitcoinMainNet.GenesisHash.String(),
	)
}

func TestMaxCheckpointHeight(t *testing.T) {
	params := mockNetParams
	assert.Equal(t, uint32(0), params.MaxCheckpointHeight())

	params.Checkpoints = make([]network.Checkpoint, 3)
	assert.Equal(t, uint32(3*2016-1), params.MaxCheckpointHeight())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *network.Params)
	}{
		{"no name", func(p *network.Params) { p.Name = "" }},
		{"no p2pkh version", func(p *network.Params) { p.PubKeyHash = nil }},
		{"uneven interval", func(p *network.Params) { p.TargetSpacing = 7 * time.Minute }},
		{"no pow limit", func(p *network.Params) { p.PowLimit = nil }},
		{"pow limit not compact", func(p *network.Params) {
			p.PowLimit = new(big.Int).Lsh(big.NewInt(0xffffff01), 200)
		}},
		{"empty dgw window", func(p *network.Params) { p.DGW = &network.DGWParams{ForkHeight: 10} }},
		{"hd keys not invertible", func(p *network.Params) {
			p.HDPublicKeys = map[network.KeyPurpose]uint32{
				network.Standard: 1,
				network.P2WPKH:   1,
			}
		}},
		{"explorer without url", func(p *network.Params) {
			p.BlockExplorers = map[string]network.BlockExplorer{"empty": {TxPath: "tx/"}}
		}},
		{"incomplete checkpoint", func(p *network.Params) {
			p.Checkpoints = []network.Checkpoint{{}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := mockNetParams
			tt.mutate(&params)
			assert.Error(t, params.Validate())
		})
	}
}

func TestHDKeyIDs(t *testing.T) {
	params := &network.BitcoinMainNet

	id, err := params.HDPrivateKeyID(network.P2WPKH)
	require.NoError(t, err)
	assert.Equal(t, [4]byte{0x04, 0xb2, 0x43, 0x0c}, id)

	purpose, err := params.PurposeFromHDPrivateKeyID(id[:])
	require.NoError(t, err)
	assert.Equal(t, network.P2WPKH, purpose)

	id, err = params.HDPublicKeyID(network.P2WSHP2SH)
	require.NoError(t, err)
	purpose, err = params.PurposeFromHDPublicKeyID(id[:])
	require.NoError(t, err)
	assert.Equal(t, network.P2WSHP2SH, purpose)

	_, err = params.PurposeFromHDPublicKeyID([]byte{0x04, 0x35, 0x87, 0xcf})
	assert.True(t, errors.Is(err, network.ErrUnknownHDKeyID))
	_, err = params.PurposeFromHDPublicKeyID([]byte{0x04})
	assert.True(t, errors.Is(err, network.ErrUnknownHDKeyID))

	_, err = network.CrowncoinMainNet.HDPrivateKeyID(network.P2WPKH)
	assert.True(t, errors.Is(err, network.ErrUnknownPurpose))
}

func TestHDKeysInvertible(t *testing.T) {
	for _, params := range defaultNetworks {
		for purpose := range params.HDPrivateKeys {
			id, err := params.HDPrivateKeyID(purpose)
			require.NoError(t, err)
			got, err := params.PurposeFromHDPrivateKeyID(id[:])
			require.NoError(t, err)
			assert.Equal(t, purpose, got, params.Name)
		}
		for purpose := range params.HDPublicKeys {
			id, err := params.HDPublicKeyID(purpose)
			require.NoError(t, err)
			got, err := params.PurposeFromHDPublicKeyID(id[:])
			require.NoError(t, err)
			assert.Equal(t, purpose, got, params.Name)
		}
	}
}

func TestIsAuxPowActive(t *testing.T) {
	tests := []struct {
		name    string
		params  *network.Params
		height  uint32
		version uint32
		want    bool
	}{
		{"namecoin before start", &network.NamecoinMainNet, 19199, 0x10101, false},
		{"namecoin at start", &network.NamecoinMainNet, 19200, 0x10101, true},
		{"namecoin without bit", &network.NamecoinMainNet, 19200, 0x10001, false},
		{"crown after start", &network.CrowncoinMainNet, 45327, 0x100, true},
		{"crown before start", &network.CrowncoinMainNet, 45326, 0x100, false},
		{"bitcoin has no auxpow", &network.BitcoinMainNet, 500000, 0xffffffff, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := &block.Header{Height: tt.height, Version: tt.version}
			assert.Equal(t, tt.want, network.IsAuxPowActive(header, tt.params))
		})
	}
}

func TestIsPoSActive(t *testing.T) {
	tests := []struct {
		name   string
		params *network.Params
		height uint32
		want   bool
	}{
		{"bitcoin never stakes", &network.BitcoinMainNet, 1 << 30, false},
		{"donu always stakes", &network.DonuMainNet, 0, true},
		{"abosom at genesis", &network.AbosomMainNet, 0, false},
		{"abosom from block 1", &network.AbosomMainNet, 1, true},
		{"crown before fork", &network.CrowncoinMainNet, 2329998, false},
		{"crown at fork", &network.CrowncoinMainNet, 2329999, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := &block.Header{Height: tt.height}
			assert.Equal(t, tt.want, network.IsPoSActive(header, tt.params))
		})
	}
}

func TestCutoverTargetString(t *testing.T) {
	assert.Equal(t, "powlimit", network.CutoverPowLimit.String())
	assert.Equal(t, "zero", network.CutoverZero.String())
	assert.Equal(t, "CutoverTarget(7)", network.CutoverTarget(7).String())
}

package address_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulpemventures/go-netparams/address"
	"github.com/vulpemventures/go-netparams/network"
)

const (
	// hash160 of the genesis coinbase public key
	genesisHash160 = "62e907b15cbf27d5425399ebf6f0fb50ebb88f18"
	base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
)

func TestHash160ToAddress(t *testing.T) {
	h160, _ := hex.DecodeString(genesisHash160)

	tests := []struct {
		name    string
		version []byte
		want    string
	}{
		{"bitcoin p2pkh", network.BitcoinMainNet.PubKeyHash, "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"},
		{"namecoin p2pkh", network.NamecoinMainNet.PubKeyHash, "N5bMaf9MznNDCFGidCnEfrEM51KA7DkvMe"},
		{"crown p2pkh", network.CrowncoinMainNet.PubKeyHash, "CRWLyyhZuqBzxSBuNqZy3SvjMeeUXmrN9z55"},
		{"crown p2sh", network.CrowncoinMainNet.ScriptHash, "CRMVYi3BMVa2mACNJw2jiSFyNLoNs2C4j8uu"},
		{"donu p2pkh", network.DonuMainNet.PubKeyHash, "NUvxZmSehxq61gQoed7Z9yW8hWa6rza2Kk"},
		{"abosom p2pkh", network.AbosomMainNet.PubKeyHash, "XLNEE9zzKw2N1DUiBrSZpjVSYcErU6QbZ7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := address.Hash160ToAddress(h160, tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)

			version, hash, err := address.AddressToHash160(addr, len(tt.version))
			require.NoError(t, err)
			assert.Equal(t, tt.version, version)
			assert.Equal(t, h160, hash)
		})
	}
}

func TestBase58RoundTrip(t *testing.T) {
	versions := [][]byte{
		{0x00},
		{0xff},
		{0x01, 0x75, 0x07},
		{0x00, 0x00, 0x00},
		{0xde, 0xad},
	}
	hashes := [][]byte{
		make([]byte, 20),
		bytes.Repeat([]byte{0xff}, 20),
		[]byte("0123456789abcdefghij"),
	}

	for _, version := range versions {
		for _, h160 := range hashes {
			addr := address.ToBase58(&address.Base58{Version: version, Data: h160})
			decoded, err := address.FromBase58(addr, len(version))
			require.NoError(t, err, addr)
			assert.Equal(t, version, decoded.Version)
			assert.Equal(t, h160, decoded.Data)
		}
	}
}

func TestChecksumRejection(t *testing.T) {
	addrs := []struct {
		addr       string
		versionLen int
	}{
		{"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", 1},
		{"CRWLyyhZuqBzxSBuNqZy3SvjMeeUXmrN9z55", 3},
	}

	for _, a := range addrs {
		for i := range a.addr {
			pos := strings.IndexByte(base58Alphabet, a.addr[i])
			require.NotEqual(t, -1, pos)
			flipped := []byte(a.addr)
			flipped[i] = base58Alphabet[(pos+1)%len(base58Alphabet)]

			_, _, err := address.AddressToHash160(string(flipped), a.versionLen)
			assert.True(
				t, errors.Is(err, address.ErrInvalidAddress),
				"%s accepted", string(flipped),
			)
		}
	}
}

func TestFromBase58Invalid(t *testing.T) {
	tests := []struct {
		name       string
		addr       string
		versionLen int
	}{
		{"wrong version length", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", 3},
		{"zero version length", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", 0},
		{"truncated", "1A1zP1eP5QGefi2DMPTfTL5SLmv7Divf", 1},
		{"bad alphabet", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfN0", 1},
		{"empty", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := address.FromBase58(tt.addr, tt.versionLen)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, address.ErrInvalidAddress))
		})
	}
}

func TestHash160ToAddressInvalid(t *testing.T) {
	_, err := address.Hash160ToAddress(make([]byte, 19), []byte{0})
	assert.Error(t, err)

	_, err = address.Hash160ToAddress(make([]byte, 20), nil)
	assert.Error(t, err)
}

func TestDecodeP2PKH(t *testing.T) {
	h160, _ := hex.DecodeString(genesisHash160)

	addr, err := address.P2PKHAddress(h160, &network.CrowncoinMainNet)
	require.NoError(t, err)
	got, err := address.DecodeP2PKH(addr, &network.CrowncoinMainNet)
	require.NoError(t, err)
	assert.Equal(t, h160, got)

	// a crown script address has the right width but the wrong version
	p2sh, err := address.P2SHAddress(h160, &network.CrowncoinMainNet)
	require.NoError(t, err)
	_, err = address.DecodeP2PKH(p2sh, &network.CrowncoinMainNet)
	assert.True(t, errors.Is(err, address.ErrInvalidAddress))

	got, err = address.DecodeP2SH(p2sh, &network.CrowncoinMainNet)
	require.NoError(t, err)
	assert.Equal(t, h160, got)

	// testnet and regtest share their versions
	addr, err = address.P2PKHAddress(h160, &network.BitcoinTestNet)
	require.NoError(t, err)
	_, err = address.DecodeP2PKH(addr, &network.BitcoinRegTest)
	assert.NoError(t, err)
	_, err = address.DecodeP2PKH(addr, &network.BitcoinMainNet)
	assert.True(t, errors.Is(err, address.ErrInvalidAddress))
}

func TestMatchesBtcutil(t *testing.T) {
	_, pubKey := btcec.PrivKeyFromBytes(bytes.Repeat([]byte{0x11}, 32))
	h160 := btcutil.Hash160(pubKey.SerializeCompressed())

	for _, params := range []*network.Params{
		&network.BitcoinMainNet,
		&network.BitcoinTestNet,
		&network.BitcoinSimNet,
		&network.NamecoinMainNet,
		&network.DonuMainNet,
		&network.AbosomMainNet,
	} {
		cp, err := params.ChainParams(network.Standard)
		require.NoError(t, err, params.Name)

		want, err := btcutil.NewAddressPubKeyHash(h160, cp)
		require.NoError(t, err)
		got, err := address.P2PKHAddress(h160, params)
		require.NoError(t, err)
		assert.Equal(t, want.EncodeAddress(), got, params.Name)

		wantScript, err := btcutil.NewAddressScriptHashFromHash(h160, cp)
		require.NoError(t, err)
		gotScript, err := address.P2SHAddress(h160, params)
		require.NoError(t, err)
		assert.Equal(t, wantScript.EncodeAddress(), gotScript, params.Name)
	}
}

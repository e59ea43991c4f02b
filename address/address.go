package address

import (
	"bytes"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkg/errors"

	"github.com/vulpemventures/go-netparams/network"
)

const (
	// Hash160Size is the length of a public key or script hash.
	Hash160Size  = 20
	checksumSize = 4
)

// ErrInvalidAddress is returned for any address that fails to decode.
var ErrInvalidAddress = errors.New("invalid address")

// Base58 defines the structure of a legacy address: a version prefix of one
// or more bytes followed by a hash.
type Base58 struct {
	Version []byte
	Data    []byte
}

// ToBase58 appends a four byte checksum to version || data and base58
// encodes the result.
func ToBase58(b *Base58) string {
	payload := make([]byte, 0, len(b.Version)+len(b.Data)+checksumSize)
	payload = append(payload, b.Version...)
	payload = append(payload, b.Data...)
	payload = append(payload, checksum(payload)...)
	return base58.Encode(payload)
}

// FromBase58 decodes an address whose version prefix is versionLen bytes
// long and verifies its checksum.
func FromBase58(address string, versionLen int) (*Base58, error) {
	if versionLen < 1 {
		return nil, errors.Wrapf(
			ErrInvalidAddress, "version length must be positive, got %d", versionLen,
		)
	}

	decoded := base58.Decode(address)
	expected := versionLen + Hash160Size + checksumSize
	if len(decoded) != expected {
		return nil, errors.Wrapf(
			ErrInvalidAddress, "%s decodes to %d bytes, expected %d",
			address, len(decoded), expected,
		)
	}

	payload := decoded[:len(decoded)-checksumSize]
	if !bytes.Equal(checksum(payload), decoded[len(payload):]) {
		return nil, errors.Wrapf(ErrInvalidAddress, "%s: checksum mismatch", address)
	}

	return &Base58{
		Version: append([]byte{}, payload[:versionLen]...),
		Data:    append([]byte{}, payload[versionLen:]...),
	}, nil
}

// Hash160ToAddress encodes a 20 byte hash with the given version prefix.
func Hash160ToAddress(h160, version []byte) (string, error) {
	if len(h160) != Hash160Size {
		return "", errors.Errorf(
			"hash must be %d bytes, got %d", Hash160Size, len(h160),
		)
	}
	if len(version) == 0 {
		return "", errors.New("missing version prefix")
	}
	return ToBase58(&Base58{version, h160}), nil
}

// AddressToHash160 is the inverse of Hash160ToAddress.
func AddressToHash160(address string, versionLen int) ([]byte, []byte, error) {
	b, err := FromBase58(address, versionLen)
	if err != nil {
		return nil, nil, err
	}
	return b.Version, b.Data, nil
}

// P2PKHAddress encodes a public key hash with the network's P2PKH version.
func P2PKHAddress(h160 []byte, params *network.Params) (string, error) {
	return Hash160ToAddress(h160, params.PubKeyHash)
}

// P2SHAddress encodes a script hash with the network's P2SH version.
func P2SHAddress(h160 []byte, params *network.Params) (string, error) {
	return Hash160ToAddress(h160, params.ScriptHash)
}

// DecodeP2PKH decodes a P2PKH address of the given network and returns the
// public key hash.
func DecodeP2PKH(address string, params *network.Params) ([]byte, error) {
	return decodeWithVersion(address, params.PubKeyHash)
}

// DecodeP2SH decodes a P2SH address of the given network and returns the
// script hash.
func DecodeP2SH(address string, params *network.Params) ([]byte, error) {
	return decodeWithVersion(address, params.ScriptHash)
}

func decodeWithVersion(address string, version []byte) ([]byte, error) {
	b, err := FromBase58(address, len(version))
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(b.Version, version) {
		return nil, errors.Wrapf(
			ErrInvalidAddress, "%s: version %x, expected %x",
			address, b.Version, version,
		)
	}
	return b.Data, nil
}

func checksum(payload []byte) []byte {
	return chainhash.DoubleHashB(payload)[:checksumSize]
}

package address

import (
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/pkg/errors"

	"github.com/vulpemventures/go-netparams/network"
)

// Bech32 defines the structure of a native segwit address.
type Bech32 struct {
	Prefix  string
	Version byte
	Program []byte
}

// ToSegwit encodes a witness program, with bech32 for version 0 and with
// bech32m for later versions.
func ToSegwit(hrp string, version byte, program []byte) (string, error) {
	if err := checkProgram(version, program); err != nil {
		return "", err
	}

	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", err
	}
	data := append([]byte{version}, converted...)

	if version == 0 {
		return bech32.Encode(hrp, data)
	}
	return bech32.EncodeM(hrp, data)
}

// FromSegwit decodes a native segwit address and checks that the checksum
// variant matches the witness version.
func FromSegwit(address string) (*Bech32, error) {
	hrp, data, encoding, err := bech32.DecodeGeneric(address)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidAddress, "%s: %s", address, err)
	}
	if len(data) < 1 {
		return nil, errors.Wrapf(ErrInvalidAddress, "%s: empty data", address)
	}

	version := data[0]
	if (version == 0) != (encoding == bech32.Version0) {
		return nil, errors.Wrapf(
			ErrInvalidAddress, "%s: wrong checksum variant for version %d",
			address, version,
		)
	}

	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidAddress, "%s: %s", address, err)
	}
	if err := checkProgram(version, program); err != nil {
		return nil, err
	}

	return &Bech32{hrp, version, program}, nil
}

// P2WPKHAddress encodes a version 0 public key hash program with the
// network's segwit prefix.
func P2WPKHAddress(h160 []byte, params *network.Params) (string, error) {
	if params.SegwitHRP == "" {
		return "", errors.Errorf("%s has no segwit support", params.Name)
	}
	return ToSegwit(params.SegwitHRP, 0, h160)
}

func checkProgram(version byte, program []byte) error {
	if version > 16 {
		return errors.Wrapf(ErrInvalidAddress, "witness version %d", version)
	}
	if len(program) < 2 || len(program) > 40 {
		return errors.Wrapf(
			ErrInvalidAddress, "witness program of %d bytes", len(program),
		)
	}
	if version == 0 && len(program) != 20 && len(program) != 32 {
		return errors.Wrapf(
			ErrInvalidAddress, "version 0 witness program of %d bytes",
			len(program),
		)
	}
	return nil
}

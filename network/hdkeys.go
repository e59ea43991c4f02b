package network

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// KeyPurpose names the script type an extended key is meant for.
type KeyPurpose string

const (
	Standard   KeyPurpose = "standard"
	P2WPKHP2SH KeyPurpose = "p2wpkh-p2sh"
	P2WSHP2SH  KeyPurpose = "p2wsh-p2sh"
	P2WPKH     KeyPurpose = "p2wpkh"
	P2WSH      KeyPurpose = "p2wsh"
)

var (
	// ErrUnknownHDKeyID describes an error where the provided id which is
	// intended to identify an extended key purpose is not known to the
	// network.
	ErrUnknownHDKeyID = errors.New("unknown hd extended key bytes")

	// ErrUnknownPurpose is returned when a network has no extended key
	// version for the requested purpose.
	ErrUnknownPurpose = errors.New("unknown hd key purpose")
)

// HDPrivateKeyID returns the private extended key magic for purpose.
func (p *Params) HDPrivateKeyID(purpose KeyPurpose) ([4]byte, error) {
	return keyID(p.HDPrivateKeys, purpose)
}

// HDPublicKeyID returns the public extended key magic for purpose.
func (p *Params) HDPublicKeyID(purpose KeyPurpose) ([4]byte, error) {
	return keyID(p.HDPublicKeys, purpose)
}

// PurposeFromHDPrivateKeyID maps a private extended key magic back to its
// purpose.
func (p *Params) PurposeFromHDPrivateKeyID(id []byte) (KeyPurpose, error) {
	return purpose(p.HDPrivateKeys, id)
}

// PurposeFromHDPublicKeyID maps a public extended key magic back to its
// purpose.
func (p *Params) PurposeFromHDPublicKeyID(id []byte) (KeyPurpose, error) {
	return purpose(p.HDPublicKeys, id)
}

func keyID(m map[KeyPurpose]uint32, purpose KeyPurpose) ([4]byte, error) {
	var id [4]byte
	v, ok := m[purpose]
	if !ok {
		return id, errors.Wrapf(ErrUnknownPurpose, "%s", purpose)
	}
	binary.BigEndian.PutUint32(id[:], v)
	return id, nil
}

func purpose(m map[KeyPurpose]uint32, id []byte) (KeyPurpose, error) {
	if len(id) != 4 {
		return "", ErrUnknownHDKeyID
	}
	v := binary.BigEndian.Uint32(id)
	for purpose, header := range m {
		if header == v {
			return purpose, nil
		}
	}
	return "", ErrUnknownHDKeyID
}

func checkInvertible(m map[KeyPurpose]uint32) error {
	seen := make(map[uint32]KeyPurpose, len(m))
	for purpose, header := range m {
		if other, ok := seen[header]; ok {
			return errors.Errorf("%#08x used by both %s and %s", header, other, purpose)
		}
		seen[header] = purpose
	}
	return nil
}

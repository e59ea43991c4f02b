package block

import (
	"fmt"

	"github.com/vulpemventures/go-netparams/internal/bufferutil"
)

// Serialize returns the 80 byte wire encoding of the header.
func (h *Header) Serialize() ([]byte, error) {
	s, err := bufferutil.NewSerializer(nil)
	if err != nil {
		return nil, err
	}
	if err := h.SerializeHeader(s); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

func (h *Header) SerializeHeader(
	s *bufferutil.Serializer,
) error {
	err := s.WriteUint32(h.Version)
	if err != nil {
		return err
	}

	err = writeHash(s, h.PrevBlockHash)
	if err != nil {
		return err
	}

	err = writeHash(s, h.MerkleRoot)
	if err != nil {
		return err
	}

	err = s.WriteUint32(h.Timestamp)
	if err != nil {
		return err
	}

	err = s.WriteUint32(h.Bits)
	if err != nil {
		return err
	}

	return s.WriteUint32(h.Nonce)
}

// writeHash writes a 32 byte hash, a nil hash is written as all zeros.
func writeHash(s *bufferutil.Serializer, hash []byte) error {
	if hash == nil {
		hash = make([]byte, hashSize)
	}
	if len(hash) != hashSize {
		return fmt.Errorf("invalid hash length %d", len(hash))
	}
	return s.WriteSlice(hash)
}

package block

import (
	"bytes"
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	hashSize = 32

	// HeaderSize is the size in bytes of a serialized proof-of-work header.
	// AuxPoW chains append the merge-mining proof after these bytes.
	HeaderSize = 80
)

// Header is the read-only projection of a proof-of-work block header used
// by the retargeting code. Height is context provided by the header store
// and is not part of the serialization.
type Header struct {
	// Block version, AuxPoW chains flag merge-mined blocks with a bit here
	Version uint32
	// Previous blockhash
	PrevBlockHash []byte
	// Transaction Merkle root
	MerkleRoot []byte
	// Block timestamp
	Timestamp uint32
	// Compact encoded target
	Bits  uint32
	Nonce uint32
	// Block height
	Height uint32
}

// NewHeaderFromBuffer deserializes a header from buf and assigns it the
// given height.
func NewHeaderFromBuffer(buf *bytes.Buffer, height uint32) (*Header, error) {
	header, err := DeserializeHeader(buf)
	if err != nil {
		return nil, err
	}
	header.Height = height
	return header, nil
}

// NewHeaderFromHex is like NewHeaderFromBuffer but takes a hex string.
func NewHeaderFromHex(h string, height uint32) (*Header, error) {
	hexBytes, err := hex.DecodeString(h)
	if err != nil {
		return nil, err
	}
	return NewHeaderFromBuffer(bytes.NewBuffer(hexBytes), height)
}

// Hash returns the double sha256 of the serialized header.
func (h *Header) Hash() (chainhash.Hash, error) {
	b, err := h.Serialize()
	if err != nil {
		return chainhash.Hash{}, err
	}
	return chainhash.DoubleHashH(b), nil
}

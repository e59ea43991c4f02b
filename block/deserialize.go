package block

import (
	"bytes"

	"github.com/vulpemventures/go-netparams/internal/bufferutil"
)

// DeserializeHeader reads the 80 bytes of a proof-of-work header from buf.
// Any trailing data, like an AuxPoW proof, is left unread.
func DeserializeHeader(
	buf *bytes.Buffer,
) (*Header, error) {
	d := bufferutil.NewDeserializer(buf)

	version, err := d.ReadUint32()
	if err != nil {
		return nil, err
	}

	prevBlockHash, err := d.ReadSlice(hashSize)
	if err != nil {
		return nil, err
	}

	merkleRoot, err := d.ReadSlice(hashSize)
	if err != nil {
		return nil, err
	}

	timestamp, err := d.ReadUint32()
	if err != nil {
		return nil, err
	}

	bits, err := d.ReadUint32()
	if err != nil {
		return nil, err
	}

	nonce, err := d.ReadUint32()
	if err != nil {
		return nil, err
	}

	return &Header{
		Version:       version,
		PrevBlockHash: prevBlockHash,
		MerkleRoot:    merkleRoot,
		Timestamp:     timestamp,
		Bits:          bits,
		Nonce:         nonce,
	}, nil
}

package bufferutil

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Serializer implements methods that help to serialize a block header.
type Serializer struct {
	buffer *bytes.Buffer
}

// NewSerializer returns an instance of Serializer, optionally seeded with
// the content of buf.
func NewSerializer(buf *bytes.Buffer) (*Serializer, error) {
	buffer := bytes.NewBuffer([]byte{})
	if buf != nil {
		if _, err := buffer.Write(buf.Bytes()); err != nil {
			return nil, err
		}
	}
	return &Serializer{buffer}, nil
}

// Bytes returns serializer's buffer
func (s *Serializer) Bytes() []byte {
	return s.buffer.Bytes()
}

// WriteUint32 writes the given uint32 value to serializer's buffer.
func (s *Serializer) WriteUint32(val uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], val)
	_, err := s.buffer.Write(b[:])
	return err
}

// WriteSlice appends the given byte array to the serializer's buffer
func (s *Serializer) WriteSlice(val []byte) error {
	_, err := s.buffer.Write(val)
	return err
}

// Deserializer implements methods that help to deserialize a block header.
type Deserializer struct {
	buffer *bytes.Buffer
}

// NewDeserializer returns an instance of Deserializer.
func NewDeserializer(buffer *bytes.Buffer) *Deserializer {
	return &Deserializer{buffer}
}

// ReadUint32 reads a uint32 value from deserializer's buffer.
func (d *Deserializer) ReadUint32() (uint32, error) {
	b, err := d.ReadSlice(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadSlice reads the next n bytes from the deserializer's buffer
func (d *Deserializer) ReadSlice(n uint) ([]byte, error) {
	if uint(d.buffer.Len()) < n {
		return nil, fmt.Errorf(
			"unexpected end of buffer: need %d bytes, have %d", n, d.buffer.Len(),
		)
	}
	decoded := make([]byte, n)
	if _, err := d.buffer.Read(decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}

// Len returns the number of unread bytes.
func (d *Deserializer) Len() int {
	return d.buffer.Len()
}

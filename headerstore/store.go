// Package headerstore keeps synced block headers in memory and serves them
// to the retarget engine.
package headerstore

import (
	"encoding/hex"
	"sync"

	"github.com/pkg/errors"

	"github.com/vulpemventures/go-netparams/block"
	"github.com/vulpemventures/go-netparams/network"
	"github.com/vulpemventures/go-netparams/retarget"
)

// ErrConflict is returned when a different header is already stored at the
// same height.
var ErrConflict = errors.New("conflicting header")

// View is an unlocked HeaderSource over a set of headers. Views returned by
// Store.Snapshot are never modified and can be shared between goroutines.
type View struct {
	retarget.Compact
	headers     map[uint32]*block.Header
	checkpoints []network.Checkpoint
	tip         uint32
}

// ReadHeader returns the header stored at height.
func (v *View) ReadHeader(height uint32) (*block.Header, bool) {
	h, ok := v.headers[height]
	return h, ok
}

// Height returns the highest stored height.
func (v *View) Height() uint32 {
	return v.tip
}

// CheckpointCount returns the number of checkpoints.
func (v *View) CheckpointCount() int {
	return len(v.checkpoints)
}

// Checkpoint returns the checkpoint at index.
func (v *View) Checkpoint(index int) network.Checkpoint {
	return v.checkpoints[index]
}

// Store is a goroutine safe in-memory header chain for one network.
type Store struct {
	retarget.Compact

	params *network.Params

	mtx  sync.RWMutex
	view View
}

// New returns an empty store seeded with the network checkpoints.
func New(params *network.Params) *Store {
	s := &Store{
		params: params,
		view: View{
			headers: make(map[uint32]*block.Header),
		},
	}
	s.view.checkpoints = append(s.view.checkpoints, params.Checkpoints...)
	return s
}

// Params returns the network the store was created for.
func (s *Store) Params() *network.Params {
	return s.params
}

// AddHeader stores header at header.Height. Adding the same header twice is
// a no-op, adding a different one at a stored height is an ErrConflict.
func (s *Store) AddHeader(header *block.Header) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.addHeader(header)
}

func (s *Store) addHeader(header *block.Header) error {
	if existing, ok := s.view.headers[header.Height]; ok {
		same, err := sameHeader(existing, header)
		if err != nil {
			return err
		}
		if !same {
			return errors.Wrapf(ErrConflict, "height %d", header.Height)
		}
		return nil
	}

	s.view.headers[header.Height] = header
	if header.Height > s.view.tip {
		s.view.tip = header.Height
	}
	log.Tracef("%s: stored header at height %d", s.params.Name, header.Height)
	return nil
}

// AddRawHeader decodes a hex serialized header and stores it at height.
func (s *Store) AddRawHeader(height uint32, raw string) (*block.Header, error) {
	header, err := block.NewHeaderFromHex(raw, height)
	if err != nil {
		return nil, errors.Wrapf(err, "decode header at height %d", height)
	}
	if err := s.AddHeader(header); err != nil {
		return nil, err
	}
	return header, nil
}

// SetCheckpoints replaces the checkpoints of the store.
func (s *Store) SetCheckpoints(checkpoints []network.Checkpoint) error {
	for i, c := range checkpoints {
		if c.Hash == nil || c.Target == nil {
			return errors.Errorf("checkpoint %d is incomplete", i)
		}
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.view.checkpoints = append([]network.Checkpoint{}, checkpoints...)
	log.Debugf("%s: loaded %d checkpoints, max checkpoint height %d",
		s.params.Name, len(checkpoints),
		len(checkpoints)*network.CheckpointInterval-1)
	return nil
}

// Snapshot returns a consistent copy of the store that later writes do not
// affect.
func (s *Store) Snapshot() *View {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	headers := make(map[uint32]*block.Header, len(s.view.headers))
	for height, h := range s.view.headers {
		headers[height] = h
	}
	return &View{
		headers:     headers,
		checkpoints: append([]network.Checkpoint{}, s.view.checkpoints...),
		tip:         s.view.tip,
	}
}

// ReadHeader returns the header stored at height.
func (s *Store) ReadHeader(height uint32) (*block.Header, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.view.ReadHeader(height)
}

// Height returns the highest stored height.
func (s *Store) Height() uint32 {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.view.Height()
}

// CheckpointCount returns the number of checkpoints.
func (s *Store) CheckpointCount() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.view.CheckpointCount()
}

// Checkpoint returns the checkpoint at index.
func (s *Store) Checkpoint(index int) network.Checkpoint {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.view.Checkpoint(index)
}

func sameHeader(a, b *block.Header) (bool, error) {
	ha, err := a.Hash()
	if err != nil {
		return false, err
	}
	hb, err := b.Hash()
	if err != nil {
		return false, err
	}
	return ha == hb, nil
}

// RawHeader returns the hex serialization of the header at height.
func (s *Store) RawHeader(height uint32) (string, error) {
	header, ok := s.ReadHeader(height)
	if !ok {
		return "", errors.Wrapf(retarget.ErrMissingHeader, "height %d", height)
	}
	b, err := header.Serialize()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

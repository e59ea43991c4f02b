package headerstore

import (
	"bytes"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/pkg/errors"

	"github.com/vulpemventures/go-netparams/block"
	"github.com/vulpemventures/go-netparams/network"
	"github.com/vulpemventures/go-netparams/retarget"
)

var (
	// ErrUnexpectedDifficulty is returned when the bits of a header do not
	// encode the target computed for its height.
	ErrUnexpectedDifficulty = errors.New("unexpected difficulty")
	// ErrHighHash is returned when the hash of a header is above its target.
	ErrHighHash = errors.New("block hash above target")
	// ErrPrevHashMismatch is returned when a header does not link to the
	// stored header below it.
	ErrPrevHashMismatch = errors.New("previous block hash mismatch")
)

// Verify checks header against the stored chain without storing it.
func (s *Store) Verify(header *block.Header) error {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.verify(header)
}

// Connect verifies header and stores it.
func (s *Store) Connect(header *block.Header) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.verify(header); err != nil {
		return err
	}
	if err := s.addHeader(header); err != nil {
		return err
	}
	log.Debugf("%s: connected header at height %d, tip %d",
		s.params.Name, header.Height, s.view.tip)
	return nil
}

func (s *Store) verify(header *block.Header) error {
	if header.Height > 0 {
		if prev, ok := s.view.ReadHeader(header.Height - 1); ok {
			prevHash, err := prev.Hash()
			if err != nil {
				return err
			}
			if !bytes.Equal(header.PrevBlockHash, prevHash[:]) {
				return errors.Wrapf(ErrPrevHashMismatch,
					"height %d does not link to %s", header.Height, prevHash)
			}
		}
	}

	// stake blocks carry no proof of work
	if network.IsPoSActive(header, s.params) {
		return nil
	}

	target, err := retarget.GetTarget(header.Height, s.params, &s.view)
	if err != nil {
		return err
	}

	if bits := s.TargetToBits(target); bits != header.Bits {
		return errors.Wrapf(ErrUnexpectedDifficulty,
			"height %d has bits %08x, expected %08x",
			header.Height, header.Bits, bits)
	}

	// merge-mined blocks prove their work in the parent chain header
	if network.IsAuxPowActive(header, s.params) {
		return nil
	}

	hash, err := header.Hash()
	if err != nil {
		return err
	}
	if hashNum := blockchain.HashToBig(&hash); hashNum.Cmp(target) > 0 {
		return errors.Wrapf(ErrHighHash,
			"height %d hash %064x above target %064x",
			header.Height, hashNum, target)
	}
	return nil
}

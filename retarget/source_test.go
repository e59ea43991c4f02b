package retarget_test

import (
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/vulpemventures/go-netparams/block"
	"github.com/vulpemventures/go-netparams/network"
	"github.com/vulpemventures/go-netparams/retarget"
)

// testSource is a HeaderSource over a map that counts header reads.
type testSource struct {
	retarget.Compact
	headers     map[uint32]*block.Header
	checkpoints []network.Checkpoint
	reads       int
}

func newTestSource() *testSource {
	return &testSource{headers: make(map[uint32]*block.Header)}
}

func (s *testSource) ReadHeader(height uint32) (*block.Header, bool) {
	s.reads++
	h, ok := s.headers[height]
	return h, ok
}

func (s *testSource) Height() uint32 {
	var tip uint32
	for height := range s.headers {
		if height > tip {
			tip = height
		}
	}
	return tip
}

func (s *testSource) CheckpointCount() int {
	return len(s.checkpoints)
}

func (s *testSource) Checkpoint(index int) network.Checkpoint {
	return s.checkpoints[index]
}

func (s *testSource) add(height, timestamp, bits uint32) {
	s.headers[height] = &block.Header{
		Height:    height,
		Timestamp: timestamp,
		Bits:      bits,
		Version:   1,
	}
}

func (s *testSource) addCheckpoints(targets ...*big.Int) {
	for i, target := range targets {
		s.checkpoints = append(s.checkpoints, network.Checkpoint{
			Hash:   &chainhash.Hash{byte(i)},
			Target: target,
		})
	}
}

func compactToBig(bits uint32) *big.Int {
	return blockchain.CompactToBig(bits)
}

func roundTrip(target *big.Int) *big.Int {
	return blockchain.CompactToBig(blockchain.BigToCompact(target))
}

// cachingSource hands out the same decoded target for repeated bits, the
// way a store keeping decoded targets would.
type cachingSource struct {
	*testSource
	cache map[uint32]*big.Int
}

func newCachingSource() *cachingSource {
	return &cachingSource{
		testSource: newTestSource(),
		cache:      make(map[uint32]*big.Int),
	}
}

func (s *cachingSource) BitsToTarget(bits uint32) *big.Int {
	if target, ok := s.cache[bits]; ok {
		return target
	}
	target := blockchain.CompactToBig(bits)
	s.cache[bits] = target
	return target
}

// Package retarget computes the proof-of-work target a header at a given
// height must satisfy, following the rules of the network it belongs to.
//
// GetTarget picks a strategy in this order:
//
//   - heights of the first checkpoint interval use the network PowLimit
//   - heights covered by a checkpoint use the checkpointed target
//   - past the proof-of-stake cutover the network sentinel is returned
//   - past the DGW fork Dark Gravity Wave is used
//   - otherwise the windowed average of the retarget interval is used
//
// All functions are pure: they only read the given HeaderSource, so
// concurrent calls are safe as long as each source is consistent for the
// duration of a call.
package retarget

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/vulpemventures/go-netparams/block"
	"github.com/vulpemventures/go-netparams/network"
)

var (
	// ErrMissingHeader is returned when a header needed by a retarget is not
	// in the HeaderSource yet. The caller should sync more history and retry.
	ErrMissingHeader = errors.New("missing header")

	// ErrInvalidParams is returned for networks whose timing can't drive a
	// retarget: spacing under a second or a timespan shorter than one block.
	ErrInvalidParams = errors.New("invalid retarget parameters")
)

// HeaderSource gives read access to the synced header chain.
type HeaderSource interface {
	// ReadHeader returns the header at height, or false if it is not stored.
	ReadHeader(height uint32) (*block.Header, bool)
	// Height returns the chain tip height.
	Height() uint32
	CheckpointCount() int
	Checkpoint(index int) network.Checkpoint
	BitsToTarget(bits uint32) *big.Int
	TargetToBits(target *big.Int) uint32
}

// GetTarget returns the target required for the header at height. The
// returned value is never shared and can be modified by the caller.
func GetTarget(
	height uint32,
	params *network.Params,
	source HeaderSource,
) (*big.Int, error) {
	if params.TargetSpacingSeconds() <= 0 || params.TargetTimespanSeconds() <= 0 ||
		params.Interval() == 0 {
		return nil, errors.Wrapf(ErrInvalidParams, "%s: timespan %v, spacing %v",
			params.Name, params.TargetTimespan, params.TargetSpacing)
	}

	index := int64(height)/network.CheckpointInterval - 1
	if index == -1 {
		return new(big.Int).Set(params.PowLimit), nil
	}

	if index < int64(source.CheckpointCount()) {
		checkpoint := source.Checkpoint(int(index))
		return new(big.Int).Set(checkpoint.Target), nil
	}

	if network.IsPoSActive(&block.Header{Height: height}, params) {
		log.Debugf("%s: height %d is past the PoS cutover, target %s",
			params.Name, height, params.Stake.CutoverTarget)
		if params.Stake.CutoverTarget == network.CutoverZero {
			return new(big.Int), nil
		}
		return new(big.Int).Set(params.PowLimit), nil
	}

	if params.DGW != nil && height >= params.DGW.ForkHeight {
		log.Debugf("%s: DGW retarget at height %d, tip %d",
			params.Name, height, source.Height())
		return darkGravityWave(height, params, source)
	}

	log.Debugf("%s: windowed retarget at height %d, tip %d",
		params.Name, height, source.Height())
	return windowedAverage(height, params, source)
}

func readHeader(source HeaderSource, height uint32) (*block.Header, error) {
	header, ok := source.ReadHeader(height)
	if !ok || header == nil {
		return nil, errors.Wrapf(ErrMissingHeader, "height %d", height)
	}
	return header, nil
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// scaleTarget returns min(limit, target * actual / expected).
func scaleTarget(target *big.Int, actual, expected int64, limit *big.Int) *big.Int {
	newTarget := new(big.Int).Mul(target, big.NewInt(actual))
	newTarget.Div(newTarget, big.NewInt(expected))
	if newTarget.Cmp(limit) > 0 {
		newTarget.Set(limit)
	}
	return newTarget
}

package retarget

import (
	"math/big"

	"github.com/vulpemventures/go-netparams/network"
)

// windowedAverage implements the Bitcoin retarget: the target changes once
// per interval, scaled by how long the last interval took, clamped to a
// factor of 4 either way.
func windowedAverage(
	height uint32,
	params *network.Params,
	source HeaderSource,
) (*big.Int, error) {
	interval := params.Interval()

	if height%interval != 0 {
		last, err := readHeader(source, height-1)
		if err != nil {
			return nil, err
		}
		return new(big.Int).Set(source.BitsToTarget(last.Bits)), nil
	}

	first, err := readHeader(source, firstHeight(height, params))
	if err != nil {
		return nil, err
	}
	last, err := readHeader(source, height-1)
	if err != nil {
		return nil, err
	}

	targetTimespan := params.TargetTimespanSeconds()
	actualTimespan := clamp(
		int64(last.Timestamp)-int64(first.Timestamp),
		targetTimespan/4,
		targetTimespan*4,
	)

	newTarget := scaleTarget(
		source.BitsToTarget(last.Bits), actualTimespan, targetTimespan,
		params.PowLimit,
	)
	// not every target can be represented in 32 bits, the official one is
	// what the compact encoding yields
	newTarget = new(big.Int).Set(source.BitsToTarget(source.TargetToBits(newTarget)))

	log.Tracef("%s: height %d, timespan %d/%d, new target %064x",
		params.Name, height, actualTimespan, targetTimespan, newTarget)
	return newTarget, nil
}

// firstHeight returns the height of the first header of the window ending
// right before height.
func firstHeight(height uint32, params *network.Params) uint32 {
	first := height - params.Interval()
	lb := params.Lookback
	if lb == nil {
		return first
	}
	if height-1 > lb.AfterHeight && height > params.Interval() &&
		first >= lb.ExtraBlocks {
		first -= lb.ExtraBlocks
	}
	return first
}

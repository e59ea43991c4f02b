package retarget

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/vulpemventures/go-netparams/network"
)

// darkGravityWave averages the targets of the last PastBlocks headers and
// scales the average by their timespan, clamped to a factor of 3 either way.
//
// The running average uses avg = (avg*k + target) / (k+1), which is not a
// true mean but is what the chain validates against. Unlike the windowed
// retarget the result is not rounded through the compact encoding.
func darkGravityWave(
	height uint32,
	params *network.Params,
	source HeaderSource,
) (*big.Int, error) {
	pastBlocks := params.DGW.PastBlocks

	var (
		average        *big.Int
		actualTimespan int64
		lastBlockTime  int64
	)
	for count := uint32(1); count <= pastBlocks; count++ {
		if count > height {
			return nil, errors.Wrapf(
				ErrMissingHeader, "height %d has only %d ancestors", height, height,
			)
		}
		current, err := readHeader(source, height-count)
		if err != nil {
			return nil, err
		}

		target := source.BitsToTarget(current.Bits)
		if count == 1 {
			average = new(big.Int).Set(target)
		} else {
			average = new(big.Int).Mul(average, big.NewInt(int64(count)))
			average.Add(average, target)
			average.Div(average, big.NewInt(int64(count)+1))
		}

		if lastBlockTime > 0 {
			actualTimespan += lastBlockTime - int64(current.Timestamp)
		}
		lastBlockTime = int64(current.Timestamp)
	}

	targetTimespan := int64(pastBlocks) * params.TargetSpacingSeconds()
	actualTimespan = clamp(actualTimespan, targetTimespan/3, targetTimespan*3)

	newTarget := scaleTarget(average, actualTimespan, targetTimespan, params.PowLimit)

	log.Tracef("%s: height %d, timespan %d/%d, new target %064x",
		params.Name, height, actualTimespan, targetTimespan, newTarget)
	return newTarget, nil
}

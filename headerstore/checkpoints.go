package headerstore

import (
	"encoding/json"
	"io"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkg/errors"

	"github.com/vulpemventures/go-netparams/network"
)

// ParseCheckpoints reads a checkpoint list in the [[hash, target], ...]
// JSON layout used by header sync servers. Hashes are in the usual
// reversed hex form and targets are JSON integers.
func ParseCheckpoints(r io.Reader) ([]network.Checkpoint, error) {
	var entries [][2]json.RawMessage
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, errors.Wrap(err, "decode checkpoints")
	}

	checkpoints := make([]network.Checkpoint, 0, len(entries))
	for i, entry := range entries {
		var hashStr string
		if err := json.Unmarshal(entry[0], &hashStr); err != nil {
			return nil, errors.Wrapf(err, "checkpoint %d hash", i)
		}
		hash, err := chainhash.NewHashFromStr(hashStr)
		if err != nil {
			return nil, errors.Wrapf(err, "checkpoint %d hash", i)
		}

		target := new(big.Int)
		if err := target.UnmarshalJSON(entry[1]); err != nil {
			return nil, errors.Wrapf(err, "checkpoint %d target", i)
		}
		if target.Sign() <= 0 {
			return nil, errors.Errorf("checkpoint %d has non positive target", i)
		}

		checkpoints = append(checkpoints, network.Checkpoint{
			Hash:   hash,
			Target: target,
		})
	}
	return checkpoints, nil
}

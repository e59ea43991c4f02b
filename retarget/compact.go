package retarget

import (
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
)

// Compact implements the bits half of HeaderSource with the standard
// compact encoding. Header stores can embed it.
type Compact struct{}

// BitsToTarget decodes a compact target.
func (Compact) BitsToTarget(bits uint32) *big.Int {
	return blockchain.CompactToBig(bits)
}

// TargetToBits encodes target in compact form. The encoding keeps the 23
// most significant bits, so it rounds down.
func (Compact) TargetToBits(target *big.Int) uint32 {
	return blockchain.BigToCompact(target)
}

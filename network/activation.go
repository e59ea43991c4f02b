package network

import "github.com/vulpemventures/go-netparams/block"

// IsAuxPowActive returns whether header is a merge-mined block: the chain
// supports AuxPoW, the height is past its start and the version carries the
// AuxPoW bit.
func IsAuxPowActive(header *block.Header, p *Params) bool {
	if p.AuxPow == nil {
		return false
	}
	return header.Height >= p.AuxPow.StartHeight &&
		header.Version&p.AuxPow.VersionBit != 0
}

// IsPoSActive returns whether header falls in the proof-of-stake era of the
// chain.
func IsPoSActive(header *block.Header, p *Params) bool {
	if p.Stake == nil {
		return false
	}
	if p.Stake.AlwaysActive {
		return true
	}
	return header.Height >= p.Stake.StartHeight
}

// Package checkpoint maintains the table of trusted block hashes pinned
// at fixed heights for a network. The chain validator consults the table
// during sync to short-circuit full historical validation at known-good
// points.
package checkpoint

import (
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Checkpoint pins a block height to the hash every participant on the
// network must agree on at that height.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// Registry is a read-only height to hash lookup table. It is loaded once
// at network profile construction and never mutated afterward, so it is
// safe for unbounded concurrent reads.
type Registry struct {
	pins map[int32]chainhash.Hash
}

// NewRegistry constructs a registry from the given pins. Heights are
// expected to be unique; a duplicate height keeps the last pin given.
func NewRegistry(pins []Checkpoint) *Registry {
	r := Registry{
		pins: make(map[int32]chainhash.Hash, len(pins)),
	}
	for _, cp := range pins {
		r.pins[cp.Height] = *cp.Hash
	}
	return &r
}

// Passes reports whether the given hash is consistent with the table:
// true when no checkpoint is recorded at the height, or when the
// recorded hash matches.
func (r *Registry) Passes(height int32, hash *chainhash.Hash) bool {
	pin, exists := r.pins[height]
	if !exists {
		return true
	}
	return pin.IsEqual(hash)
}

// IsCheckpoint reports whether a checkpoint is recorded at the height.
func (r *Registry) IsCheckpoint(height int32) bool {
	_, exists := r.pins[height]
	return exists
}

// Count returns the number of recorded checkpoints.
func (r *Registry) Count() int {
	return len(r.pins)
}

// Checkpoints returns all recorded pins ordered by ascending height.
func (r *Registry) Checkpoints() []Checkpoint {
	cps := make([]Checkpoint, 0, len(r.pins))
	for height, pin := range r.pins {
		hash := pin
		cps = append(cps, Checkpoint{Height: height, Hash: &hash})
	}
	sort.Slice(cps, func(i, j int) bool {
		return cps[i].Height < cps[j].Height
	})
	return cps
}

package model

import (
	"math/rand/v2"
)

// Entity ids are short numbers an operator can type at a prompt.
const (
	MinID uint64 = 1000
	MaxID uint64 = 9999

	// maxRandomDraws bounds the number of random candidates tried before
	// falling back to a linear scan of the id range.
	maxRandomDraws = 1024
)

// IDAllocator draws fresh ids from [MinID, MaxID] that do not collide with
// the ids already present in a collection.
type IDAllocator struct {
	rng *rand.Rand
}

// NewIDAllocator returns an allocator with a deterministic sequence for the
// given seed.
func NewIDAllocator(seed uint64) *IDAllocator {
	return &IDAllocator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// DefaultIDAllocator returns a randomly seeded allocator.
func DefaultIDAllocator() *IDAllocator {
	return &IDAllocator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Next returns an id that is not in used.
func (a *IDAllocator) Next(used []uint64) (uint64, error) {
	taken := make(map[uint64]struct{}, len(used))
	for _, id := range used {
		taken[id] = struct{}{}
	}

	span := MaxID - MinID + 1
	for range maxRandomDraws {
		candidate := MinID + a.rng.Uint64N(span)
		if _, ok := taken[candidate]; !ok {
			return candidate, nil
		}
	}

	// Dense collection: scan from a random offset so ids stay spread out.
	start := a.rng.Uint64N(span)
	for i := range span {
		candidate := MinID + (start+i)%span
		if _, ok := taken[candidate]; !ok {
			return candidate, nil
		}
	}
	return 0, ErrIDSpaceExhausted
}

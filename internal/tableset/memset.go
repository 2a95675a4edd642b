package tableset

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/gomill/millsolve/internal/mill"
)

// MemSet is a fixed-power-of-two open-addressing hash table over the
// board's 48-bit Key, in the same spirit as the teacher's
// TranspositionTable (engine/transposition.go): a flat slice sized as a
// power of two with an AND-mask index, linear probing, no per-entry
// pointer chasing. Unlike the transposition table this set never
// replaces or evicts — every slot, once filled, holds its key for the
// set's lifetime (spec §9's "pre-sized where possible" non-cryptographic
// small-integer hash table).
type MemSet struct {
	keys  []uint64
	used  []bool
	mask  uint64
	count int
}

// NewMemSet allocates a MemSet sized for roughly expectedCount members at
// a 50% target load factor, rounded up to a power of two.
func NewMemSet(expectedCount int) *MemSet {
	capacity := nextPow2(uint64(expectedCount)*2 + 1)
	if capacity < 16 {
		capacity = 16
	}
	return &MemSet{
		keys: make([]uint64, capacity),
		used: make([]bool, capacity),
		mask: capacity - 1,
	}
}

func nextPow2(n uint64) uint64 {
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// hashKey hashes a 48-bit board key with xxhash, the non-cryptographic
// hash optimised for small fixed-size keys that spec §9 asks for.
func hashKey(key uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)
	return xxhash.Sum64(buf[:])
}

func (s *MemSet) slot(key uint64) int {
	idx := hashKey(key) & s.mask
	for {
		if !s.used[idx] || s.keys[idx] == key {
			return int(idx)
		}
		idx = (idx + 1) & s.mask
	}
}

// Insert adds b.Key() if absent and reports whether it was newly added.
func (s *MemSet) Insert(b mill.Board) (bool, error) {
	if float64(s.count+1) > float64(len(s.keys))*0.75 {
		s.grow()
	}
	key := b.Key()
	idx := s.slot(key)
	if s.used[idx] {
		return false, nil
	}
	s.used[idx] = true
	s.keys[idx] = key
	s.count++
	return true, nil
}

// Has reports whether b is a member.
func (s *MemSet) Has(b mill.Board) (bool, error) {
	idx := s.slot(b.Key())
	return s.used[idx], nil
}

// Len reports the current member count.
func (s *MemSet) Len() int {
	return s.count
}

// Close is a no-op for the in-memory set; it satisfies CanonicalSet so
// callers can treat both implementations uniformly.
func (s *MemSet) Close() error {
	return nil
}

func (s *MemSet) grow() {
	oldKeys, oldUsed := s.keys, s.used
	capacity := (s.mask + 1) * 2
	s.keys = make([]uint64, capacity)
	s.used = make([]bool, capacity)
	s.mask = capacity - 1
	s.count = 0
	for i, used := range oldUsed {
		if !used {
			continue
		}
		idx := s.slot(oldKeys[i])
		s.used[idx] = true
		s.keys[idx] = oldKeys[i]
		s.count++
	}
}

var _ CanonicalSet = (*MemSet)(nil)

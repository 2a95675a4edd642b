package solver

import (
	"encoding/binary"
	"log"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/gomill/millsolve/internal/mill"
	"github.com/gomill/millsolve/internal/movegen"
	"github.com/gomill/millsolve/internal/tableset"
)

// solveSharded is the opts.Shards > 1 path described in SPEC_FULL.md §4.7:
// the frontier is partitioned by an xxhash of the canonical board's key
// modulo the shard count (ownerShard), and each shard owns a disjoint slice of the WON/LOST sets — the
// same per-worker-local-state-plus-shared-table split the teacher's
// Worker/TranspositionTable pair uses.
//
// Unlike a fully asynchronous work-stealing pool, this runs level
// synchronised: every shard's current-depth frontier is expanded in
// parallel (move generation is pure and touches no shared state), then a
// single-threaded merge pass inserts the results into the owning shard's
// CanonicalSet and buckets them into the next level. This is the "shared
// read-optimised index built between BFS levels" alternative spec §5
// names, and it sidesteps needing a live cross-shard query protocol: by
// the time an odd-depth (LOST) round runs, every WON insertion from the
// preceding even-depth round has already landed in its owning shard.
func solveSharded(opts Options) (*Result, error) {
	shards := opts.Shards
	wonShards := make([]tableset.CanonicalSet, shards)
	lostShards := make([]tableset.CanonicalSet, shards)
	for i := 0; i < shards; i++ {
		w, err := newSet(opts.DiskBacked, 1<<18)
		if err != nil {
			return nil, err
		}
		l, err := newSet(opts.DiskBacked, 1<<16)
		if err != nil {
			return nil, err
		}
		wonShards[i] = w
		lostShards[i] = l
	}

	level := make([][]mill.Board, shards)
	seen := make(map[uint64]bool)
	enqueue := func(b mill.Board) {
		k := b.Key()
		if seen[k] {
			return
		}
		seen[k] = true
		s := ownerShard(b, shards)
		level[s] = append(level[s], b)
	}
	seedAll(opts.MaxStones, enqueue)

	depth := 0
	for {
		total := 0
		for _, boards := range level {
			total += len(boards)
		}
		if total == 0 {
			break
		}
		if opts.Verbose {
			wonTotal, lostTotal := 0, 0
			for i := 0; i < shards; i++ {
				wonTotal += wonShards[i].Len()
				lostTotal += lostShards[i].Len()
			}
			log.Printf("solver(sharded): depth=%d frontier=%d won=%d lost=%d", depth, total, wonTotal, lostTotal)
		}

		type candidate struct {
			board  mill.Board
			shard  int
			isLost bool
		}
		generated := make([][]candidate, shards)

		var wg sync.WaitGroup
		for i := 0; i < shards; i++ {
			if len(level[i]) == 0 {
				continue
			}
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				var out []candidate
				for _, b := range level[i] {
					if depth%2 == 0 {
						for _, predRaw := range movegen.Predecessors(b, mill.White, opts.MaxStones) {
							canon := predRaw.Canonicalize()
							out = append(out, candidate{board: canon, shard: ownerShard(canon, shards)})
						}
						continue
					}
					for _, predRaw := range movegen.Predecessors(b, mill.Black, opts.MaxStones) {
						canon := predRaw.Canonicalize()
						if !allSuccessorsWonShards(canon, wonShards, shards) {
							continue
						}
						inv := canon.InvertColours().Canonicalize()
						out = append(out, candidate{board: inv, shard: ownerShard(inv, shards), isLost: true})
					}
				}
				generated[i] = out
			}(i)
		}
		wg.Wait()

		next := make([][]mill.Board, shards)
		for i := 0; i < shards; i++ {
			for _, c := range generated[i] {
				target := wonShards[c.shard]
				if c.isLost {
					target = lostShards[c.shard]
				}
				inserted, err := target.Insert(c.board)
				if err != nil {
					return nil, err
				}
				if inserted {
					next[c.shard] = append(next[c.shard], c.board)
				}
			}
		}
		level = next
		depth++
	}

	return &Result{Won: newMergedSet(wonShards), Lost: newMergedSet(lostShards)}, nil
}

// seedAll is seedQueue's level-bucketed counterpart for the sharded path.
// Deduplication against already-seen canonical forms happens in the
// caller's enqueue closure (see solveSharded).
func seedAll(maxStones int, enqueue func(mill.Board)) {
	seedQueueInto(maxStones, enqueue)
}

func ownerShard(b mill.Board, shards int) int {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], b.Key())
	return int(xxhash.Sum64(buf[:]) % uint64(shards))
}

func allSuccessorsWonShards(b mill.Board, wonShards []tableset.CanonicalSet, shards int) bool {
	succs := movegen.Successors(b, mill.Black)
	if len(succs) == 0 {
		return false
	}
	for _, s := range succs {
		canon := s.Canonicalize()
		has, err := wonShards[ownerShard(canon, shards)].Has(canon)
		if err != nil || !has {
			return false
		}
	}
	return true
}

// mergedSet wraps several CanonicalSet shards behind the single
// CanonicalSet interface Result exposes, routing each call by the same
// ownership hash used to build the shards.
type mergedSet struct {
	shards []tableset.CanonicalSet
}

func newMergedSet(shards []tableset.CanonicalSet) *mergedSet {
	return &mergedSet{shards: shards}
}

func (m *mergedSet) Insert(b mill.Board) (bool, error) {
	return m.shards[ownerShard(b, len(m.shards))].Insert(b)
}

func (m *mergedSet) Has(b mill.Board) (bool, error) {
	return m.shards[ownerShard(b, len(m.shards))].Has(b)
}

func (m *mergedSet) Len() int {
	total := 0
	for _, s := range m.shards {
		total += s.Len()
	}
	return total
}

func (m *mergedSet) Close() error {
	var firstErr error
	for _, s := range m.shards {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

var _ tableset.CanonicalSet = (*mergedSet)(nil)

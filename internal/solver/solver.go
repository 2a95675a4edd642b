// Package solver implements the retrograde fixed-point computation of
// spec §4.7: starting from the terminal positions the start-set builder
// enumerates, it alternates WON-propagation (any predecessor of a won
// position is won) and LOST-propagation (a position every one of whose
// successors is won is lost) until the backward frontier is exhausted.
package solver

import (
	"log"

	"github.com/gomill/millsolve/internal/mill"
	"github.com/gomill/millsolve/internal/movegen"
	"github.com/gomill/millsolve/internal/startset"
	"github.com/gomill/millsolve/internal/tableset"
)

// Options configures a solver run. The zero value is the single-shard,
// in-memory default.
type Options struct {
	// MaxStones is the per-side stone budget the start set and move
	// generators are built against.
	MaxStones int
	// DiskBacked opens the WON/LOST sets on a temporary badger store
	// instead of in memory (tableset.NewBadgerSet), for max_stones=9-scale
	// runs. See tableset/badgerset.go.
	DiskBacked bool
	// Shards, when > 1, partitions the frontier across that many workers
	// by a hash of the canonical board's key. Default 1 runs
	// single-threaded.
	Shards int
	// Verbose logs progress via log.Printf, the way the teacher's worker
	// pool logs search progress: the frontier size per BFS level on the
	// sharded path, and running counts every 100,000 processed boards on
	// the single-threaded path.
	Verbose bool
}

// Result holds the solver's output sets. Callers must not mutate them;
// Close releases any backing resources (a no-op for in-memory sets).
type Result struct {
	Won  tableset.CanonicalSet
	Lost tableset.CanonicalSet
}

// Close releases both sets' resources.
func (r *Result) Close() error {
	if err := r.Won.Close(); err != nil {
		return err
	}
	return r.Lost.Close()
}

type frontierItem struct {
	depth int
	board mill.Board
}

// fifo is a slice-backed queue with a head index, avoiding the O(n)
// re-slice a plain append/shift loop would cost across millions of items.
type fifo struct {
	items []frontierItem
	head  int
}

func (q *fifo) push(it frontierItem) {
	q.items = append(q.items, it)
}

func (q *fifo) pop() (frontierItem, bool) {
	if q.head >= len(q.items) {
		return frontierItem{}, false
	}
	it := q.items[q.head]
	q.items[q.head] = frontierItem{}
	q.head++
	if q.head > 1<<16 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return it, true
}

func newSet(diskBacked bool, sizeHint int) (tableset.CanonicalSet, error) {
	if diskBacked {
		return tableset.NewBadgerSet()
	}
	return tableset.NewMemSet(sizeHint), nil
}

// Solve runs the retrograde computation of spec §4.7 to completion and
// returns the WON and LOST canonical sets for side-to-move White.
//
// When opts.Shards > 1 the frontier is partitioned across that many
// workers (see shard.go); opts.Shards <= 1 runs the single-threaded loop
// below directly.
func Solve(opts Options) (*Result, error) {
	if opts.Shards > 1 {
		return solveSharded(opts)
	}

	won, err := newSet(opts.DiskBacked, 1<<20)
	if err != nil {
		return nil, err
	}
	lost, err := newSet(opts.DiskBacked, 1<<18)
	if err != nil {
		won.Close()
		return nil, err
	}

	queue := &fifo{}
	seedQueue(opts.MaxStones, queue)

	processFrontier(queue, opts.MaxStones, won, lost, opts.Verbose)

	return &Result{Won: won, Lost: lost}, nil
}

// seedQueue enumerates the start-set families and pushes each distinct
// canonical board onto q at depth 0. Depth-0 boards are Black-to-move
// terminal losses by construction (spec §4.6) — they are never members
// of WON or LOST themselves, only seeds for the backward search.
func seedQueue(maxStones int, q *fifo) {
	seen := make(map[uint64]bool)
	seedQueueInto(maxStones, func(b mill.Board) {
		k := b.Key()
		if seen[k] {
			return
		}
		seen[k] = true
		q.push(frontierItem{depth: 0, board: b})
	})
}

// seedQueueInto runs both start-set families and hands every produced
// board (including canonical-form duplicates across templates) to fn.
func seedQueueInto(maxStones int, fn func(mill.Board)) {
	startset.BuildF1(maxStones, fn)
	startset.BuildF2(maxStones, fn)
}

// processFrontier drains q, applying the even/odd depth-parity rule of
// spec §4.7 until no further canonical board is newly discovered.
func processFrontier(q *fifo, maxStones int, won, lost tableset.CanonicalSet, verbose bool) {
	processed := 0
	for {
		it, ok := q.pop()
		if !ok {
			break
		}
		processed++
		if verbose && processed%100000 == 0 {
			log.Printf("solver: processed=%d won=%d lost=%d queued=%d", processed, won.Len(), lost.Len(), len(q.items)-q.head)
		}

		if it.depth%2 == 0 {
			propagateWon(it, q, maxStones, won)
			continue
		}
		propagateLost(it, q, maxStones, won, lost)
	}
}

// propagateWon implements spec §4.7's even-depth step: every backward
// move by White from it.board is a WON predecessor.
func propagateWon(it frontierItem, q *fifo, maxStones int, won tableset.CanonicalSet) {
	for _, predRaw := range movegen.Predecessors(it.board, mill.White, maxStones) {
		canon := predRaw.Canonicalize()
		inserted, err := won.Insert(canon)
		if err != nil || !inserted {
			continue
		}
		q.push(frontierItem{depth: it.depth + 1, board: canon})
	}
}

// propagateLost implements spec §4.7's odd-depth step: a backward move
// by Black from it.board yields a candidate B′; B′ is a forced loss for
// Black (and, after colour inversion, a White-to-move LOST position)
// exactly when every one of Black's forward moves from B′ lands in WON.
func propagateLost(it frontierItem, q *fifo, maxStones int, won, lost tableset.CanonicalSet) {
	for _, predRaw := range movegen.Predecessors(it.board, mill.Black, maxStones) {
		canon := predRaw.Canonicalize()
		if !allSuccessorsWon(canon, won) {
			continue
		}
		inverted := canon.InvertColours().Canonicalize()
		inserted, err := lost.Insert(inverted)
		if err != nil || !inserted {
			continue
		}
		q.push(frontierItem{depth: it.depth + 1, board: inverted})
	}
}

func allSuccessorsWon(b mill.Board, won tableset.CanonicalSet) bool {
	succs := movegen.Successors(b, mill.Black)
	if len(succs) == 0 {
		// No legal move for Black: this is itself a start-set-style
		// terminal, not a position this step should classify — skip it
		// rather than treat a vacuous "every" as true.
		return false
	}
	for _, s := range succs {
		has, err := won.Has(s.Canonicalize())
		if err != nil || !has {
			return false
		}
	}
	return true
}

// Classify reports the membership status of a canonical board: 2 if it
// is in won, 0 if it is in lost, 1 otherwise (spec §4.8's "neither
// established — treated as DRAW/unknown").
func Classify(b mill.Board, won, lost tableset.CanonicalSet) (int, error) {
	canon := b.Canonicalize()
	if ok, err := won.Has(canon); err != nil {
		return 0, err
	} else if ok {
		return 2, nil
	}
	if ok, err := lost.Has(canon); err != nil {
		return 0, err
	} else if ok {
		return 0, nil
	}
	return 1, nil
}

package tableset

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/gomill/millsolve/internal/mill"
)

// BadgerSet is a disk-backed CanonicalSet for max_stones=9-scale runs
// where the ~8 million-entry WON/LOST sets risk exceeding memory. It
// opens badger (the teacher's persistence engine, storage/storage.go) in
// a fresh temporary directory that is removed on Close — this is
// transient working storage for a single solver run, not cross-run
// persistence of the computed set (an explicit Non-goal).
type BadgerSet struct {
	db    *badger.DB
	dir   string
	count int
}

// NewBadgerSet opens a BadgerSet backed by a fresh os.MkdirTemp directory.
func NewBadgerSet() (*BadgerSet, error) {
	dir, err := os.MkdirTemp("", "millsolve-tableset-*")
	if err != nil {
		return nil, fmt.Errorf("tableset: creating badger temp dir: %w", err)
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("tableset: opening badger: %w", err)
	}

	return &BadgerSet{db: db, dir: dir}, nil
}

func keyBytes(b mill.Board) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], b.Key())
	return buf[:]
}

// Insert adds b if absent and reports whether it was newly added.
func (s *BadgerSet) Insert(b mill.Board) (bool, error) {
	key := keyBytes(b)
	var inserted bool
	err := s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return nil
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		inserted = true
		return txn.Set(key, nil)
	})
	if err != nil {
		return false, fmt.Errorf("tableset: Insert: %w", err)
	}
	if inserted {
		s.count++
	}
	return inserted, nil
}

// Has reports whether b is a member.
func (s *BadgerSet) Has(b mill.Board) (bool, error) {
	key := keyBytes(b)
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("tableset: Has: %w", err)
	}
	return found, nil
}

// Len reports the current member count.
func (s *BadgerSet) Len() int {
	return s.count
}

// Close closes the database and removes its temporary directory.
func (s *BadgerSet) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	os.RemoveAll(s.dir)
	return err
}

var _ CanonicalSet = (*BadgerSet)(nil)

package ledger

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/bjulian5/braid/internal/model"
)

const fileName = "ledger.db"

var mergesBucket = []byte("merges")

// Store persists merge events in a single-file database. Entries are
// append-mostly: writes only ever add, duplicates are allowed, and the
// consolidation rules are applied when reading, not when writing.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) the ledger database inside dir. The
// open gives up after a second instead of blocking on another process
// holding the file, so callers can degrade to an empty ledger.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create ledger directory: %w", err)
	}

	db, err := bolt.Open(filepath.Join(dir, fileName), 0o600, &bolt.Options{
		Timeout: time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(mergesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize ledger: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append records one merge event. It never rewrites or deduplicates;
// recording the same pair twice is valid input.
func (s *Store) Append(entry model.LedgerEntry) error {
	value, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode ledger entry: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(mergesBucket)
		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate ledger sequence: %w", err)
		}

		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		if err := bucket.Put(key, value); err != nil {
			return fmt.Errorf("failed to write ledger entry: %w", err)
		}
		return nil
	})
}

// All returns every recorded entry in insertion order. Entries that no
// longer decode are skipped rather than failing the whole read.
func (s *Store) All() ([]model.LedgerEntry, error) {
	var entries []model.LedgerEntry

	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(mergesBucket)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(_, value []byte) error {
			var entry model.LedgerEntry
			if err := json.Unmarshal(value, &entry); err != nil {
				return nil
			}
			entries = append(entries, entry)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	return entries, nil
}

// Consolidate reduces raw entries to the relationships eligible for
// the merged view: three-way merges whose branches both still exist.
// Fast-forward events stay recorded but never surface here.
func Consolidate(entries []model.LedgerEntry, branchExists func(string) bool) []model.MergeRelationship {
	var merges []model.MergeRelationship
	for _, entry := range entries {
		if entry.Kind != model.MergeThreeWay {
			continue
		}
		if !branchExists(entry.From) || !branchExists(entry.To) {
			continue
		}
		merges = append(merges, entry.MergeRelationship)
	}
	return merges
}

// Package store persists books, ratings and the identifier counter in a
// Badger database. Books and their paired ratings are written and removed
// in single transactions so the pairing holds at every point in time.
package store

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	// seq issues book identifiers. Badger persists the sequence cursor
	// with the data, so ids survive restarts and are never reissued.
	seq *badger.Sequence
}

// New creates a new Store instance with the given database path.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	// Bandwidth 1 persists every increment, so the cursor never jumps
	// past unissued ids on a clean shutdown.
	seq, err := db.GetSequence([]byte(counterKey), 1)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open id sequence: %w", err)
	}

	store := &Store{
		db:     db,
		logger: logger,
		seq:    seq,
	}

	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path)
	}

	return store, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	if err := s.seq.Release(); err != nil {
		_ = s.db.Close()
		return fmt.Errorf("release id sequence: %w", err)
	}
	return s.db.Close()
}

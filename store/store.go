// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"
)

// Querier is the subset of *sql.DB and *sql.Tx the stores need. Mutating
// methods take one so the merge engine can run them inside a transaction.
type Querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Options configures store behavior that comes from deployment config.
type Options struct {
	// Location is the zone used for vote timestamps (e.g. Asia/Tokyo).
	Location *time.Location
	// AllowRevote disables the one-ballot-per-voter-identity rule.
	AllowRevote bool
}

// Store is the root store providing access to the per-entity stores.
type Store struct {
	db *sql.DB

	Candidates *CandidateStore
	Votes      *VoteStore
}

// New creates a Store wrapping the given database connection.
func New(database *sql.DB, opts Options) *Store {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	s := &Store{db: database}
	s.Candidates = &CandidateStore{store: s}
	s.Votes = &VoteStore{store: s, loc: opts.Location, allowRevote: opts.AllowRevote}
	return s
}

// DB returns the underlying database connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// WithTx executes fn within a transaction. If fn returns nil the transaction
// is committed, otherwise rolled back. Merge and delete treat their
// read-modify-persist sequence as a critical section through this.
func (s *Store) WithTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

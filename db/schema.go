// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The DDL sticks to the dialect subset shared by SQLite and PostgreSQL.
// Timestamps are stored as ISO-8601 text in the configured local zone, and
// voter identities as text so leading zeros survive round-trips.
//
// Referential integrity between vote rank fields and candidate rows is owned
// by the merge engine, not by foreign keys: merges rewrite ids and deletions
// null them out, and legacy imports may carry unresolvable references.
const schema = `
-- Candidates
CREATE TABLE IF NOT EXISTS candidate (
    id TEXT PRIMARY KEY,
    label TEXT NOT NULL,
    active BOOLEAN NOT NULL DEFAULT TRUE,
    position INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_candidate_position ON candidate(position);

-- Votes
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    voter_name TEXT NOT NULL,
    voter_identity TEXT NOT NULL,
    voter_identity_norm TEXT NOT NULL,
    first_id TEXT,
    second_id TEXT,
    third_id TEXT,
    submitted_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_identity_norm ON vote(voter_identity_norm);
`

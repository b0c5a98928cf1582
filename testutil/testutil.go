// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/rankvote/db"
	"github.com/danielhkuo/rankvote/models"
	"github.com/danielhkuo/rankvote/store"
)

// SetupTestDB creates a fresh SQLite database in a per-test temp dir with
// the full schema. The connection is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "rankvote_test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore wraps SetupTestDB in a store with test defaults: UTC
// timestamps, revoting disallowed.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(SetupTestDB(t), store.Options{Location: time.UTC})
}

// SeedCandidate inserts one candidate and returns it.
func SeedCandidate(t *testing.T, st *store.Store, label string, active bool) models.Candidate {
	t.Helper()

	c, err := st.Candidates.Insert(st.DB(), label, active)
	if err != nil {
		t.Fatalf("Failed to seed candidate %q: %v", label, err)
	}
	return c
}

// SeedVote inserts one ballot directly, bypassing submission validation, and
// returns its id. Empty rank ids become NULL.
func SeedVote(t *testing.T, st *store.Store, voterName, voterIdentity, firstID, secondID, thirdID string) string {
	t.Helper()

	v := models.Vote{
		ID:            store.GenerateID(),
		VoterName:     voterName,
		VoterIdentity: voterIdentity,
		FirstID:       nullable(firstID),
		SecondID:      nullable(secondID),
		ThirdID:       nullable(thirdID),
		SubmittedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := st.Votes.ImportRaw(st.DB(), v); err != nil {
		t.Fatalf("Failed to seed vote: %v", err)
	}
	return v.ID
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"github.com/danielhkuo/rankvote/models"
)

// DefaultCandidates seed the table on first run so the voting form is never
// empty. Same placeholder set the legacy deployment shipped with.
var DefaultCandidates = []string{"候補A", "候補B", "候補C", "候補D"}

// CandidateStore handles candidate persistence operations.
type CandidateStore struct {
	store *Store
}

// GenerateID produces a short opaque candidate id: the first 8 hex characters
// of a random UUID. Practically collision-free at this dataset's scale.
func GenerateID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])[:8]
}

// List returns all candidates in insertion order. If activeOnly is set,
// disabled candidates are filtered out.
func (cs *CandidateStore) List(activeOnly bool) ([]models.Candidate, error) {
	return cs.list(cs.store.db, activeOnly)
}

// ListTx is List inside an open transaction.
func (cs *CandidateStore) ListTx(q Querier, activeOnly bool) ([]models.Candidate, error) {
	return cs.list(q, activeOnly)
}

func (cs *CandidateStore) list(q Querier, activeOnly bool) ([]models.Candidate, error) {
	query := `
		SELECT id, label, active, position
		FROM candidate
		ORDER BY position
	`
	if activeOnly {
		query = `
			SELECT id, label, active, position
			FROM candidate
			WHERE active
			ORDER BY position
		`
	}

	rows, err := q.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.Label, &c.Active, &c.Position); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}

	return candidates, rows.Err()
}

// Get returns the candidate with the given id, or a NotFoundError.
func (cs *CandidateStore) Get(id string) (models.Candidate, error) {
	var c models.Candidate
	err := cs.store.db.QueryRow(`
		SELECT id, label, active, position
		FROM candidate
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Label, &c.Active, &c.Position)

	if err == sql.ErrNoRows {
		return models.Candidate{}, &models.NotFoundError{Kind: "candidate", ID: id}
	}
	if err != nil {
		return models.Candidate{}, fmt.Errorf("failed to query candidate: %w", err)
	}
	return c, nil
}

// Insert adds a new candidate at the end of the insertion order and returns
// it with id and position filled in.
func (cs *CandidateStore) Insert(q Querier, label string, active bool) (models.Candidate, error) {
	c := models.Candidate{ID: GenerateID(), Label: label, Active: active}

	err := q.QueryRow(`SELECT COALESCE(MAX(position), 0) + 1 FROM candidate`).Scan(&c.Position)
	if err != nil {
		return models.Candidate{}, fmt.Errorf("failed to allocate position: %w", err)
	}

	_, err = q.Exec(`
		INSERT INTO candidate (id, label, active, position)
		VALUES ($1, $2, $3, $4)
	`, c.ID, c.Label, c.Active, c.Position)
	if err != nil {
		return models.Candidate{}, fmt.Errorf("failed to insert candidate: %w", err)
	}

	return c, nil
}

// Update rewrites label and active flag of an existing candidate.
func (cs *CandidateStore) Update(q Querier, id, label string, active bool) error {
	res, err := q.Exec(`
		UPDATE candidate SET label = $1, active = $2 WHERE id = $3
	`, label, active, id)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return &models.NotFoundError{Kind: "candidate", ID: id}
	}
	return nil
}

// Remove deletes a candidate row. The caller is responsible for rewriting or
// nulling vote references first.
func (cs *CandidateStore) Remove(q Querier, id string) error {
	res, err := q.Exec(`DELETE FROM candidate WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return &models.NotFoundError{Kind: "candidate", ID: id}
	}
	return nil
}

// ReplaceAll swaps the whole candidate set for the given one, de-duplicating
// by id (first occurrence wins). Used by the legacy CSV import.
func (cs *CandidateStore) ReplaceAll(candidates []models.Candidate) error {
	return cs.store.WithTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM candidate`); err != nil {
			return fmt.Errorf("failed to clear candidates: %w", err)
		}

		seen := make(map[string]bool, len(candidates))
		position := 0
		for _, c := range candidates {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			position++
			_, err := tx.Exec(`
				INSERT INTO candidate (id, label, active, position)
				VALUES ($1, $2, $3, $4)
			`, c.ID, c.Label, c.Active, position)
			if err != nil {
				return fmt.Errorf("failed to insert candidate %q: %w", c.ID, err)
			}
		}
		return nil
	})
}

// EnsureSeed populates the default candidate set when the table is empty, so
// load never returns an empty poll on a fresh database.
func (cs *CandidateStore) EnsureSeed() error {
	return cs.store.WithTx(func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRow(`SELECT COUNT(*) FROM candidate`).Scan(&count); err != nil {
			return fmt.Errorf("failed to count candidates: %w", err)
		}
		if count > 0 {
			return nil
		}

		for _, label := range DefaultCandidates {
			if _, err := cs.Insert(tx, label, true); err != nil {
				return err
			}
		}
		return nil
	})
}

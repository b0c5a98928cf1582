// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package merge

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/danielhkuo/rankvote/models"
	"github.com/danielhkuo/rankvote/store"
	"github.com/danielhkuo/rankvote/textnorm"
)

// Engine maintains candidate identity: it detects when differently spelled
// labels denote the same candidate and absorbs duplicates without orphaning
// or double-counting votes. It holds no state of its own; every operation is
// one transaction across the candidate and vote stores.
type Engine struct {
	store *store.Store
}

// New creates an Engine on top of the given store.
func New(s *store.Store) *Engine {
	return &Engine{store: s}
}

// UpsertCandidate adds a candidate by label, or merges into an existing one
// when the normalized label collides. The canonical candidate is the
// colliding row with the lowest insertion position; its label and active
// flag are updated to the supplied values and every other colliding row is
// absorbed: votes referencing it are rewritten to the canonical id and the
// row is removed. Returns the surviving candidate id and whether a merge
// happened.
func (e *Engine) UpsertCandidate(label string, makeActive bool) (string, bool, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", false, &models.ValidationError{Field: "label", Reason: "label must not be empty"}
	}

	var id string
	var merged bool
	err := e.store.WithTx(func(tx *sql.Tx) error {
		candidates, err := e.store.Candidates.ListTx(tx, false)
		if err != nil {
			return err
		}

		colliding := collisions(candidates, textnorm.NormalizeLabel(label), "")
		if len(colliding) == 0 {
			c, err := e.store.Candidates.Insert(tx, label, makeActive)
			if err != nil {
				return err
			}
			id = c.ID
			return nil
		}

		canonical := colliding[0]
		if err := e.absorb(tx, canonical, colliding[1:], label, makeActive); err != nil {
			return err
		}
		id = canonical.ID
		merged = true
		return nil
	})
	if err != nil {
		return "", false, err
	}

	if merged {
		slog.Info("candidate merged on add", "candidate_id", id, "label", label)
	} else {
		slog.Info("candidate added", "candidate_id", id, "label", label)
	}
	return id, merged, nil
}

// RenameCandidate updates an existing candidate's label and active flag.
// Other candidates whose normalized label now collides with the new one are
// absorbed into id, regardless of insertion order: the renamed candidate is
// canonical because the operation is keyed off its id.
func (e *Engine) RenameCandidate(id, newLabel string, newActive bool) error {
	newLabel = strings.TrimSpace(newLabel)
	if newLabel == "" {
		return &models.ValidationError{Field: "label", Reason: "label must not be empty"}
	}

	err := e.store.WithTx(func(tx *sql.Tx) error {
		candidates, err := e.store.Candidates.ListTx(tx, false)
		if err != nil {
			return err
		}

		var target *models.Candidate
		for i := range candidates {
			if candidates[i].ID == id {
				target = &candidates[i]
				break
			}
		}
		if target == nil {
			return &models.NotFoundError{Kind: "candidate", ID: id}
		}

		colliding := collisions(candidates, textnorm.NormalizeLabel(newLabel), id)
		return e.absorb(tx, *target, colliding, newLabel, newActive)
	})
	if err != nil {
		return err
	}

	slog.Info("candidate renamed", "candidate_id", id, "label", newLabel)
	return nil
}

// DeleteCandidate removes a candidate. Votes referencing it have that slot
// nulled, never deleted, so ballots keep their remaining rankings.
func (e *Engine) DeleteCandidate(id string) error {
	err := e.store.WithTx(func(tx *sql.Tx) error {
		if err := e.store.Votes.NullifyID(tx, id); err != nil {
			return err
		}
		return e.store.Candidates.Remove(tx, id)
	})
	if err != nil {
		return err
	}

	slog.Info("candidate deleted", "candidate_id", id)
	return nil
}

// ToggleActive flips a candidate's active flag.
func (e *Engine) ToggleActive(id string) error {
	res, err := e.store.DB().Exec(`UPDATE candidate SET active = NOT active WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to toggle candidate: %w", err)
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

// absorb updates the canonical candidate and folds each duplicate into it:
// votes are rewritten from the duplicate id to the canonical id, then the
// duplicate row is removed. After this no vote references a removed id.
func (e *Engine) absorb(tx *sql.Tx, canonical models.Candidate, duplicates []models.Candidate, label string, active bool) error {
	if err := e.store.Candidates.Update(tx, canonical.ID, label, active); err != nil {
		return err
	}

	for _, dup := range duplicates {
		if err := e.store.Votes.ReplaceID(tx, dup.ID, canonical.ID); err != nil {
			return err
		}
		if err := e.store.Candidates.Remove(tx, dup.ID); err != nil {
			return err
		}
		slog.Info("duplicate candidate absorbed",
			"duplicate_id", dup.ID, "duplicate_label", dup.Label, "canonical_id", canonical.ID)
	}
	return nil
}

// collisions returns the candidates whose normalized label equals key,
// excluding excludeID, in insertion order.
func collisions(candidates []models.Candidate, key, excludeID string) []models.Candidate {
	var out []models.Candidate
	for _, c := range candidates {
		if c.ID == excludeID {
			continue
		}
		if textnorm.NormalizeLabel(c.Label) == key {
			out = append(out, c)
		}
	}
	return out
}

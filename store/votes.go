// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"time"

	"github.com/danielhkuo/rankvote/models"
	"github.com/danielhkuo/rankvote/textnorm"
)

// VoteStore handles ballot persistence operations.
type VoteStore struct {
	store       *Store
	loc         *time.Location
	allowRevote bool
}

// List returns all votes in submission order.
func (vs *VoteStore) List() ([]models.Vote, error) {
	rows, err := vs.store.db.Query(`
		SELECT id, voter_name, voter_identity, first_id, second_id, third_id, submitted_at
		FROM vote
		ORDER BY submitted_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.VoterName, &v.VoterIdentity,
			&v.FirstID, &v.SecondID, &v.ThirdID, &v.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}

	return votes, rows.Err()
}

// Count returns the number of votes cast.
func (vs *VoteStore) Count() (int, error) {
	var n int
	if err := vs.store.db.QueryRow(`SELECT COUNT(*) FROM vote`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return n, nil
}

// Append validates and persists one ballot with a server-assigned id and
// timestamp, returning the stored vote.
//
// Rank fields must be pairwise distinct where non-nil. Unless revoting is
// allowed, at most one ballot may exist per normalized voter identity; the
// rule is enforced by a single conditional insert against the persisted set,
// so two racing submissions cannot both land.
func (vs *VoteStore) Append(v models.Vote) (models.Vote, error) {
	if err := validateRanks(v.FirstID, v.SecondID, v.ThirdID); err != nil {
		return models.Vote{}, err
	}

	v.ID = GenerateID()
	v.SubmittedAt = time.Now().In(vs.loc).Format(time.RFC3339)
	identityNorm := textnorm.NormalizeVoterID(v.VoterIdentity)

	if vs.allowRevote {
		_, err := vs.store.db.Exec(`
			INSERT INTO vote (id, voter_name, voter_identity, voter_identity_norm,
			                  first_id, second_id, third_id, submitted_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, v.ID, v.VoterName, v.VoterIdentity, identityNorm,
			v.FirstID, v.SecondID, v.ThirdID, v.SubmittedAt)
		if err != nil {
			return models.Vote{}, fmt.Errorf("failed to insert vote: %w", err)
		}
		return v, nil
	}

	res, err := vs.store.db.Exec(`
		INSERT INTO vote (id, voter_name, voter_identity, voter_identity_norm,
		                  first_id, second_id, third_id, submitted_at)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8
		WHERE NOT EXISTS (SELECT 1 FROM vote WHERE voter_identity_norm = $9)
	`, v.ID, v.VoterName, v.VoterIdentity, identityNorm,
		v.FirstID, v.SecondID, v.ThirdID, v.SubmittedAt, identityNorm)
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to insert vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return models.Vote{}, &models.ValidationError{
			Field:  "voter_identity",
			Reason: "a ballot already exists for this voter identity",
		}
	}

	return v, nil
}

// validateRanks rejects ballots ranking the same candidate twice.
func validateRanks(first, second, third *string) error {
	seen := make(map[string]bool, 3)
	for _, id := range []*string{first, second, third} {
		if id == nil {
			continue
		}
		if seen[*id] {
			return &models.ValidationError{
				Field:  "ranks",
				Reason: "the same candidate cannot be ranked twice",
			}
		}
		seen[*id] = true
	}
	return nil
}

// ReplaceID rewrites every occurrence of oldID in the three rank fields to
// newID. Idempotent; a no-op when oldID is absent everywhere.
func (vs *VoteStore) ReplaceID(q Querier, oldID, newID string) error {
	_, err := q.Exec(`
		UPDATE vote SET
			first_id  = CASE WHEN first_id  = $1 THEN $2 ELSE first_id  END,
			second_id = CASE WHEN second_id = $3 THEN $4 ELSE second_id END,
			third_id  = CASE WHEN third_id  = $5 THEN $6 ELSE third_id  END
	`, oldID, newID, oldID, newID, oldID, newID)
	if err != nil {
		return fmt.Errorf("failed to replace candidate id in votes: %w", err)
	}
	return nil
}

// NullifyID sets any rank field equal to id to NULL across all votes. Used
// on candidate deletion; the rest of each row is preserved.
func (vs *VoteStore) NullifyID(q Querier, id string) error {
	_, err := q.Exec(`
		UPDATE vote SET
			first_id  = CASE WHEN first_id  = $1 THEN NULL ELSE first_id  END,
			second_id = CASE WHEN second_id = $2 THEN NULL ELSE second_id END,
			third_id  = CASE WHEN third_id  = $3 THEN NULL ELSE third_id  END
	`, id, id, id)
	if err != nil {
		return fmt.Errorf("failed to nullify candidate id in votes: %w", err)
	}
	return nil
}

// ClearAll destructively removes every vote. Explicit admin action only.
func (vs *VoteStore) ClearAll() error {
	if _, err := vs.store.db.Exec(`DELETE FROM vote`); err != nil {
		return fmt.Errorf("failed to clear votes: %w", err)
	}
	return nil
}

// ImportRaw persists a vote row as-is, keeping its original identity text and
// timestamp. Used by the legacy CSV import, which bypasses validation so
// malformed historical rows degrade instead of failing the whole load.
func (vs *VoteStore) ImportRaw(q Querier, v models.Vote) error {
	if v.ID == "" {
		v.ID = GenerateID()
	}
	_, err := q.Exec(`
		INSERT INTO vote (id, voter_name, voter_identity, voter_identity_norm,
		                  first_id, second_id, third_id, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, v.ID, v.VoterName, v.VoterIdentity, textnorm.NormalizeVoterID(v.VoterIdentity),
		v.FirstID, v.SecondID, v.ThirdID, v.SubmittedAt)
	if err != nil {
		return fmt.Errorf("failed to import vote: %w", err)
	}
	return nil
}

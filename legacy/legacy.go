// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package legacy

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/danielhkuo/rankvote/models"
	"github.com/danielhkuo/rankvote/store"
)

// File names used by the legacy deployment.
const (
	CandidatesFile = "candidates.csv"
	VotesFile      = "votes.csv"
)

// Import migrates data from a legacy CSV directory into the database. It
// runs only when the candidate table is empty (first boot against old data)
// and tolerates both historical schemas:
//
//   - candidates keyed by "name" with no ids: the field is renamed to label
//     and fresh ids are generated
//   - votes carrying candidate labels in first/second/third: each label is
//     mapped to the current candidate id, unresolvable labels become null
//
// Identity fields are kept as text so leading zeros survive. Malformed rows
// are skipped, never fatal; only an unreadable or unwritable store is.
func Import(st *store.Store, dir string) error {
	existing, err := st.Candidates.List(false)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		slog.Info("legacy import skipped, database already populated")
		return nil
	}

	candidates, err := readCandidates(filepath.Join(dir, CandidatesFile))
	if err != nil {
		return err
	}
	if candidates == nil {
		return nil
	}

	if err := st.Candidates.ReplaceAll(candidates); err != nil {
		return err
	}
	// Re-read: ReplaceAll de-duplicated by id and assigned positions.
	candidates, err = st.Candidates.List(false)
	if err != nil {
		return err
	}

	votes, err := readVotes(filepath.Join(dir, VotesFile), candidates)
	if err != nil {
		return err
	}

	err = st.WithTx(func(tx *sql.Tx) error {
		for _, v := range votes {
			if err := st.Votes.ImportRaw(tx, v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("legacy data imported", "dir", dir,
		"candidates", len(candidates), "votes", len(votes))
	return nil
}

// readCandidates loads the legacy candidate file. Returns nil when the file
// does not exist.
func readCandidates(path string) ([]models.Candidate, error) {
	header, rows, err := readCSV(path)
	if err != nil || header == nil {
		return nil, err
	}

	labelCol := header["label"]
	if labelCol == nil {
		// Oldest schema: rows keyed by name, no ids.
		labelCol = header["name"]
	}
	if labelCol == nil {
		return nil, fmt.Errorf("%s: no label or name column", path)
	}
	idCol := header["id"]
	activeCol := header["active"]

	var candidates []models.Candidate
	for _, row := range rows {
		label := strings.TrimSpace(field(row, labelCol))
		if label == "" {
			continue
		}
		c := models.Candidate{
			ID:     field(row, idCol),
			Label:  label,
			Active: parseBool(field(row, activeCol), true),
		}
		if c.ID == "" {
			c.ID = store.GenerateID()
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// readVotes loads the legacy vote file, mapping label-based rank columns to
// candidate ids when the id columns are absent. Returns nil when the file
// does not exist.
func readVotes(path string, candidates []models.Candidate) ([]models.Vote, error) {
	header, rows, err := readCSV(path)
	if err != nil || header == nil {
		return nil, err
	}

	labelToID := make(map[string]string, len(candidates))
	for _, c := range candidates {
		labelToID[c.Label] = c.ID
	}

	byID := header["first_id"] != nil
	resolve := func(row []string, idCol, labelCol *int) *string {
		if byID {
			return idInSet(field(row, idCol), candidates)
		}
		if id, ok := labelToID[field(row, labelCol)]; ok {
			return &id
		}
		return nil
	}

	nameCol := header["voter_name"]
	identityCol := header["voter_identity"]
	if identityCol == nil {
		identityCol = header["employee_id"]
	}
	timeCol := header["submitted_at"]
	if timeCol == nil {
		timeCol = header["time"]
	}

	var votes []models.Vote
	for _, row := range rows {
		votes = append(votes, models.Vote{
			VoterName:     field(row, nameCol),
			VoterIdentity: field(row, identityCol),
			FirstID:       resolve(row, header["first_id"], header["first"]),
			SecondID:      resolve(row, header["second_id"], header["second"]),
			ThirdID:       resolve(row, header["third_id"], header["third"]),
			SubmittedAt:   field(row, timeCol),
		})
	}
	return votes, nil
}

// readCSV reads path into a header column index and data rows. A missing
// file yields (nil, nil, nil); rows with mismatched field counts are kept
// and padded by field(). All values load as text.
func readCSV(path string) (map[string]*int, [][]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil && err != io.EOF {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	header := make(map[string]*int, len(records[0]))
	for i, name := range records[0] {
		i := i
		header[strings.TrimSpace(name)] = &i
	}
	return header, records[1:], nil
}

// field safely extracts a column from a possibly short row.
func field(row []string, col *int) string {
	if col == nil || *col >= len(row) {
		return ""
	}
	return row[*col]
}

// idInSet returns a pointer to id if it names a known candidate, else nil.
// Dangling ids in legacy data degrade to null rather than failing the load.
func idInSet(id string, candidates []models.Candidate) *string {
	if id == "" {
		return nil
	}
	for _, c := range candidates {
		if c.ID == id {
			return &id
		}
	}
	return nil
}

// parseBool reads the boolean spellings the legacy files used ("True",
// "true", "1"); anything unrecognized falls back to def.
func parseBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "1", "yes":
		return true
	case "false", "f", "0", "no":
		return false
	default:
		return def
	}
}

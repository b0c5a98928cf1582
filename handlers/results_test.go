// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/rankvote/models"
	"github.com/danielhkuo/rankvote/testutil"
)

func TestGetRanking(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewResultsHandler(st)

	a := testutil.SeedCandidate(t, st, "A", true)
	b := testutil.SeedCandidate(t, st, "B", true)
	c := testutil.SeedCandidate(t, st, "C", true)

	testutil.SeedVote(t, st, "v1", "1", a.ID, b.ID, c.ID)
	testutil.SeedVote(t, st, "v2", "2", b.ID, a.ID, c.ID)

	req := httptest.NewRequest("GET", "/results", nil)
	w := httptest.NewRecorder()
	handler.GetRanking(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d - %s", w.Code, w.Body.String())
	}

	var resp models.RankingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.VoteCount != 2 {
		t.Errorf("expected vote_count 2, got %d", resp.VoteCount)
	}
	if len(resp.Rankings) != 3 {
		t.Fatalf("expected 3 ranking rows, got %d", len(resp.Rankings))
	}

	// A and B tie at 5 points with equal counts; label order decides,
	// ranks stay distinct.
	first, second, third := resp.Rankings[0], resp.Rankings[1], resp.Rankings[2]
	if first.Label != "A" || first.Points != 5 || first.Rank != 1 {
		t.Errorf("unexpected first row: %+v", first)
	}
	if second.Label != "B" || second.Points != 5 || second.Rank != 2 {
		t.Errorf("unexpected second row: %+v", second)
	}
	if third.Label != "C" || third.Points != 2 || third.Rank != 3 {
		t.Errorf("unexpected third row: %+v", third)
	}
}

func TestGetRanking_IncludeInactive(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewResultsHandler(st)

	testutil.SeedCandidate(t, st, "有効", true)
	testutil.SeedCandidate(t, st, "無効", false)

	req := httptest.NewRequest("GET", "/results", nil)
	w := httptest.NewRecorder()
	handler.GetRanking(w, req)

	var resp models.RankingResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Rankings) != 1 {
		t.Errorf("expected only active candidates, got %+v", resp.Rankings)
	}

	req = httptest.NewRequest("GET", "/results?include_inactive=1", nil)
	w = httptest.NewRecorder()
	handler.GetRanking(w, req)

	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Rankings) != 2 {
		t.Errorf("expected disabled candidates included, got %+v", resp.Rankings)
	}
}

func TestGetRanking_Empty(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewResultsHandler(st)

	req := httptest.NewRequest("GET", "/results", nil)
	w := httptest.NewRecorder()
	handler.GetRanking(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("empty poll must not error: %d", w.Code)
	}
	var resp models.RankingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Rankings) != 0 || resp.VoteCount != 0 {
		t.Errorf("expected empty ranking, got %+v", resp)
	}
}

func TestExportRanking(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewResultsHandler(st)

	a := testutil.SeedCandidate(t, st, "候補A", true)
	testutil.SeedVote(t, st, "v1", "1", a.ID, "", "")

	req := httptest.NewRequest("GET", "/results/export", nil)
	w := httptest.NewRecorder()
	handler.ExportRanking(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("expected text/csv, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "result.csv") {
		t.Errorf("expected attachment filename, got %q", cd)
	}

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(records))
	}
	wantHeader := []string{"rank", "label", "points", "first", "second", "third"}
	for i, h := range wantHeader {
		if records[0][i] != h {
			t.Errorf("header[%d]: expected %q, got %q", i, h, records[0][i])
		}
	}
	if records[1][0] != "1" || records[1][1] != "候補A" || records[1][2] != "3" {
		t.Errorf("unexpected data row: %v", records[1])
	}
}

func TestListVotesDetailed(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewResultsHandler(st)

	a := testutil.SeedCandidate(t, st, "候補A", true)
	b := testutil.SeedCandidate(t, st, "候補B", true)
	// Third slot nulled (candidate deleted earlier).
	testutil.SeedVote(t, st, "山田 太郎", "00123", a.ID, b.ID, "")

	req := httptest.NewRequest("GET", "/votes/detail", nil)
	w := httptest.NewRecorder()
	handler.ListVotesDetailed(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var details []models.VoteDetail
	if err := json.Unmarshal(w.Body.Bytes(), &details); err != nil {
		t.Fatal(err)
	}
	if len(details) != 1 {
		t.Fatalf("expected 1 detail row, got %d", len(details))
	}
	d := details[0]
	if d.First != "候補A" || d.Second != "候補B" {
		t.Errorf("labels not resolved: %+v", d)
	}
	if d.Third != "" {
		t.Errorf("nulled slot should render empty, got %q", d.Third)
	}
	if d.VoterIdentity != "00123" {
		t.Errorf("identity must keep leading zeros, got %q", d.VoterIdentity)
	}
}

func TestExportVotesDetailed(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewResultsHandler(st)

	a := testutil.SeedCandidate(t, st, "候補A", true)
	testutil.SeedVote(t, st, "山田 太郎", "00123", a.ID, "", "")

	req := httptest.NewRequest("GET", "/votes/detail/export", nil)
	w := httptest.NewRecorder()
	handler.ExportVotesDetailed(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "votes_detail.csv") {
		t.Errorf("expected attachment filename, got %q", cd)
	}

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(records))
	}
	if records[1][0] != "山田 太郎" || records[1][1] != "00123" || records[1][2] != "候補A" {
		t.Errorf("unexpected data row: %v", records[1])
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/rankvote/merge"
	"github.com/danielhkuo/rankvote/models"
	"github.com/danielhkuo/rankvote/testutil"
)

func TestCandidateList(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewCandidateHandler(st, merge.New(st))

	testutil.SeedCandidate(t, st, "候補A", true)
	testutil.SeedCandidate(t, st, "無効候補", false)

	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{"active only by default", "", 1},
		{"all includes disabled", "?all=1", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/candidates"+tt.query, nil)
			w := httptest.NewRecorder()
			handler.List(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}

			var candidates []models.Candidate
			if err := json.Unmarshal(w.Body.Bytes(), &candidates); err != nil {
				t.Fatal(err)
			}
			if len(candidates) != tt.expected {
				t.Errorf("expected %d candidates, got %d", tt.expected, len(candidates))
			}
		})
	}
}

func TestCandidateAdd(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewCandidateHandler(st, merge.New(st))

	w := postJSON(t, handler.Add, "/candidates", models.AddCandidateRequest{Label: "パッケージ"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d - %s", w.Code, w.Body.String())
	}
	var resp models.CandidateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Merged || resp.CandidateID == "" {
		t.Errorf("unexpected response: %+v", resp)
	}

	// Adding an equivalent spelling merges instead of duplicating.
	w = postJSON(t, handler.Add, "/candidates", models.AddCandidateRequest{Label: "ぱっけーじ"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on merge, got %d - %s", w.Code, w.Body.String())
	}
	var mergedResp models.CandidateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &mergedResp); err != nil {
		t.Fatal(err)
	}
	if !mergedResp.Merged || mergedResp.CandidateID != resp.CandidateID {
		t.Errorf("expected merge into %q, got %+v", resp.CandidateID, mergedResp)
	}

	candidates, _ := st.Candidates.List(false)
	if len(candidates) != 1 {
		t.Errorf("expected a single candidate after merge, got %d", len(candidates))
	}

	// Empty labels are rejected.
	w = postJSON(t, handler.Add, "/candidates", models.AddCandidateRequest{Label: "  "})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty label, got %d", w.Code)
	}
}

func TestCandidateUpdate(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewCandidateHandler(st, merge.New(st))

	target := testutil.SeedCandidate(t, st, "ケーブル", true)
	duplicate := testutil.SeedCandidate(t, st, "パッケージ", true)
	testutil.SeedVote(t, st, "a", "1", duplicate.ID, "", "")

	body, _ := json.Marshal(models.UpdateCandidateRequest{Label: "ぱっけーじ", Active: false})
	req := httptest.NewRequest("PUT", "/candidates/"+target.ID, bytes.NewReader(body))
	req.SetPathValue("id", target.ID)
	w := httptest.NewRecorder()
	handler.Update(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d - %s", w.Code, w.Body.String())
	}

	// The duplicate was absorbed and its vote reassigned.
	candidates, _ := st.Candidates.List(false)
	if len(candidates) != 1 || candidates[0].ID != target.ID {
		t.Errorf("expected only the renamed candidate, got %+v", candidates)
	}
	if candidates[0].Label != "ぱっけーじ" || candidates[0].Active {
		t.Errorf("label/active not applied: %+v", candidates[0])
	}

	votes, _ := st.Votes.List()
	if votes[0].FirstID == nil || *votes[0].FirstID != target.ID {
		t.Errorf("vote not reassigned: %+v", votes[0])
	}
}

func TestCandidateUpdate_NotFound(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewCandidateHandler(st, merge.New(st))

	body, _ := json.Marshal(models.UpdateCandidateRequest{Label: "新しい名前", Active: true})
	req := httptest.NewRequest("PUT", "/candidates/missing1", bytes.NewReader(body))
	req.SetPathValue("id", "missing1")
	w := httptest.NewRecorder()
	handler.Update(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestCandidateToggle(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewCandidateHandler(st, merge.New(st))
	c := testutil.SeedCandidate(t, st, "候補A", true)

	req := httptest.NewRequest("POST", "/candidates/"+c.ID+"/toggle", nil)
	req.SetPathValue("id", c.ID)
	w := httptest.NewRecorder()
	handler.Toggle(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	got, _ := st.Candidates.Get(c.ID)
	if got.Active {
		t.Error("expected candidate disabled")
	}
}

func TestCandidateDelete(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewCandidateHandler(st, merge.New(st))

	doomed := testutil.SeedCandidate(t, st, "消える", true)
	testutil.SeedVote(t, st, "a", "1", doomed.ID, "", "")

	req := httptest.NewRequest("DELETE", "/candidates/"+doomed.ID, nil)
	req.SetPathValue("id", doomed.ID)
	w := httptest.NewRecorder()
	handler.Delete(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	candidates, _ := st.Candidates.List(false)
	if len(candidates) != 0 {
		t.Errorf("candidate not removed: %+v", candidates)
	}
	votes, _ := st.Votes.List()
	if len(votes) != 1 || votes[0].FirstID != nil {
		t.Errorf("expected surviving vote with nulled slot, got %+v", votes)
	}

	// Deleting again is a reported no-op, not a crash.
	w = httptest.NewRecorder()
	handler.Delete(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", w.Code)
	}
}

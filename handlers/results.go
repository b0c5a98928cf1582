// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/rankvote/aggregate"
	"github.com/danielhkuo/rankvote/middleware"
	"github.com/danielhkuo/rankvote/models"
	"github.com/danielhkuo/rankvote/store"
)

type ResultsHandler struct {
	store *store.Store
}

func NewResultsHandler(s *store.Store) *ResultsHandler {
	return &ResultsHandler{store: s}
}

// GetRanking handles GET /results
// ?include_inactive=1 scores disabled candidates too.
func (h *ResultsHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	rankings, votes, ok := h.ranking(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RankingResponse{
		Rankings:  rankings,
		VoteCount: votes,
	})
}

// ExportRanking handles GET /results/export
// Same column semantics as the ranking JSON, as a CSV download.
func (h *ResultsHandler) ExportRanking(w http.ResponseWriter, r *http.Request) {
	rankings, _, ok := h.ranking(w, r)
	if !ok {
		return
	}

	records := [][]string{{"rank", "label", "points", "first", "second", "third"}}
	for _, rc := range rankings {
		records = append(records, []string{
			strconv.Itoa(rc.Rank),
			rc.Label,
			strconv.Itoa(rc.Points),
			strconv.Itoa(rc.FirstCount),
			strconv.Itoa(rc.SecondCount),
			strconv.Itoa(rc.ThirdCount),
		})
	}

	writeCSV(w, "result.csv", records)
}

// ListVotesDetailed handles GET /votes/detail
// Raw ballots with candidate ids resolved to labels. Slots nulled by a
// deletion render as empty strings.
func (h *ResultsHandler) ListVotesDetailed(w http.ResponseWriter, r *http.Request) {
	details, err := h.voteDetails()
	if err != nil {
		middleware.DomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, details)
}

// ExportVotesDetailed handles GET /votes/detail/export
func (h *ResultsHandler) ExportVotesDetailed(w http.ResponseWriter, r *http.Request) {
	details, err := h.voteDetails()
	if err != nil {
		middleware.DomainError(w, err)
		return
	}

	records := [][]string{{"voter_name", "voter_identity", "first", "second", "third", "time"}}
	for _, d := range details {
		records = append(records, []string{
			d.VoterName, d.VoterIdentity, d.First, d.Second, d.Third, d.SubmittedAt,
		})
	}

	writeCSV(w, "votes_detail.csv", records)
}

func (h *ResultsHandler) ranking(w http.ResponseWriter, r *http.Request) ([]models.RankedCandidate, int, bool) {
	includeInactive := r.URL.Query().Get("include_inactive") != ""

	candidates, err := h.store.Candidates.List(false)
	if err != nil {
		middleware.DomainError(w, err)
		return nil, 0, false
	}

	votes, err := h.store.Votes.List()
	if err != nil {
		middleware.DomainError(w, err)
		return nil, 0, false
	}

	return aggregate.Rank(candidates, votes, includeInactive), len(votes), true
}

func (h *ResultsHandler) voteDetails() ([]models.VoteDetail, error) {
	candidates, err := h.store.Candidates.List(false)
	if err != nil {
		return nil, err
	}

	votes, err := h.store.Votes.List()
	if err != nil {
		return nil, err
	}

	labels := make(map[string]string, len(candidates))
	for _, c := range candidates {
		labels[c.ID] = c.Label
	}
	resolve := func(id *string) string {
		if id == nil {
			return ""
		}
		return labels[*id]
	}

	details := make([]models.VoteDetail, 0, len(votes))
	for _, v := range votes {
		details = append(details, models.VoteDetail{
			VoterName:     v.VoterName,
			VoterIdentity: v.VoterIdentity,
			First:         resolve(v.FirstID),
			Second:        resolve(v.SecondID),
			Third:         resolve(v.ThirdID),
			SubmittedAt:   v.SubmittedAt,
		})
	}
	return details, nil
}

func writeCSV(w http.ResponseWriter, filename string, records [][]string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		slog.Error("failed to write CSV response", "error", err)
	}
}

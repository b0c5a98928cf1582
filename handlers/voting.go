// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/rankvote/middleware"
	"github.com/danielhkuo/rankvote/models"
	"github.com/danielhkuo/rankvote/store"
)

type VotingHandler struct {
	store *store.Store
}

func NewVotingHandler(s *store.Store) *VotingHandler {
	return &VotingHandler{store: s}
}

// Submit handles POST /votes
func (h *VotingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.VoterName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter_name is required")
		return
	}
	if req.VoterIdentity == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter_identity is required")
		return
	}
	if req.FirstID == "" || req.SecondID == "" || req.ThirdID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "all three rankings are required")
		return
	}

	// Only active candidates may be ranked on submission.
	active, err := h.store.Candidates.List(true)
	if err != nil {
		middleware.DomainError(w, err)
		return
	}
	eligible := make(map[string]bool, len(active))
	for _, c := range active {
		eligible[c.ID] = true
	}
	for _, id := range []string{req.FirstID, req.SecondID, req.ThirdID} {
		if !eligible[id] {
			middleware.ErrorResponse(w, http.StatusBadRequest, "unknown or inactive candidate: "+id)
			return
		}
	}

	vote, err := h.store.Votes.Append(models.Vote{
		VoterName:     req.VoterName,
		VoterIdentity: req.VoterIdentity,
		FirstID:       &req.FirstID,
		SecondID:      &req.SecondID,
		ThirdID:       &req.ThirdID,
	})
	if err != nil {
		middleware.DomainError(w, err)
		return
	}

	slog.Info("vote submitted", "vote_id", vote.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVoteResponse{
		VoteID:  vote.ID,
		Message: "Vote submitted successfully",
	})
}

// ResetAll handles DELETE /votes
// Destructive admin action: removes every ballot.
func (h *VotingHandler) ResetAll(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Votes.ClearAll(); err != nil {
		middleware.DomainError(w, err)
		return
	}

	slog.Warn("all votes cleared")

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"message": "All votes cleared",
	})
}

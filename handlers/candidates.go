// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/rankvote/merge"
	"github.com/danielhkuo/rankvote/middleware"
	"github.com/danielhkuo/rankvote/models"
	"github.com/danielhkuo/rankvote/store"
)

type CandidateHandler struct {
	store  *store.Store
	engine *merge.Engine
}

func NewCandidateHandler(s *store.Store, e *merge.Engine) *CandidateHandler {
	return &CandidateHandler{store: s, engine: e}
}

// List handles GET /candidates
// ?all=1 includes disabled candidates.
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("all") == ""

	candidates, err := h.store.Candidates.List(activeOnly)
	if err != nil {
		middleware.DomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidates)
}

// Add handles POST /candidates
// Adds a candidate, or merges into an existing one when the normalized
// label collides with it.
func (h *CandidateHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.AddCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, merged, err := h.engine.UpsertCandidate(req.Label, true)
	if err != nil {
		middleware.DomainError(w, err)
		return
	}

	status := http.StatusCreated
	if merged {
		status = http.StatusOK
	}
	middleware.JSONResponse(w, status, models.CandidateResponse{
		CandidateID: id,
		Merged:      merged,
	})
}

// Update handles PUT /candidates/{id}
// Renames a candidate and sets its active flag; candidates whose normalized
// label collides with the new one are absorbed into it.
func (h *CandidateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var req models.UpdateCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.engine.RenameCandidate(id, req.Label, req.Active); err != nil {
		middleware.DomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CandidateResponse{CandidateID: id})
}

// Toggle handles POST /candidates/{id}/toggle
func (h *CandidateHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.engine.ToggleActive(id); err != nil {
		middleware.DomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CandidateResponse{CandidateID: id})
}

// Delete handles DELETE /candidates/{id}
// Votes referencing the candidate keep their rows; the matching rank slots
// are nulled.
func (h *CandidateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.engine.DeleteCandidate(id); err != nil {
		middleware.DomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"message": "Candidate deleted",
	})
}

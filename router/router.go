// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/rankvote/handlers"
	"github.com/danielhkuo/rankvote/merge"
	"github.com/danielhkuo/rankvote/middleware"
	"github.com/danielhkuo/rankvote/store"
)

func NewRouter(st *store.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	engine := merge.New(st)
	votingHandler := handlers.NewVotingHandler(st)
	candidateHandler := handlers.NewCandidateHandler(st, engine)
	resultsHandler := handlers.NewResultsHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voting (public)
	mux.HandleFunc("GET /candidates", middleware.WithLogging(candidateHandler.List))
	mux.HandleFunc("POST /votes", middleware.WithLogging(votingHandler.Submit))

	// Results (admin view)
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetRanking))
	mux.HandleFunc("GET /results/export", middleware.WithLogging(resultsHandler.ExportRanking))
	mux.HandleFunc("GET /votes/detail", middleware.WithLogging(resultsHandler.ListVotesDetailed))
	mux.HandleFunc("GET /votes/detail/export", middleware.WithLogging(resultsHandler.ExportVotesDetailed))

	// Candidate maintenance (admin)
	mux.HandleFunc("POST /candidates", middleware.WithLogging(candidateHandler.Add))
	mux.HandleFunc("PUT /candidates/{id}", middleware.WithLogging(candidateHandler.Update))
	mux.HandleFunc("POST /candidates/{id}/toggle", middleware.WithLogging(candidateHandler.Toggle))
	mux.HandleFunc("DELETE /candidates/{id}", middleware.WithLogging(candidateHandler.Delete))
	mux.HandleFunc("DELETE /votes", middleware.WithLogging(votingHandler.ResetAll))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("rankvote API v1"))
	})

	return mux
}

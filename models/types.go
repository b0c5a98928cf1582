// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type SubmitVoteRequest struct {
	VoterName     string `json:"voter_name"`
	VoterIdentity string `json:"voter_identity"`
	FirstID       string `json:"first_id"`
	SecondID      string `json:"second_id"`
	ThirdID       string `json:"third_id"`
}

type AddCandidateRequest struct {
	Label string `json:"label"`
}

type UpdateCandidateRequest struct {
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// Response types

type SubmitVoteResponse struct {
	VoteID  string `json:"vote_id"`
	Message string `json:"message"`
}

type CandidateResponse struct {
	CandidateID string `json:"candidate_id"`
	Merged      bool   `json:"merged"`
}

type RankingResponse struct {
	Rankings  []RankedCandidate `json:"rankings"`
	VoteCount int               `json:"vote_count"`
}

// Domain types

type Candidate struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
	// Position is the insertion index; it decides which of two colliding
	// candidates survives a merge. Not exposed over the API.
	Position int `json:"-"`
}

// Vote is one voter's ranked ballot. Rank fields are nil when the slot was
// nulled by a candidate deletion or could not be resolved during migration.
type Vote struct {
	ID            string  `json:"id"`
	VoterName     string  `json:"voter_name"`
	VoterIdentity string  `json:"voter_identity"`
	FirstID       *string `json:"first_id"`
	SecondID      *string `json:"second_id"`
	ThirdID       *string `json:"third_id"`
	SubmittedAt   string  `json:"submitted_at"`
}

// VoteDetail is a vote with candidate ids resolved to display labels,
// for the admin listing and CSV export.
type VoteDetail struct {
	VoterName     string `json:"voter_name"`
	VoterIdentity string `json:"voter_identity"`
	First         string `json:"first"`
	Second        string `json:"second"`
	Third         string `json:"third"`
	SubmittedAt   string `json:"submitted_at"`
}

// RankedCandidate is one row of the aggregated ranking.
type RankedCandidate struct {
	Rank        int    `json:"rank"` // 1-indexed, always distinct
	CandidateID string `json:"candidate_id"`
	Label       string `json:"label"`
	Points      int    `json:"points"`
	FirstCount  int    `json:"first_count"`
	SecondCount int    `json:"second_count"`
	ThirdCount  int    `json:"third_count"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

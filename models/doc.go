// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitVoteRequest: voter_name, voter_identity, first_id, second_id, third_id
  - AddCandidateRequest: label
  - UpdateCandidateRequest: label, active

# Response Types

Types for JSON responses:

  - SubmitVoteResponse: vote_id, message
  - CandidateResponse: candidate_id, merged
  - RankingResponse: rankings, vote_count
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Candidate: stable id, display label, active flag, insertion position
  - Vote: one ranked ballot (1st/2nd/3rd candidate ids, nullable)
  - VoteDetail: a vote with ids resolved to labels
  - RankedCandidate: one aggregated ranking row (points, rank counts, rank)

# Errors

Typed domain errors, matched with errors.As:

  - ValidationError: rejected input, nothing was mutated
  - NotFoundError: referenced candidate id does not exist
*/
package models

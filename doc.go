// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the rankvote API server.

rankvote is a small ranked-voting service: participants rank three
candidates (1st/2nd/3rd place, worth 3/2/1 points), and an admin view
aggregates scores and maintains the candidate list. Differently spelled
labels for the same candidate (full/half-width, hiragana/katakana, known
synonyms) are detected and merged automatically, with historical votes
reassigned to the surviving candidate id.

# Starting the Server

	go run . -p 8502

SQLite is the default backend (local rankvote.db file). For PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

Optional settings (flags or environment):

  - PORT (-p): server port (default: 8502)
  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - APP_TIMEZONE (-tz): zone for vote timestamps (default: Asia/Tokyo)
  - LEGACY_DATA_DIR (-legacy-dir): CSV data from the old deployment,
    imported on first boot
  - ALLOW_REVOTE (-allow-revote): lift the one-ballot-per-voter rule

A .env file in the working directory is loaded when present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - textnorm: label merge keys and voter-identity normalization
  - store: candidate and vote persistence over database/sql
  - merge: candidate identity engine (collision detection, vote reassignment)
  - aggregate: 3-2-1 scoring and deterministic ranking
  - legacy: CSV import from the previous deployment
  - handlers, router, middleware, models, db, cliparse: HTTP plumbing

See package documentation for each component.
*/
package main

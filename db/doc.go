// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the database schema.

Two flat tables, one per entity:

  - candidate: id, label, active, position
  - vote: id, voter_name, voter_identity, voter_identity_norm,
    first_id, second_id, third_id, submitted_at

The DDL is shared between the SQLite (modernc.org/sqlite) and PostgreSQL
(lib/pq) drivers; CreateSchema is idempotent and runs at every startup.

candidate.position records insertion order, which is the policy key for
choosing the surviving candidate during a synonym merge. vote rows keep the
normalized voter identity in its own column so the one-ballot-per-voter rule
can be enforced by an atomic conditional insert.
*/
package db

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides the persistence layer over database/sql.

Store is the root object; it owns the connection and exposes one sub-store
per entity:

  - CandidateStore: candidate rows, insertion-ordered listing, default seed,
    whole-set replacement for the legacy import
  - VoteStore: ballot append with validation and the one-ballot-per-voter
    rule, id rewriting (ReplaceID) and nulling (NullifyID) for merges and
    deletions, destructive reset

Mutating methods accept a Querier (satisfied by *sql.DB and *sql.Tx) so the
merge engine can compose candidate and vote updates inside one transaction
via Store.WithTx.

The voter-uniqueness rule is enforced with a conditional INSERT ... SELECT
... WHERE NOT EXISTS against the persisted set, not a read-then-write check,
so concurrent submissions with the same identity cannot both succeed.
*/
package store

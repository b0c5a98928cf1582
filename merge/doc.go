// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package merge is the candidate identity engine.

Two labels denote the same candidate when their textnorm merge keys are
equal. Adding or renaming a candidate therefore runs collision detection
first and, on a hit, merges instead of duplicating: the canonical candidate
keeps its id, takes the new label, and absorbs every colliding row by
rewriting historical votes to its id before the duplicate row is removed.

Canonical choice is explicit policy, not incidental row order: on add, the
colliding candidate with the lowest insertion position wins; on rename, the
candidate being renamed wins because the operation is keyed off its id.

Every operation runs in a single transaction across both stores, so the
invariant holds at every commit point: no vote references a candidate id
that is not in the candidate set.
*/
package merge

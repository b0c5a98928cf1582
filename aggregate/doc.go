// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package aggregate scores ballots: 3 points for a 1st-place ranking, 2 for
// 2nd, 1 for 3rd. The result is sorted descending by (points, first, second,
// third counts) with ascending label as the final tie-break, and assigned
// distinct 1-based ranks. Pure functions over in-memory data; no storage
// access.
package aggregate

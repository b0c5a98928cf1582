// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package legacy imports candidates.csv and votes.csv from the pre-database
// deployment, tolerating both historical schemas (name-keyed candidates
// without ids, label-keyed vote columns). The schema variants never leak
// past this package: everything is decoded into the canonical models types
// before it reaches the store.
package legacy

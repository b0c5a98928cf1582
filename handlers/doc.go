// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers.

Three handler groups, each holding the store (and, where mutation needs
collision detection, the merge engine):

  - VotingHandler: ballot submission and the destructive vote reset
  - CandidateHandler: candidate listing and maintenance (add, rename,
    enable/disable, delete), all mutations routed through the merge engine
  - ResultsHandler: aggregated ranking, detailed vote listing, and the CSV
    exports of both

Handlers validate input, call into the domain packages, and map typed
errors to HTTP statuses via middleware.DomainError.
*/
package handlers

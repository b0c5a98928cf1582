// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the API routes.

Uses Go 1.22+ method-and-path routing on the standard ServeMux:

	GET    /health
	GET    /candidates               (?all=1 includes disabled)
	POST   /votes
	GET    /results                  (?include_inactive=1)
	GET    /results/export           CSV
	GET    /votes/detail
	GET    /votes/detail/export      CSV
	POST   /candidates               add or merge
	PUT    /candidates/{id}          rename or merge
	POST   /candidates/{id}/toggle
	DELETE /candidates/{id}
	DELETE /votes                    destructive reset
*/
package router

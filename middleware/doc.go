// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

  - WithLogging: request start/completion logging via slog
  - CORS: cross-origin headers and preflight handling
  - JSONResponse / ErrorResponse: JSON body writers
  - DomainError: maps ValidationError to 400, NotFoundError to 404, and
    everything else to an opaque 500
  - ParseJSONBody: request body decoding
*/
package middleware

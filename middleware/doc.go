// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging and Metrics

Per-route wrappers, applied by the router:

	mux.HandleFunc(pattern, middleware.Instrument(pattern, middleware.WithLogging(handler)))

WithLogging logs method, path, status, client IP, request id and
duration once the handler returns; 5xx responses log at error level.
Instrument feeds the Prometheus request counter, latency histogram and
in-flight gauge, labelled by route pattern rather than raw path.

# Server-wide Middleware

	handler := middleware.Chain(mux,
		middleware.RequestID,
		middleware.Recover,
		middleware.CORS,
		middleware.BodyLimit(cfg.MaxBodyBytes),
	)

  - RequestID: reuses a valid X-Request-ID (UUID) or mints one, echoes it
  - Recover: a panic becomes 500 {"error": "internal server error"}
  - CORS: echoes the Origin (or "*"), answers every OPTIONS preflight with 200
  - BodyLimit: bodies over the limit get 413 with a human-readable size

RateLimit(n) is applied only to the auth routes: n requests per minute
per client IP, then 429 JSON.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "user_id required")
	middleware.WriteError(w, r, err) // status from the apierr kind

Parse JSON request bodies strictly (unknown fields, trailing data and
malformed input are all 400 "invalid JSON body"):

	var req models.ActivateSOSRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.WriteError(w, r, err)
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Honors X-Forwarded-For and X-Real-IP, so it is used for logging only.
The rate limiter keys on the connection address.
*/
package middleware

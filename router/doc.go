// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the RAAH-SETU API.

# Route Registration

NewRouter builds an http.ServeMux with every endpoint and wraps it in
the server-wide middleware:

	handler := router.NewRouter(pool, cfg)

The provider is any db.Provider, so tests can pass a store that is
always down.

# Endpoints

Liveness (never touches the database):

	GET /api/health

Authentication (rate limited per client IP, see -auth-rate):

	POST /api/auth/signup
	POST /api/auth/login

Emergency contacts:

	GET    /api/emergency-contacts?user_id=
	POST   /api/emergency-contacts
	PUT    /api/emergency-contacts/{id}
	DELETE /api/emergency-contacts/{id}

Logs:

	GET  /api/health-checks?user_id=
	POST /api/health-checks
	GET  /api/incidents?user_id=
	POST /api/incidents
	GET  /api/activities?user_id=
	POST /api/activities
	POST /api/activities/log   (alias)

SOS:

	POST /api/sos/activate
	GET  /api/sos?user_id=

Operations:

	GET /metrics   Prometheus exposition
	GET /          plain text banner

A known path requested with another method answers 405
{"error": "method not allowed"} with an Allow header. Any other path
answers 404 {"error": "endpoint not found"}.

# Middleware

Per route: request logging and Prometheus metrics labelled with the
route pattern. Server-wide, outermost first: request id, panic
recovery, CORS (OPTIONS preflight answered for every path) and the
request body limit.
*/
package router

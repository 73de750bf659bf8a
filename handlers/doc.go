// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the RAAH-SETU API.

# Handler Types

Each handler is a struct holding a db.Provider and the Config:

  - AuthHandler: signup and login
  - ContactHandler: emergency contacts (list, create, update, delete)
  - HealthCheckHandler: health check log (list, create)
  - IncidentHandler: incident reports (list, create)
  - ActivityHandler: activity log (list, create)
  - SOSHandler: SOS activation and history

Handlers are created via constructor functions:

	contacts := handlers.NewContactHandler(pool)

Liveness is a plain function because it has no dependencies.

# Request Flow

Every handler method decodes and validates the request, then calls an
unexported core function that returns (payload, error). The core
borrows one connection through withSession, which always returns it,
runs one parameterized statement (signup runs two), and maps rows to
models types. The HTTP method then writes either the payload or the
error translated by middleware.WriteError.

	POST /api/auth/signup          → Signup (201, 409 on duplicate email)
	POST /api/auth/login           → Login  (200, 401 on any mismatch)
	GET  /api/emergency-contacts   → List   (?user_id=, by priority rank)
	POST /api/emergency-contacts   → Create
	PUT  /api/emergency-contacts/{id}    → Update (404 when no row matched)
	DELETE /api/emergency-contacts/{id}  → Delete (404 when no row matched)
	POST /api/sos/activate         → Activate

# Identity

user_id comes from the request body or query string and is trusted as
given. There are no session tokens; login only confirms credentials
and returns the user's id.

# Signup Races

The email pre-check and the insert are separate statements. Two
concurrent signups for one address can both pass the check; the
unique index rejects the second insert and that duplicate-key error is
also answered with 409.
*/
package handlers

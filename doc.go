// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the RAAH-SETU API server.

RAAH-SETU is a personal-safety backend. Users sign up, keep a ranked
list of emergency contacts, log health checks and activities, report
incidents, and raise SOS alerts. Everything is JSON over HTTP backed by
a relational store.

# Starting the Server

With a local MySQL (the default store):

	DB_PASSWORD=secret go run .

With SQLite, no server needed:

	go run . -t sqlite -db-name ./data/raah_setu.db

Create the database and tables only, then exit:

	go run . -init-schema

# Configuration

Each setting is read from a CLI flag, then the environment, then a
default. A .env file (see -env-file) is loaded first and never
overrides variables already set.

  - PORT (-p): server port (default: 5000)
  - DB_TYPE (-t): mysql, postgres or sqlite (default: mysql)
  - DB_HOST (-db-host): database host (default: localhost)
  - DB_PORT (-db-port): 3306 for mysql, 5432 for postgres
  - DB_USER (-db-user): database user (default: root)
  - DB_PASSWORD: database password, environment only (default: empty)
  - DB_NAME (-db-name): database name or sqlite file (default: raah_setu)
  - AUTH_RATE_LIMIT (-auth-rate): auth requests per IP per minute (default: 20, 0 disables)
  - MAX_BODY_BYTES (-max-body): request body limit (default: 1 MiB)
  - LOG_FORMAT (-log-format): text, json or auto (default: auto)
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)

# Architecture

	main.go     → Entry point, logger, store, server lifecycle
	cliparse/   → Configuration
	logging/    → slog handler selection
	apierr/     → Error kinds and their HTTP statuses
	auth/       → bcrypt password hashing
	db/         → Dialects, schema, connection provider, driver errors
	metrics/    → Prometheus collectors
	models/     → Request/response types and ranked enums
	middleware/ → JSON helpers, CORS, logging, limits, recovery
	handlers/   → One handler per resource
	router/     → Route table
	testutil/   → SQLite-backed test helpers

# Shutdown

SIGINT or SIGTERM stops accepting connections and gives in-flight
requests ten seconds to finish before the pool is closed.
*/
package main

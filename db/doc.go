// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database creation, schema, and connections.

# Opening

Open creates the database when missing, connects, and creates the
schema:

	pool, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

Three dialects are supported: MySQL (default), PostgreSQL and SQLite.
Queries are written once with ? placeholders and rebound per dialect.

# Schema Creation

InitializeSchema creates all nine tables. Safe to call multiple times -
uses IF NOT EXISTS for all tables and indexes. Run it alone with:

	raah-setu -init-schema

# Tables

  - users: Accounts (email unique)
  - emergency_contacts: Contacts with low/medium/high priority
  - health_checks: Mood and vitals log
  - incidents: Incident reports
  - activities: Activity log
  - sos_alerts: SOS activations
  - alerts, notifications, guardians: Schema only, no handlers

# Relationships

	users 1──* emergency_contacts
	users 1──* health_checks
	users 1──* incidents
	users 1──* activities
	users 1──* sos_alerts
	users 1──* alerts
	users 1──* notifications
	users *──* users (via guardians)

All foreign keys use ON DELETE CASCADE.

# Connections

Handlers borrow one connection per request through the Provider
interface:

	sess, err := provider.Acquire(ctx)
	if err != nil {
		// errors.Is(err, db.ErrUnavailable)
	}
	defer sess.Close()

	id, err := sess.Insert(ctx, "INSERT INTO activities (...) VALUES (?, ?)", ...)

# Driver Errors

IsDuplicateKey and IsForeignKeyViolation classify constraint failures
for all three drivers.
*/
package db

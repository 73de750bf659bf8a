// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Sources

Each setting is resolved in order:

 1. CLI flag
 2. Environment variable (optionally loaded from a dotenv file)
 3. Default

The dotenv file defaults to .env and is skipped when absent. It never
overrides variables that are already set in the environment.

# Settings

	-p            PORT             5000
	-t            DB_TYPE          mysql (mysql, postgres, sqlite)
	-db-host      DB_HOST          localhost
	-db-port      DB_PORT          3306 / 5432
	-db-user      DB_USER          root
	              DB_PASSWORD      (empty)
	-db-name      DB_NAME          raah_setu (sqlite: raah_setu.db)
	-auth-rate    AUTH_RATE_LIMIT  20 per minute per IP, 0 disables
	-max-body     MAX_BODY_BYTES   1 MiB
	-log-format   LOG_FORMAT       auto
	-log-level    LOG_LEVEL        info
	-init-schema                   create schema and exit
	-env-file                      .env

DB_PASSWORD has no flag so it never shows up in process listings.

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	pool, err := db.Open(ctx, cfg)
	// ...
	handler := router.NewRouter(pool, cfg)
*/
package cliparse

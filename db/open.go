// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/lib/pq"

	"github.com/raahsetu/raah-setu/cliparse"
)

var validDBName = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Open creates the database if needed, connects, and creates the schema.
func Open(ctx context.Context, cfg cliparse.Config) (*Pool, error) {
	d, err := DialectFor(cfg.DatabaseType)
	if err != nil {
		return nil, err
	}

	if err := EnsureDatabase(ctx, cfg); err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open(d.Driver, d.DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(3 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := InitializeSchema(ctx, sqlDB, d); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return NewPool(sqlDB, d), nil
}

// EnsureDatabase creates the application database when it does not exist.
// For sqlite it only makes sure the file's directory exists.
func EnsureDatabase(ctx context.Context, cfg cliparse.Config) error {
	d, err := DialectFor(cfg.DatabaseType)
	if err != nil {
		return err
	}

	if d.Name == cliparse.DatabaseSQLite {
		dir := filepath.Dir(cfg.DBName)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
		return nil
	}

	// Identifiers cannot be bound as parameters
	if !validDBName.MatchString(cfg.DBName) {
		return fmt.Errorf("invalid database name %q", cfg.DBName)
	}

	server, err := sql.Open(d.Driver, d.serverDSN(cfg))
	if err != nil {
		return fmt.Errorf("failed to open database server connection: %w", err)
	}
	defer server.Close()

	switch d.Name {
	case cliparse.DatabaseMySQL:
		_, err = server.ExecContext(ctx, "CREATE DATABASE IF NOT EXISTS `"+cfg.DBName+"` CHARACTER SET utf8mb4")
		if err != nil {
			return fmt.Errorf("failed to create database %s: %w", cfg.DBName, err)
		}

	case cliparse.DatabasePostgres:
		var one int
		err = server.QueryRowContext(ctx, "SELECT 1 FROM pg_database WHERE datname = $1", cfg.DBName).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			_, err = server.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(cfg.DBName))
		}
		if err != nil {
			return fmt.Errorf("failed to create database %s: %w", cfg.DBName, err)
		}
	}

	slog.Info("database ready", "dialect", d.Name, "database", cfg.DBName)
	return nil
}

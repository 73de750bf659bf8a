// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/raahsetu/raah-setu/cliparse"
)

// Dialect captures what differs between the supported SQL stores.
// Queries are written once with ? placeholders.
type Dialect struct {
	Name   string
	Driver string
	tables []Table

	// numbered placeholders ($1, $2, ...) instead of ?
	numbered bool
	// INSERT ... RETURNING id instead of LastInsertId
	returning bool
}

var (
	MySQL = Dialect{
		Name:   cliparse.DatabaseMySQL,
		Driver: "mysql",
		tables: mysqlTables,
	}

	Postgres = Dialect{
		Name:      cliparse.DatabasePostgres,
		Driver:    "postgres",
		tables:    postgresTables,
		numbered:  true,
		returning: true,
	}

	SQLite = Dialect{
		Name:   cliparse.DatabaseSQLite,
		Driver: "sqlite",
		tables: sqliteTables,
	}
)

// DialectFor returns the dialect for a configured database type.
func DialectFor(dbType string) (Dialect, error) {
	switch dbType {
	case cliparse.DatabaseMySQL:
		return MySQL, nil
	case cliparse.DatabasePostgres:
		return Postgres, nil
	case cliparse.DatabaseSQLite:
		return SQLite, nil
	}
	return Dialect{}, fmt.Errorf("unsupported database type: %s", dbType)
}

// Rebind rewrites ? placeholders for dialects that number them.
// Question marks inside single-quoted literals are left alone.
func (d Dialect) Rebind(query string) string {
	if !d.numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// DSN builds the connection string for cfg.
func (d Dialect) DSN(cfg cliparse.Config) string {
	return d.dsn(cfg, cfg.DBName)
}

// serverDSN connects without selecting the application database, for
// creating it.
func (d Dialect) serverDSN(cfg cliparse.Config) string {
	switch d.Name {
	case cliparse.DatabaseMySQL:
		return d.dsn(cfg, "")
	case cliparse.DatabasePostgres:
		return d.dsn(cfg, "postgres")
	}
	return d.dsn(cfg, cfg.DBName)
}

func (d Dialect) dsn(cfg cliparse.Config, dbName string) string {
	switch d.Name {
	case cliparse.DatabaseMySQL:
		mc := mysql.NewConfig()
		mc.User = cfg.DBUser
		mc.Passwd = cfg.DBPassword
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.DBHost, strconv.Itoa(cfg.DBPort))
		mc.DBName = dbName
		mc.ParseTime = true
		// RowsAffected counts matched rows, so an UPDATE that changes
		// nothing is still distinguishable from a missing row
		mc.ClientFoundRows = true
		mc.Params = map[string]string{"charset": "utf8mb4"}
		return mc.FormatDSN()

	case cliparse.DatabasePostgres:
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(cfg.DBUser, cfg.DBPassword),
			Host:     net.JoinHostPort(cfg.DBHost, strconv.Itoa(cfg.DBPort)),
			Path:     "/" + dbName,
			RawQuery: "sslmode=disable",
		}
		return u.String()

	case cliparse.DatabaseSQLite:
		return SQLiteDSN(dbName)
	}
	return ""
}

// SQLiteDSN returns a DSN that applies the required pragmas on every
// pooled connection, not just the first one.
func SQLiteDSN(path string) string {
	return "file:" + path +
		"?_pragma=foreign_keys(1)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=journal_mode(WAL)"
}

// insertQuery adapts an INSERT for dialects that return the new id.
func (d Dialect) insertQuery(query string) string {
	if d.returning {
		query = strings.TrimRight(strings.TrimSpace(query), ";") + " RETURNING id"
	}
	return d.Rebind(query)
}

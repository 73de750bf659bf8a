// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/raahsetu/raah-setu/metrics"
)

// ErrUnavailable is returned when a connection cannot be acquired.
var ErrUnavailable = errors.New("database unavailable")

// Provider hands out one Session per request.
type Provider interface {
	Acquire(ctx context.Context) (*Session, error)
}

// Pool is the Provider backed by a *sql.DB connection pool.
type Pool struct {
	db      *sql.DB
	dialect Dialect
}

func NewPool(db *sql.DB, d Dialect) *Pool {
	return &Pool{db: db, dialect: d}
}

func (p *Pool) DB() *sql.DB      { return p.db }
func (p *Pool) Dialect() Dialect { return p.dialect }
func (p *Pool) Close() error     { return p.db.Close() }

// Acquire reserves a connection from the pool. The caller must Close
// the session to return it.
func (p *Pool) Acquire(ctx context.Context) (*Session, error) {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		metrics.DBAcquireFailures.Inc()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &Session{conn: conn, dialect: p.dialect}, nil
}

// Session is a single borrowed connection. Queries use ? placeholders
// and are rebound for the dialect.
type Session struct {
	conn    *sql.Conn
	dialect Dialect
}

func (s *Session) Dialect() Dialect {
	return s.dialect
}

func (s *Session) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := s.conn.ExecContext(ctx, s.dialect.Rebind(query), args...)
	metrics.ObserveQuery(operation(query), err)
	return res, err
}

// ExecAffected runs a statement and returns the number of rows it matched.
func (s *Session) ExecAffected(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := s.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Session) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := s.conn.QueryContext(ctx, s.dialect.Rebind(query), args...)
	metrics.ObserveQuery(operation(query), err)
	return rows, err
}

func (s *Session) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	row := s.conn.QueryRowContext(ctx, s.dialect.Rebind(query), args...)
	metrics.ObserveQuery(operation(query), row.Err())
	return row
}

// Insert runs an INSERT and returns the generated id.
func (s *Session) Insert(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	var err error

	if s.dialect.returning {
		err = s.conn.QueryRowContext(ctx, s.dialect.insertQuery(query), args...).Scan(&id)
	} else {
		var res sql.Result
		res, err = s.conn.ExecContext(ctx, s.dialect.insertQuery(query), args...)
		if err == nil {
			id, err = res.LastInsertId()
		}
	}

	metrics.ObserveQuery("insert", err)
	return id, err
}

// Close returns the connection to the pool.
func (s *Session) Close() error {
	return s.conn.Close()
}

func operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}

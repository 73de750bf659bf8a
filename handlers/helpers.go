// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"

	"github.com/raahsetu/raah-setu/apierr"
	"github.com/raahsetu/raah-setu/db"
	"github.com/raahsetu/raah-setu/middleware"
)

// withSession borrows a connection for fn and always returns it.
func withSession(ctx context.Context, provider db.Provider, fn func(*db.Session) error) error {
	sess, err := provider.Acquire(ctx)
	if err != nil {
		return apierr.Unavailable(err)
	}
	defer sess.Close()

	return fn(sess)
}

// respond writes payload with status, or the translated error.
func respond(w http.ResponseWriter, r *http.Request, status int, payload any, err error) {
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}
	middleware.JSONResponse(w, status, payload)
}

// decode parses the body into req and validates it.
func decode[T interface{ Validate() error }](r *http.Request, req T) error {
	if err := middleware.ParseJSONBody(r, req); err != nil {
		return err
	}
	return req.Validate()
}

// userIDParam reads the required user_id query parameter.
func userIDParam(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		return 0, apierr.Validation("user_id required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apierr.Validation("user_id must be a positive integer")
	}
	return id, nil
}

// statusParam reads the optional status query filter. Empty means no filter.
func statusParam[T ~string](r *http.Request, parse func(string) (T, error)) (T, error) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return "", nil
	}
	return parse(raw)
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apierr.Validation("invalid " + name)
	}
	return id, nil
}

// insertError classifies a failed child-row insert. An unknown owner is
// the caller's mistake, anything else is ours.
func insertError(err error) error {
	if db.IsForeignKeyViolation(err) {
		return apierr.Validation("user not found")
	}
	return apierr.Internal(err)
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func int64Ptr(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	return &ni.Int64
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/raahsetu/raah-setu/apierr"
	"github.com/raahsetu/raah-setu/auth"
	"github.com/raahsetu/raah-setu/db"
	"github.com/raahsetu/raah-setu/metrics"
	"github.com/raahsetu/raah-setu/models"
)

const (
	msgEmailTaken         = "email already registered"
	msgInvalidCredentials = "invalid credentials"
)

type AuthHandler struct {
	provider db.Provider
}

func NewAuthHandler(provider db.Provider) *AuthHandler {
	return &AuthHandler{provider: provider}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := decode(r, &req); err != nil {
		metrics.Signups.WithLabelValues("invalid").Inc()
		respond(w, r, 0, nil, err)
		return
	}

	resp, err := h.signup(r.Context(), req)
	respond(w, r, http.StatusCreated, resp, err)
}

func (h *AuthHandler) signup(ctx context.Context, req models.SignupRequest) (resp models.SignupResponse, err error) {
	defer func() {
		result := "created"
		switch {
		case apierr.IsKind(err, apierr.KindConflict):
			result = "conflict"
		case apierr.IsKind(err, apierr.KindValidation):
			result = "invalid"
		case err != nil:
			result = "error"
		}
		metrics.Signups.WithLabelValues(result).Inc()
	}()

	// Hash before borrowing a connection so it is not held during bcrypt
	hash, err := auth.HashPassword(req.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return resp, apierr.Validation(fmt.Sprintf("password must be at most %d bytes", auth.MaxPasswordBytes))
	}
	if err != nil {
		return resp, apierr.Internal(err)
	}

	var userID int64
	err = withSession(ctx, h.provider, func(sess *db.Session) error {
		// Advisory only: the unique index on email is the real guard
		var existing int64
		err := sess.QueryRow(ctx, `SELECT id FROM users WHERE email = ?`, req.Email).Scan(&existing)
		if err == nil {
			return apierr.Conflict(msgEmailTaken)
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return apierr.Internal(err)
		}

		userID, err = sess.Insert(ctx, `
			INSERT INTO users (name, email, phone, password)
			VALUES (?, ?, ?, ?)
		`, req.Name, req.Email, req.Phone, hash)
		if db.IsDuplicateKey(err) {
			return apierr.Conflict(msgEmailTaken)
		}
		if err != nil {
			return apierr.Internal(err)
		}
		return nil
	})
	if err != nil {
		return resp, err
	}

	slog.Info("user registered", "user_id", userID)
	return models.SignupResponse{
		Message: models.MsgSignedUp,
		UserID:  userID,
		Email:   req.Email,
	}, nil
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decode(r, &req); err != nil {
		respond(w, r, 0, nil, err)
		return
	}

	resp, err := h.login(r.Context(), req)
	respond(w, r, http.StatusOK, resp, err)
}

func (h *AuthHandler) login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var user models.User
	err := withSession(ctx, h.provider, func(sess *db.Session) error {
		return sess.QueryRow(ctx, `
			SELECT id, name, email, password FROM users WHERE email = ?
		`, req.Email).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash)
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		// Same cost and answer as a wrong password
		auth.VerifyPassword(req.Password, auth.DummyHash())
		metrics.Logins.WithLabelValues("failure").Inc()
		return models.LoginResponse{}, apierr.Auth(msgInvalidCredentials)
	case err != nil:
		metrics.Logins.WithLabelValues("error").Inc()
		return models.LoginResponse{}, apierr.From(err)
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		metrics.Logins.WithLabelValues("failure").Inc()
		return models.LoginResponse{}, apierr.Auth(msgInvalidCredentials)
	}

	metrics.Logins.WithLabelValues("success").Inc()
	return models.LoginResponse{
		Message: models.MsgLoggedIn,
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
	}, nil
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/raahsetu/raah-setu/apierr"
	"github.com/raahsetu/raah-setu/db"
	"github.com/raahsetu/raah-setu/models"
)

type HealthCheckHandler struct {
	provider db.Provider
}

func NewHealthCheckHandler(provider db.Provider) *HealthCheckHandler {
	return &HealthCheckHandler{provider: provider}
}

// List handles GET /api/health-checks?user_id=
func (h *HealthCheckHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		respond(w, r, 0, nil, err)
		return
	}

	checks, err := h.list(r.Context(), userID)
	respond(w, r, http.StatusOK, models.HealthChecksResponse{Checks: checks}, err)
}

func (h *HealthCheckHandler) list(ctx context.Context, userID int64) ([]models.HealthCheck, error) {
	checks := []models.HealthCheck{}

	err := withSession(ctx, h.provider, func(sess *db.Session) error {
		rows, err := sess.Query(ctx, `
			SELECT id, mood, heart_rate, blood_pressure, location, notes, created_at
			FROM health_checks
			WHERE user_id = ?
			ORDER BY created_at DESC, id DESC
		`, userID)
		if err != nil {
			return apierr.Internal(err)
		}
		defer rows.Close()

		for rows.Next() {
			var c models.HealthCheck
			var mood, bp, location, notes sql.NullString
			var heartRate sql.NullInt64
			var createdAt db.NullTime
			if err := rows.Scan(&c.ID, &mood, &heartRate, &bp, &location, &notes, &createdAt); err != nil {
				return apierr.Internal(err)
			}
			c.Mood = stringPtr(mood)
			c.HeartRate = int64Ptr(heartRate)
			c.BloodPressure = stringPtr(bp)
			c.Location = stringPtr(location)
			c.Notes = stringPtr(notes)
			c.CreatedAt = createdAt.Ptr()
			checks = append(checks, c)
		}
		if err := rows.Err(); err != nil {
			return apierr.Internal(err)
		}
		return nil
	})

	return checks, err
}

// Create handles POST /api/health-checks
func (h *HealthCheckHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateHealthCheckRequest
	if err := decode(r, &req); err != nil {
		respond(w, r, 0, nil, err)
		return
	}

	resp, err := h.create(r.Context(), req)
	respond(w, r, http.StatusCreated, resp, err)
}

func (h *HealthCheckHandler) create(ctx context.Context, req models.CreateHealthCheckRequest) (models.CreateHealthCheckResponse, error) {
	var heartRate any
	if req.HeartRate != nil {
		heartRate = *req.HeartRate
	}

	var id int64
	err := withSession(ctx, h.provider, func(sess *db.Session) error {
		var err error
		id, err = sess.Insert(ctx, `
			INSERT INTO health_checks (user_id, mood, heart_rate, blood_pressure, location, notes)
			VALUES (?, ?, ?, ?, ?, ?)
		`, req.UserID, req.Mood, heartRate, nullable(req.BloodPressure), nullable(req.Location), nullable(req.Notes))
		if err != nil {
			return insertError(err)
		}
		return nil
	})
	if err != nil {
		return models.CreateHealthCheckResponse{}, err
	}

	return models.CreateHealthCheckResponse{Message: models.MsgCheckRecorded, CheckID: id}, nil
}

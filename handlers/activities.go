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

type ActivityHandler struct {
	provider db.Provider
}

func NewActivityHandler(provider db.Provider) *ActivityHandler {
	return &ActivityHandler{provider: provider}
}

// List handles GET /api/activities?user_id=
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		respond(w, r, 0, nil, err)
		return
	}

	activities, err := h.list(r.Context(), userID)
	respond(w, r, http.StatusOK, models.ActivitiesResponse{Activities: activities}, err)
}

func (h *ActivityHandler) list(ctx context.Context, userID int64) ([]models.Activity, error) {
	activities := []models.Activity{}

	err := withSession(ctx, h.provider, func(sess *db.Session) error {
		rows, err := sess.Query(ctx, `
			SELECT id, activity_type, description, location, created_at
			FROM activities
			WHERE user_id = ?
			ORDER BY created_at DESC, id DESC
		`, userID)
		if err != nil {
			return apierr.Internal(err)
		}
		defer rows.Close()

		for rows.Next() {
			var a models.Activity
			var typ, description, location sql.NullString
			var createdAt db.NullTime
			if err := rows.Scan(&a.ID, &typ, &description, &location, &createdAt); err != nil {
				return apierr.Internal(err)
			}
			a.ActivityType = stringPtr(typ)
			a.Description = stringPtr(description)
			a.Location = stringPtr(location)
			a.CreatedAt = createdAt.Ptr()
			activities = append(activities, a)
		}
		if err := rows.Err(); err != nil {
			return apierr.Internal(err)
		}
		return nil
	})

	return activities, err
}

// Create handles POST /api/activities and POST /api/activities/log
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateActivityRequest
	if err := decode(r, &req); err != nil {
		respond(w, r, 0, nil, err)
		return
	}

	resp, err := h.create(r.Context(), req)
	respond(w, r, http.StatusCreated, resp, err)
}

func (h *ActivityHandler) create(ctx context.Context, req models.CreateActivityRequest) (models.CreateActivityResponse, error) {
	var id int64
	err := withSession(ctx, h.provider, func(sess *db.Session) error {
		var err error
		id, err = sess.Insert(ctx, `
			INSERT INTO activities (user_id, activity_type, description, location)
			VALUES (?, ?, ?, ?)
		`, req.UserID, req.Type, req.Description, nullable(req.Location))
		if err != nil {
			return insertError(err)
		}
		return nil
	})
	if err != nil {
		return models.CreateActivityResponse{}, err
	}

	return models.CreateActivityResponse{Message: models.MsgActivityLogged, ActivityID: id}, nil
}

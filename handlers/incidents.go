// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/raahsetu/raah-setu/apierr"
	"github.com/raahsetu/raah-setu/db"
	"github.com/raahsetu/raah-setu/models"
)

type IncidentHandler struct {
	provider db.Provider
}

func NewIncidentHandler(provider db.Provider) *IncidentHandler {
	return &IncidentHandler{provider: provider}
}

// List handles GET /api/incidents?user_id=[&status=]
func (h *IncidentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		respond(w, r, 0, nil, err)
		return
	}

	status, err := statusParam(r, models.ParseIncidentStatus)
	if err != nil {
		respond(w, r, 0, nil, err)
		return
	}

	incidents, err := h.list(r.Context(), userID, status)
	respond(w, r, http.StatusOK, models.IncidentsResponse{Incidents: incidents}, err)
}

func (h *IncidentHandler) list(ctx context.Context, userID int64, status models.IncidentStatus) ([]models.Incident, error) {
	incidents := []models.Incident{}

	err := withSession(ctx, h.provider, func(sess *db.Session) error {
		query := `
			SELECT id, title, description, type, severity, location, status, created_at
			FROM incidents
			WHERE user_id = ?`
		args := []any{userID}
		if status != "" {
			query += ` AND status = ?`
			args = append(args, string(status))
		}
		query += ` ORDER BY created_at DESC, id DESC`

		rows, err := sess.Query(ctx, query, args...)
		if err != nil {
			return apierr.Internal(err)
		}
		defer rows.Close()

		for rows.Next() {
			var inc models.Incident
			var typ, severity, location, status sql.NullString
			var createdAt db.NullTime
			if err := rows.Scan(&inc.ID, &inc.Title, &inc.Description, &typ, &severity, &location, &status, &createdAt); err != nil {
				return apierr.Internal(err)
			}
			inc.Type = stringPtr(typ)
			inc.Severity = models.Severity(severity.String)
			inc.Location = stringPtr(location)
			inc.Status = models.IncidentStatus(status.String)
			inc.CreatedAt = createdAt.Ptr()
			incidents = append(incidents, inc)
		}
		if err := rows.Err(); err != nil {
			return apierr.Internal(err)
		}
		return nil
	})

	return incidents, err
}

// Create handles POST /api/incidents
func (h *IncidentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateIncidentRequest
	if err := decode(r, &req); err != nil {
		respond(w, r, 0, nil, err)
		return
	}
	req.ApplyDefaults()

	resp, err := h.create(r.Context(), req)
	respond(w, r, http.StatusCreated, resp, err)
}

func (h *IncidentHandler) create(ctx context.Context, req models.CreateIncidentRequest) (models.CreateIncidentResponse, error) {
	var id int64
	err := withSession(ctx, h.provider, func(sess *db.Session) error {
		var err error
		id, err = sess.Insert(ctx, `
			INSERT INTO incidents (user_id, title, description, type, severity, location, status)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, req.UserID, req.Title, req.Description, req.Type, string(req.Severity), req.Location, string(models.DefaultIncidentStatus))
		if err != nil {
			return insertError(err)
		}
		return nil
	})
	if err != nil {
		return models.CreateIncidentResponse{}, err
	}

	slog.Info("incident reported", "incident_id", id, "user_id", req.UserID, "severity", req.Severity)
	return models.CreateIncidentResponse{Message: models.MsgIncidentCreated, IncidentID: id}, nil
}

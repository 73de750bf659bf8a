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
	"github.com/raahsetu/raah-setu/metrics"
	"github.com/raahsetu/raah-setu/models"
)

type SOSHandler struct {
	provider db.Provider
}

func NewSOSHandler(provider db.Provider) *SOSHandler {
	return &SOSHandler{provider: provider}
}

// Activate handles POST /api/sos/activate
func (h *SOSHandler) Activate(w http.ResponseWriter, r *http.Request) {
	var req models.ActivateSOSRequest
	if err := decode(r, &req); err != nil {
		respond(w, r, 0, nil, err)
		return
	}

	resp, err := h.activate(r.Context(), req)
	respond(w, r, http.StatusCreated, resp, err)
}

func (h *SOSHandler) activate(ctx context.Context, req models.ActivateSOSRequest) (models.ActivateSOSResponse, error) {
	var id int64
	err := withSession(ctx, h.provider, func(sess *db.Session) error {
		var err error
		id, err = sess.Insert(ctx, `
			INSERT INTO sos_alerts (user_id, location, status)
			VALUES (?, ?, ?)
		`, req.UserID, nullable(req.Location), string(models.DefaultSosStatus))
		if err != nil {
			return insertError(err)
		}
		return nil
	})
	if err != nil {
		return models.ActivateSOSResponse{}, err
	}

	metrics.SOSActivations.Inc()
	slog.Warn("sos activated", "sos_id", id, "user_id", req.UserID)
	return models.ActivateSOSResponse{Message: models.MsgSOSActivated, SosID: id}, nil
}

// List handles GET /api/sos?user_id=[&status=]
// resolved_at stays null: nothing resolves an alert yet.
func (h *SOSHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		respond(w, r, 0, nil, err)
		return
	}

	status, err := statusParam(r, models.ParseSosStatus)
	if err != nil {
		respond(w, r, 0, nil, err)
		return
	}

	alerts, err := h.list(r.Context(), userID, status)
	respond(w, r, http.StatusOK, models.SosAlertsResponse{Alerts: alerts}, err)
}

func (h *SOSHandler) list(ctx context.Context, userID int64, status models.SosStatus) ([]models.SosAlert, error) {
	alerts := []models.SosAlert{}

	err := withSession(ctx, h.provider, func(sess *db.Session) error {
		query := `
			SELECT id, location, status, created_at, resolved_at
			FROM sos_alerts
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
			var a models.SosAlert
			var location, status sql.NullString
			var createdAt, resolvedAt db.NullTime
			if err := rows.Scan(&a.ID, &location, &status, &createdAt, &resolvedAt); err != nil {
				return apierr.Internal(err)
			}
			a.Location = stringPtr(location)
			a.Status = models.SosStatus(status.String)
			a.CreatedAt = createdAt.Ptr()
			a.ResolvedAt = resolvedAt.Ptr()
			alerts = append(alerts, a)
		}
		if err := rows.Err(); err != nil {
			return apierr.Internal(err)
		}
		return nil
	})

	return alerts, err
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/raahsetu/raah-setu/middleware"
	"github.com/raahsetu/raah-setu/models"
)

// Liveness handles GET /api/health. It never touches the database.
func Liveness(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Message: models.MsgAPIRunning,
		Version: models.APIVersion,
	})
}

package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-chest-screening/internal/models"
)

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

const apiName = "Chest Disease Detection API"

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewHealthHandler returns a liveness handler that also reports the database state.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func NewHealthHandler(pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := models.HealthResponse{Status: "ok", Message: apiName, Database: "connected"}
		if err := pinger.Ping(r.Context()); err != nil {
			resp.Database = "disconnected"
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewReadyHandler returns a readiness handler: 503 until the database answers.
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /ready [get]
func NewReadyHandler(pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := pinger.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, models.HealthResponse{
				Status:   "unavailable",
				Message:  apiName,
				Database: "disconnected",
			})
			return
		}
		writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ready", Message: apiName, Database: "connected"})
	}
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-chest-screening/internal/models"
	"github.com/sbilibin2017/gw-chest-screening/internal/services"
)

//go:generate mockgen -source=me.go -destination=me_mock.go -package=handlers

// Profiler returns the authenticated user.
type Profiler interface {
	Me(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// NewMeHandler returns an HTTP handler for the current user.
// @Summary Current user
// @Description Returns the user the bearer token belongs to
// @Tags auth
// @Produce json
// @Success 200 {object} models.MeResponse
// @Failure 401 {object} models.ErrorResponse "Unauthenticated"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler(svc Profiler, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthenticated")
			return
		}

		user, err := svc.Me(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.MeResponse{User: user.ToUser()})
	}
}

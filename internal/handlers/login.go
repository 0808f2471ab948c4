package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-chest-screening/internal/models"
	"github.com/sbilibin2017/gw-chest-screening/internal/services"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.UserDB, string, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		req.Email = strings.TrimSpace(req.Email)
		if err := validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, "Please provide email and password")
			return
		}

		user, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid email or password")
			case errors.Is(err, services.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "Please provide email and password")
			default:
				writeServiceError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.AuthResponse{
			Message: "Login successful",
			Token:   token,
			User:    user.ToUser(),
		})
	}
}

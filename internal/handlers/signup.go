package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-chest-screening/internal/logger"
	"github.com/sbilibin2017/gw-chest-screening/internal/models"
	"github.com/sbilibin2017/gw-chest-screening/internal/services"
)

//go:generate mockgen -source=signup.go -destination=signup_mock.go -package=handlers

// Signuper defines the interface that the service must implement.
type Signuper interface {
	Signup(ctx context.Context, name, email, password string) (*models.UserDB, string, error)
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an account with a unique email. Password is hashed before storing. Returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup request"
// @Success 201 {object} models.AuthResponse "User created successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "User already exists with this email"
// @Failure 503 {object} models.ErrorResponse "Database unavailable"
// @Router /auth/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.TrimSpace(req.Email)
		if err := validate.Struct(req); err != nil {
			logger.Log.Warnw("invalid signup request", "err", err)
			writeError(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		user, token, err := svc.Signup(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailTaken):
				writeError(w, http.StatusConflict, "User already exists with this email")
			case errors.Is(err, services.ErrPasswordTooLong):
				writeError(w, http.StatusBadRequest, "password must be at most 72 bytes")
			case errors.Is(err, services.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "Please provide name, email and password")
			default:
				writeServiceError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.AuthResponse{
			Message: "User created successfully",
			Token:   token,
			User:    user.ToUser(),
		})
	}
}

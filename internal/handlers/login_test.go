package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-chest-screening/internal/models"
	"github.com/sbilibin2017/gw-chest-screening/internal/repositories"
	"github.com/sbilibin2017/gw-chest-screening/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)
	user := &models.UserDB{UserID: uuid.New(), Name: "John", Email: "john@example.com", PasswordHash: "hash"}

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: models.LoginRequest{
				Email:    "john@example.com",
				Password: "pass123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john@example.com", "pass123").
					Return(user, "JWT_TOKEN", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &models.AuthResponse{
				Message: "Login successful",
				Token:   "JWT_TOKEN",
				User:    user.ToUser(),
			},
		},
		{
			name: "email with surrounding spaces",
			inputBody: models.LoginRequest{
				Email:    "  John@Example.com ",
				Password: "pass123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "John@Example.com", "pass123").
					Return(user, "JWT_TOKEN", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &models.AuthResponse{
				Message: "Login successful",
				Token:   "JWT_TOKEN",
				User:    user.ToUser(),
			},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &models.ErrorResponse{
				Error: "Invalid request body",
			},
		},
		{
			name:         "missing password",
			inputBody:    models.LoginRequest{Email: "john@example.com"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &models.ErrorResponse{
				Error: "Please provide email and password",
			},
		},
		{
			name: "wrong credentials",
			inputBody: models.LoginRequest{
				Email:    "john@example.com",
				Password: "wrongpass",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john@example.com", "wrongpass").
					Return(nil, "", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &models.ErrorResponse{
				Error: "Invalid email or password",
			},
		},
		{
			name: "database unavailable",
			inputBody: models.LoginRequest{
				Email:    "john@example.com",
				Password: "pass123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john@example.com", "pass123").
					Return(nil, "", repositories.ErrStoreUnavailable)
			},
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: &models.ErrorResponse{
				Error: "Database unavailable",
			},
		},
		{
			name: "internal error",
			inputBody: models.LoginRequest{
				Email:    "john@example.com",
				Password: "pass123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john@example.com", "pass123").
					Return(nil, "", errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &models.ErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewLoginHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &models.AuthResponse{}
			default:
				respBody = &models.ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
			assert.NotContains(t, w.Body.String(), "hash")
		})
	}
}

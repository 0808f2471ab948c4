package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-chest-screening/internal/models"
	"github.com/sbilibin2017/gw-chest-screening/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedUser(id uuid.UUID) UserIDGetter {
	return func(context.Context) (uuid.UUID, bool) { return id, true }
}

func noUser(context.Context) (uuid.UUID, bool) { return uuid.Nil, false }

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfiler(ctrl)
	id := uuid.New()

	t.Run("ok", func(t *testing.T) {
		mockSvc.EXPECT().Me(gomock.Any(), id).Return(&models.UserDB{UserID: id, Name: "Alice", Email: "alice@example.com"}, nil)

		w := httptest.NewRecorder()
		NewMeHandler(mockSvc, fixedUser(id)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp models.MeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, models.User{ID: id, Name: "Alice", Email: "alice@example.com"}, resp.User)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewMeHandler(mockSvc, noUser).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("deleted user", func(t *testing.T) {
		mockSvc.EXPECT().Me(gomock.Any(), id).Return(nil, services.ErrUserNotFound)

		w := httptest.NewRecorder()
		NewMeHandler(mockSvc, fixedUser(id)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-chest-screening/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthAndReadyHandlers(t *testing.T) {
	tests := []struct {
		name        string
		pingErr     error
		healthDB    string
		readyCode   int
		readyStatus string
	}{
		{name: "database up", healthDB: "connected", readyCode: http.StatusOK, readyStatus: "ready"},
		{name: "database down", pingErr: errors.New("refused"), healthDB: "disconnected", readyCode: http.StatusServiceUnavailable, readyStatus: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pinger := NewMockPinger(ctrl)
			pinger.EXPECT().Ping(gomock.Any()).Return(tt.pingErr).Times(2)

			w := httptest.NewRecorder()
			NewHealthHandler(pinger).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
			assert.Equal(t, http.StatusOK, w.Code)

			var health models.HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
			assert.Equal(t, "ok", health.Status)
			assert.Equal(t, tt.healthDB, health.Database)

			w = httptest.NewRecorder()
			NewReadyHandler(pinger).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ready", nil))
			assert.Equal(t, tt.readyCode, w.Code)

			var ready models.HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ready))
			assert.Equal(t, tt.readyStatus, ready.Status)
		})
	}
}

package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-chest-screening/internal/logger"
)

//go:generate mockgen -source=ready.go -destination=ready_mock.go -package=middlewares

// Pinger reports whether the database accepts connections.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DBReadyMiddleware answers 503 without calling next while the database is unreachable.
func DBReadyMiddleware(pinger Pinger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := pinger.Ping(r.Context()); err != nil {
				logger.Log.Errorw("database not ready",
					"uri", r.RequestURI,
					"request_id", RequestIDFromContext(r.Context()),
					"error", err,
				)
				writeError(w, http.StatusServiceUnavailable, "Database not ready")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

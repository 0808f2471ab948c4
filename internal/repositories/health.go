package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// HealthRepository reports whether the database answers.
type HealthRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewHealthRepository(db *sqlx.DB, timeout time.Duration) *HealthRepository {
	return &HealthRepository{db: db, timeout: timeout}
}

// Ping checks the connection within the configured timeout. Any failure is
// reported as ErrStoreUnavailable.
func (r *HealthRepository) Ping(ctx context.Context) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-chest-screening/internal/logger"
	"github.com/sbilibin2017/gw-chest-screening/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given (already normalised) email,
// or nil when there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`
	return r.getOne(ctx, query, email)
}

// GetByID returns the user with the given id, or nil when there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`
	return r.getOne(ctx, query, userID)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, arg)

	logger.Log.Infow("query",
		"sql", oneLine(query),
		"args", []any{arg},
		"found", err == nil,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts user and fills its timestamps. A taken email yields ErrDuplicate.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (user_id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	row := r.db.QueryRowxContext(ctx, query, user.UserID, user.Name, user.Email, user.PasswordHash)
	err := row.Scan(&user.CreatedAt, &user.UpdatedAt)

	// Password hash is never logged
	logger.Log.Infow("query",
		"sql", oneLine(query),
		"args", []any{user.UserID, user.Name, user.Email, "***"},
		"error", err,
	)

	return wrapErr(err)
}

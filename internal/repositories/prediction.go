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

// PredictionWriteRepository handles prediction inserts. Predictions are
// never updated or deleted.
type PredictionWriteRepository struct {
	db *sqlx.DB
}

func NewPredictionWriteRepository(db *sqlx.DB) *PredictionWriteRepository {
	return &PredictionWriteRepository{db: db}
}

// Save inserts p and fills CreatedAt from the database clock.
func (r *PredictionWriteRepository) Save(ctx context.Context, p *models.PredictionDB) error {
	const query = `
		INSERT INTO predictions (prediction_id, user_id, disease_type, image_path, result, confidence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`
	args := []any{p.PredictionID, p.UserID, string(p.DiseaseType), p.ImagePath, string(p.Result), p.Confidence}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&p.CreatedAt)

	logger.Log.Infow("query",
		"sql", oneLine(query),
		"args", args,
		"error", err,
	)

	return wrapErr(err)
}

// PredictionReadRepository handles prediction reads.
type PredictionReadRepository struct {
	db *sqlx.DB
}

func NewPredictionReadRepository(db *sqlx.DB) *PredictionReadRepository {
	return &PredictionReadRepository{db: db}
}

// GetByID returns the prediction joined with its owner, or nil when absent.
// Ownership is checked by the caller.
func (r *PredictionReadRepository) GetByID(ctx context.Context, predictionID uuid.UUID) (*models.PredictionWithOwnerDB, error) {
	const query = `
		SELECT p.prediction_id, p.user_id, p.disease_type, p.image_path, p.result, p.confidence, p.created_at,
		       u.name AS owner_name, u.email AS owner_email
		FROM predictions p
		JOIN users u ON u.user_id = p.user_id
		WHERE p.prediction_id = $1
	`

	var p models.PredictionWithOwnerDB
	err := r.db.GetContext(ctx, &p, query, predictionID)

	logger.Log.Infow("query",
		"sql", oneLine(query),
		"args", []any{predictionID},
		"found", err == nil,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return &p, nil
}

// ListByUserID returns at most limit predictions of userID, newest first.
func (r *PredictionReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.PredictionDB, error) {
	const query = `
		SELECT prediction_id, user_id, disease_type, image_path, result, confidence, created_at
		FROM predictions
		WHERE user_id = $1
		ORDER BY created_at DESC, prediction_id DESC
		LIMIT $2
	`

	predictions := []models.PredictionDB{}
	err := r.db.SelectContext(ctx, &predictions, query, userID, limit)

	logger.Log.Infow("query",
		"sql", oneLine(query),
		"args", []any{userID, limit},
		"result", len(predictions),
		"error", err,
	)

	if err != nil {
		return nil, wrapErr(err)
	}
	return predictions, nil
}

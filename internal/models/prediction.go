package models

import (
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DiseaseType is a supported screening target.
type DiseaseType string

// Supported disease types
const (
	DiseasePneumonia DiseaseType = "PNEUMONIA"
	DiseaseTB        DiseaseType = "TB"
)

// ParseDiseaseType normalises s and reports whether it names a supported type.
func ParseDiseaseType(s string) (DiseaseType, bool) {
	d := DiseaseType(strings.ToUpper(strings.TrimSpace(s)))
	switch d {
	case DiseasePneumonia, DiseaseTB:
		return d, true
	}
	return "", false
}

// Outcome is the binary screening result.
type Outcome string

// Screening outcomes
const (
	OutcomePositive Outcome = "Positive"
	OutcomeNegative Outcome = "Negative"
)

// PredictionDB represents a prediction row in the database
type PredictionDB struct {
	PredictionID uuid.UUID   `db:"prediction_id"`
	UserID       uuid.UUID   `db:"user_id"`
	DiseaseType  DiseaseType `db:"disease_type"`
	ImagePath    string      `db:"image_path"`
	Result       Outcome     `db:"result"`
	Confidence   float64     `db:"confidence"` // unit interval
	CreatedAt    time.Time   `db:"created_at"`
}

// PredictionWithOwnerDB is a prediction joined with its owner's public fields.
type PredictionWithOwnerDB struct {
	PredictionDB
	OwnerName  string `db:"owner_name"`
	OwnerEmail string `db:"owner_email"`
}

// PredictionOwner is the owner block of a single prediction view.
// swagger:model PredictionOwner
type PredictionOwner struct {
	// example: Alice
	Name string `json:"name"`
	// example: alice@example.com
	Email string `json:"email"`
}

// Prediction is the API view of a prediction.
// swagger:model Prediction
type Prediction struct {
	ID uuid.UUID `json:"id"`
	// example: PNEUMONIA
	DiseaseType DiseaseType `json:"diseaseType"`
	// example: Positive
	Result Outcome `json:"result"`
	// example: 0.92
	Confidence float64 `json:"confidence"`
	// example: xray-1718000000000-123456789.png
	ImagePath string `json:"imagePath"`
	// example: /api/predictions/2b0d6a0c-7f0e-4c4a-9f53-3f1a6c2b8e11/image
	ImageURL  string           `json:"imageUrl"`
	CreatedAt time.Time        `json:"createdAt"`
	User      *PredictionOwner `json:"user,omitempty"`
}

// ToPrediction converts a row into its API view.
func (p *PredictionDB) ToPrediction() Prediction {
	return Prediction{
		ID:          p.PredictionID,
		DiseaseType: p.DiseaseType,
		Result:      p.Result,
		Confidence:  p.Confidence,
		ImagePath:   p.ImagePath,
		ImageURL:    "/api/predictions/" + p.PredictionID.String() + "/image",
		CreatedAt:   p.CreatedAt,
	}
}

// ToPrediction converts a joined row into its API view including the owner.
func (p *PredictionWithOwnerDB) ToPrediction() Prediction {
	v := p.PredictionDB.ToPrediction()
	v.User = &PredictionOwner{Name: p.OwnerName, Email: p.OwnerEmail}
	return v
}

// PredictionResponse wraps a single prediction.
// swagger:model PredictionResponse
type PredictionResponse struct {
	// example: Analysis complete
	Message    string     `json:"message,omitempty"`
	Prediction Prediction `json:"prediction"`
}

// PredictionListResponse wraps the caller's predictions, newest first.
// swagger:model PredictionListResponse
type PredictionListResponse struct {
	Predictions []Prediction `json:"predictions"`
}

// StoredFile describes an accepted upload.
type StoredFile struct {
	Path         string // storage key, e.g. xray-1718000000000-123456789.png
	OriginalName string
	ContentType  string
	Size         int64
}

// RawInference is the unprocessed answer of the inference backend.
type RawInference struct {
	Label      string `json:"label"`
	Confidence string `json:"confidence"`
}

// PredictionCreatedEvent is published after a prediction is persisted.
type PredictionCreatedEvent struct {
	PredictionID string  `json:"prediction_id"`
	UserID       string  `json:"user_id"`
	DiseaseType  string  `json:"disease_type"`
	Result       string  `json:"result"`
	Confidence   float64 `json:"confidence"`
	Timestamp    int64   `json:"timestamp"`
}

// HealthResponse reports process and database state.
// swagger:model HealthResponse
type HealthResponse struct {
	// example: ok
	Status string `json:"status"`
	// example: Chest Disease Detection API
	Message string `json:"message"`
	// example: connected
	Database string `json:"database"`
}

// StoredImage is the image behind a prediction: either a readable body or a
// short-lived URL the client should be redirected to.
type StoredImage struct {
	Body        io.ReadCloser
	ContentType string
	RedirectURL string
}

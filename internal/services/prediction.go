package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-chest-screening/internal/logger"
	"github.com/sbilibin2017/gw-chest-screening/internal/models"
	"github.com/sbilibin2017/gw-chest-screening/internal/storage"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=prediction.go -destination=prediction_mock.go -package=services

var (
	ErrUnsupportedDiseaseType = errors.New("disease type must be PNEUMONIA or TB")
	ErrInferenceUnavailable   = errors.New("failed to analyze image")
	ErrPredictionNotFound     = errors.New("prediction not found")
	ErrForbidden              = errors.New("access denied")
	ErrImageNotFound          = errors.New("image not found")
)

// PredictionListLimit caps the history returned by List.
const PredictionListLimit = 50

// PredictionReader defines read-only operations for predictions.
type PredictionReader interface {
	GetByID(ctx context.Context, predictionID uuid.UUID) (*models.PredictionWithOwnerDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.PredictionDB, error)
}

// PredictionWriter defines write operations for predictions.
type PredictionWriter interface {
	Save(ctx context.Context, p *models.PredictionDB) error
}

// Uploader validates and stores an incoming image.
type Uploader interface {
	Accept(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*models.StoredFile, error)
}

// Inferencer asks the inference backend about a stored image.
type Inferencer interface {
	Infer(ctx context.Context, category models.DiseaseType, stored *models.StoredFile) (*models.RawInference, error)
}

// Classifier maps a raw inference onto an outcome.
type Classifier interface {
	Classify(category models.DiseaseType, label, confidence string) (models.Outcome, float64, error)
}

// FileStorage reads and removes stored images.
type FileStorage interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Remove(ctx context.Context, key string) error
}

// Presigner issues temporary direct download URLs.
type Presigner interface {
	PresignGet(ctx context.Context, key string) (string, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PredictionService runs the upload, inference, classification and
// persistence pipeline and serves prediction history.
type PredictionService struct {
	reader      PredictionReader
	writer      PredictionWriter
	uploader    Uploader
	inferencer  Inferencer
	classifier  Classifier
	files       FileStorage
	presigner   Presigner
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewPredictionService creates a new PredictionService.
// presigner and kafkaWriter may be nil.
func NewPredictionService(
	reader PredictionReader,
	writer PredictionWriter,
	uploader Uploader,
	inferencer Inferencer,
	classifier Classifier,
	files FileStorage,
	presigner Presigner,
	kafkaWriter KafkaWriter,
) *PredictionService {
	return &PredictionService{
		reader:      reader,
		writer:      writer,
		uploader:    uploader,
		inferencer:  inferencer,
		classifier:  classifier,
		files:       files,
		presigner:   presigner,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// Create stores the upload, classifies it and records the prediction for userID.
// Nothing is persisted and the stored image is removed if any step fails.
func (s *PredictionService) Create(
	ctx context.Context,
	userID uuid.UUID,
	diseaseType string,
	file multipart.File,
	header *multipart.FileHeader,
) (*models.PredictionDB, error) {
	category, ok := models.ParseDiseaseType(diseaseType)
	if !ok {
		return nil, ErrUnsupportedDiseaseType
	}

	stored, err := s.uploader.Accept(ctx, file, header)
	if err != nil {
		return nil, err
	}

	raw, err := s.inferencer.Infer(ctx, category, stored)
	if err != nil {
		logger.Log.Errorw("inference failed", "user_id", userID, "disease_type", category, "error", err)
		s.discard(ctx, stored.Path)
		return nil, fmt.Errorf("%w: %w", ErrInferenceUnavailable, err)
	}

	outcome, confidence, err := s.classifier.Classify(category, raw.Label, raw.Confidence)
	if err != nil {
		logger.Log.Errorw("unusable inference result",
			"user_id", userID,
			"label", raw.Label,
			"confidence", raw.Confidence,
			"error", err,
		)
		s.discard(ctx, stored.Path)
		return nil, fmt.Errorf("%w: %w", ErrInferenceUnavailable, err)
	}

	p := &models.PredictionDB{
		PredictionID: uuid.New(),
		UserID:       userID,
		DiseaseType:  category,
		ImagePath:    stored.Path,
		Result:       outcome,
		Confidence:   confidence,
	}
	if err := s.writer.Save(ctx, p); err != nil {
		logger.Log.Errorw("failed to save prediction", "user_id", userID, "error", err)
		s.discard(ctx, stored.Path)
		return nil, err
	}

	s.publishPrediction(ctx, p)

	return p, nil
}

// Get returns a prediction with its owner, provided requester owns it.
func (s *PredictionService) Get(ctx context.Context, predictionID, requester uuid.UUID) (*models.PredictionWithOwnerDB, error) {
	p, err := s.reader.GetByID(ctx, predictionID)
	if err != nil {
		logger.Log.Errorw("failed to get prediction", "prediction_id", predictionID, "error", err)
		return nil, err
	}
	if p == nil {
		return nil, ErrPredictionNotFound
	}
	if p.UserID != requester {
		logger.Log.Warnw("prediction access denied", "prediction_id", predictionID, "requester", requester)
		return nil, ErrForbidden
	}
	return p, nil
}

// List returns the newest predictions of userID.
func (s *PredictionService) List(ctx context.Context, userID uuid.UUID) ([]models.PredictionDB, error) {
	list, err := s.reader.ListByUserID(ctx, userID, PredictionListLimit)
	if err != nil {
		logger.Log.Errorw("failed to list predictions", "user_id", userID, "error", err)
		return nil, err
	}
	return list, nil
}

// OpenImage returns the image of a prediction owned by requester.
func (s *PredictionService) OpenImage(ctx context.Context, predictionID, requester uuid.UUID) (*models.StoredImage, error) {
	p, err := s.Get(ctx, predictionID, requester)
	if err != nil {
		return nil, err
	}

	if s.presigner != nil {
		url, err := s.presigner.PresignGet(ctx, p.ImagePath)
		if err != nil {
			logger.Log.Errorw("failed to presign image", "key", p.ImagePath, "error", err)
			return nil, err
		}
		return &models.StoredImage{RedirectURL: url}, nil
	}

	body, err := s.files.Open(ctx, p.ImagePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrImageNotFound
		}
		logger.Log.Errorw("failed to open image", "key", p.ImagePath, "error", err)
		return nil, err
	}

	return &models.StoredImage{Body: body, ContentType: contentTypeOf(p.ImagePath)}, nil
}

// discard removes an orphaned upload, outliving a cancelled request.
func (s *PredictionService) discard(ctx context.Context, key string) {
	if err := s.files.Remove(context.WithoutCancel(ctx), key); err != nil {
		logger.Log.Errorw("failed to remove upload", "key", key, "error", err)
	}
}

// publishPrediction publishes a prediction.created event to Kafka.
func (s *PredictionService) publishPrediction(ctx context.Context, p *models.PredictionDB) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "prediction_id", p.PredictionID)
		return
	}

	event := models.PredictionCreatedEvent{
		PredictionID: p.PredictionID.String(),
		UserID:       p.UserID.String(),
		DiseaseType:  string(p.DiseaseType),
		Result:       string(p.Result),
		Confidence:   p.Confidence,
		Timestamp:    s.now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal prediction for Kafka", "prediction_id", event.PredictionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.PredictionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish prediction to Kafka", "prediction_id", event.PredictionID, "error", err)
	} else {
		logger.Log.Infow("Prediction published to Kafka", "prediction_id", event.PredictionID, "result", event.Result)
	}
}

func contentTypeOf(key string) string {
	ext := filepath.Ext(key)
	if ext == ".dcm" || ext == ".dicom" {
		return "application/dicom"
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-chest-screening/internal/models"
	"github.com/sbilibin2017/gw-chest-screening/internal/services"
	"github.com/sbilibin2017/gw-chest-screening/internal/storage"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type predictionMocks struct {
	reader     *services.MockPredictionReader
	writer     *services.MockPredictionWriter
	uploader   *services.MockUploader
	inferencer *services.MockInferencer
	files      *services.MockFileStorage
	presigner  *services.MockPresigner
	kafka      *services.MockKafkaWriter
}

func newPredictionMocks(ctrl *gomock.Controller) *predictionMocks {
	return &predictionMocks{
		reader:     services.NewMockPredictionReader(ctrl),
		writer:     services.NewMockPredictionWriter(ctrl),
		uploader:   services.NewMockUploader(ctrl),
		inferencer: services.NewMockInferencer(ctrl),
		files:      services.NewMockFileStorage(ctrl),
		presigner:  services.NewMockPresigner(ctrl),
		kafka:      services.NewMockKafkaWriter(ctrl),
	}
}

// service wires the real threshold classifier; presigner and kafka are optional.
func (m *predictionMocks) service(threshold float64, withPresigner, withKafka bool) *services.PredictionService {
	var presigner services.Presigner
	if withPresigner {
		presigner = m.presigner
	}
	var kw services.KafkaWriter
	if withKafka {
		kw = m.kafka
	}
	return services.NewPredictionService(
		m.reader,
		m.writer,
		m.uploader,
		m.inferencer,
		services.NewThresholdClassifier(threshold, "", ""),
		m.files,
		presigner,
		kw,
	)
}

var storedPNG = &models.StoredFile{Path: "xray-1-2.png", OriginalName: "chest.png", ContentType: "image/png", Size: 10}

func TestPredictionService_Create(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		diseaseType    string
		label          string
		confidence     string
		wantCategory   models.DiseaseType
		wantOutcome    models.Outcome
		wantConfidence float64
	}{
		{
			name:           "pneumonia positive",
			diseaseType:    "PNEUMONIA",
			label:          "PNEUMONIA",
			confidence:     "92%",
			wantCategory:   models.DiseasePneumonia,
			wantOutcome:    models.OutcomePositive,
			wantConfidence: 0.92,
		},
		{
			name:           "tb normal",
			diseaseType:    "tb",
			label:          "NORMAL",
			confidence:     "80%",
			wantCategory:   models.DiseaseTB,
			wantOutcome:    models.OutcomeNegative,
			wantConfidence: 0.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newPredictionMocks(ctrl)
			svc := m.service(0.6, false, true)

			m.uploader.EXPECT().Accept(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedPNG, nil)
			m.inferencer.EXPECT().
				Infer(gomock.Any(), tt.wantCategory, storedPNG).
				Return(&models.RawInference{Label: tt.label, Confidence: tt.confidence}, nil)
			m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			m.kafka.EXPECT().
				WriteMessages(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
					require.Len(t, msgs, 1)
					var ev models.PredictionCreatedEvent
					require.NoError(t, json.Unmarshal(msgs[0].Value, &ev))
					assert.Equal(t, string(msgs[0].Key), ev.PredictionID)
					assert.Equal(t, userID.String(), ev.UserID)
					assert.Equal(t, string(tt.wantOutcome), ev.Result)
					return nil
				})

			p, err := svc.Create(context.Background(), userID, tt.diseaseType, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, userID, p.UserID)
			assert.Equal(t, tt.wantCategory, p.DiseaseType)
			assert.Equal(t, tt.wantOutcome, p.Result)
			assert.InDelta(t, tt.wantConfidence, p.Confidence, 1e-9)
			assert.Equal(t, storedPNG.Path, p.ImagePath)
			assert.NotEqual(t, uuid.Nil, p.PredictionID)
		})
	}
}

func TestPredictionService_Create_ThresholdFlipsOutcome(t *testing.T) {
	for _, tc := range []struct {
		threshold float64
		want      models.Outcome
	}{
		{threshold: 0.5, want: models.OutcomePositive},
		{threshold: 0.9, want: models.OutcomeNegative},
	} {
		ctrl := gomock.NewController(t)
		m := newPredictionMocks(ctrl)
		svc := m.service(tc.threshold, false, false)

		m.uploader.EXPECT().Accept(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedPNG, nil)
		m.inferencer.EXPECT().Infer(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&models.RawInference{Label: "PNEUMONIA", Confidence: "70%"}, nil)
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		p, err := svc.Create(context.Background(), uuid.New(), "PNEUMONIA", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, tc.want, p.Result)
		ctrl.Finish()
	}
}

func TestPredictionService_Create_UnsupportedDiseaseType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newPredictionMocks(ctrl)
	svc := m.service(0.6, false, false)

	for _, dt := range []string{"", "COVID", "pneumonia-tb"} {
		p, err := svc.Create(context.Background(), uuid.New(), dt, nil, nil)
		assert.ErrorIs(t, err, services.ErrUnsupportedDiseaseType)
		assert.Nil(t, p)
	}
}

func TestPredictionService_Create_UploadRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newPredictionMocks(ctrl)
	svc := m.service(0.6, false, false)

	m.uploader.EXPECT().Accept(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, services.ErrUnsupportedFileType)

	_, err := svc.Create(context.Background(), uuid.New(), "TB", nil, nil)
	assert.ErrorIs(t, err, services.ErrUnsupportedFileType)
}

func TestPredictionService_Create_FailuresLeaveNoRecord(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(m *predictionMocks)
		wantErr  error
		wantText string
	}{
		{
			name: "inference timeout",
			setup: func(m *predictionMocks) {
				m.inferencer.EXPECT().Infer(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, context.DeadlineExceeded)
			},
			wantErr: services.ErrInferenceUnavailable,
		},
		{
			name: "malformed confidence",
			setup: func(m *predictionMocks) {
				m.inferencer.EXPECT().Infer(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&models.RawInference{Label: "PNEUMONIA", Confidence: "very high"}, nil)
			},
			wantErr: services.ErrInferenceUnavailable,
		},
		{
			name: "insert fails",
			setup: func(m *predictionMocks) {
				m.inferencer.EXPECT().Infer(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&models.RawInference{Label: "PNEUMONIA", Confidence: "92%"}, nil)
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
			},
			wantText: "insert failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newPredictionMocks(ctrl)
			svc := m.service(0.6, false, true)

			m.uploader.EXPECT().Accept(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedPNG, nil)
			tt.setup(m)
			m.files.EXPECT().Remove(gomock.Any(), storedPNG.Path).Return(nil)

			p, err := svc.Create(context.Background(), uuid.New(), "PNEUMONIA", nil, nil)
			assert.Nil(t, p)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.EqualError(t, err, tt.wantText)
			}
		})
	}
}

func TestPredictionService_Create_CleanupSurvivesCancelledRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newPredictionMocks(ctrl)
	svc := m.service(0.6, false, false)

	ctx, cancel := context.WithCancel(context.Background())

	m.uploader.EXPECT().Accept(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedPNG, nil)
	m.inferencer.EXPECT().Infer(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.DiseaseType, *models.StoredFile) (*models.RawInference, error) {
			cancel()
			return nil, context.Canceled
		})
	m.files.EXPECT().Remove(gomock.Any(), storedPNG.Path).
		DoAndReturn(func(ctx context.Context, _ string) error {
			assert.NoError(t, ctx.Err())
			return nil
		})

	_, err := svc.Create(ctx, uuid.New(), "TB", nil, nil)
	assert.ErrorIs(t, err, services.ErrInferenceUnavailable)
}

func TestPredictionService_Create_KafkaFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newPredictionMocks(ctrl)
	svc := m.service(0.6, false, true)

	m.uploader.EXPECT().Accept(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedPNG, nil)
	m.inferencer.EXPECT().Infer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.RawInference{Label: "PNEUMONIA", Confidence: "92%"}, nil)
	m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	p, err := svc.Create(context.Background(), uuid.New(), "PNEUMONIA", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomePositive, p.Result)
}

func TestPredictionService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newPredictionMocks(ctrl)
	svc := m.service(0.6, false, false)

	owner := uuid.New()
	id := uuid.New()
	row := &models.PredictionWithOwnerDB{
		PredictionDB: models.PredictionDB{PredictionID: id, UserID: owner},
		OwnerName:    "Alice",
	}

	m.reader.EXPECT().GetByID(gomock.Any(), id).Return(row, nil).Times(2)

	got, err := svc.Get(context.Background(), id, owner)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.OwnerName)

	got, err = svc.Get(context.Background(), id, uuid.New())
	assert.ErrorIs(t, err, services.ErrForbidden)
	assert.Nil(t, got)

	m.reader.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)
	_, err = svc.Get(context.Background(), id, owner)
	assert.ErrorIs(t, err, services.ErrPredictionNotFound)

	m.reader.EXPECT().GetByID(gomock.Any(), id).Return(nil, errors.New("db error"))
	_, err = svc.Get(context.Background(), id, owner)
	assert.EqualError(t, err, "db error")
}

func TestPredictionService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newPredictionMocks(ctrl)
	svc := m.service(0.6, false, false)

	userID := uuid.New()
	rows := []models.PredictionDB{{PredictionID: uuid.New()}, {PredictionID: uuid.New()}}

	m.reader.EXPECT().ListByUserID(gomock.Any(), userID, services.PredictionListLimit).Return(rows, nil)
	got, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	m.reader.EXPECT().ListByUserID(gomock.Any(), userID, 50).Return(nil, errors.New("db error"))
	_, err = svc.List(context.Background(), userID)
	assert.Error(t, err)
}

func TestPredictionService_OpenImage(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()
	row := &models.PredictionWithOwnerDB{
		PredictionDB: models.PredictionDB{PredictionID: id, UserID: owner, ImagePath: "xray-1-2.png"},
	}

	t.Run("disk body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newPredictionMocks(ctrl)
		svc := m.service(0.6, false, false)

		m.reader.EXPECT().GetByID(gomock.Any(), id).Return(row, nil)
		m.files.EXPECT().Open(gomock.Any(), "xray-1-2.png").Return(io.NopCloser(strings.NewReader("png")), nil)

		img, err := svc.OpenImage(context.Background(), id, owner)
		require.NoError(t, err)
		assert.Equal(t, "image/png", img.ContentType)
		assert.Empty(t, img.RedirectURL)
		data, _ := io.ReadAll(img.Body)
		assert.Equal(t, "png", string(data))
	})

	t.Run("presigned redirect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newPredictionMocks(ctrl)
		svc := m.service(0.6, true, false)

		m.reader.EXPECT().GetByID(gomock.Any(), id).Return(row, nil)
		m.presigner.EXPECT().PresignGet(gomock.Any(), "xray-1-2.png").Return("https://s3.local/x?sig=1", nil)

		img, err := svc.OpenImage(context.Background(), id, owner)
		require.NoError(t, err)
		assert.Equal(t, "https://s3.local/x?sig=1", img.RedirectURL)
		assert.Nil(t, img.Body)
	})

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newPredictionMocks(ctrl)
		svc := m.service(0.6, false, false)

		m.reader.EXPECT().GetByID(gomock.Any(), id).Return(row, nil)
		m.files.EXPECT().Open(gomock.Any(), "xray-1-2.png").Return(nil, storage.ErrNotFound)

		_, err := svc.OpenImage(context.Background(), id, owner)
		assert.ErrorIs(t, err, services.ErrImageNotFound)
	})

	t.Run("other owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newPredictionMocks(ctrl)
		svc := m.service(0.6, false, false)

		m.reader.EXPECT().GetByID(gomock.Any(), id).Return(row, nil)

		_, err := svc.OpenImage(context.Background(), id, uuid.New())
		assert.ErrorIs(t, err, services.ErrForbidden)
	})
}

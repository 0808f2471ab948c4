package handlers

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-chest-screening/internal/logger"
	"github.com/sbilibin2017/gw-chest-screening/internal/models"
	"github.com/sbilibin2017/gw-chest-screening/internal/services"
)

//go:generate mockgen -source=prediction.go -destination=prediction_mock.go -package=handlers

// multipartMemory is the part of a form parsed in memory; the rest spills to temp files.
const multipartMemory = 8 << 20

// formOverhead allows for the boundary and the non-file fields of the form.
const formOverhead = 1 << 20

// PredictionCreator runs a screening for an uploaded image.
type PredictionCreator interface {
	Create(ctx context.Context, userID uuid.UUID, diseaseType string, file multipart.File, header *multipart.FileHeader) (*models.PredictionDB, error)
}

// PredictionGetter returns a single prediction owned by the requester.
type PredictionGetter interface {
	Get(ctx context.Context, predictionID, requester uuid.UUID) (*models.PredictionWithOwnerDB, error)
}

// PredictionLister returns the requester's history.
type PredictionLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.PredictionDB, error)
}

// ImageOpener returns the image behind a prediction.
type ImageOpener interface {
	OpenImage(ctx context.Context, predictionID, requester uuid.UUID) (*models.StoredImage, error)
}

// NewCreatePredictionHandler returns an HTTP handler that screens an uploaded X-ray.
// @Summary Screen an X-ray
// @Description Uploads an image (multipart field "image") and classifies it for the given diseaseType.
// @Tags predictions
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Chest X-ray (JPEG, PNG or DICOM, up to 50 MiB)"
// @Param diseaseType formData string true "PNEUMONIA or TB"
// @Success 201 {object} models.PredictionResponse "Analysis complete"
// @Failure 400 {object} models.ErrorResponse "Invalid upload or disease type"
// @Failure 401 {object} models.ErrorResponse "Unauthenticated"
// @Failure 500 {object} models.ErrorResponse "Failed to analyze image"
// @Router /predictions [post]
// @Security BearerAuth
func NewCreatePredictionHandler(svc PredictionCreator, maxBytes int64, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthenticated")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+formOverhead)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusBadRequest, services.ErrFileTooLarge.Error())
				return
			}
			logger.Log.Warnw("invalid multipart form", "err", err)
			writeError(w, http.StatusBadRequest, "Please upload an image")
			return
		}
		defer func() { _ = r.MultipartForm.RemoveAll() }()

		file, header, err := r.FormFile("image")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Please upload an image")
			return
		}
		defer file.Close()

		p, err := svc.Create(r.Context(), userID, r.FormValue("diseaseType"), file, header)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnsupportedDiseaseType),
				errors.Is(err, services.ErrMissingFile),
				errors.Is(err, services.ErrUnsupportedFileType),
				errors.Is(err, services.ErrFileTooLarge),
				errors.Is(err, services.ErrContentMismatch):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrInferenceUnavailable):
				writeError(w, http.StatusInternalServerError, "Failed to analyze image")
			default:
				writeServiceError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.PredictionResponse{
			Message:    "Analysis complete",
			Prediction: p.ToPrediction(),
		})
	}
}

// NewListPredictionsHandler returns an HTTP handler for the caller's history.
// @Summary List predictions
// @Description Returns the caller's 50 most recent predictions, newest first
// @Tags predictions
// @Produce json
// @Success 200 {object} models.PredictionListResponse
// @Failure 401 {object} models.ErrorResponse "Unauthenticated"
// @Router /predictions [get]
// @Security BearerAuth
func NewListPredictionsHandler(svc PredictionLister, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthenticated")
			return
		}

		list, err := svc.List(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := models.PredictionListResponse{Predictions: make([]models.Prediction, 0, len(list))}
		for i := range list {
			resp.Predictions = append(resp.Predictions, list[i].ToPrediction())
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewGetPredictionHandler returns an HTTP handler for one prediction.
// @Summary Get prediction
// @Description Returns a prediction with its owner's name and email. Only the owner may read it.
// @Tags predictions
// @Produce json
// @Param id path string true "Prediction ID"
// @Success 200 {object} models.PredictionResponse
// @Failure 401 {object} models.ErrorResponse "Unauthenticated"
// @Failure 403 {object} models.ErrorResponse "Not authorized to view this prediction"
// @Failure 404 {object} models.ErrorResponse "Prediction not found"
// @Router /predictions/{id} [get]
// @Security BearerAuth
func NewGetPredictionHandler(svc PredictionGetter, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthenticated")
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Prediction not found")
			return
		}

		p, err := svc.Get(r.Context(), id, userID)
		if err != nil {
			writePredictionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.PredictionResponse{Prediction: p.ToPrediction()})
	}
}

// NewPredictionImageHandler returns an HTTP handler serving the screened image to its owner.
// @Summary Get prediction image
// @Description Streams the stored X-ray, or redirects to a short-lived URL when images live in object storage.
// @Tags predictions
// @Produce octet-stream
// @Param id path string true "Prediction ID"
// @Success 200 {file} binary
// @Success 307 "Redirect to a presigned URL"
// @Failure 401 {object} models.ErrorResponse "Unauthenticated"
// @Failure 403 {object} models.ErrorResponse "Not authorized to view this prediction"
// @Failure 404 {object} models.ErrorResponse "Prediction not found"
// @Router /predictions/{id}/image [get]
// @Security BearerAuth
func NewPredictionImageHandler(svc ImageOpener, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthenticated")
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Prediction not found")
			return
		}

		img, err := svc.OpenImage(r.Context(), id, userID)
		if err != nil {
			writePredictionError(w, err)
			return
		}

		if img.RedirectURL != "" {
			http.Redirect(w, r, img.RedirectURL, http.StatusTemporaryRedirect)
			return
		}
		defer img.Body.Close()

		w.Header().Set("Content-Type", img.ContentType)
		w.Header().Set("Cache-Control", "private, max-age=300")
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, img.Body); err != nil {
			logger.Log.Warnw("failed to stream image", "prediction_id", id, "error", err)
		}
	}
}

func writePredictionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrPredictionNotFound):
		writeError(w, http.StatusNotFound, "Prediction not found")
	case errors.Is(err, services.ErrImageNotFound):
		writeError(w, http.StatusNotFound, "Image not found")
	case errors.Is(err, services.ErrForbidden):
		writeError(w, http.StatusForbidden, "Not authorized to view this prediction")
	default:
		writeServiceError(w, err)
	}
}

package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-chest-screening/internal/logger"
	"github.com/sbilibin2017/gw-chest-screening/internal/models"
)

var ErrInferenceUnavailable = errors.New("inference backend unavailable")

const (
	maxLoggedBody   = 512
	maxResponseBody = 1 << 20
)

// FileOpener reads a previously stored upload.
type FileOpener interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// InferenceHTTPFacade submits stored images to the inference backend over HTTP.
type InferenceHTTPFacade struct {
	baseURL string
	client  *http.Client
	files   FileOpener
}

// NewInferenceHTTPFacade creates a facade for baseURL with a per-call timeout.
func NewInferenceHTTPFacade(baseURL string, timeout time.Duration, files FileOpener) *InferenceHTTPFacade {
	return &InferenceHTTPFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		files:   files,
	}
}

var endpoints = map[models.DiseaseType]string{
	models.DiseasePneumonia: "pneumonia",
	models.DiseaseTB:        "tb",
}

type inferenceResponse struct {
	Label      string          `json:"label"`
	Confidence json.RawMessage `json:"confidence"`
}

// Infer posts the stored file as multipart field "file" to
// <baseURL>/predict/<category> and returns the raw answer.
func (f *InferenceHTTPFacade) Infer(
	ctx context.Context,
	category models.DiseaseType,
	stored *models.StoredFile,
) (*models.RawInference, error) {
	endpoint, ok := endpoints[category]
	if !ok {
		return nil, fmt.Errorf("no inference endpoint for %q", category)
	}

	body, contentType, err := f.streamBody(ctx, stored)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	url := f.baseURL + "/predict/" + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("inference request failed",
			"url", url,
			"duration", time.Since(started),
			"error", err,
		)
		return nil, fmt.Errorf("%w: %w", ErrInferenceUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInferenceUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Log.Errorw("inference backend returned error",
			"url", url,
			"status", resp.StatusCode,
			"body", truncate(raw, maxLoggedBody),
		)
		return nil, fmt.Errorf("%w: status %d", ErrInferenceUnavailable, resp.StatusCode)
	}

	var ir inferenceResponse
	if err := json.Unmarshal(raw, &ir); err != nil {
		logger.Log.Errorw("malformed inference response",
			"url", url,
			"body", truncate(raw, maxLoggedBody),
			"error", err,
		)
		return nil, fmt.Errorf("%w: %w", ErrInferenceUnavailable, err)
	}

	confidence, err := confidenceString(ir.Confidence)
	if err != nil || strings.TrimSpace(ir.Label) == "" {
		logger.Log.Errorw("incomplete inference response",
			"url", url,
			"body", truncate(raw, maxLoggedBody),
		)
		return nil, fmt.Errorf("%w: missing label or confidence", ErrInferenceUnavailable)
	}

	logger.Log.Infow("inference completed",
		"url", url,
		"label", ir.Label,
		"confidence", confidence,
		"duration", time.Since(started),
	)

	return &models.RawInference{Label: ir.Label, Confidence: confidence}, nil
}

// streamBody opens the stored file and returns a multipart body that is
// written while the request is sent. Closing the body stops the writer.
func (f *InferenceHTTPFacade) streamBody(ctx context.Context, stored *models.StoredFile) (io.ReadCloser, string, error) {
	rc, err := f.files.Open(ctx, stored.Path)
	if err != nil {
		return nil, "", err
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		defer rc.Close()
		pw.CloseWithError(writeFilePart(mw, stored, rc))
	}()

	return pr, mw.FormDataContentType(), nil
}

func writeFilePart(mw *multipart.Writer, stored *models.StoredFile, r io.Reader) error {
	name := stored.OriginalName
	if name == "" {
		name = path.Base(stored.Path)
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	ct := stored.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h.Set("Content-Type", ct)

	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, r); err != nil {
		return err
	}
	return mw.Close()
}

// confidenceString accepts "92%", "0.92" or 0.92.
func confidenceString(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", errors.New("confidence missing")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

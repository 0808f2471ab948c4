package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sbilibin2017/gw-chest-screening/internal/logger"
	"github.com/sbilibin2017/gw-chest-screening/internal/models"
)

//go:generate mockgen -source=upload.go -destination=upload_mock.go -package=services

var (
	ErrMissingFile         = errors.New("no image uploaded")
	ErrUnsupportedFileType = errors.New("only JPEG, PNG and DICOM images are allowed")
	ErrFileTooLarge        = errors.New("image exceeds the upload size limit")
	ErrContentMismatch     = errors.New("file content does not match an allowed image type")
)

// DefaultMaxUploadBytes is 50 MiB.
const DefaultMaxUploadBytes int64 = 50 << 20

var allowedDeclaredTypes = map[string]bool{
	"image/jpeg":        true,
	"image/jpg":         true,
	"image/png":         true,
	"image/dicom":       true,
	"application/dicom": true,
}

var allowedSniffedTypes = []string{"image/jpeg", "image/png", "application/dicom"}

// sniffedAllowed accepts an allowed type or any of its subtypes, e.g. APNG under PNG.
func sniffedAllowed(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if mimetype.EqualsAny(m.String(), allowedSniffedTypes...) {
			return true
		}
	}
	return false
}

// FileSaver persists an upload under a key.
type FileSaver interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
}

// UploadService validates X-ray uploads and stores them under generated names.
type UploadService struct {
	saver    FileSaver
	maxBytes int64
	now      func() time.Time
	rand     func() int
}

// NewUploadService creates an UploadService. A non-positive maxBytes means DefaultMaxUploadBytes.
func NewUploadService(saver FileSaver, maxBytes int64) *UploadService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &UploadService{
		saver:    saver,
		maxBytes: maxBytes,
		now:      time.Now,
		rand:     func() int { return rand.IntN(1_000_000_000) },
	}
}

// MaxBytes is the largest accepted image.
func (s *UploadService) MaxBytes() int64 {
	return s.maxBytes
}

// Accept checks the declared type, size and content of an upload and stores it.
func (s *UploadService) Accept(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*models.StoredFile, error) {
	if file == nil || header == nil {
		return nil, ErrMissingFile
	}

	declared := declaredType(header)
	if !allowedDeclaredTypes[declared] {
		logger.Log.Warnw("rejected upload type", "filename", header.Filename, "content_type", declared)
		return nil, ErrUnsupportedFileType
	}
	if header.Size > s.maxBytes {
		logger.Log.Warnw("rejected oversized upload", "filename", header.Filename, "size", header.Size)
		return nil, ErrFileTooLarge
	}

	sniffed, err := mimetype.DetectReader(file)
	if err != nil {
		return nil, fmt.Errorf("detect content type: %w", err)
	}
	if !sniffedAllowed(sniffed) {
		logger.Log.Warnw("rejected upload content",
			"filename", header.Filename,
			"declared", declared,
			"detected", sniffed.String(),
		)
		return nil, ErrContentMismatch
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind upload: %w", err)
	}

	key := s.fileName(header.Filename)
	if err := s.saver.Save(ctx, key, file, header.Size, declared); err != nil {
		logger.Log.Errorw("failed to store upload", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow("upload stored",
		"key", key,
		"original_name", header.Filename,
		"content_type", declared,
		"size", header.Size,
	)

	return &models.StoredFile{
		Path:         key,
		OriginalName: header.Filename,
		ContentType:  declared,
		Size:         header.Size,
	}, nil
}

// fileName builds xray-<unix millis>-<random><ext>, defaulting ext to .jpg.
func (s *UploadService) fileName(original string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(original)))
	if ext == "" || ext == "." {
		ext = ".jpg"
	}
	return fmt.Sprintf("xray-%d-%d%s", s.now().UnixMilli(), s.rand(), ext)
}

func declaredType(header *multipart.FileHeader) string {
	ct := header.Header.Get("Content-Type")
	if mt, _, err := mime.ParseMediaType(ct); err == nil {
		return mt
	}
	return strings.ToLower(strings.TrimSpace(ct))
}

// Package config loads runtime settings for the screening service from a
// dotenv file overlaid by the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers supported for uploaded images.
const (
	StorageDisk = "disk"
	StorageS3   = "s3"
)

// Config holds every setting the service needs. It is built once at startup
// and handed to constructors; nothing below cmd/ reads the environment.
type Config struct {
	// HTTP server
	AppHost     string
	AppPort     string
	LogLevel    string
	FrontendURL string

	// PostgreSQL
	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int
	DBPingTimeout  time.Duration

	// Credentials
	JWTSecret string
	JWTExp    time.Duration

	// Uploads
	StorageDriver  string
	UploadDir      string
	UploadMaxBytes int64

	// S3-compatible object storage
	S3Bucket        string
	S3Region        string
	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string
	S3PresignExpiry time.Duration

	// Inference backend
	InferenceURL     string
	InferenceTimeout time.Duration

	// Classification policy
	ClassifierThreshold       float64
	ClassifierLabelPneumonia  string
	ClassifierLabelTB         string
	ClassifierConfidenceScale string // percent or fraction

	// Kafka (optional)
	KafkaBrokers []string
	KafkaTopic   string
}

// DSN returns the pgx connection string for the configured database.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// Load reads the dotenv file at path (a missing file is not an error),
// applies defaults and parses typed values. It does not validate.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	c := &Config{}
	var err error

	// Application config
	c.AppHost = getEnv("APP_HOST", "localhost")
	c.AppPort = getEnv("APP_PORT", "8080")
	c.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	c.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:5173")

	// PostgreSQL config
	c.PGHost = getEnv("POSTGRES_HOST", "localhost")
	c.PGUser = getEnv("POSTGRES_USER", "user")
	c.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	c.PGDB = getEnv("POSTGRES_DB", "screening")
	if c.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return nil, fmt.Errorf("POSTGRES_PORT: %w", err)
	}
	if c.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return nil, fmt.Errorf("POSTGRES_MAX_OPEN_CONNS: %w", err)
	}
	if c.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return nil, fmt.Errorf("POSTGRES_MAX_IDLE_CONNS: %w", err)
	}
	if c.DBPingTimeout, err = time.ParseDuration(getEnv("DB_PING_TIMEOUT", "2s")); err != nil {
		return nil, fmt.Errorf("DB_PING_TIMEOUT: %w", err)
	}

	// JWT config
	c.JWTSecret = getEnv("JWT_SECRET", "")
	if c.JWTExp, err = time.ParseDuration(getEnv("JWT_EXP", "168h")); err != nil {
		return nil, fmt.Errorf("JWT_EXP: %w", err)
	}

	// Upload config
	c.StorageDriver = strings.ToLower(getEnv("STORAGE_DRIVER", StorageDisk))
	c.UploadDir = getEnv("UPLOAD_DIR", "uploads")
	if c.UploadMaxBytes, err = strconv.ParseInt(getEnv("UPLOAD_MAX_BYTES", "52428800"), 10, 64); err != nil {
		return nil, fmt.Errorf("UPLOAD_MAX_BYTES: %w", err)
	}

	// S3 config
	c.S3Bucket = getEnv("S3_BUCKET", "xrays")
	c.S3Region = getEnv("S3_REGION", "us-east-1")
	c.S3Endpoint = getEnv("S3_ENDPOINT", "")
	c.S3AccessKey = getEnv("S3_ACCESS_KEY", "")
	c.S3SecretKey = getEnv("S3_SECRET_KEY", "")
	if c.S3PresignExpiry, err = time.ParseDuration(getEnv("S3_PRESIGN_EXPIRY", "15m")); err != nil {
		return nil, fmt.Errorf("S3_PRESIGN_EXPIRY: %w", err)
	}

	// Inference config
	c.InferenceURL = strings.TrimRight(getEnv("INFERENCE_URL", "http://localhost:8000"), "/")
	if c.InferenceTimeout, err = time.ParseDuration(getEnv("INFERENCE_TIMEOUT", "30s")); err != nil {
		return nil, fmt.Errorf("INFERENCE_TIMEOUT: %w", err)
	}

	// Classifier config
	if c.ClassifierThreshold, err = strconv.ParseFloat(getEnv("CLASSIFIER_THRESHOLD", "0.6"), 64); err != nil {
		return nil, fmt.Errorf("CLASSIFIER_THRESHOLD: %w", err)
	}
	c.ClassifierLabelPneumonia = getEnv("CLASSIFIER_LABEL_PNEUMONIA", "PNEUMONIA")
	c.ClassifierLabelTB = getEnv("CLASSIFIER_LABEL_TB", "TUBERCULOSIS")
	c.ClassifierConfidenceScale = strings.ToLower(getEnv("CLASSIFIER_CONFIDENCE_SCALE", "percent"))

	// Kafka config
	c.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	c.KafkaTopic = getEnv("KAFKA_TOPIC", "predictions")

	return c, nil
}

// Validate reports configuration that must stop the process at startup.
func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is not set"))
	}
	if c.JWTExp <= 0 {
		errs = append(errs, errors.New("JWT_EXP must be positive"))
	}
	if c.ClassifierThreshold < 0 || c.ClassifierThreshold > 1 {
		errs = append(errs, fmt.Errorf("CLASSIFIER_THRESHOLD must be within [0,1], got %v", c.ClassifierThreshold))
	}
	if c.ClassifierConfidenceScale != "percent" && c.ClassifierConfidenceScale != "fraction" {
		errs = append(errs, fmt.Errorf("CLASSIFIER_CONFIDENCE_SCALE must be percent or fraction, got %q", c.ClassifierConfidenceScale))
	}
	if c.UploadMaxBytes <= 0 {
		errs = append(errs, errors.New("UPLOAD_MAX_BYTES must be positive"))
	}
	if c.InferenceTimeout <= 0 {
		errs = append(errs, errors.New("INFERENCE_TIMEOUT must be positive"))
	}
	switch c.StorageDriver {
	case StorageDisk:
	case StorageS3:
		if c.S3Bucket == "" {
			errs = append(errs, errors.New("S3_BUCKET is required for the s3 storage driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver))
	}
	return errors.Join(errs...)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

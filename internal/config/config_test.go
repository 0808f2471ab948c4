package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_HOST", "APP_PORT", "APP_LOG_LEVEL", "FRONTEND_URL",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"POSTGRES_MAX_OPEN_CONNS", "POSTGRES_MAX_IDLE_CONNS", "DB_PING_TIMEOUT",
	"JWT_SECRET", "JWT_EXP",
	"STORAGE_DRIVER", "UPLOAD_DIR", "UPLOAD_MAX_BYTES",
	"S3_BUCKET", "S3_REGION", "S3_ENDPOINT", "S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_PRESIGN_EXPIRY",
	"INFERENCE_URL", "INFERENCE_TIMEOUT",
	"CLASSIFIER_THRESHOLD", "CLASSIFIER_LABEL_PNEUMONIA", "CLASSIFIER_LABEL_TB", "CLASSIFIER_CONFIDENCE_SCALE",
	"KAFKA_BROKERS", "KAFKA_TOPIC",
}

// clearEnv blanks every key Load reads; blank values fall back to defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := Load("nonexistent.env")
	require.NoError(t, err)

	expected := &Config{
		AppHost:                   "localhost",
		AppPort:                   "8080",
		LogLevel:                  "info",
		FrontendURL:               "http://localhost:5173",
		PGHost:                    "localhost",
		PGPort:                    5432,
		PGUser:                    "user",
		PGPassword:                "password",
		PGDB:                      "screening",
		PGMaxOpenConns:            16,
		PGMaxIdleConns:            8,
		DBPingTimeout:             2 * time.Second,
		JWTExp:                    7 * 24 * time.Hour,
		StorageDriver:             StorageDisk,
		UploadDir:                 "uploads",
		UploadMaxBytes:            50 << 20,
		S3Bucket:                  "xrays",
		S3Region:                  "us-east-1",
		S3PresignExpiry:           15 * time.Minute,
		InferenceURL:              "http://localhost:8000",
		InferenceTimeout:          30 * time.Second,
		ClassifierThreshold:       0.6,
		ClassifierLabelPneumonia:  "PNEUMONIA",
		ClassifierLabelTB:         "TUBERCULOSIS",
		ClassifierConfidenceScale: "percent",
		KafkaTopic:                "predictions",
	}
	assert.Empty(t, cmp.Diff(expected, c))
}

func TestLoad_FromFileAndEnv(t *testing.T) {
	clearEnv(t)
	for _, k := range configKeys {
		// godotenv.Load never overrides variables that already exist, even blank ones.
		require.NoError(t, os.Unsetenv(k))
	}
	t.Cleanup(func() {
		for _, k := range configKeys {
			os.Unsetenv(k)
		}
	})

	path := filepath.Join(t.TempDir(), "config.env")
	content := "JWT_SECRET=from-file\nAPP_PORT=9090\nCLASSIFIER_CONFIDENCE_SCALE=Fraction\nINFERENCE_URL=http://model:5000/\nKAFKA_BROKERS=k1:9092, k2:9092\nSTORAGE_DRIVER=S3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	require.NoError(t, os.Setenv("APP_PORT", "7070"))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", c.JWTSecret)
	assert.Equal(t, "7070", c.AppPort, "process environment wins over the file")
	assert.Equal(t, "http://model:5000", c.InferenceURL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.KafkaBrokers)
	assert.Equal(t, StorageS3, c.StorageDriver)
	assert.Equal(t, "fraction", c.ClassifierConfidenceScale)
	assert.Equal(t, "localhost:7070", c.Addr())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"POSTGRES_PORT", "not-a-port"},
		{"DB_PING_TIMEOUT", "soon"},
		{"JWT_EXP", "7days"},
		{"UPLOAD_MAX_BYTES", "fifty"},
		{"INFERENCE_TIMEOUT", "x"},
		{"CLASSIFIER_THRESHOLD", "high"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			c, err := Load("nonexistent.env")
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
			assert.Nil(t, c)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			JWTSecret:           "secret",
			JWTExp:              time.Hour,
			ClassifierThreshold: 0.6,
			UploadMaxBytes:      1,
			InferenceTimeout:    time.Second,
			StorageDriver:       StorageDisk,
			S3Bucket:            "b",

			ClassifierConfidenceScale: "percent",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing secret", mutate: func(c *Config) { c.JWTSecret = "" }, wantErr: "JWT_SECRET"},
		{name: "threshold above one", mutate: func(c *Config) { c.ClassifierThreshold = 1.5 }, wantErr: "CLASSIFIER_THRESHOLD"},
		{name: "fraction scale", mutate: func(c *Config) { c.ClassifierConfidenceScale = "fraction" }},
		{name: "unknown confidence scale", mutate: func(c *Config) { c.ClassifierConfidenceScale = "auto" }, wantErr: "CLASSIFIER_CONFIDENCE_SCALE"},
		{name: "unknown driver", mutate: func(c *Config) { c.StorageDriver = "ftp" }, wantErr: "STORAGE_DRIVER"},
		{name: "s3 without bucket", mutate: func(c *Config) { c.StorageDriver = StorageS3; c.S3Bucket = "" }, wantErr: "S3_BUCKET"},
		{name: "zero timeout", mutate: func(c *Config) { c.InferenceTimeout = 0 }, wantErr: "INFERENCE_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	c := &Config{PGUser: "u", PGPassword: "p", PGHost: "db", PGPort: 5433, PGDB: "screening"}
	assert.Equal(t, "postgres://u:p@db:5433/screening?sslmode=disable", c.DSN())
}

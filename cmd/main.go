package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-chest-screening/internal/config"
	"github.com/sbilibin2017/gw-chest-screening/internal/facades"
	"github.com/sbilibin2017/gw-chest-screening/internal/handlers"
	"github.com/sbilibin2017/gw-chest-screening/internal/jwt"
	"github.com/sbilibin2017/gw-chest-screening/internal/logger"
	"github.com/sbilibin2017/gw-chest-screening/internal/middlewares"
	"github.com/sbilibin2017/gw-chest-screening/internal/repositories"
	"github.com/sbilibin2017/gw-chest-screening/internal/services"
	"github.com/sbilibin2017/gw-chest-screening/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-chest-screening/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-chest-screening API
// @version 1.0.0
// @description Chest X-ray screening service: accounts, image upload, pneumonia and tuberculosis screening through an inference backend, prediction history
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads and validates the configuration.
// A missing JWT secret stops the service here.
func parseConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// imageStore is what both storage backends provide.
type imageStore interface {
	services.FileSaver
	services.FileStorage
}

// newImageStore selects the storage backend. presigner is nil for disk.
func newImageStore(ctx context.Context, cfg *config.Config) (imageStore, services.Presigner, error) {
	switch cfg.StorageDriver {
	case config.StorageS3:
		s, err := storage.NewS3Storage(ctx, storage.S3Config{
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			PresignExpiry: cfg.S3PresignExpiry,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("s3 storage: %w", err)
		}
		return s, s, nil
	case config.StorageDisk:
		s, err := storage.NewDiskStorage(cfg.UploadDir)
		if err != nil {
			return nil, nil, fmt.Errorf("disk storage: %w", err)
		}
		return s, nil, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

// newKafkaWriter returns nil when no brokers are configured.
func newKafkaWriter(cfg *config.Config) *kafka.Writer {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	}
}

var localhostOrigin = regexp.MustCompile(`^https?://localhost(:\d+)?$`)

// allowOrigin accepts the configured frontend and any localhost origin.
func allowOrigin(frontendURL string) func(r *http.Request, origin string) bool {
	frontendURL = strings.TrimRight(frontendURL, "/")
	return func(r *http.Request, origin string) bool {
		return origin == frontendURL || localhostOrigin.MatchString(origin)
	}
}

// newRouter mounts every route on a chi router.
func newRouter(
	cfg *config.Config,
	tokens middlewares.Tokener,
	health *repositories.HealthRepository,
	authService *services.AuthService,
	predictionService *services.PredictionService,
	maxUploadBytes int64,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  allowOrigin(cfg.FrontendURL),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	userID := handlers.UserIDGetter(middlewares.UserIDFromContext)
	dbReady := middlewares.DBReadyMiddleware(health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.NewHealthHandler(health))
		r.Get("/ready", handlers.NewReadyHandler(health))

		r.Route("/auth", func(r chi.Router) {
			r.With(dbReady).Post("/signup", handlers.NewSignupHandler(authService))
			r.With(dbReady).Post("/login", handlers.NewLoginHandler(authService))
			r.With(middlewares.AuthMiddleware(tokens)).Get("/me", handlers.NewMeHandler(authService, userID))
		})

		r.Route("/predictions", func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens))
			r.Post("/", handlers.NewCreatePredictionHandler(predictionService, maxUploadBytes, userID))
			r.Get("/", handlers.NewListPredictionsHandler(predictionService, userID))
			r.Get("/{id}", handlers.NewGetPredictionHandler(predictionService, userID))
			r.Get("/{id}/image", handlers.NewPredictionImageHandler(predictionService, userID))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.Addr())),
	))

	return r
}

// run initializes the logger, database, storage, inference client and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DSN())
	if err != nil {
		return fmt.Errorf("postgres connect: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.RunMigrations(ctx, db.DB); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	images, presigner, err := newImageStore(ctx, cfg)
	if err != nil {
		return err
	}
	log.Infow("Image storage ready", "driver", cfg.StorageDriver)

	var kafkaWriter services.KafkaWriter
	if w := newKafkaWriter(cfg); w != nil {
		kafkaWriter = w
		defer w.Close()
		log.Infow("Kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecret),
		jwt.WithExpiration(cfg.JWTExp),
	)

	// Repositories
	health := repositories.NewHealthRepository(db, cfg.DBPingTimeout)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	predictionReadRepo := repositories.NewPredictionReadRepository(db)
	predictionWriteRepo := repositories.NewPredictionWriteRepository(db)

	// Services
	uploadService := services.NewUploadService(images, cfg.UploadMaxBytes)
	inference := facades.NewInferenceHTTPFacade(cfg.InferenceURL, cfg.InferenceTimeout, images)
	classifier := services.NewThresholdClassifier(
		cfg.ClassifierThreshold,
		cfg.ClassifierLabelPneumonia,
		cfg.ClassifierLabelTB,
		services.WithConfidenceScale(services.ConfidenceScale(cfg.ClassifierConfidenceScale)),
	)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	predictionService := services.NewPredictionService(
		predictionReadRepo,
		predictionWriteRepo,
		uploadService,
		inference,
		classifier,
		images,
		presigner,
		kafkaWriter,
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(cfg, tokens, health, authService, predictionService, uploadService.MaxBytes()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/strokesecure/stroke-records/internal/classifier"
	"github.com/strokesecure/stroke-records/internal/handlers"
	"github.com/strokesecure/stroke-records/internal/jwt"
	"github.com/strokesecure/stroke-records/internal/logger"
	"github.com/strokesecure/stroke-records/internal/middlewares"
	"github.com/strokesecure/stroke-records/internal/repositories"
	"github.com/strokesecure/stroke-records/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title stroke-records API
// @version 1.0.0
// @description Records-management service for stroke patients with an embedded risk-scoring step
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		mongoURI, mongoDB,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		modelPath, cacheTTLSecond,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		mongoURI, mongoDB,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		modelPath, cacheTTLSecond,
		jwtSecret, jwtExp,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, model, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	mongoURI, mongoDB string,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers, kafkaTopic string,
	modelPath string, cacheTTLSecond int,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config (credentials store)
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "auth")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// MongoDB config (patient store)
	mongoURI = getEnv("MONGO_URI", "mongodb://localhost:27017")
	mongoDB = getEnv("MONGO_DB", "stroke_db")

	// Redis config (verdict cache)
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if cacheTTLSecond, err = strconv.Atoi(getEnv("VERDICT_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	// Kafka config (assessment audit trail); empty brokers disable publishing
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "risk-assessments")

	// Model config
	modelPath = getEnv("MODEL_PATH", "model/stroke_model.json")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, the two stores, the verdict cache, the Kafka
// writer, and the HTTP server. It sets up routes, applies middleware, and
// handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	mongoURI, mongoDBName string,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers, kafkaTopic string,
	modelPath string, cacheTTLSecond int,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL (credentials store)
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Connect to MongoDB (patient store)
	mongoCtx, cancelMongo := context.WithTimeout(ctx, 10*time.Second)
	defer cancelMongo()
	mongoClient, err := mongo.Connect(mongoCtx, mongooptions.Client().ApplyURI(mongoURI))
	if err != nil {
		logger.Log.Errorw("MongoDB connection error", "error", err)
		return err
	}
	defer mongoClient.Disconnect(ctx)
	if err := mongoClient.Ping(mongoCtx, nil); err != nil {
		logger.Log.Errorw("MongoDB ping failed", "error", err)
		return err
	}
	patientDB := mongoClient.Database(mongoDBName)

	// Connect to Redis (verdict cache)
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for assessment events; nil when publishing is disabled
	var kafkaWriter services.KafkaWriter
	if kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Risk model: lazily loaded on the first predict call
	model := classifier.New(modelPath)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	patientRepo := repositories.NewPatientRepository(patientDB)
	verdictCache := repositories.NewVerdictCacheRepository(rdb, time.Duration(cacheTTLSecond)*time.Second)

	// Credentials table is created idempotently on every start
	if err := userWriteRepo.Bootstrap(ctx); err != nil {
		logger.Log.Errorw("failed to bootstrap credentials store", "error", err)
		return err
	}

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	patientService := services.NewPatientService(patientRepo, patientRepo, verdictCache)
	riskService := services.NewRiskService(patientRepo, model, patientRepo, verdictCache, kafkaWriter)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	patientCreateHandler := handlers.NewPatientCreateHandler(patientService)
	patientListHandler := handlers.NewPatientListHandler(patientService)
	patientGetHandler := handlers.NewPatientGetHandler(patientService)
	patientUpdateHandler := handlers.NewPatientUpdateHandler(patientService)
	patientDeleteHandler := handlers.NewPatientDeleteHandler(patientService)
	predictHandler := handlers.NewPredictHandler(riskService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes; registration runs inside one transaction so the
	// exists-check and insert commit together
	r.With(middlewares.TxMiddleware(db)).Post("/register", registerHandler)
	r.Post("/login", loginHandler)

	// Protected routes: every patient-affecting operation sits behind the gate
	authMiddleware := middlewares.AuthMiddleware(jwtSvc)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/patients", patientListHandler)
		r.Post("/patients", patientCreateHandler)
		r.Get("/patients/{id}", patientGetHandler)
		r.Put("/patients/{id}", patientUpdateHandler)
		r.Delete("/patients/{id}", patientDeleteHandler)
		r.Post("/patients/{id}/predict", predictHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

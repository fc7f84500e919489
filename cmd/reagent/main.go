package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/labflow/reagent-inventory/docs"
	"github.com/labflow/reagent-inventory/internal/reagent"
	httpDelivery "github.com/labflow/reagent-inventory/internal/reagent/delivery/http"
	"github.com/labflow/reagent-inventory/internal/reagent/domain"
	"github.com/labflow/reagent-inventory/internal/reagent/usecase/command"
	"github.com/labflow/reagent-inventory/internal/recognition"
	"github.com/labflow/reagent-inventory/internal/scan"
	"github.com/labflow/reagent-inventory/kafka"
	"github.com/labflow/reagent-inventory/pkg/database"
	"github.com/labflow/reagent-inventory/pkg/logger"
	"github.com/labflow/reagent-inventory/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "reagent-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Msg("Starting reagent service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Connect to database
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "reagentdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := db.AutoMigrate(&domain.Reagent{}); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Kafka publisher is optional: without a broker the service still
	// serves, it just emits no events.
	var publisher command.EventPublisher
	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	if kafkaPublisher, err := kafka.NewPublisher(brokers); err != nil {
		logger.Logger.Warn().Err(err).Strs("brokers", brokers).
			Msg("Kafka unavailable, inventory events disabled")
	} else {
		publisher = kafkaPublisher
		defer kafkaPublisher.Close()
	}

	// Recognition client and scan coordinator
	recognizerURL := getEnv("RECOGNIZER_URL", "http://localhost:8084")
	recognitionTimeout := getDurationEnv("RECOGNITION_TIMEOUT_SECONDS", 30)
	recognizer := recognition.NewClient(recognizerURL, recognitionTimeout)
	coordinator := scan.NewCoordinator(recognizer, recognitionTimeout)

	logger.Logger.Info().
		Str("recognizer_url", recognizerURL).
		Dur("recognition_timeout", recognitionTimeout).
		Msg("Scan coordinator initialized")

	// Initialize handler with Wire DI
	handler, err := reagent.InitializeHTTPHandler(db, publisher, coordinator)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	// Setup router
	router := mux.NewRouter()

	middlewareConfig := httpDelivery.DefaultMiddlewareConfig()
	httpDelivery.RegisterMiddlewares(router, middlewareConfig)

	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router, sqlDB)
	httpDelivery.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	router.Handle("/metrics", promhttp.Handler())

	httpPort := getEnv("HTTP_PORT", "8082")
	server := &http.Server{
		Addr:    ":" + httpPort,
		Handler: httpDelivery.SetupCORS(middlewareConfig)(router),
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultSeconds int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return time.Duration(defaultSeconds) * time.Second
}

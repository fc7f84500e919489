package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/labflow/reagent-inventory/internal/alert"
	"github.com/labflow/reagent-inventory/kafka"
	"github.com/labflow/reagent-inventory/pkg/database"
	"github.com/labflow/reagent-inventory/pkg/logger"
)

// The alerter consumes inventory events, logs low-stock warnings and
// keeps an alert history so a lab can act before a reagent runs out.
// It never modifies the inventory records themselves.
func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "alerter-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	// Alert history is optional: without a database the alerter still
	// logs warnings, it just keeps no record of them.
	var store *alert.Store
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "reagentdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
	if db, err := database.NewPostgresConnection(dbConfig); err != nil {
		logger.Logger.Warn().Err(err).Msg("Database unavailable, alert history disabled")
	} else {
		defer db.Close()
		store = alert.NewStore(db)
		if err := store.EnsureSchema(context.Background()); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to prepare alert history")
		}
	}

	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	groupID := getEnv("KAFKA_GROUP_ID", "reagent-alerter")

	consumer, err := kafka.NewConsumer(brokers, groupID, []string{
		kafka.TopicReagentLow,
		kafka.TopicReagentSaved,
	})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}
	defer consumer.Close()

	consumer.RegisterHandler(kafka.EventTypeReagentLow, func(ctx context.Context, payload []byte) error {
		event, err := kafka.DecodeReagentLow(payload)
		if err != nil {
			return err
		}

		logger.Warn(ctx).
			Uint("reagent_id", event.ReagentID).
			Str("name", event.Name).
			Str("location", event.Location).
			Int("remaining", event.Remaining).
			Msg("LOW STOCK: reagent is running out")

		if store != nil {
			if err := store.RecordLow(ctx, event.ReagentID, event.Name, event.Location, event.Remaining); err != nil {
				logger.Error(ctx).Err(err).Uint("reagent_id", event.ReagentID).Msg("Failed to record alert")
			}
		}
		return nil
	})

	consumer.RegisterHandler(kafka.EventTypeReagentSaved, func(ctx context.Context, payload []byte) error {
		event, err := kafka.DecodeReagentSaved(payload)
		if err != nil {
			return err
		}

		logger.Info(ctx).
			Uint("reagent_id", event.ReagentID).
			Str("name", event.Name).
			Str("status", event.Status).
			Bool("created", event.Created).
			Msg("Reagent saved")
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start consumer")
	}

	logger.Logger.Info().Msg("Alerter started, waiting for events")

	// Small HTTP surface for probes and alert review.
	app := fiber.New(fiber.Config{AppName: "Alerter Service"})
	app.Use(recover.New())
	app.Use(requestid.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "message": "Alerter service is healthy"})
	})

	app.Get("/alerts", func(c *fiber.Ctx) error {
		if store == nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "alert history is disabled",
			})
		}

		limit, err := strconv.Atoi(c.Query("limit", "50"))
		if err != nil || limit <= 0 || limit > 500 {
			limit = 50
		}

		entries, err := store.Recent(c.UserContext(), limit)
		if err != nil {
			logger.Error(c.UserContext()).Err(err).Msg("Failed to load alerts")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load alerts",
			})
		}

		return c.JSON(fiber.Map{"success": true, "data": entries})
	})

	port := getEnv("HTTP_PORT", "8086")
	go func() {
		if err := app.Listen(":" + port); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start alerter HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down alerter...")
	if err := app.Shutdown(); err != nil {
		logger.Logger.Error().Err(err).Msg("Alerter shutdown failed")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package main

import (
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/labflow/reagent-inventory/pkg/logger"
)

// labelGuess mirrors the recognition call contract consumed by the
// reagent service.
type labelGuess struct {
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	IsStock   bool   `json:"is_stock"`
	Remaining int    `json:"remaining"`
}

// The recognizer is a development stand-in for a real OCR backend. It
// waits for a configurable delay to simulate analysis and returns a fixed
// guess, which is enough to exercise the whole scan path end to end.
func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "recognizer-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	analysisDelay := getDurationMsEnv("ANALYSIS_DELAY_MS", 2000)

	app := fiber.New(fiber.Config{
		AppName:      "Recognizer Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    10 << 20,
	})

	app.Use(recover.New())
	app.Use(requestid.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "message": "Recognizer service is healthy"})
	})

	app.Post("/api/recognize", func(c *fiber.Ctx) error {
		file, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "no file supplied",
			})
		}

		upload, err := file.Open()
		if err != nil {
			logger.Logger.Error().Err(err).Str("filename", file.Filename).Msg("Failed to open upload")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "analysis failed",
			})
		}
		upload.Close()

		logger.Logger.Info().
			Str("filename", file.Filename).
			Int64("size", file.Size).
			Msg("Analyzing label image")

		// Simulated analysis time.
		time.Sleep(analysisDelay)

		return c.JSON(labelGuess{
			Name:      "Phosphate-Buffered Saline (PBS)",
			Brand:     "Gibco",
			IsStock:   true,
			Remaining: 100,
		})
	})

	port := getEnv("HTTP_PORT", "8084")
	go func() {
		logger.Logger.Info().
			Str("port", port).
			Dur("analysis_delay", analysisDelay).
			Msg("Recognizer service started")

		if err := app.Listen(":" + port); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start recognizer service")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down recognizer service...")
	if err := app.Shutdown(); err != nil {
		logger.Logger.Error().Err(err).Msg("Recognizer shutdown failed")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationMsEnv(key string, defaultMs int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if ms, err := strconv.Atoi(value); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return time.Duration(defaultMs) * time.Millisecond
}

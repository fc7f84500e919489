package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/labflow/reagent-inventory/api-gateway/config"
	"github.com/labflow/reagent-inventory/api-gateway/health"
	"github.com/labflow/reagent-inventory/api-gateway/middleware"
	"github.com/labflow/reagent-inventory/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix      string
	ServiceName string
	Description string
}

// Routes holds all route definitions
var Routes = []RouteDefinition{
	{
		Prefix:      "/api/reagents",
		ServiceName: "reagent",
		Description: "Reagent inventory: list, search, create, edit, delete and label scans",
	},
	{
		Prefix:      "/api/recognize",
		ServiceName: "recognizer",
		Description: "Direct label recognition (development access to the OCR stand-in)",
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig, cbManager *middleware.CircuitBreakerManager, redisClient *redis.Client) {
	reverseProxy := proxy.NewReverseProxy(cfg)
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe (for Kubernetes)
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks downstream services)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllServices(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// Detailed service health checks
	app.Get("/health/services", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllServices(ctx)
		return c.JSON(healthStatus)
	})

	// Circuit breaker and load balancer stats
	app.Get("/gateway/stats", func(c *fiber.Ctx) error {
		lbStats := make(map[string]interface{})
		for name, lb := range reverseProxy.GetLoadBalancers() {
			lbStats[name] = lb.GetStats()
		}

		return c.JSON(fiber.Map{
			"circuit_breakers": cbManager.GetAllStats(),
			"load_balancers":   lbStats,
		})
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Reagent Inventory Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	// Scan uploads get a tighter budget than ordinary reads
	if redisClient != nil {
		app.Post("/api/reagents/scan", middleware.ScanRateLimiter(redisClient), func(c *fiber.Ctx) error {
			return reverseProxy.ProxyRequest(c, "reagent")
		})
	}

	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy)
	}
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy) {
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	group := app.Group(route.Prefix)
	group.All("/*", handler)

	// Also handle the exact prefix path (without /*)
	app.All(route.Prefix, handler)
}

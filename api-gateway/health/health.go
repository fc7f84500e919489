package health

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/labflow/reagent-inventory/api-gateway/config"
	"github.com/labflow/reagent-inventory/pkg/logger"
)

// ServiceHealth represents the health status of a service
type ServiceHealth struct {
	Name      string        `json:"name"`
	Status    string        `json:"status"` // healthy, degraded, unhealthy
	Instances []string      `json:"instances"`
	Healthy   int           `json:"healthy_instances"`
	Latency   time.Duration `json:"latency_ms"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// GatewayHealth represents the overall gateway health
type GatewayHealth struct {
	Gateway  string                   `json:"gateway"`
	Status   string                   `json:"status"` // healthy, degraded, unhealthy
	Services map[string]ServiceHealth `json:"services"`
	Uptime   time.Duration            `json:"uptime_seconds"`
}

// HealthChecker checks health of downstream services
type HealthChecker struct {
	config    *config.GatewayConfig
	client    *http.Client
	startTime time.Time
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(cfg *config.GatewayConfig) *HealthChecker {
	return &HealthChecker{
		config: cfg,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		startTime: time.Now(),
	}
}

// CheckService checks health of every instance of a single service
func (h *HealthChecker) CheckService(ctx context.Context, name string, svc config.ServiceConfig) ServiceHealth {
	start := time.Now()

	result := ServiceHealth{
		Name:      name,
		Instances: svc.Instances,
		Timestamp: time.Now(),
	}

	for _, instance := range svc.Instances {
		if err := h.checkInstance(ctx, instance+svc.HealthCheck); err != nil {
			if result.Error == "" {
				result.Error = err.Error()
			}
			continue
		}
		result.Healthy++
	}

	result.Latency = time.Since(start)

	switch {
	case result.Healthy == len(svc.Instances) && result.Healthy > 0:
		result.Status = "healthy"
	case result.Healthy > 0:
		result.Status = "degraded"
	default:
		result.Status = "unhealthy"
	}

	return result
}

// checkInstance probes a single instance health endpoint
func (h *HealthChecker) checkInstance(ctx context.Context, healthURL string) error {
	req, err := http.NewRequestWithContext(ctx, "GET", healthURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// CheckAllServices checks health of all downstream services
func (h *HealthChecker) CheckAllServices(ctx context.Context) GatewayHealth {
	services := make(map[string]ServiceHealth)
	var wg sync.WaitGroup
	var mu sync.Mutex

	// Check all services concurrently
	for name, svc := range h.config.Services {
		wg.Add(1)
		go func(n string, s config.ServiceConfig) {
			defer wg.Done()
			health := h.CheckService(ctx, n, s)

			mu.Lock()
			services[n] = health
			mu.Unlock()

			if health.Status == "healthy" {
				logger.Logger.Debug().
					Str("service", n).
					Str("status", health.Status).
					Dur("latency", health.Latency).
					Msg("Service health check")
			} else {
				logger.Logger.Warn().
					Str("service", n).
					Str("status", health.Status).
					Str("error", health.Error).
					Msg("Service health check failed")
			}
		}(name, svc)
	}

	wg.Wait()

	return GatewayHealth{
		Gateway:  "api-gateway",
		Status:   h.determineOverallStatus(services),
		Services: services,
		Uptime:   time.Since(h.startTime),
	}
}

// determineOverallStatus determines the overall health status
func (h *HealthChecker) determineOverallStatus(services map[string]ServiceHealth) string {
	healthyCount := 0
	totalCount := len(services)

	for _, svc := range services {
		if svc.Status == "healthy" {
			healthyCount++
		}
	}

	if healthyCount == totalCount {
		return "healthy"
	} else if healthyCount > 0 {
		return "degraded"
	}
	return "unhealthy"
}

// QuickCheck performs a quick health check (just gateway itself)
func (h *HealthChecker) QuickCheck() map[string]interface{} {
	return map[string]interface{}{
		"status":    "healthy",
		"gateway":   "api-gateway",
		"uptime":    time.Since(h.startTime).Seconds(),
		"timestamp": time.Now(),
	}
}

package config

import (
	"os"
	"strings"
	"time"
)

// ServiceConfig holds configuration for a backend service
type ServiceConfig struct {
	Name        string
	Instances   []string
	Timeout     time.Duration
	HealthCheck string
}

// GatewayConfig holds the main gateway configuration
type GatewayConfig struct {
	Port     string
	Services map[string]ServiceConfig
}

// LoadConfig loads the gateway configuration
func LoadConfig() *GatewayConfig {
	return &GatewayConfig{
		Port: getEnv("GATEWAY_PORT", "8000"),
		Services: map[string]ServiceConfig{
			"reagent": {
				Name:        "reagent-service",
				Instances:   getInstances("REAGENT_SERVICE_URLS", "http://localhost:8082"),
				Timeout:     30 * time.Second,
				HealthCheck: "/health",
			},
			"recognizer": {
				Name:        "recognizer-service",
				Instances:   getInstances("RECOGNIZER_SERVICE_URLS", "http://localhost:8084"),
				Timeout:     60 * time.Second,
				HealthCheck: "/health",
			},
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getInstances reads a comma-separated list of instance URLs
func getInstances(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)

	var instances []string
	for _, url := range strings.Split(raw, ",") {
		url = strings.TrimSpace(url)
		if url != "" {
			instances = append(instances, strings.TrimRight(url, "/"))
		}
	}
	return instances
}

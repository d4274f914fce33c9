// Package config reads service configuration from environment variables.
package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the back-office service.
type Config struct {
	Port string

	// Database settings. An empty DatabaseURL is allowed: the service
	// starts with a disconnected store and serves degraded responses.
	DatabaseURL    string
	MigrationsPath string

	// Stripe settings
	StripeWebhookSecret string

	// Client portal settings
	PortalTTLHours int
}

// Load reads configuration from environment variables with sensible
// defaults.
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),

		DatabaseURL:    getEnv("DATABASE_URL", ""),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),

		StripeWebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),

		PortalTTLHours: getEnvInt("PORTAL_TTL_HOURS", 168),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

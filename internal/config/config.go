package config

import "os"

// Config holds service configuration read from the environment.
type Config struct {
	Port           string
	DatabaseURL    string
	DatabaseName   string
	RabbitURI      string
	RabbitExchange string
}

// Load reads configuration from environment variables. An empty DatabaseURL
// means the service runs without a store and serves fallback content.
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8000"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DatabaseName:   getEnv("DATABASE_NAME", "snaplearn"),
		RabbitURI:      os.Getenv("RABBITMQ_URI"),
		RabbitExchange: os.Getenv("RABBITMQ_EXCHANGE"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

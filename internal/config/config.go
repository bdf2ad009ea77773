package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the simulator configuration
type Config struct {
	MaxPrincipal    float64
	MaxParcels      int
	MaxRate         float64
	HistoryLimit    int
	OTELEndpoint    string
	OTELServiceName string
	LogLevel        string
	LogFormat       string
}

// LoadConfig reads configuration from the environment
func LoadConfig() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		MaxPrincipal:    getEnvFloat("MAX_PRINCIPAL", 1e9),
		MaxParcels:      getEnvInt("MAX_PARCELS", 36),
		MaxRate:         getEnvFloat("MAX_RATE", 1000),
		HistoryLimit:    getEnvInt("HISTORY_LIMIT", 50),
		OTELEndpoint:    getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName: getEnvString("OTEL_SERVICE_NAME", "fine-loan-simulator"),
		LogLevel:        getEnvString("LOG_LEVEL", "INFO"),
		LogFormat:       getEnvString("LOG_FORMAT", "text"),
	}

	return cfg, nil
}

// Default returns the built-in limits without touching the environment
func Default() *Config {
	return &Config{
		MaxPrincipal:    1e9,
		MaxParcels:      36,
		MaxRate:         1000,
		HistoryLimit:    50,
		OTELServiceName: "fine-loan-simulator",
		LogLevel:        "INFO",
		LogFormat:       "text",
	}
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

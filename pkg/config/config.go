package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string

	// DatabaseURL selects the storage strategy for the whole platform:
	// set -> remote Postgres backend, empty -> local persistent store.
	DatabaseURL string

	JWTSecret string
	JWTExpiry int64

	GeminiAPIKey string

	DataDir        string
	LocalLatencyMs int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiry:      getEnvAsInt64("JWT_EXPIRY", 24*60*60), // 24 hours
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		DataDir:        getEnv("DATA_DIR", "./data"),
		LocalLatencyMs: getEnvAsInt64("LOCAL_LATENCY_MS", 400),
	}

	return config, nil
}

// UseRemoteBackend reports whether the remote relational strategy is active.
func (c *Config) UseRemoteBackend() bool {
	return c.DatabaseURL != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

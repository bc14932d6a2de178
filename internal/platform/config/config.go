package config

import (
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultDatabaseName = "messageBoard"

type Config struct {
	Port     string
	MongoURL string
	// MongoDatabase is derived from the MongoURL path segment.
	MongoDatabase string

	BcryptCost       int
	MessageListLimit int64

	ReadinessInterval time.Duration
	ShutdownTimeout   time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, relying on environment variables")
	}

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		MongoURL:          getEnv("MONGO_URL", "mongodb://localhost/messageBoard"),
		BcryptCost:        getEnvAsInt("BCRYPT_COST", 10),
		MessageListLimit:  int64(getEnvAsInt("MESSAGE_LIST_LIMIT", 100)),
		ReadinessInterval: time.Duration(getEnvAsInt("READINESS_INTERVAL_SECONDS", 5)) * time.Second,
		ShutdownTimeout:   time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 15)) * time.Second,
	}
	cfg.MongoDatabase = databaseName(cfg.MongoURL)
	return cfg
}

// databaseName extracts the database from a connection string like
// mongodb://localhost/messageBoard, falling back to the default when the
// URL carries no path.
func databaseName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return defaultDatabaseName
	}
	name := strings.TrimPrefix(u.Path, "/")
	if name == "" {
		return defaultDatabaseName
	}
	return name
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Package config loads application configuration from environment
// variables. A local .env file is honored when present. Every knob has a
// working default so a dev instance starts with no environment at all: the
// snapshot goes to a local file and the kitchen queue points at a local
// broker.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable.
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Port string // HTTP port to listen on

	CatalogPath string // optional path to a catalog JSON; empty uses the embedded dataset

	SnapshotBackend string // "file", "redis", "mysql" or "memory"
	SnapshotPath    string // blob file path for the file backend

	DBUser string // MySQL username (mysql backend)
	DBPass string // MySQL password (optional)
	DBHost string // MySQL host
	DBPort string // MySQL port
	DBName string // MySQL database name

	AMQPURL string // RabbitMQ URL for kitchen events

	JWTSecret    string // secret used to sign session JWTs
	AccessTTLMin int    // session token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for temporary-password hashing
}

// Load reads the configuration, first merging a .env file into the
// environment when one exists.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:             getEnv("APP_ENV", "dev"),
		Port:            getEnv("APP_PORT", "8080"),
		CatalogPath:     os.Getenv("CATALOG_PATH"),
		SnapshotBackend: getEnv("SNAPSHOT_BACKEND", "file"),
		SnapshotPath:    getEnv("SNAPSHOT_PATH", "data/floor-state.json"),
		DBUser:          getEnv("DB_USER", "root"),
		DBPass:          os.Getenv("DB_PASS"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "3306"),
		DBName:          getEnv("DB_NAME", "moodfood"),
		AMQPURL:         firstEnv("RABBITMQ_URL", "AMQP_URL"),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret"),
		AccessTTLMin:    getEnvInt("ACCESS_TOKEN_TTL_MIN", 12*60),
		BcryptCost:      getEnvInt("BCRYPT_COST", 10),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

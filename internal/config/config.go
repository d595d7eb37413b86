package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Storage (single snapshot slot; driver: memory, file, sql or s3)
	StorageDriver string
	StorageDir    string

	// Database (sql storage driver only, default: sqlite)
	DBDriver     string
	DBConnection string

	// Storage - S3-compatible (s3 storage driver only: MinIO, AWS S3, Cloudflare R2, etc.)
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string // Optional: for S3-compatible services
	S3PathStyle bool   // Forced on when S3Endpoint is set

	// Behaviour
	SimulatedLatency time.Duration // Artificial delay before each repository call
	RefreshInterval  time.Duration // Member list auto-refresh period
	WriteRateLimit   int           // Max write requests per client per minute

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "VibeLoop"),
		AppEnv:  envString("APP_ENV", "development"),
		Port:    envString("PORT", "8090"),

		// Storage
		StorageDriver: envString("STORAGE_DRIVER", "file"),
		StorageDir:    envString("STORAGE_DIR", "./data"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/vibeloop.db?_pragma=journal_mode(WAL)"),

		// S3
		S3Region:    envString("S3_REGION", "us-east-1"),
		S3Bucket:    envString("S3_BUCKET", ""),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""), // Optional: for non-AWS providers
		S3PathStyle: envBool("S3_PATH_STYLE", false),

		// Behaviour
		SimulatedLatency: envDuration("SIMULATED_LATENCY", 300*time.Millisecond),
		RefreshInterval:  envDuration("REFRESH_INTERVAL", 30*time.Second),
		WriteRateLimit:   envInt("WRITE_RATE_LIMIT", 120),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	if cfg.StorageDriver == "s3" {
		validateS3(cfg)
	}

	return cfg
}

// validateS3 ensures the bucket is configured before the s3 driver is used.
func validateS3(cfg *Config) {
	if cfg.S3Bucket == "" {
		slog.Error("s3 storage driver requires S3_BUCKET",
			"hint", "set STORAGE_DRIVER=file for local use")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

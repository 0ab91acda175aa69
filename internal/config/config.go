package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	SiteName        string
	AdminUser       string
	DefaultCurrency string
	MaxPrice        int64
	ItemsPerPage    int
	HomePageItems   int

	StoreBackend string // "file", "redis" or "mongo"
	StoreDir     string
	RedisAddress string
	MongoURI     string
	MongoDB      string
	NATSURL      string

	SessionSecret string

	SMTPHost     string
	SMTPPort     int
	SMTPEmail    string
	SMTPPassword string

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool
}

func Load() (*Config, error) {
	// A missing .env is fine, the environment is the primary source.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env, relying on environment variables")
	}

	cfg := &Config{
		SiteName:        getEnv("SITE_NAME", "NEPALI BAZAR"),
		AdminUser:       getEnv("ADMIN_USER", "sohaum"),
		DefaultCurrency: getEnv("DEFAULT_CURRENCY", "Rs."),
		MaxPrice:        getEnvInt64("MAX_PRICE", 100_000_000),
		ItemsPerPage:    getEnvInt("ITEMS_PER_PAGE", 12),
		HomePageItems:   getEnvInt("HOME_PAGE_ITEMS", 6),

		StoreBackend: getEnv("STORE_BACKEND", "file"),
		StoreDir:     getEnv("STORE_DIR", "data"),
		RedisAddress: getEnv("REDIS_ADDRESS", "localhost:6379"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "nepalibazar"),
		NATSURL:      getEnv("NATS_URL", ""),

		SessionSecret: getEnv("SESSION_SECRET", "dev-session-secret"),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPEmail:    getEnv("SMTP_EMAIL", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinIOBucket:    getEnv("MINIO_BUCKET", "listing-images"),
		MinIOUseSSL:    getEnvBool("MINIO_USE_SSL", false),
	}

	if cfg.SessionSecret == "dev-session-secret" {
		log.Println("Warning: SESSION_SECRET is set to its default insecure value. Set a strong secret in your environment or .env file.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', defaulting to %d. Error: %v", key, raw, fallback, err)
		return fallback
	}
	return value
}

func getEnvInt64(key string, fallback int64) int64 {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', defaulting to %d. Error: %v", key, raw, fallback, err)
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', defaulting to %t. Error: %v", key, raw, fallback, err)
		return fallback
	}
	return value
}

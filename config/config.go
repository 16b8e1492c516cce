package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Corpus backends. The bundle backend serves the flat in-memory index from a
// single artifact file; the postgres backend searches the seeded pgvector
// table.
const (
	CorpusBackendBundle   = "bundle"
	CorpusBackendPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Corpus configuration
	CorpusBackend    string
	CorpusBundlePath string
	CorpusS3Bucket   string
	CorpusS3Key      string

	// Capability provider endpoints
	EncoderURL   string
	GeneratorURL string

	// GenerationTimeout bounds a single fallback generation call
	GenerationTimeout time.Duration

	// Nutrition lookup API
	NutritionAPIURL string
	NutritionAppID  string
	NutritionAppKey string

	// Database configuration (postgres corpus backend and seeding)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string
}

// LoadConfig creates a new Config instance with values from environment
// variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	switch env {
	case CI:
		if err := loadCIConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load CI configuration: %w", err)
		}
	case Development, Test:
		loadDevConfig(cfg)
	case Production:
		loadProdConfig(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadCIConfig loads configuration for CI using ONLY environment variables
func loadCIConfig(cfg *Config) error {
	loadCommonEnv(cfg)

	// CI secrets are injected as TEST_-prefixed environment variables
	cfg.DBPassword = os.Getenv("TEST_DB_PASSWORD")
	cfg.RedisPassword = os.Getenv("TEST_REDIS_PASSWORD")
	cfg.RedisURL = os.Getenv("TEST_REDIS_URL")
	cfg.NutritionAppKey = os.Getenv("TEST_NUTRITION_APP_KEY")

	if cfg.CorpusBackend == CorpusBackendPostgres && cfg.DBPassword == "" {
		return fmt.Errorf("TEST_DB_PASSWORD environment variable is required in CI environment")
	}
	return nil
}

// loadDevConfig loads configuration for development and test environments
// from environment variables with local defaults
func loadDevConfig(cfg *Config) {
	loadCommonEnv(cfg)

	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.NutritionAppKey = os.Getenv("NUTRITION_APP_KEY")

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.ServerHost == "" {
		cfg.ServerHost = "0.0.0.0"
	}
	if cfg.CorpusBundlePath == "" {
		cfg.CorpusBundlePath = "data/corpus_bundle.json"
	}
	if cfg.RedisHost == "" {
		cfg.RedisHost = "localhost"
	}
	if cfg.RedisPort == "" {
		cfg.RedisPort = "6379"
	}
}

// loadProdConfig loads configuration for production; credentials come from
// Docker secrets, the rest from environment variables
func loadProdConfig(cfg *Config) {
	loadCommonEnv(cfg)

	cfg.DBPassword = readSecret("db_password")
	cfg.RedisPassword = readSecret("redis_password")
	cfg.RedisURL = readSecret("redis_url")
	cfg.NutritionAppKey = readSecret("nutrition_app_key")
}

// loadCommonEnv reads the non-secret settings shared by every environment
func loadCommonEnv(cfg *Config) {
	cfg.ServerPort = os.Getenv("SERVER_PORT")
	cfg.ServerHost = os.Getenv("SERVER_HOST")

	cfg.CorpusBackend = os.Getenv("CORPUS_BACKEND")
	if cfg.CorpusBackend == "" {
		cfg.CorpusBackend = CorpusBackendBundle
	}
	cfg.CorpusBundlePath = os.Getenv("CORPUS_BUNDLE_PATH")
	cfg.CorpusS3Bucket = os.Getenv("CORPUS_S3_BUCKET")
	cfg.CorpusS3Key = os.Getenv("CORPUS_S3_KEY")

	cfg.EncoderURL = os.Getenv("ENCODER_URL")
	cfg.GeneratorURL = os.Getenv("GENERATOR_URL")

	cfg.GenerationTimeout = 30 * time.Second
	if v := os.Getenv("GENERATION_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.GenerationTimeout = time.Duration(secs) * time.Second
		}
	}

	cfg.NutritionAPIURL = os.Getenv("NUTRITION_API_URL")
	if cfg.NutritionAPIURL == "" {
		cfg.NutritionAPIURL = "https://api.edamam.com/api/nutrition-data"
	}
	cfg.NutritionAppID = os.Getenv("NUTRITION_APP_ID")

	cfg.DBHost = os.Getenv("DB_HOST")
	cfg.DBPort = os.Getenv("DB_PORT")
	cfg.DBUser = os.Getenv("DB_USER")
	cfg.DBName = os.Getenv("DB_NAME")
	cfg.DBSSLMode = os.Getenv("DB_SSL_MODE")
	if cfg.DBSSLMode == "" {
		cfg.DBSSLMode = "disable"
	}

	cfg.RedisHost = os.Getenv("REDIS_HOST")
	cfg.RedisPort = os.Getenv("REDIS_PORT")
	cfg.RedisDB = 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.RedisDB = db
		}
	}
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

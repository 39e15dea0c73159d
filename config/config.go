package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string
	WebFolder  string

	// Database configuration
	DBDriver    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	DatabaseURL string
	SQLitePath  string

	// MigrationsDir holds the ordered .sql migrations applied after auto-migrate
	MigrationsDir string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Auth configuration. An empty secret accepts opaque tokens that carry
	// the Firebase id directly.
	AuthTokenSecret string

	CORSOrigins []string

	// Scraper configuration
	ScrapeTimeout   time.Duration
	ScrapeCacheTTL  time.Duration
	ScrapeRateLimit int

	// Image storage
	S3Bucket  string
	AWSRegion string

	LogLevel string
}

// DefaultCORSOrigins are the front-ends allowed to call the API
var DefaultCORSOrigins = []string{
	"http://localhost:8080",
	"http://localhost:5173",
	"https://digital-parsley.netlify.app",
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	v := newViper()
	cfg := &Config{}

	// Load configuration based on environment
	switch env {
	case CI:
		if err := loadCIConfig(v, cfg); err != nil {
			return nil, fmt.Errorf("failed to load CI configuration: %w", err)
		}
	case Development, Test:
		if err := loadDevConfig(v, cfg); err != nil {
			return nil, fmt.Errorf("failed to load development configuration: %w", err)
		}
	case Production:
		if err := loadProdConfig(v, cfg); err != nil {
			return nil, fmt.Errorf("failed to load production configuration: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// newViper returns a viper instance bound to the process environment with
// the application defaults
func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("WEB_FOLDER", "web-folder")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "digital_parsley")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("SQLITE_PATH", "digital_parsley.db")
	v.SetDefault("MIGRATIONS_DIR", "migrations")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CORS_ORIGINS", strings.Join(DefaultCORSOrigins, ","))
	v.SetDefault("SCRAPE_TIMEOUT", "10s")
	v.SetDefault("SCRAPE_CACHE_TTL", "24h")
	v.SetDefault("SCRAPE_RATE_LIMIT", 30)
	v.SetDefault("LOG_LEVEL", "info")
	return v
}

// loadCommon fills the settings shared by every environment
func loadCommon(v *viper.Viper, cfg *Config) {
	cfg.ServerPort = v.GetString("SERVER_PORT")
	cfg.ServerHost = v.GetString("SERVER_HOST")
	cfg.WebFolder = v.GetString("WEB_FOLDER")
	cfg.DBDriver = strings.ToLower(v.GetString("DB_DRIVER"))
	cfg.DBHost = v.GetString("DB_HOST")
	cfg.DBPort = v.GetString("DB_PORT")
	cfg.DBUser = v.GetString("DB_USER")
	cfg.DBName = v.GetString("DB_NAME")
	cfg.MigrationsDir = v.GetString("MIGRATIONS_DIR")
	cfg.DBSSLMode = v.GetString("DB_SSL_MODE")
	cfg.DatabaseURL = v.GetString("DATABASE_URL")
	cfg.SQLitePath = v.GetString("SQLITE_PATH")
	cfg.RedisHost = v.GetString("REDIS_HOST")
	cfg.RedisPort = v.GetString("REDIS_PORT")
	cfg.RedisDB = v.GetInt("REDIS_DB")
	cfg.RedisURL = v.GetString("REDIS_URL")
	cfg.CORSOrigins = splitList(v.GetString("CORS_ORIGINS"))
	cfg.ScrapeTimeout = v.GetDuration("SCRAPE_TIMEOUT")
	cfg.ScrapeCacheTTL = v.GetDuration("SCRAPE_CACHE_TTL")
	cfg.ScrapeRateLimit = v.GetInt("SCRAPE_RATE_LIMIT")
	cfg.S3Bucket = v.GetString("S3_BUCKET_NAME")
	cfg.AWSRegion = v.GetString("AWS_REGION")
	cfg.LogLevel = v.GetString("LOG_LEVEL")
}

// loadCIConfig loads configuration for CI environment using ONLY environment variables
func loadCIConfig(v *viper.Viper, cfg *Config) error {
	loadCommon(v, cfg)

	cfg.DBPassword = v.GetString("TEST_DB_PASSWORD")
	if cfg.DBPassword == "" && cfg.DBDriver == "postgres" && cfg.DatabaseURL == "" {
		return fmt.Errorf("TEST_DB_PASSWORD environment variable is required in CI environment")
	}
	cfg.AuthTokenSecret = v.GetString("TEST_AUTH_TOKEN_SECRET")
	cfg.RedisPassword = v.GetString("TEST_REDIS_PASSWORD")

	return nil
}

// loadDevConfig loads configuration for development environment. Docker
// secrets win over environment variables when both are present.
func loadDevConfig(v *viper.Viper, cfg *Config) error {
	loadCommon(v, cfg)

	cfg.DBPassword = secretOrEnv(v, "db_password", "DB_PASSWORD")
	cfg.RedisPassword = secretOrEnv(v, "redis_password", "REDIS_PASSWORD")
	cfg.AuthTokenSecret = secretOrEnv(v, "auth_token_secret", "AUTH_TOKEN_SECRET")
	if user := readSecret("db_user"); user != "" {
		cfg.DBUser = user
	}

	return nil
}

// loadProdConfig loads configuration for production environment. Sensitive
// values come ONLY from Docker secrets.
func loadProdConfig(v *viper.Viper, cfg *Config) error {
	loadCommon(v, cfg)

	cfg.DBUser = readSecret("db_user")
	cfg.DBPassword = readSecret("db_password")
	cfg.RedisPassword = readSecret("redis_password")
	cfg.AuthTokenSecret = readSecret("auth_token_secret")
	if url := readSecret("database_url"); url != "" {
		cfg.DatabaseURL = url
	}
	if url := readSecret("redis_url"); url != "" {
		cfg.RedisURL = url
	}

	return nil
}

// secretsDir returns the directory holding Docker secrets
func secretsDir() string {
	if dir := os.Getenv("SECRETS_DIR"); dir != "" {
		return dir
	}
	return "/run/secrets"
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretPath := filepath.Join(secretsDir(), name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func secretOrEnv(v *viper.Viper, secret, env string) string {
	if value := readSecret(secret); value != "" {
		return value
	}
	return v.GetString(env)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// DSN returns the Postgres connection string
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.ServerHost, c.ServerPort)
}

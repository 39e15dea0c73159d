package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConfigRequirements defines what must be set for each environment
type ConfigRequirements struct {
	RequirePassword  bool
	RequireRedis     bool
	RequireAuthToken bool
}

var (
	// Environment-specific requirements
	requirements = map[Environment]ConfigRequirements{
		Development: {},
		Test:        {},
		CI:          {RequirePassword: true},
		Production: {
			RequirePassword:  true,
			RequireRedis:     true,
			RequireAuthToken: true,
		},
	}
)

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	reqs := requirements[GetEnvironment()]

	var errs []string
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg}.Error())
	}

	if cfg.ServerPort == "" {
		add("SERVER_PORT", "is required")
	}

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DatabaseURL == "" {
			if cfg.DBHost == "" || cfg.DBName == "" {
				add("DB_HOST", "host and database name are required for postgres")
			}
			if reqs.RequirePassword && cfg.DBPassword == "" {
				add("DB_PASSWORD", "db_password secret is required")
			}
		}
	case "sqlite":
		if cfg.SQLitePath == "" {
			add("SQLITE_PATH", "is required for sqlite")
		}
	default:
		add("DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver))
	}

	if reqs.RequireRedis && cfg.RedisURL == "" && cfg.RedisHost == "" {
		add("REDIS_URL", "redis is required")
	}
	if reqs.RequireAuthToken && cfg.AuthTokenSecret == "" {
		add("AUTH_TOKEN_SECRET", "auth_token_secret secret is required")
	}

	if cfg.ScrapeTimeout <= 0 {
		add("SCRAPE_TIMEOUT", "must be positive")
	}
	if cfg.ScrapeCacheTTL < 0 {
		add("SCRAPE_CACHE_TTL", "must not be negative")
	}
	if cfg.ScrapeRateLimit < 0 {
		add("SCRAPE_RATE_LIMIT", "must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}

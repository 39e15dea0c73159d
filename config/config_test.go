package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("CI", "")
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "parsley")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "recipes")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("SCRAPE_TIMEOUT", "3s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "parsley", cfg.DBUser)
	assert.Equal(t, "secret", cfg.DBPassword)
	assert.Equal(t, "recipes", cfg.DBName)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 3*time.Second, cfg.ScrapeTimeout)
	assert.Equal(t, "host=db port=5433 user=parsley password=secret dbname=recipes sslmode=disable", cfg.DSN())
}

func TestLoadConfigWithDefaults(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("CI", "")
	t.Setenv("SECRETS_DIR", t.TempDir())
	for _, key := range []string{"DB_HOST", "DB_DRIVER", "CORS_ORIGINS", "SCRAPE_TIMEOUT", "SCRAPE_CACHE_TTL", "SERVER_PORT", "AUTH_TOKEN_SECRET"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, DefaultCORSOrigins, cfg.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.ScrapeTimeout)
	assert.Equal(t, 24*time.Hour, cfg.ScrapeCacheTTL)
	assert.Equal(t, 30, cfg.ScrapeRateLimit)
	assert.Empty(t, cfg.AuthTokenSecret)
}

func TestLoadConfigSecretsOverrideEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db_password"), []byte("from-secret\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "auth_token_secret"), []byte("signing-key"), 0o600))

	t.Setenv("ENV", "development")
	t.Setenv("CI", "")
	t.Setenv("SECRETS_DIR", dir)
	t.Setenv("DB_PASSWORD", "from-env")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "from-secret", cfg.DBPassword)
	assert.Equal(t, "signing-key", cfg.AuthTokenSecret)
}

func TestLoadConfigProductionRequiresSecrets(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("CI", "")
	t.Setenv("SECRETS_DIR", t.TempDir())

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.Contains(t, err.Error(), "AUTH_TOKEN_SECRET")
}

func TestValidateConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("CI", "")

	err := ValidateConfig(&Config{ServerPort: "8080", DBDriver: "mysql", ScrapeTimeout: time.Second})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())

	t.Setenv("CI", "")
	t.Setenv("ENV", "production")
	assert.True(t, IsProduction())

	t.Setenv("ENV", "")
	assert.True(t, IsDevelopment())
}

func TestGetEnvironmentVariants(t *testing.T) {
	tests := []struct {
		ci, env string
		want    Environment
	}{
		{"1", "production", CI},
		{"false", " Prod ", Production},
		{"", "TEST", Test},
		{"", "ci", CI},
		{"not-a-bool", "staging", Development},
	}
	for _, tt := range tests {
		t.Run(tt.ci+"/"+tt.env, func(t *testing.T) {
			t.Setenv("CI", tt.ci)
			t.Setenv("ENV", tt.env)
			assert.Equal(t, tt.want, GetEnvironment())
			assert.Equal(t, tt.want == Test, IsTest())
			assert.Equal(t, tt.want == CI, IsCI())
		})
	}
}

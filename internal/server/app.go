package server

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pageza/digital-parsley/backend/config"
	"github.com/pageza/digital-parsley/backend/internal/api"
	"github.com/pageza/digital-parsley/backend/internal/cache"
	"github.com/pageza/digital-parsley/backend/internal/database"
	"github.com/pageza/digital-parsley/backend/internal/middleware"
	"github.com/pageza/digital-parsley/backend/internal/router"
	"github.com/pageza/digital-parsley/backend/internal/scraper"
	"github.com/pageza/digital-parsley/backend/internal/service"
)

// App holds the wired application and the resources it owns
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

// NewApp connects to the configured stores and wires the services into a router.
// Redis and S3 are optional: without Redis the scrape cache and rate limiter
// stay in process, without a bucket image mirroring is disabled.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	app := &App{DB: db}

	limitCfg := middleware.NewScrapeRateLimitConfig(cfg.ScrapeRateLimit)
	var scrapeCache cache.Cache
	var limiter middleware.Limiter
	if database.RedisConfigured(cfg) {
		client, err := database.NewRedisClient(cfg)
		if err != nil {
			logrus.WithError(err).Warn("Redis unavailable, using in-process cache and rate limiter")
		} else {
			app.Redis = client
			scrapeCache = cache.NewRedisCache(client)
			limiter = middleware.NewRateLimiter(client, limitCfg)
		}
	}
	if scrapeCache == nil {
		scrapeCache = cache.NewMemoryCache(cfg.ScrapeCacheTTL, 10*time.Minute)
		limiter = middleware.NewLocalRateLimiter(limitCfg)
	}
	// SCRAPE_RATE_LIMIT=0 turns limiting off
	if cfg.ScrapeRateLimit == 0 {
		limiter = nil
	}

	var store service.ObjectStore
	if cfg.S3Bucket != "" {
		s3cfg, err := config.NewS3Config(ctx, cfg.S3Bucket, cfg.AWSRegion)
		if err != nil {
			logrus.WithError(err).Warn("S3 unavailable, image mirroring disabled")
		} else {
			if config.IsCI() {
				logrus.Info("Skipping bucket policy in CI")
			} else if err := s3cfg.SetupBucketPolicy(ctx); err != nil {
				logrus.WithError(err).Warn("Failed to apply bucket policy")
			}
			store = s3cfg
		}
	}

	fetcher := scraper.NewCollyFetcher(cfg.ScrapeTimeout)
	recipes := service.NewRecipeService(db)
	services := api.Services{
		Auth:          service.NewAuthService(cfg.AuthTokenSecret),
		Chefs:         service.NewChefService(db),
		Recipes:       recipes,
		Scrapes:       service.NewScrapeService(scraper.New(fetcher), scrapeCache, cfg.ScrapeCacheTTL, recipes),
		Images:        service.NewImageService(fetcher, store, recipes),
		ScrapeLimiter: limiter,
		Health: func(ctx context.Context) error {
			return database.HealthCheck(ctx, db)
		},
		WebFolder: cfg.WebFolder,
	}

	gin.SetMode(ginMode())
	app.Router = router.SetupRouter(cfg.CORSOrigins, services)
	return app, nil
}

// ginMode picks the gin mode for the current environment
func ginMode() string {
	switch {
	case config.IsProduction():
		return gin.ReleaseMode
	case config.IsTest(), config.IsCI():
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

// Close releases the database and Redis connections
func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close Redis client")
		}
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

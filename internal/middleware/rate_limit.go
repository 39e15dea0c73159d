package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Window is the time window for rate limiting
	Window time.Duration
	// Limit is the maximum number of requests allowed in the window
	Limit int
	// Key prefix for Redis keys
	KeyPrefix string
}

// Limiter decides whether the caller identified by key may make another request.
// It returns whether the request is allowed, the remaining requests and
// the time the allowance resets.
type Limiter interface {
	IsAllowed(ctx context.Context, key string) (bool, int, time.Time, error)
	Config() RateLimitConfig
}

// RateLimiter handles rate limiting using Redis
type RateLimiter struct {
	redis  *redis.Client
	config RateLimitConfig
}

// NewRateLimiter creates a new rate limiter instance
func NewRateLimiter(redisClient *redis.Client, config RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		redis:  redisClient,
		config: config,
	}
}

// Config returns the limiter's configuration
func (rl *RateLimiter) Config() RateLimitConfig {
	return rl.config
}

func (rl *RateLimiter) windowKey(id string, now time.Time) (string, time.Time) {
	windowStart := now.Truncate(rl.config.Window)
	return fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, id, windowStart.Unix()), windowStart
}

// IsAllowed counts a request from id against the current window
func (rl *RateLimiter) IsAllowed(ctx context.Context, id string) (bool, int, time.Time, error) {
	key, windowStart := rl.windowKey(id, time.Now())

	pipe := rl.redis.Pipeline()
	incrCmd := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, rl.config.Window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	count := int(incrCmd.Val())
	remaining := rl.config.Limit - count
	if remaining < 0 {
		remaining = 0
	}

	return count <= rl.config.Limit, remaining, windowStart.Add(rl.config.Window), nil
}

// LocalRateLimiter is an in-process token bucket limiter used when Redis
// is not configured. Idle buckets expire after two windows.
type LocalRateLimiter struct {
	config  RateLimitConfig
	mu      sync.Mutex
	buckets *gocache.Cache
}

// NewLocalRateLimiter creates an in-memory rate limiter
func NewLocalRateLimiter(config RateLimitConfig) *LocalRateLimiter {
	return &LocalRateLimiter{
		config:  config,
		buckets: gocache.New(2*config.Window, config.Window),
	}
}

// Config returns the limiter's configuration
func (l *LocalRateLimiter) Config() RateLimitConfig {
	return l.config
}

func (l *LocalRateLimiter) bucket(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, ok := l.buckets.Get(key); ok {
		lim := v.(*rate.Limiter)
		l.buckets.SetDefault(key, lim)
		return lim
	}
	every := l.config.Window / time.Duration(l.config.Limit)
	lim := rate.NewLimiter(rate.Every(every), l.config.Limit)
	l.buckets.SetDefault(key, lim)
	return lim
}

// IsAllowed takes one token from key's bucket
func (l *LocalRateLimiter) IsAllowed(_ context.Context, key string) (bool, int, time.Time, error) {
	lim := l.bucket(l.config.KeyPrefix + ":" + key)
	now := time.Now()

	allowed := lim.AllowN(now, 1)
	tokens := lim.TokensAt(now)
	remaining := int(math.Floor(tokens))
	if remaining < 0 {
		remaining = 0
	}

	// time until the next token is available
	reset := now
	if tokens < 1 {
		missing := 1 - tokens
		reset = now.Add(time.Duration(missing / float64(lim.Limit()) * float64(time.Second)))
	}
	return allowed, remaining, reset, nil
}

// RateLimitMiddleware returns a Gin middleware that enforces limiter per client IP
func RateLimitMiddleware(limiter Limiter) gin.HandlerFunc {
	cfg := limiter.Config()
	return func(c *gin.Context) {
		allowed, remaining, resetTime, err := limiter.IsAllowed(c.Request.Context(), c.ClientIP())
		if err != nil {
			// Log error but don't fail the request
			logrus.WithError(err).Warn("Rate limit check failed")
			c.Header("X-RateLimit-Error", "rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			retryAfter := int(math.Ceil(time.Until(resetTime).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":                "rate limit exceeded",
				"message":              fmt.Sprintf("You have exceeded the rate limit of %d requests per %v", cfg.Limit, cfg.Window),
				"rate_limit_remaining": remaining,
				"rate_limit_reset":     resetTime.Unix(),
				"retry_after":          retryAfter,
			})
			return
		}

		c.Next()
	}
}

// NewScrapeRateLimitConfig is the limit applied to the public scrape endpoint
func NewScrapeRateLimitConfig(perMinute int) RateLimitConfig {
	return RateLimitConfig{
		Window:    time.Minute,
		Limit:     perMinute,
		KeyPrefix: "rate_limit:scrape",
	}
}

package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/digital-parsley/backend/internal/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeValidator struct {
	tokens map[string]string
}

func (f fakeValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	id, ok := f.tokens[token]
	if !ok {
		return nil, errors.New("invalid token")
	}
	return &types.TokenClaims{UserID: id}, nil
}

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware(fakeValidator{tokens: map[string]string{"good": "firebase_auth_123"}}))
	r.GET("/me", func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
		wantUser   string
	}{
		{"auth token header", map[string]string{AuthTokenHeader: "good"}, http.StatusOK, "firebase_auth_123"},
		{"bearer token", map[string]string{"Authorization": "Bearer good"}, http.StatusOK, "firebase_auth_123"},
		{"missing token", nil, http.StatusUnauthorized, ""},
		{"malformed authorization", map[string]string{"Authorization": "good"}, http.StatusUnauthorized, ""},
		{"unknown token", map[string]string{AuthTokenHeader: "bad"}, http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			newAuthRouter().ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantUser, body["user_id"])
			} else {
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(), Recovery())
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestLoggerKeepsIncomingID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:8080"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", AuthTokenHeader)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:8080", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestLocalRateLimiter(t *testing.T) {
	limiter := NewLocalRateLimiter(RateLimitConfig{Window: time.Hour, Limit: 2, KeyPrefix: "test"})
	ctx := context.Background()

	allowed, remaining, _, err := limiter.IsAllowed(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 1, remaining)

	allowed, remaining, _, _ = limiter.IsAllowed(ctx, "1.2.3.4")
	assert.True(t, allowed)
	assert.Equal(t, 0, remaining)

	allowed, _, reset, _ := limiter.IsAllowed(ctx, "1.2.3.4")
	assert.False(t, allowed)
	assert.True(t, reset.After(time.Now()))

	// other clients have their own bucket
	allowed, _, _, _ = limiter.IsAllowed(ctx, "5.6.7.8")
	assert.True(t, allowed)
}

type failingLimiter struct{}

func (failingLimiter) IsAllowed(context.Context, string) (bool, int, time.Time, error) {
	return false, 0, time.Time{}, errors.New("redis down")
}

func (failingLimiter) Config() RateLimitConfig {
	return RateLimitConfig{Window: time.Minute, Limit: 1}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(NewLocalRateLimiter(NewScrapeRateLimitConfig(1))))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "rate limit exceeded", body["error"])
	assert.Contains(t, body, "retry_after")
}

func TestRateLimitMiddlewareFailsOpen(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(failingLimiter{}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rate limit check failed", w.Header().Get("X-RateLimit-Error"))
}

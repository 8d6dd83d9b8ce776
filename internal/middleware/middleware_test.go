package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appcontext "github.com/dipii/backoffice/internal/app_context"
	"github.com/dipii/backoffice/internal/auth"
	"github.com/dipii/backoffice/internal/config"
	"github.com/dipii/backoffice/internal/metrics"
	ratelimiter "github.com/dipii/backoffice/internal/rate_limiter"
	"github.com/dipii/backoffice/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSessions struct {
	active bool
	err    error
}

func (f fakeSessions) IsAccessTokenActive(ctx context.Context, tx *gorm.DB, accessToken string) (bool, error) {
	return f.active, f.err
}

func newTestMiddleware(t *testing.T, sessions sessionChecker, rl config.RateLimiterConfig) (*Middleware, *auth.JWT) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{RateLimiter: rl}
	jwtService := auth.NewJwt(config.AuthConfig{JWT_SECRET: "test-secret"}, nil)
	app := &appcontext.Application{
		Config:     &cfg,
		Logger:     util.NewLogger("test"),
		JWTService: jwtService,
		Metrics:    metrics.New(),
	}

	return &Middleware{app: app, sessions: sessions, rateLimiter: ratelimiter.NewRateLimiter(rl, nil)}, jwtService
}

func protectedRouter(m *Middleware) *gin.Engine {
	r := gin.New()
	r.GET("/me", m.AuthMiddleware, func(ctx *gin.Context) {
		user, _ := ctx.Get("user")
		ctx.JSON(http.StatusOK, user)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	m, jwtService := newTestMiddleware(t, fakeSessions{active: true}, config.RateLimiterConfig{})
	refresh, access, err := jwtService.GenerateRefreshAndAccessToken(auth.JWTPayload{ID: 1, Username: "admin"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{"Missing header", "", http.StatusUnauthorized},
		{"Wrong scheme", "Refresh " + *access, http.StatusUnauthorized},
		{"Garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"Refresh token as bearer", "Bearer " + *refresh, http.StatusUnauthorized},
		{"Valid access token", "Bearer " + *access, http.StatusOK},
	}

	r := protectedRouter(m)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
			if tt.code == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"usuario":"admin"`)
			}
		})
	}
}

func TestAuthMiddlewareLoggedOutSession(t *testing.T) {
	tests := []struct {
		name     string
		sessions fakeSessions
		code     int
	}{
		{"Logged out", fakeSessions{active: false}, http.StatusUnauthorized},
		{"Lookup failure", fakeSessions{err: errors.New("db down")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, jwtService := newTestMiddleware(t, tt.sessions, config.RateLimiterConfig{})
			_, access, err := jwtService.GenerateRefreshAndAccessToken(auth.JWTPayload{ID: 1})
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			req.Header.Set("Authorization", "Bearer "+*access)
			rec := httptest.NewRecorder()
			protectedRouter(m).ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	m, _ := newTestMiddleware(t, fakeSessions{}, config.RateLimiterConfig{
		Enabled:              true,
		RequestsPerTimeFrame: 2,
		TimeFrame:            time.Minute,
	})

	r := gin.New()
	r.POST("/login", m.RateLimiterMiddleware, func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	codes := []int{}
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, rec.Code)
		if rec.Code == http.StatusTooManyRequests {
			assert.Equal(t, "60", rec.Header().Get("Retry-After"))
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiterDisabled(t *testing.T) {
	m, _ := newTestMiddleware(t, fakeSessions{}, config.RateLimiterConfig{RequestsPerTimeFrame: 1, TimeFrame: time.Minute})

	r := gin.New()
	r.POST("/login", m.RateLimiterMiddleware, func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRequestID(t *testing.T) {
	m, _ := newTestMiddleware(t, fakeSessions{}, config.RateLimiterConfig{})

	r := gin.New()
	r.Use(m.RequestID)
	r.GET("/", func(ctx *gin.Context) { ctx.String(http.StatusOK, ctx.GetString("requestId")) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rec.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 21)
	assert.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "upstream-id", rec.Header().Get(RequestIDHeader))
}

func TestMetricsMiddleware(t *testing.T) {
	m, _ := newTestMiddleware(t, fakeSessions{}, config.RateLimiterConfig{})

	r := gin.New()
	r.Use(m.Metrics)
	r.GET("/api/v1/certificates/:id", func(ctx *gin.Context) { ctx.Status(http.StatusNotFound) })

	for i := 0; i < 2; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/certificates/9", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	body := metricsBody(t, m)
	assert.Contains(t, body, `dipii_http_requests_total{method="GET",route="/api/v1/certificates/:id",status="404"} 2`)
	assert.Contains(t, body, `route="unmatched"`)
}

func metricsBody(t *testing.T, m *Middleware) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.app.Metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

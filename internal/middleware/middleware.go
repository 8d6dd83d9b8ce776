package middleware

import (
	"context"

	appcontext "github.com/dipii/backoffice/internal/app_context"
	ratelimiter "github.com/dipii/backoffice/internal/rate_limiter"
	"gorm.io/gorm"
)

// sessionChecker tells whether an access token was logged out or rotated.
type sessionChecker interface {
	IsAccessTokenActive(ctx context.Context, tx *gorm.DB, accessToken string) (bool, error)
}

type Middleware struct {
	rateLimiter ratelimiter.Limiter
	sessions    sessionChecker
	app         *appcontext.Application
}

func NewMiddleware(app *appcontext.Application,
	rateLimiter ratelimiter.Limiter,
) *Middleware {
	return &Middleware{app: app, rateLimiter: rateLimiter, sessions: app.Repository.JWT}
}

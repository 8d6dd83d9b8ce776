package middleware

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/dipii/backoffice/internal/util"
	"github.com/gin-gonic/gin"
)

// RateLimiterMiddleware limits requests per client ip. It is mounted on the
// login route only.
func (m Middleware) RateLimiterMiddleware(ctx *gin.Context) {
	if !m.app.Config.RateLimiter.Enabled {
		ctx.Next()
		return
	}

	allowed, retryAfter := m.rateLimiter.Allow(ctx.ClientIP())
	if !allowed {
		ctx.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
		util.ResponseFailed(ctx, http.StatusTooManyRequests, "Too many requests", util.GenerateErrorMessages(errors.New("rate limit exceeded, try again later"), "rateLimit"), nil)
		return
	}

	ctx.Next()
}

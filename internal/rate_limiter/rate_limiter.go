package ratelimiter

import (
	"time"

	"github.com/dipii/backoffice/internal/config"
	"github.com/dipii/backoffice/internal/util"
	"go.uber.org/zap"
)

type Limiter interface {
	// Allow reports whether the key may make another request. When it may not,
	// the returned duration is how long until the window resets.
	Allow(key string) (bool, time.Duration)
}

func NewRateLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("test")
	}

	return NewFixedWindowLimiter(cfg, logger)
}

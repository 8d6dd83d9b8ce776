package ratelimiter

import (
	"sync"
	"time"

	"github.com/dipii/backoffice/internal/config"
	"go.uber.org/zap"
)

type window struct {
	start time.Time
	count int
}

type FixedWindowRateLimiter struct {
	sync.Mutex
	clients map[string]*window
	limit   int
	frame   time.Duration
	logger  *zap.SugaredLogger
	now     func() time.Time
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	limit, frame := cfg.RequestsPerTimeFrame, cfg.TimeFrame
	if limit <= 0 {
		limit = 10
	}
	if frame <= 0 {
		frame = time.Minute
	}

	return &FixedWindowRateLimiter{
		clients: make(map[string]*window),
		limit:   limit,
		frame:   frame,
		logger:  logger,
		now:     time.Now,
	}
}

func (rl *FixedWindowRateLimiter) Allow(key string) (bool, time.Duration) {
	rl.Lock()
	defer rl.Unlock()

	now := rl.now()
	w, ok := rl.clients[key]
	if !ok || now.Sub(w.start) >= rl.frame {
		rl.clients[key] = &window{start: now, count: 1}
		rl.sweep(now)
		return true, 0
	}

	if w.count < rl.limit {
		w.count++
		return true, 0
	}

	rl.logger.Debugf("Rate limit exceeded for key: %s", key)
	return false, w.start.Add(rl.frame).Sub(now)
}

// sweep drops expired windows. Caller holds the lock.
func (rl *FixedWindowRateLimiter) sweep(now time.Time) {
	for k, w := range rl.clients {
		if now.Sub(w.start) >= rl.frame {
			delete(rl.clients, k)
		}
	}
}

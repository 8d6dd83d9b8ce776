package ratelimiter

import (
	"testing"
	"time"

	"github.com/dipii/backoffice/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestFixedWindowRateLimiter(t *testing.T) {
	rl := NewRateLimiter(config.RateLimiterConfig{RequestsPerTimeFrame: 3, TimeFrame: time.Minute}, nil)
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		ok, _ := rl.Allow("10.0.0.1")
		assert.True(t, ok, "request %d should be allowed", i+1)
	}

	ok, retry := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, time.Minute, retry)

	// other clients have their own window
	ok, _ = rl.Allow("10.0.0.2")
	assert.True(t, ok)

	now = now.Add(40 * time.Second)
	ok, retry = rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, 20*time.Second, retry)

	now = now.Add(20 * time.Second)
	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok)
}

func TestFixedWindowDefaults(t *testing.T) {
	rl := NewRateLimiter(config.RateLimiterConfig{}, nil)
	assert.Equal(t, 10, rl.limit)
	assert.Equal(t, time.Minute, rl.frame)
}

package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testRateConfig() RateLimitConfig {
	return RateLimitConfig{
		MaxRequests:   3,
		TimeWindow:    time.Minute,
		BlockDuration: time.Minute,
	}
}

func TestRateLimiterAllowsWithinLimit(t *testing.T) {
	limiter := NewRateLimiter(time.Hour)
	cfg := testRateConfig()

	for i := 0; i < cfg.MaxRequests; i++ {
		assert.True(t, limiter.isAllowed("catalog:10.0.0.1", cfg))
	}
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	limiter := NewRateLimiter(time.Hour)
	cfg := testRateConfig()

	for i := 0; i < cfg.MaxRequests; i++ {
		limiter.isAllowed("catalog:10.0.0.2", cfg)
	}

	assert.False(t, limiter.isAllowed("catalog:10.0.0.2", cfg))
	// Still blocked on the next attempt
	assert.False(t, limiter.isAllowed("catalog:10.0.0.2", cfg))
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	limiter := NewRateLimiter(time.Hour)
	cfg := testRateConfig()

	for i := 0; i < cfg.MaxRequests; i++ {
		limiter.isAllowed("catalog:10.0.0.3", cfg)
	}
	limiter.isAllowed("catalog:10.0.0.3", cfg)

	assert.True(t, limiter.isAllowed("catalog:10.0.0.4", cfg))
}

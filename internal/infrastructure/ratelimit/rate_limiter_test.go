package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowExhaustsBucket(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 5; i++ {
		allowed, _ := rl.Allow("u1", "submit_report")
		assert.True(t, allowed, "request %d should pass", i+1)
	}

	allowed, wait := rl.Allow("u1", "submit_report")
	assert.False(t, allowed)
	assert.Greater(t, wait.Seconds(), 0.0)
}

func TestBucketsIsolatedPerUserAndAction(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 5; i++ {
		rl.Allow("u1", "submit_report")
	}

	// Another user, and another action for the same user, are unthrottled.
	allowed, _ := rl.Allow("u2", "submit_report")
	assert.True(t, allowed)
	allowed, _ = rl.Allow("u1", "send_message")
	assert.True(t, allowed)
}

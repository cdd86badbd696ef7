package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_EnforcesCapacity(t *testing.T) {
	l := NewLimiter(5, true)
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow("client-a")
		assert.True(t, allowed, "request %d should pass", i)
	}

	allowed, info := l.Allow("client-a")
	assert.False(t, allowed)
	assert.Equal(t, 5, info.Limit)
	assert.Greater(t, info.RetryAfter.Seconds(), 0.0)
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(1, true)
	defer l.Stop()

	allowed, _ := l.Allow("client-a")
	assert.True(t, allowed)
	allowed, _ = l.Allow("client-a")
	assert.False(t, allowed)

	allowed, _ = l.Allow("client-b")
	assert.True(t, allowed, "a different client has its own bucket")
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(1, false)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("client-a")
		assert.True(t, allowed)
	}
}

func TestLimiter_ZeroLimitDisables(t *testing.T) {
	l := NewLimiter(0, true)
	defer l.Stop()

	allowed, _ := l.Allow("client-a")
	assert.True(t, allowed)
}

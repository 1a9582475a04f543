package ratelimit

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreAllowsUpToLimit(t *testing.T) {
	s := NewMemoryStore(time.Minute, 3)

	for i := 0; i < 3; i++ {
		ok, err := s.Allow(context.Background(), "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i+1)
	}

	ok, err := s.Allow(context.Background(), "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreWindowReset(t *testing.T) {
	now := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)

	s := NewMemoryStore(time.Minute, 1)
	s.now = func() time.Time { return now }

	ok, _ := s.Allow(context.Background(), "1.2.3.4")
	assert.True(t, ok)

	ok, _ = s.Allow(context.Background(), "1.2.3.4")
	assert.False(t, ok)

	now = now.Add(61 * time.Second)

	ok, _ = s.Allow(context.Background(), "1.2.3.4")
	assert.True(t, ok)
}

func TestMemoryStoreKeysAreIndependent(t *testing.T) {
	s := NewMemoryStore(time.Minute, 1)

	ok, _ := s.Allow(context.Background(), "1.2.3.4")
	assert.True(t, ok)

	ok, _ = s.Allow(context.Background(), "5.6.7.8")
	assert.True(t, ok)
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:51234"
	assert.Equal(t, "10.0.0.1", ClientIP(r))

	r.Header.Set("X-Real-IP", "203.0.113.9")
	assert.Equal(t, "203.0.113.9", ClientIP(r))

	r.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	assert.Equal(t, "198.51.100.7", ClientIP(r))
}

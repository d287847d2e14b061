package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestRateLimiter_sweepsIdleVisitors verifies buckets idle past the TTL are
// dropped on the next access.
func TestRateLimiter_sweepsIdleVisitors(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1)
	rl.now = func() time.Time { return clock }

	rl.limiter("10.0.0.1")
	rl.limiter("10.0.0.2")
	assert.Equal(t, 2, rl.Visitors())

	clock = clock.Add(visitorTTL + time.Second)
	rl.limiter("10.0.0.3")

	assert.Equal(t, 1, rl.Visitors())
}

func TestClientIP_stripsPort(t *testing.T) {
	assert.Equal(t, "192.0.2.7", clientIP(newRequest("192.0.2.7:5555")))
	assert.Equal(t, "192.0.2.7", clientIP(newRequest("192.0.2.7")))
}

func newRequest(remoteAddr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	return req
}

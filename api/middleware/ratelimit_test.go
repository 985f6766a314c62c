package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talk-search-api/pkg/featureflags"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func get(h http.Handler, remoteAddr string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/boards/1/search", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_BurstThenEvenRefill(t *testing.T) {
	// 4 per 400ms: a burst of 4, then one token every 100ms
	rl := NewRateLimiter(4, 400*time.Millisecond)
	defer rl.Stop()

	for i := 0; i < 4; i++ {
		require.True(t, rl.Allow("a"), "burst request %d", i+1)
	}
	assert.False(t, rl.Allow("a"), "burst exhausted")

	time.Sleep(130 * time.Millisecond)

	assert.True(t, rl.Allow("a"), "one token refilled")
	assert.False(t, rl.Allow("a"), "refill is gradual, not a full window reset")
}

func TestRateLimiter_KeysHaveSeparateBuckets(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	for _, key := range []string{"10.0.0.1", "10.0.0.2", "2001:db8::1"} {
		assert.True(t, rl.Allow(key), key)
		assert.False(t, rl.Allow(key), key)
	}
}

func TestRateLimiter_CleanupDropsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 20*time.Millisecond)
	defer rl.Stop()

	rl.Allow("idle")

	require.Eventually(t, func() bool {
		rl.mu.Lock()
		defer rl.mu.Unlock()
		return len(rl.limiters) == 0
	}, time.Second, 10*time.Millisecond)

	// A dropped client starts over with a full bucket
	assert.True(t, rl.Allow("idle"))
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)

	assert.NotPanics(t, func() {
		rl.Stop()
		rl.Stop()
	})

	// Buckets keep working after the cleanup goroutine ends
	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
}

func TestRateLimitMiddleware_HeadersAndProblemBody(t *testing.T) {
	limiter := NewRateLimiter(1, 90*time.Second)
	defer limiter.Stop()
	h := RateLimitMiddleware(limiter)(okHandler())

	first := get(h, "198.51.100.7:4000", nil)
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1m30s", first.Header().Get("X-RateLimit-Window"))
	assert.Empty(t, first.Header().Get("Retry-After"))

	second := get(h, "198.51.100.7:4001", nil)
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "application/problem+json", second.Header().Get("Content-Type"))
	assert.Equal(t, "90", second.Header().Get("Retry-After"))

	var problem struct {
		Title  string `json:"title"`
		Status int    `json:"status"`
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &problem))
	assert.Equal(t, http.StatusTooManyRequests, problem.Status)
	assert.Equal(t, "Too Many Requests", problem.Title)
	assert.NotEmpty(t, problem.Detail)
}

func TestRateLimitMiddleware_RetryAfterAtLeastOneSecond(t *testing.T) {
	limiter := NewRateLimiter(1, 200*time.Millisecond)
	defer limiter.Stop()
	h := RateLimitMiddleware(limiter)(okHandler())

	get(h, "198.51.100.7:4000", nil)
	rec := get(h, "198.51.100.7:4000", nil)

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestRateLimitMiddleware_ForwardedClientSharesBucket(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()
	h := RateLimitMiddleware(limiter)(okHandler())

	// Two proxies, one client
	xff := map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"}
	assert.Equal(t, http.StatusOK, get(h, "10.0.0.1:1000", xff).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(h, "10.0.0.2:1000", xff).Code)

	// Another client behind the same proxy is unaffected
	other := map[string]string{"X-Forwarded-For": "203.0.113.10"}
	assert.Equal(t, http.StatusOK, get(h, "10.0.0.1:1000", other).Code)
}

func TestRateLimitMiddleware_FollowsFlagPerRequest(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()

	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.RateLimitEnabled: false,
	})
	h := FeatureFlagsMiddleware(flags)(RateLimitMiddleware(limiter)(okHandler()))

	for i := 0; i < 3; i++ {
		rec := get(h, "198.51.100.7:4000", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"), "no limit headers while disabled")
	}

	flags.SetEnabled(featureflags.RateLimitEnabled, true)

	assert.Equal(t, http.StatusOK, get(h, "198.51.100.7:4000", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(h, "198.51.100.7:4000", nil).Code)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote host without port", "203.0.113.5:51000", nil, "203.0.113.5"},
		{"ipv6 remote host", "[2001:db8::7]:443", nil, "2001:db8::7"},
		{"remote addr without port kept as is", "pipe", nil, "pipe"},
		{"first forwarded entry, trimmed", "10.0.0.1:1", map[string]string{"X-Forwarded-For": "  198.51.100.2 ,10.0.0.3"}, "198.51.100.2"},
		{"forwarded beats real ip", "10.0.0.1:1", map[string]string{"X-Forwarded-For": "198.51.100.2", "X-Real-IP": "198.51.100.3"}, "198.51.100.2"},
		{"empty first forwarded entry falls back", "10.0.0.1:1", map[string]string{"X-Forwarded-For": " , 198.51.100.2", "X-Real-IP": "198.51.100.3"}, "198.51.100.3"},
		{"real ip when nothing forwarded", "10.0.0.1:1", map[string]string{"X-Real-IP": " 198.51.100.3 "}, "198.51.100.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, extractIP(req))
		})
	}
}

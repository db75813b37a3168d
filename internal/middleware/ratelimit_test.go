// AngelaMos | 2026
// ratelimit_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachableRedis points at a port nothing listens on, which forces the
// in-process fallback.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func newLimited(t *testing.T, bypass func(*http.Request) bool) http.Handler {
	t.Helper()
	rl := NewRateLimiter(unreachableRedis(t), RateLimitConfig{
		Limit:      PerWindow(1, 1, time.Hour),
		FailOpen:   true,
		BypassFunc: bypass,
	})
	t.Cleanup(rl.Close)

	return rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func hit(ctx context.Context, h http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/graphql", nil).WithContext(ctx)
	req.RemoteAddr = ip + ":51234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiterFallsBackWhenRedisDown(t *testing.T) {
	h := newLimited(t, nil)
	ctx := context.Background()

	first := hit(ctx, h, "10.0.0.1")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1;w=3600", first.Header().Get("RateLimit-Policy"))

	second := hit(ctx, h, "10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
	assert.Contains(t, second.Body.String(), "RATE_LIMITED")

	assert.Equal(t, http.StatusOK, hit(ctx, h, "10.0.0.2").Code)
}

func TestRateLimiterBypassesAdmins(t *testing.T) {
	h := newLimited(t, BypassAdmins)
	admin := WithIdentity(context.Background(), Identity{ID: "icfc_user_admin", Role: RoleAdmin})

	for range 5 {
		assert.Equal(t, http.StatusOK, hit(admin, h, "10.0.0.9").Code)
	}
}

func TestKeyByCaller(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	req.RemoteAddr = "192.0.2.10:4000"
	assert.Equal(t, "ratelimit:ip:192.0.2.10", KeyByCaller(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.5, 198.51.100.7")
	assert.Equal(t, "ratelimit:ip:198.51.100.7", KeyByCaller(req))

	ctx := WithIdentity(req.Context(), Identity{ID: "icfc_user_fan", Role: "FAN"})
	assert.Equal(t, "ratelimit:user:icfc_user_fan", KeyByCaller(req.WithContext(ctx)))
}

func TestPerWindowDefaultsToMinute(t *testing.T) {
	limit := PerWindow(100, 20, 0)
	assert.Equal(t, time.Minute, limit.Period)
	assert.Equal(t, 100, limit.Rate)
	assert.Equal(t, 20, limit.Burst)
}

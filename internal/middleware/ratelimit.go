package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/guttosm/hogpulse/internal/logger"
)

// RateStore counts hits per key inside a fixed window.
type RateStore interface {
	// Hit records one request for key and returns the count within the current window.
	Hit(ctx context.Context, key string) (int64, error)
}

// client is one key's counter in the memory store.
type client struct {
	windowStart time.Time
	count       int64
}

// MemoryStore is a single-instance RateStore. Use RedisStore when several replicas share a limit.
//
// Expired counters are swept at most once per window, so the map only holds
// clients seen during roughly the last two windows.
type MemoryStore struct {
	mu        sync.Mutex
	clients   map[string]*client
	window    time.Duration
	now       func() time.Time
	lastSweep time.Time
}

// NewMemoryStore builds a MemoryStore with the given window.
func NewMemoryStore(window time.Duration) *MemoryStore {
	return &MemoryStore{clients: make(map[string]*client), window: window, now: time.Now}
}

func (s *MemoryStore) Hit(_ context.Context, key string) (int64, error) {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.Sub(s.lastSweep) > s.window {
		s.sweep(now)
	}
	cl, ok := s.clients[key]
	if !ok || now.Sub(cl.windowStart) > s.window {
		cl = &client{windowStart: now}
		s.clients[key] = cl
	}
	cl.count++
	return cl.count, nil
}

// sweep drops every counter whose window has ended. Callers hold s.mu.
func (s *MemoryStore) sweep(now time.Time) {
	for key, cl := range s.clients {
		if now.Sub(cl.windowStart) > s.window {
			delete(s.clients, key)
		}
	}
	s.lastSweep = now
}

// Len reports how many client counters are held.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// redisCounter is the subset of redis.Cmdable used by RedisStore.
type redisCounter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RedisStore keeps counters in Redis as INCR keys that expire with the window.
type RedisStore struct {
	rdb    redisCounter
	window time.Duration
	prefix string
}

// NewRedisStore builds a RedisStore over an existing client.
func NewRedisStore(rdb redis.Cmdable, window time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, window: window, prefix: "hogpulse:ratelimit:"}
}

func (s *RedisStore) Hit(ctx context.Context, key string) (int64, error) {
	secs := int64(s.window / time.Second)
	if secs < 1 {
		secs = 1
	}
	bucket := s.now().Unix() / secs
	k := s.prefix + key + ":" + strconv.FormatInt(bucket, 10)
	n, err := s.rdb.Incr(ctx, k).Result()
	if err != nil {
		return 0, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := s.rdb.Expire(ctx, k, s.window).Err(); err != nil {
			return n, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n, nil
}

func (s *RedisStore) now() time.Time { return time.Now() }

// RateLimiter limits requests per client IP to limit hits per store window.
//
// Behavior:
//   - Identifies clients by c.ClientIP().
//   - Returns HTTP 429 with a dto.ErrorResponse once the count exceeds limit.
//   - Fails open when the store errors.
//
// Usage:
//
//	router.Use(middleware.RateLimiter(middleware.NewMemoryStore(time.Minute), 60))
func RateLimiter(store RateStore, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := store.Hit(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.L().Warn().Err(err).Msg("rate limiter store unavailable")
			c.Next()
			return
		}
		if n > int64(limit) {
			AbortWithError(c, http.StatusTooManyRequests, "rate limit exceeded", nil)
			return
		}
		c.Next()
	}
}

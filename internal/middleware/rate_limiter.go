package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// slidingWindow is an in-memory per-IP request counter. The window resets
// on first hit after expiry, so a burst right at the boundary can see up to
// 2x the limit — acceptable for a single-instance deployment.
type slidingWindow struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	entries map[string]*windowEntry
}

type windowEntry struct {
	count     int
	windowEnd time.Time
}

func newSlidingWindow(limit int, window time.Duration) *slidingWindow {
	sw := &slidingWindow{
		limit:   limit,
		window:  window,
		entries: make(map[string]*windowEntry),
	}
	go sw.purgeLoop()
	return sw
}

// allow records a hit for ip and reports whether it stays under the limit.
func (sw *slidingWindow) allow(ip string) bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	now := time.Now()
	entry, ok := sw.entries[ip]
	if !ok || now.After(entry.windowEnd) {
		entry = &windowEntry{windowEnd: now.Add(sw.window)}
		sw.entries[ip] = entry
	}
	entry.count++
	return entry.count <= sw.limit
}

// purgeLoop drops expired IPs so the map does not grow without bound.
func (sw *slidingWindow) purgeLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		sw.mu.Lock()
		purged := 0
		for ip, entry := range sw.entries {
			if now.After(entry.windowEnd) {
				delete(sw.entries, ip)
				purged++
			}
		}
		remaining := len(sw.entries)
		sw.mu.Unlock()

		if purged > 0 {
			log.Debug().
				Int("purged", purged).
				Int("remaining", remaining).
				Msg("rate limiter entries purged")
		}
	}
}

// LoginRateLimiter limits login attempts to 20 per minute per IP to slow
// down credential stuffing.
func LoginRateLimiter() gin.HandlerFunc {
	sw := newSlidingWindow(20, time.Minute)
	return func(c *gin.Context) {
		if !sw.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Terlalu banyak percobaan login. Coba lagi dalam 1 menit."))
			return
		}
		c.Next()
	}
}

// RateLimiter returns a general-purpose per-IP limiter for the public API.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	sw := newSlidingWindow(limit, window)
	return func(c *gin.Context) {
		if !sw.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Terlalu banyak permintaan. Coba lagi sebentar lagi."))
			return
		}
		c.Next()
	}
}

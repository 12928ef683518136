package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"exploraneiva/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// windowLimiter counts requests per client IP in fixed windows.
type windowLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu        sync.Mutex
	entries   map[string]*windowEntry
	lastPurge time.Time
}

type windowEntry struct {
	count     int
	windowEnd time.Time
}

func newWindowLimiter(limit int, window time.Duration) *windowLimiter {
	return &windowLimiter{limit: limit, window: window, now: time.Now, entries: make(map[string]*windowEntry)}
}

// allow records one request from ip. When refused it also returns when the
// current window ends.
func (l *windowLimiter) allow(ip string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.purge(now)

	e, ok := l.entries[ip]
	if !ok || now.After(e.windowEnd) {
		e = &windowEntry{windowEnd: now.Add(l.window)}
		l.entries[ip] = e
	}
	e.count++
	return e.count <= l.limit, e.windowEnd
}

// purge drops expired entries at most once per window. mu must be held.
func (l *windowLimiter) purge(now time.Time) {
	if now.Sub(l.lastPurge) < l.window {
		return
	}
	l.lastPurge = now
	purged := 0
	for ip, e := range l.entries {
		if now.After(e.windowEnd) {
			delete(l.entries, ip)
			purged++
		}
	}
	if purged > 0 {
		log.Debug().Int("purged", purged).Int("remaining", len(l.entries)).Msg("rate limiter entries purged")
	}
}

func (l *windowLimiter) handler(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, until := l.allow(c.ClientIP())
		if !ok {
			wait := int(time.Until(until).Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(wait))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(message))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter limits the account screens (login, signup, password reset)
// to 20 attempts per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return newWindowLimiter(20, time.Minute).handler("Demasiados intentos. Intente en 1 minuto.")
}

// RateLimiter is the general per-IP limiter for every route.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newWindowLimiter(limit, window).handler("Demasiadas solicitudes. Intente nuevamente en un momento.")
}

package middleware

import (
	"sync"
	"time"

	"claims-insights/internal/errors"
	"claims-insights/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const clientIdleTimeout = 3 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	clients   = make(map[string]*client)
	clientsMu sync.Mutex

	// Every report request scans whole claim tables, so per-caller throughput
	// stays modest.
	requestsPerSecond = 5
	burstSize         = 10
)

// RateLimiter throttles report traffic per caller IP and answers SYSTEM_004
// once a caller exceeds its budget. Idle callers are forgotten after
// clientIdleTimeout.
func RateLimiter() echo.MiddlewareFunc {
	go expireIdleClients()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiterFor(clientIP(c)).Allow() {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}

// RateLimiterWithConfig overrides the default per-caller budget, e.g. for the
// dev seeding routes where a single generation call is already expensive.
func RateLimiterWithConfig(rps int, burst int) echo.MiddlewareFunc {
	requestsPerSecond = rps
	burstSize = burst
	return RateLimiter()
}

func limiterFor(ip string) *rate.Limiter {
	clientsMu.Lock()
	defer clientsMu.Unlock()

	cl, ok := clients[ip]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize)}
		clients[ip] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter
}

// clientIP prefers proxy headers so callers behind the platform load balancer
// are budgeted individually rather than as one address.
func clientIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.RealIP()
}

func expireIdleClients() {
	for {
		time.Sleep(time.Minute)
		sweepIdleClients(time.Now())
	}
}

func sweepIdleClients(now time.Time) {
	clientsMu.Lock()
	defer clientsMu.Unlock()

	for ip, cl := range clients {
		if now.Sub(cl.lastSeen) > clientIdleTimeout {
			delete(clients, ip)
		}
	}
}

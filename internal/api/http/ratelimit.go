package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	apperrors "github.com/campuslink/community-service/pkg/util"
)

// visitor tracking is pruned lazily so the map does not grow without bound
// under scanner traffic.
const visitorIdleEviction = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginRateLimiter throttles credential endpoints per client IP.
type LoginRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
}

// NewLoginRateLimiter allows perMinute attempts with the given burst.
func NewLoginRateLimiter(perMinute, burst int) *LoginRateLimiter {
	if perMinute <= 0 {
		perMinute = 10
	}
	if burst <= 0 {
		burst = perMinute
	}
	return &LoginRateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
	}
}

// Handle rejects callers that exceed their login budget.
func (l *LoginRateLimiter) Handle(c *fiber.Ctx) error {
	if !l.allow(c.IP(), time.Now()) {
		return apperrors.NewTooManyRequests("too many login attempts")
	}
	return c.Next()
}

func (l *LoginRateLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	for ip, other := range l.visitors {
		if now.Sub(other.lastSeen) > visitorIdleEviction {
			delete(l.visitors, ip)
		}
	}
	return v.limiter.Allow()
}

package http

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/jhoicas/startnet-api/internal/application/dto"
)

// RateLimitConfig solicitudes permitidas por ventana y por IP.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// ipLimiter un token bucket por IP.
type ipLimiter struct {
	limiters    sync.Map // map[string]*rate.Limiter
	rate        rate.Limit
	burst       int
	mu          sync.Mutex
	lastCleanup time.Time
}

func (rl *ipLimiter) get(key string) *rate.Limiter {
	if l, ok := rl.limiters.Load(key); ok {
		return l.(*rate.Limiter)
	}
	// limpiar antes de guardar: un bucket recién creado está lleno y se descartaría
	rl.maybeCleanup()
	actual, _ := rl.limiters.LoadOrStore(key, rate.NewLimiter(rl.rate, rl.burst))
	return actual.(*rate.Limiter)
}

// maybeCleanup descarta cada 5 minutos los buckets llenos (IPs inactivas).
func (rl *ipLimiter) maybeCleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if time.Since(rl.lastCleanup) < 5*time.Minute {
		return
	}
	rl.lastCleanup = time.Now()
	rl.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(rl.burst) {
			rl.limiters.Delete(key)
		}
		return true
	})
}

// RateLimitByIP limita por c.IP(); al exceder responde 429 con Retry-After.
// Requests <= 0 desactiva el límite.
func RateLimitByIP(cfg RateLimitConfig) fiber.Handler {
	if cfg.Requests <= 0 || cfg.Window <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	rl := &ipLimiter{
		rate:        rate.Limit(float64(cfg.Requests) / cfg.Window.Seconds()),
		burst:       cfg.Requests,
		lastCleanup: time.Now(),
	}
	return func(c *fiber.Ctx) error {
		limiter := rl.get(c.IP())
		if limiter.Allow() {
			return c.Next()
		}
		res := limiter.Reserve()
		delay := res.Delay()
		res.Cancel()
		retryAfter := max(int(delay.Seconds()), 1)

		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfter))
		c.Set("X-RateLimit-Limit", strconv.Itoa(cfg.Requests))
		c.Set("X-RateLimit-Window", cfg.Window.String())
		zerolog.Ctx(c.UserContext()).Warn().
			Str("ip", c.IP()).
			Str("path", c.Path()).
			Int("retry_after", retryAfter).
			Msg("rate limit excedido")
		return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
			Code:    CodeRateLimited,
			Message: "Too many requests. Please try again later.",
		})
	}
}

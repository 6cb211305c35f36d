package api

import (
	"math"
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"cpu-scheduler/config"
)

// RateLimiter keeps one token bucket per client ip.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewRateLimiter builds a limiter from config. A non-positive rate disables limiting.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	limit := rate.Limit(cfg.RequestsPerSecond)
	if cfg.RequestsPerSecond <= 0 {
		limit = rate.Inf
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    max(cfg.Burst, 1),
	}
}

func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[ip] = limiter
	}
	return limiter
}

func (rl *RateLimiter) Handler() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if rl.limiter(ctx.IP()).Allow() {
			return ctx.Next()
		}

		retryAfter := 1
		if rl.limit != rate.Inf && rl.limit > 0 {
			retryAfter = max(int(math.Ceil(1/float64(rl.limit))), 1)
		}
		ctx.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfter))
		return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":       "rate limit exceeded",
			"retry_after": retryAfter,
		})
	}
}

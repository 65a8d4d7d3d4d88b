package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func limitReached(message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"success":    false,
			"message":    message,
			"error_code": "TOO_MANY_REQUESTS",
		})
	}
}

// GlobalRateLimiter caps every client IP; health and metrics are exempt.
func GlobalRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          300,
		Expiration:   1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string { return c.IP() },
		Next:         func(c *fiber.Ctx) bool { return c.Path() == "/metrics" || c.Path() == "/health" },
		LimitReached: limitReached("Too many requests. Please try again later."),
	})
}

// LoginRateLimiter is the stricter limit for credential endpoints.
func LoginRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          5,
		Expiration:   1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string { return c.IP() },
		LimitReached: limitReached("Too many login attempts. Please wait a moment."),
	})
}

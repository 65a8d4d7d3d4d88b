package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"schooloffice_backend/internals/configs"
	"schooloffice_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the global chain. Order matters: recovery first,
// then request id and timeout so every later handler sees them.
func SetupMiddlewares(app *fiber.App, cfg configs.ServerConfig) {
	app.Use(RecoveryMiddleware())
	app.Use(requestid.New())
	app.Use(RequestTimeout(cfg.RequestTimeout))
	app.Use(logger.LoggerMiddleware())
	app.Use(MetricsMiddleware())
	app.Use(CorsMiddleware(cfg.CORSOrigins))
	app.Use(GlobalRateLimiter())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
}

// RequestTimeout bounds the request's user context; DB calls made with
// c.UserContext() are cancelled when it expires.
func RequestTimeout(d time.Duration) fiber.Handler {
	if d <= 0 {
		d = 5 * time.Second
	}
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

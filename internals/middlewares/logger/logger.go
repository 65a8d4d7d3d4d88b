package logger

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware writes one access line per request, tagged with the
// request id and, once authenticated, the acting user.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		Output:        os.Stdout,
		TimeFormat:    "2006-01-02 15:04:05",
		TimeZone:      "Local",
		DisableColors: true,
		Format:        "[${time}] [REQ] id=${locals:requestid} user=${locals:user_id} ${ip} ${method} ${path} ${status} ${latency}\n",
	})
}

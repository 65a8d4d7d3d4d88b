package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"schooloffice_backend/internals/constants"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/apperr"
)

// Require lets the request through only when the actor's role holds capability cap.
func Require(cap constants.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.ActorRole(c)
		if role == "" {
			return helper.JsonAppError(c, apperr.Unauthorized("missing role information"))
		}
		if !constants.Allows(role, cap) {
			log.Printf("[WARN] %s denied %s on %s %s", role, cap, c.Method(), c.Path())
			return helper.JsonAppError(c, apperr.Forbidden(constants.CapabilityError(role, cap)))
		}
		return c.Next()
	}
}

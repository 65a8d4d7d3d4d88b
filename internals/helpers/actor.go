package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schooloffice_backend/internals/helpers/apperr"
)

// Locals keys set by the auth middleware
const (
	LocUserID   = "user_id"
	LocRole     = "userRole"
	LocUserName = "user_name"
	LocRawToken = "raw_token"
)

// GetUserIDFromToken reads the user id from Locals; Unauthorized when absent.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	switch t := c.Locals(LocUserID).(type) {
	case uuid.UUID:
		if t != uuid.Nil {
			return t, nil
		}
	case string:
		if s := strings.TrimSpace(t); s != "" {
			id, err := uuid.Parse(s)
			if err != nil {
				return uuid.Nil, apperr.Unauthorized("invalid user id in token")
			}
			return id, nil
		}
	}
	return uuid.Nil, apperr.Unauthorized("not signed in")
}

// ActorID is GetUserIDFromToken for routes already behind the auth middleware.
func ActorID(c *fiber.Ctx) uuid.UUID {
	id, _ := GetUserIDFromToken(c)
	return id
}

func ActorRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocRole).(string)
	return role
}

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, apperr.NotFound("record")
	}
	return id, nil
}

// GetRawAccessToken looks in Locals, then the Authorization header, then the access_token cookie.
func GetRawAccessToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	fields := strings.Fields(c.Get("Authorization"))
	if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		return strings.Trim(fields[1], "\"'")
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

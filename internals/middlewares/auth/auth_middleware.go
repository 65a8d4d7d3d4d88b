package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooloffice_backend/internals/configs"
	accountModel "schooloffice_backend/internals/features/accounts/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/apperr"
)

// AuthMiddleware verifies the bearer access token and stores the actor in Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Authorization header or cookie
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonAppError(c, apperr.Unauthorized(err.Error()))
		}

		// 2) Blacklist (logout)
		var existing accountModel.TokenBlacklist
		if err := db.WithContext(c.UserContext()).
			Where("token_blacklist_token = ?", tokenString).
			First(&existing).Error; err == nil {
			log.Println("[WARN] blacklisted token presented")
			return helper.JsonAppError(c, apperr.Unauthorized("token has been revoked"))
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] blacklist lookup:", err)
			return helper.JsonAppError(c, err)
		}

		// 3) parse and verify
		claims, err := ParseAccessToken(tokenString, configs.JWTSecret)
		if err != nil {
			return helper.JsonAppError(c, apperr.Unauthorized(err.Error()))
		}

		// 4) user must exist and be active
		userID, err := extractUserID(claims)
		if err != nil {
			return helper.JsonAppError(c, apperr.Unauthorized("invalid or missing user id"))
		}
		role, err := activeRole(db.WithContext(c.UserContext()), userID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonAppError(c, apperr.Unauthorized("user not found"))
		case errors.Is(err, errInactive):
			return helper.JsonAppError(c, apperr.Forbidden("account is disabled"))
		case err != nil:
			return helper.JsonAppError(c, err)
		}

		// role comes from the DB so role changes apply immediately
		c.Locals(helper.LocUserID, userID.String())
		c.Locals(helper.LocRole, role)
		c.Locals(helper.LocRawToken, tokenString)
		if userName, ok := claims["user_name"].(string); ok {
			c.Locals(helper.LocUserName, userName)
		}
		return c.Next()
	}
}

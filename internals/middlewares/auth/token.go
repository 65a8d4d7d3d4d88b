package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	accountModel "schooloffice_backend/internals/features/accounts/model"
)

const expirySkew = 30 * time.Second

var errInactive = errors.New("user inactive")

// extractBearerToken reads "Authorization: Bearer <jwt>", falling back to the
// access_token cookie. Scheme case and stray quotes are tolerated.
func extractBearerToken(c *fiber.Ctx) (string, error) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		if tok := c.Cookies("access_token"); tok != "" {
			return tok, nil
		}
		return "", errors.New("no token provided")
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid token format")
	}
	tok := strings.Trim(parts[1], "\"'")
	if tok == "" {
		return "", errors.New("empty token")
	}
	return tok, nil
}

// ParseAccessToken checks signature, algorithm, token type and expiry.
func ParseAccessToken(raw, secret string) (jwt.MapClaims, error) {
	if secret == "" {
		return nil, errors.New("server is missing JWT secret")
	}
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true, ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	if _, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); err != nil {
		return nil, errors.New("token parse error")
	}
	if typ, _ := claims["typ"].(string); typ != "" && typ != "access" {
		return nil, errors.New("not an access token")
	}
	if !claims.VerifyExpiresAt(time.Now().Add(-expirySkew).Unix(), true) {
		return nil, errors.New("token expired")
	}
	return claims, nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	v, ok := claims["id"].(string)
	if !ok {
		return uuid.Nil, errors.New("no user id")
	}
	return uuid.Parse(strings.TrimSpace(v))
}

// activeRole returns the stored role of an active user. Missing users yield
// gorm.ErrRecordNotFound, disabled ones errInactive.
func activeRole(db *gorm.DB, userID uuid.UUID) (string, error) {
	var u accountModel.UserModel
	if err := db.Select("user_role", "user_is_active").
		Where("user_id = ?", userID).Take(&u).Error; err != nil {
		return "", err
	}
	if !u.UserIsActive {
		return "", errInactive
	}
	return u.UserRole, nil
}

package crud

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"schooloffice_backend/internals/configs"
)

const confirmTyp = "delete-confirm"

var errNotConfirmed = errors.New("deletion must be confirmed with a valid confirm_token")

func confirmTTL() time.Duration {
	if ttl := configs.App.Auth.DeleteConfirmTTL; ttl > 0 {
		return ttl
	}
	return 5 * time.Minute
}

// IssueConfirmToken signs a short-lived token bound to one table row.
func IssueConfirmToken(table, id string, now time.Time) (string, time.Time, error) {
	exp := now.Add(confirmTTL())
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"typ": confirmTyp,
		"res": table,
		"rid": id,
		"iat": now.Unix(),
		"exp": exp.Unix(),
	}).SignedString([]byte(configs.JWTSecret))
	return tok, exp, err
}

func VerifyConfirmToken(token, table, id string) error {
	if token == "" || configs.JWTSecret == "" {
		return errNotConfirmed
	}
	claims := jwt.MapClaims{}
	parser := jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	if _, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return errNotConfirmed
	}
	if claims["typ"] != confirmTyp || claims["res"] != table || claims["rid"] != id {
		return errNotConfirmed
	}
	return nil
}

func confirmTokenFrom(c *fiber.Ctx) string {
	if t := strings.TrimSpace(c.Query("confirm_token")); t != "" {
		return t
	}
	if t := strings.TrimSpace(c.FormValue("confirm_token")); t != "" {
		return t
	}
	var body struct {
		ConfirmToken string `json:"confirm_token"`
	}
	if len(c.Body()) > 0 && strings.Contains(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		_ = c.BodyParser(&body)
	}
	return strings.TrimSpace(body.ConfirmToken)
}

// echoInput returns the submitted values (minus secrets) for re-rendering a form.
func echoInput(c *fiber.Ctx) map[string]any {
	out := map[string]any{}
	if strings.Contains(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		_ = c.App().Config().JSONDecoder(c.Body(), &out)
	} else {
		c.Request().PostArgs().VisitAll(func(k, v []byte) {
			out[string(k)] = string(v)
		})
	}
	for k := range out {
		if strings.Contains(strings.ToLower(k), "password") {
			delete(out, k)
		}
	}
	return out
}

package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooloffice_backend/internals/features/accounts/dto"
	"schooloffice_backend/internals/features/accounts/service"
	helper "schooloffice_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
	v  *helper.Validator
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, v: helper.NewValidator()}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := ac.v.Struct(in); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	s, err := service.Login(c.UserContext(), ac.DB, in, clientMeta(c))
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return ac.respondSession(c, "login successful", s)
}

// POST /api/auth/login-google
func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var in dto.GoogleLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := ac.v.Struct(in); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	s, err := service.LoginGoogle(c.UserContext(), ac.DB, in.IDToken, clientMeta(c))
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return ac.respondSession(c, "login successful", s)
}

// POST /api/auth/refresh (body refresh_token atau cookie)
func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	_ = c.BodyParser(&in)
	token := strings.TrimSpace(in.RefreshToken)
	if token == "" {
		token = strings.TrimSpace(c.Cookies("refresh_token"))
	}
	s, err := service.Refresh(c.UserContext(), ac.DB, token, clientMeta(c))
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return ac.respondSession(c, "token refreshed", s)
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	_ = c.BodyParser(&in)
	refresh := strings.TrimSpace(in.RefreshToken)
	if refresh == "" {
		refresh = strings.TrimSpace(c.Cookies("refresh_token"))
	}
	if err := service.Logout(c.UserContext(), ac.DB, helper.GetRawAccessToken(c), refresh); err != nil {
		return helper.JsonAppError(c, err)
	}
	clearAuthCookies(c)
	return helper.JsonOK(c, "logged out", nil)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	id, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	u, err := service.FindUser(c.UserContext(), ac.DB, id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.NewMeResponse(*u))
}

// POST /api/auth/change-password
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	id, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := ac.v.Struct(in); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	if err := service.ChangePassword(c.UserContext(), ac.DB, id, in); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "password changed successfully", nil)
}

func (ac *AuthController) respondSession(c *fiber.Ctx, msg string, s *service.Session) error {
	setAuthCookies(c, s.Tokens)
	return helper.JsonOK(c, msg, fiber.Map{
		"user":   dto.NewMeResponse(s.User),
		"tokens": s.Tokens,
	})
}

func clientMeta(c *fiber.Ctx) service.ClientMeta {
	return service.ClientMeta{UserAgent: c.Get("User-Agent"), IP: c.IP()}
}

func setAuthCookies(c *fiber.Ctx, t *service.TokenPair) {
	c.Cookie(&fiber.Cookie{
		Name: "access_token", Value: t.AccessToken, Path: "/",
		HTTPOnly: true, Secure: true, SameSite: "Lax", Expires: t.AccessExpiresAt,
	})
	c.Cookie(&fiber.Cookie{
		Name: "refresh_token", Value: t.RefreshToken, Path: "/api/auth",
		HTTPOnly: true, Secure: true, SameSite: "Strict", Expires: t.RefreshExpiresAt,
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	past := time.Unix(0, 0)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Path: "/", Expires: past, HTTPOnly: true, Secure: true})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Path: "/api/auth", Expires: past, HTTPOnly: true, Secure: true})
}

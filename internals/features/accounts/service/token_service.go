package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"schooloffice_backend/internals/configs"
	"schooloffice_backend/internals/features/accounts/model"
)

const (
	accessTTLDefault  = 15 * time.Minute
	refreshTTLDefault = 7 * 24 * time.Hour
)

type TokenPair struct {
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

func accessTTL() time.Duration {
	if d := configs.App.Auth.AccessTTL; d > 0 {
		return d
	}
	return accessTTLDefault
}

func refreshTTL() time.Duration {
	if d := configs.App.Auth.RefreshTTL; d > 0 {
		return d
	}
	return refreshTTLDefault
}

func getJWTSecret() (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET is not configured")
	}
	return configs.JWTSecret, nil
}

func getRefreshSecret() (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", errors.New("JWT_REFRESH_SECRET is not configured")
	}
	return configs.JWTRefreshSecret, nil
}

func buildAccessClaims(u model.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":       "access",
		"sub":       u.UserID.String(),
		"id":        u.UserID.String(),
		"role":      u.UserRole,
		"user_name": u.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL()).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": userID.String(),
		"id":  userID.String(),
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL()).Unix(),
	}
}

// signPair signs an access/refresh pair and returns the refresh row to store.
func signPair(u model.UserModel, now time.Time) (*TokenPair, *model.RefreshToken, error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return nil, nil, err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return nil, nil, err
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(u, now)).SignedString([]byte(jwtSecret))
	if err != nil {
		return nil, nil, errors.Wrap(err, "sign access token")
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(u.UserID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return nil, nil, errors.Wrap(err, "sign refresh token")
	}
	pair := &TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  now.Add(accessTTL()),
		RefreshToken:     refresh,
		RefreshExpiresAt: now.Add(refreshTTL()),
	}
	row := &model.RefreshToken{
		RefreshTokenUserID:    u.UserID,
		RefreshTokenHash:      computeRefreshHash(refresh, refreshSecret),
		RefreshTokenExpiresAt: pair.RefreshExpiresAt,
	}
	return pair, row, nil
}

// parseRefresh verifies a refresh JWT and returns its subject.
func parseRefresh(token string) (uuid.UUID, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return uuid.Nil, err
	}
	claims := jwt.MapClaims{}
	parser := jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	if _, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}); err != nil {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return uuid.Nil, errors.New("not a refresh token")
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	return id, nil
}

// accessExpiry reads exp from an access token without re-verifying it.
func accessExpiry(token string, fallback time.Time) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return fallback
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0)
	}
	return fallback
}

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

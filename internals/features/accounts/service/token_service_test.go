package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooloffice_backend/internals/configs"
	"schooloffice_backend/internals/features/accounts/model"
	authMiddleware "schooloffice_backend/internals/middlewares/auth"
)

func withSecrets(t *testing.T) {
	t.Helper()
	prevA, prevR := configs.JWTSecret, configs.JWTRefreshSecret
	configs.JWTSecret, configs.JWTRefreshSecret = "access-secret", "refresh-secret"
	t.Cleanup(func() { configs.JWTSecret, configs.JWTRefreshSecret = prevA, prevR })
}

func TestSignPair_AccessTokenPassesMiddlewareParser(t *testing.T) {
	withSecrets(t)
	u := model.UserModel{UserID: uuid.New(), UserName: "jdoe", UserRole: "TEACHER"}
	now := time.Now()

	pair, row, err := signPair(u, now)
	require.NoError(t, err)

	claims, err := authMiddleware.ParseAccessToken(pair.AccessToken, configs.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, u.UserID.String(), claims["id"])
	assert.Equal(t, "TEACHER", claims["role"])
	assert.Equal(t, "jdoe", claims["user_name"])

	assert.Equal(t, u.UserID, row.RefreshTokenUserID)
	assert.Equal(t, computeRefreshHash(pair.RefreshToken, configs.JWTRefreshSecret), row.RefreshTokenHash)
	assert.WithinDuration(t, now.Add(refreshTTLDefault), row.RefreshTokenExpiresAt, time.Second)
}

func TestParseRefresh(t *testing.T) {
	withSecrets(t)
	u := model.UserModel{UserID: uuid.New()}
	pair, _, err := signPair(u, time.Now())
	require.NoError(t, err)

	id, err := parseRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, u.UserID, id)

	// an access token is signed with the other secret
	_, err = parseRefresh(pair.AccessToken)
	assert.Error(t, err)

	typed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"typ": "access", "sub": u.UserID.String(), "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(configs.JWTRefreshSecret))
	require.NoError(t, err)
	_, err = parseRefresh(typed)
	assert.EqualError(t, err, "not a refresh token")
}

func TestSignPair_MissingSecret(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = ""
	defer func() { configs.JWTSecret = prev }()

	_, _, err := signPair(model.UserModel{UserID: uuid.New()}, time.Now())
	assert.Error(t, err)
}

func TestAccessExpiry(t *testing.T) {
	withSecrets(t)
	now := time.Unix(1_700_000_000, 0)
	pair, _, err := signPair(model.UserModel{UserID: uuid.New()}, now)
	require.NoError(t, err)

	assert.Equal(t, now.Add(accessTTLDefault).Unix(), accessExpiry(pair.AccessToken, time.Time{}).Unix())
	fallback := time.Now()
	assert.Equal(t, fallback, accessExpiry("garbage", fallback))
}

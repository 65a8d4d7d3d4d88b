package service

import (
	"context"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schooloffice_backend/internals/configs"
	"schooloffice_backend/internals/features/accounts/dto"
	"schooloffice_backend/internals/features/accounts/model"
	"schooloffice_backend/internals/helpers/apperr"
)

// ClientMeta is stored next to the refresh token for auditing.
type ClientMeta struct {
	UserAgent string
	IP        string
}

type Session struct {
	User   model.UserModel
	Tokens *TokenPair
}

var errBadCredentials = apperr.Unauthorized("invalid username/email or password")

// Login signs a user in with username or email and password.
func Login(ctx context.Context, db *gorm.DB, in dto.LoginRequest, meta ClientMeta) (*Session, error) {
	ident := strings.TrimSpace(in.Identifier)
	var u model.UserModel
	err := db.WithContext(ctx).
		Where("user_name = ? OR user_email = ?", ident, strings.ToLower(ident)).
		Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errBadCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}
	if dto.CheckPassword(u.UserPasswordHash, in.Password) != nil {
		return nil, errBadCredentials
	}
	return openSession(ctx, db, u, meta)
}

// LoginGoogle signs in the user linked to a verified Google ID token.
// Accounts are provisioned by staff; unknown Google users are rejected.
func LoginGoogle(ctx context.Context, db *gorm.DB, idToken string, meta ClientMeta) (*Session, error) {
	if configs.GoogleClientID == "" {
		return nil, apperr.New(apperr.KindUnauthorized, "google sign-in is not configured")
	}
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, apperr.Unauthorized("invalid Google ID token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, apperr.Unauthorized("invalid Google ID token")
	}

	var u model.UserModel
	err = db.WithContext(ctx).
		Where("user_google_id = ? OR user_email = ?", claimSet.Sub, strings.ToLower(claimSet.Email)).
		Order(clause.Expr{SQL: "user_google_id = ? DESC", Vars: []any{claimSet.Sub}}).
		Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Unauthorized("no account is linked to this Google user")
	}
	if err != nil {
		return nil, errors.Wrap(err, "find google user")
	}
	if u.UserGoogleID == nil {
		if err := db.WithContext(ctx).Model(&u).Update("user_google_id", claimSet.Sub).Error; err != nil {
			log.Printf("[WARN] link google id for %s: %v", u.UserName, err)
		}
	}
	return openSession(ctx, db, u, meta)
}

func openSession(ctx context.Context, db *gorm.DB, u model.UserModel, meta ClientMeta) (*Session, error) {
	if !u.UserIsActive {
		return nil, apperr.Forbidden("account is disabled")
	}
	now := time.Now().UTC()
	pair, row, err := signPair(u, now)
	if err != nil {
		return nil, apperr.Internal("could not issue tokens", err)
	}
	row.RefreshTokenUserAgent = strptr(meta.UserAgent)
	row.RefreshTokenIP = strptr(meta.IP)

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		return tx.Model(&u).UpdateColumn("user_last_login_at", now).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "store refresh token")
	}
	u.UserLastLoginAt = &now
	return &Session{User: u, Tokens: pair}, nil
}

// Refresh rotates a refresh token: the presented one is revoked and a new pair issued.
func Refresh(ctx context.Context, db *gorm.DB, refreshToken string, meta ClientMeta) (*Session, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperr.Unauthorized("refresh token is missing")
	}
	userID, err := parseRefresh(refreshToken)
	if err != nil {
		return nil, apperr.Unauthorized(err.Error())
	}
	secret, _ := getRefreshSecret()
	hash := computeRefreshHash(refreshToken, secret)

	var u model.UserModel
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.RefreshToken{}).
			Where("refresh_token_hash = ? AND refresh_token_user_id = ? AND refresh_token_revoked_at IS NULL AND refresh_token_expires_at > ?",
				hash, userID, time.Now().UTC()).
			Update("refresh_token_revoked_at", time.Now().UTC())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.Unauthorized("refresh token is unknown or revoked")
		}
		return tx.Where("user_id = ?", userID).Take(&u).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("user not found")
		}
		return nil, err
	}
	return openSession(ctx, db, u, meta)
}

// Logout blacklists the access token until it expires and revokes the
// refresh token when one is given.
func Logout(ctx context.Context, db *gorm.DB, accessToken, refreshToken string) error {
	now := time.Now().UTC()
	entry := model.TokenBlacklist{
		TokenBlacklistToken:     accessToken,
		TokenBlacklistExpiredAt: accessExpiry(accessToken, now.Add(accessTTL())),
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error; err != nil {
			return errors.Wrap(err, "blacklist token")
		}
		if refreshToken == "" {
			return nil
		}
		secret, err := getRefreshSecret()
		if err != nil {
			return nil
		}
		return tx.Model(&model.RefreshToken{}).
			Where("refresh_token_hash = ? AND refresh_token_revoked_at IS NULL", computeRefreshHash(refreshToken, secret)).
			Update("refresh_token_revoked_at", now).Error
	})
}

// ChangePassword verifies the current password and stores the new one. All
// refresh tokens of the user are revoked.
func ChangePassword(ctx context.Context, db *gorm.DB, userID uuid.UUID, in dto.ChangePasswordRequest) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u model.UserModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("user_id = ?", userID).Take(&u).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("user")
			}
			return err
		}
		if dto.CheckPassword(u.UserPasswordHash, in.CurrentPassword) != nil {
			return apperr.Validation("current_password", "current password is incorrect")
		}
		hash, err := dto.HashPassword(in.NewPassword)
		if err != nil {
			return apperr.Internal("could not hash password", err)
		}
		if err := tx.Model(&u).Update("user_password_hash", hash).Error; err != nil {
			return err
		}
		return tx.Model(&model.RefreshToken{}).
			Where("refresh_token_user_id = ? AND refresh_token_revoked_at IS NULL", userID).
			Update("refresh_token_revoked_at", time.Now().UTC()).Error
	})
}

func FindUser(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.UserModel, error) {
	var u model.UserModel
	if err := db.WithContext(ctx).Where("user_id = ?", id).Take(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, err
	}
	return &u, nil
}

func strptr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

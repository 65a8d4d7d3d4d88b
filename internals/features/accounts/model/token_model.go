package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenBlacklist holds access tokens revoked by logout until they expire.
type TokenBlacklist struct {
	TokenBlacklistID        uint      `gorm:"column:token_blacklist_id;primaryKey" json:"token_blacklist_id"`
	TokenBlacklistToken     string    `gorm:"column:token_blacklist_token;type:text;not null;uniqueIndex:uq_token_blacklist_token" json:"-"`
	TokenBlacklistExpiredAt time.Time `gorm:"column:token_blacklist_expired_at;type:timestamptz;not null;index" json:"token_blacklist_expired_at"`
	TokenBlacklistCreatedAt time.Time `gorm:"column:token_blacklist_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"token_blacklist_created_at"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }

type RefreshToken struct {
	RefreshTokenID     uuid.UUID `gorm:"column:refresh_token_id;type:uuid;default:gen_random_uuid();primaryKey" json:"refresh_token_id"`
	RefreshTokenUserID uuid.UUID `gorm:"column:refresh_token_user_id;type:uuid;not null;index" json:"refresh_token_user_id"`

	// simpan HASH token (bukan plaintext)
	RefreshTokenHash []byte `gorm:"column:refresh_token_hash;type:bytea;not null;uniqueIndex:uq_refresh_tokens_hash" json:"-"`

	RefreshTokenExpiresAt time.Time  `gorm:"column:refresh_token_expires_at;type:timestamptz;not null" json:"refresh_token_expires_at"`
	RefreshTokenRevokedAt *time.Time `gorm:"column:refresh_token_revoked_at;type:timestamptz" json:"refresh_token_revoked_at,omitempty"`
	RefreshTokenUserAgent *string    `gorm:"column:refresh_token_user_agent;type:text" json:"-"`
	RefreshTokenIP        *string    `gorm:"column:refresh_token_ip;type:varchar(64)" json:"-"`
	RefreshTokenCreatedAt time.Time  `gorm:"column:refresh_token_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"refresh_token_created_at"`
}

func (RefreshToken) TableName() string { return "refresh_tokens" }

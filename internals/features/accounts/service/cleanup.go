package service

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"schooloffice_backend/internals/configs"
	"schooloffice_backend/internals/features/accounts/model"
)

const cleanupBatch = 500

// StartBlacklistCleanupScheduler purges expired blacklist entries and dead
// refresh tokens once a day until ctx is cancelled.
func StartBlacklistCleanupScheduler(ctx context.Context, db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			if n, err := PurgeExpiredTokens(ctx, db, time.Now().UTC()); err != nil {
				log.Printf("[ERROR] token cleanup: %v", err)
			} else if n > 0 {
				log.Printf("[INFO] token cleanup removed %d rows", n)
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// PurgeExpiredTokens deletes blacklist rows past their expiry plus the
// configured grace period, and refresh tokens that expired or were revoked.
func PurgeExpiredTokens(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	graceDays := configs.App.Auth.BlacklistTTLDays
	if graceDays < 0 {
		graceDays = 0
	}
	before := now.Add(-time.Duration(graceDays) * 24 * time.Hour)

	var total int64
	for {
		res := db.WithContext(ctx).Exec(
			`DELETE FROM token_blacklist WHERE token_blacklist_id IN (
			   SELECT token_blacklist_id FROM token_blacklist WHERE token_blacklist_expired_at < ? LIMIT ?)`,
			before, cleanupBatch)
		if res.Error != nil {
			return total, res.Error
		}
		total += res.RowsAffected
		if res.RowsAffected < cleanupBatch {
			break
		}
	}
	res := db.WithContext(ctx).
		Where("refresh_token_expires_at < ? OR refresh_token_revoked_at < ?", now, before).
		Delete(&model.RefreshToken{})
	if res.Error != nil {
		return total, res.Error
	}
	return total + res.RowsAffected, nil
}

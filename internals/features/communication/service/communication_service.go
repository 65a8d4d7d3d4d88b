package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schooloffice_backend/internals/features/communication/dto"
	"schooloffice_backend/internals/features/communication/model"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/dbtime"
	"schooloffice_backend/internals/metrics"
)

// ActiveAnnouncements are the active ones whose window contains today.
func ActiveAnnouncements(ctx context.Context, db *gorm.DB, today time.Time, limit int) ([]model.AnnouncementModel, error) {
	day := dbtime.DateOf(today)
	out := []model.AnnouncementModel{}
	q := db.WithContext(ctx).
		Where("announcement_is_active = TRUE AND announcement_start_date <= ? AND announcement_end_date >= ?", day, day).
		Order("announcement_created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// CheckReply requires a parent message to be part of the same conversation.
func CheckReply(tx *gorm.DB, m *model.MessageModel) error {
	if m.MessageSenderID == m.MessageRecipientID {
		return apperr.Validation("message_recipient_id", "you cannot message yourself")
	}
	if m.MessageParentID == nil {
		return nil
	}
	var n int64
	if err := tx.Model(&model.MessageModel{}).
		Where("message_id = ?", *m.MessageParentID).
		Where("(message_sender_id = ? AND message_recipient_id = ?) OR (message_sender_id = ? AND message_recipient_id = ?)",
			m.MessageSenderID, m.MessageRecipientID, m.MessageRecipientID, m.MessageSenderID).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return apperr.Validation("message_parent_id", "parent message is not part of this conversation")
	}
	return nil
}

// MarkMessageRead is allowed to the recipient only.
func MarkMessageRead(ctx context.Context, db *gorm.DB, id, actor uuid.UUID) (*model.MessageModel, error) {
	var m model.MessageModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("message_id = ?", id).Take(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("message")
			}
			return err
		}
		if m.MessageRecipientID != actor {
			return apperr.Forbidden("only the recipient can mark a message as read")
		}
		if m.MessageIsRead {
			return nil
		}
		now := time.Now()
		m.MessageIsRead, m.MessageReadAt, m.MessageStatus = true, &now, model.MessageRead
		return tx.Model(&m).Select("message_is_read", "message_read_at", "message_status").Updates(&m).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "read message")
	}
	return &m, nil
}

// MarkNotificationRead is allowed to the notified user only.
func MarkNotificationRead(ctx context.Context, db *gorm.DB, id, actor uuid.UUID) (*model.NotificationModel, error) {
	var n model.NotificationModel
	if err := db.WithContext(ctx).Where("notification_id = ?", id).Take(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("notification")
		}
		return nil, err
	}
	if n.NotificationUserID != actor {
		return nil, apperr.Forbidden("this notification belongs to another user")
	}
	if n.NotificationIsRead {
		return &n, nil
	}
	now := time.Now()
	n.NotificationIsRead, n.NotificationReadAt = true, &now
	if err := db.WithContext(ctx).Model(&n).
		Select("notification_is_read", "notification_read_at").Updates(&n).Error; err != nil {
		return nil, errors.Wrap(err, "read notification")
	}
	return &n, nil
}

// SendEmail records the email and delivers it when a mailer is configured.
// Without one the log stays PENDING. A delivery failure is stored on the log,
// not returned.
func SendEmail(ctx context.Context, db *gorm.DB, mailer Mailer, in dto.SendEmailRequest) (*model.EmailLogModel, error) {
	e := in.ToModel()
	var user struct {
		UserFirstName string
		UserLastName  string
		UserEmail     *string
	}
	res := db.WithContext(ctx).Table("users").
		Select("user_first_name, user_last_name, user_email").
		Where("user_id = ?", e.EmailLogRecipientID).
		Limit(1).Scan(&user)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.Validation("email_log_recipient_id", "user does not exist")
	}
	if e.EmailLogEmail == "" {
		if user.UserEmail == nil || *user.UserEmail == "" {
			return nil, apperr.Validation("email_log_email", "the recipient has no email address")
		}
		e.EmailLogEmail = *user.UserEmail
	}
	if err := db.WithContext(ctx).Create(&e).Error; err != nil {
		return nil, errors.Wrap(err, "record email")
	}
	if mailer == nil {
		metrics.EmailsSent.WithLabelValues(model.DeliveryPending).Inc()
		return &e, nil
	}

	name := user.UserFirstName + " " + user.UserLastName
	if err := mailer.Send(ctx, name, e.EmailLogEmail, e.EmailLogSubject, e.EmailLogMessage); err != nil {
		msg := err.Error()
		e.EmailLogStatus, e.EmailLogError = model.DeliveryFailed, &msg
	} else {
		now := time.Now()
		e.EmailLogStatus, e.EmailLogSentAt = model.DeliverySent, &now
	}
	if err := db.WithContext(ctx).Model(&e).
		Select("email_log_status", "email_log_sent_at", "email_log_error_message").Updates(&e).Error; err != nil {
		log.Printf("[WARN] update email log %s: %v", e.EmailLogID, err)
	}
	metrics.EmailsSent.WithLabelValues(e.EmailLogStatus).Inc()
	return &e, nil
}

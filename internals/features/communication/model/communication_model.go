package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AnnouncementModel struct {
	AnnouncementID            uuid.UUID      `gorm:"column:announcement_id;type:uuid;default:gen_random_uuid();primaryKey" json:"announcement_id"`
	AnnouncementTitle         string         `gorm:"column:announcement_title;type:varchar(200);not null" json:"announcement_title"`
	AnnouncementDescription   string         `gorm:"column:announcement_description;type:text;not null" json:"announcement_description"`
	AnnouncementType          string         `gorm:"column:announcement_type;type:varchar(20);not null;default:'GENERAL'" json:"announcement_type"`
	AnnouncementAudience      string         `gorm:"column:announcement_target_audience;type:varchar(20);not null;default:'ALL'" json:"announcement_target_audience"`
	AnnouncementCampusID      uuid.UUID      `gorm:"column:announcement_campus_id;type:uuid;not null;index" json:"announcement_campus_id"`
	AnnouncementClassID       *uuid.UUID     `gorm:"column:announcement_class_id;type:uuid" json:"announcement_class_id,omitempty"`
	AnnouncementAttachmentURL *string        `gorm:"column:announcement_attachment_url;type:text" json:"announcement_attachment_url,omitempty"`
	AnnouncementIsActive      bool           `gorm:"column:announcement_is_active;not null;default:true" json:"announcement_is_active"`
	AnnouncementStartDate     datatypes.Date `gorm:"column:announcement_start_date;type:date;not null" json:"announcement_start_date"`
	AnnouncementEndDate       datatypes.Date `gorm:"column:announcement_end_date;type:date;not null" json:"announcement_end_date"`
	AnnouncementCreatedBy     *uuid.UUID     `gorm:"column:announcement_created_by;type:uuid" json:"announcement_created_by,omitempty"`

	AnnouncementCreatedAt time.Time `gorm:"column:announcement_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"announcement_created_at"`
	AnnouncementUpdatedAt time.Time `gorm:"column:announcement_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"announcement_updated_at"`
}

func (AnnouncementModel) TableName() string { return "announcements" }

/* =========================================================
   MESSAGES & NOTIFICATIONS
========================================================= */

const (
	MessageSent      = "SENT"
	MessageDelivered = "DELIVERED"
	MessageRead      = "READ"
)

type MessageModel struct {
	MessageID            uuid.UUID  `gorm:"column:message_id;type:uuid;default:gen_random_uuid();primaryKey" json:"message_id"`
	MessageSenderID      uuid.UUID  `gorm:"column:message_sender_id;type:uuid;not null;index" json:"message_sender_id"`
	MessageRecipientID   uuid.UUID  `gorm:"column:message_recipient_id;type:uuid;not null;index" json:"message_recipient_id"`
	MessageSubject       string     `gorm:"column:message_subject;type:varchar(200);not null" json:"message_subject"`
	MessageBody          string     `gorm:"column:message_message;type:text;not null" json:"message_message"`
	MessageAttachmentURL *string    `gorm:"column:message_attachment_url;type:text" json:"message_attachment_url,omitempty"`
	MessageStatus        string     `gorm:"column:message_status;type:varchar(20);not null;default:'SENT'" json:"message_status"`
	MessageIsRead        bool       `gorm:"column:message_is_read;not null;default:false" json:"message_is_read"`
	MessageReadAt        *time.Time `gorm:"column:message_read_at;type:timestamptz" json:"message_read_at,omitempty"`
	MessageParentID      *uuid.UUID `gorm:"column:message_parent_id;type:uuid" json:"message_parent_id,omitempty"`

	MessageCreatedAt time.Time `gorm:"column:message_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"message_created_at"`
}

func (MessageModel) TableName() string { return "messages" }

type NotificationModel struct {
	NotificationID      uuid.UUID  `gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notification_id"`
	NotificationUserID  uuid.UUID  `gorm:"column:notification_user_id;type:uuid;not null;index" json:"notification_user_id"`
	NotificationTitle   string     `gorm:"column:notification_title;type:varchar(200);not null" json:"notification_title"`
	NotificationMessage string     `gorm:"column:notification_message;type:text;not null" json:"notification_message"`
	NotificationType    string     `gorm:"column:notification_type;type:varchar(10);not null;default:'INFO'" json:"notification_type"`
	NotificationLink    *string    `gorm:"column:notification_link;type:varchar(500)" json:"notification_link,omitempty"`
	NotificationIsRead  bool       `gorm:"column:notification_is_read;not null;default:false;index" json:"notification_is_read"`
	NotificationReadAt  *time.Time `gorm:"column:notification_read_at;type:timestamptz" json:"notification_read_at,omitempty"`

	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string { return "notifications" }

/* =========================================================
   OUTBOUND LOGS
========================================================= */

const (
	DeliveryPending = "PENDING"
	DeliverySent    = "SENT"
	DeliveryFailed  = "FAILED"
)

type SMSLogModel struct {
	SMSLogID          uuid.UUID  `gorm:"column:sms_log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"sms_log_id"`
	SMSLogRecipientID uuid.UUID  `gorm:"column:sms_log_recipient_id;type:uuid;not null;index" json:"sms_log_recipient_id"`
	SMSLogPhoneNumber string     `gorm:"column:sms_log_phone_number;type:varchar(20);not null" json:"sms_log_phone_number"`
	SMSLogMessage     string     `gorm:"column:sms_log_message;type:text;not null" json:"sms_log_message"`
	SMSLogStatus      string     `gorm:"column:sms_log_status;type:varchar(10);not null;default:'PENDING';index" json:"sms_log_status"`
	SMSLogSentAt      *time.Time `gorm:"column:sms_log_sent_at;type:timestamptz" json:"sms_log_sent_at,omitempty"`
	SMSLogError       *string    `gorm:"column:sms_log_error_message;type:text" json:"sms_log_error_message,omitempty"`

	SMSLogCreatedAt time.Time `gorm:"column:sms_log_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"sms_log_created_at"`
}

func (SMSLogModel) TableName() string { return "sms_logs" }

type EmailLogModel struct {
	EmailLogID          uuid.UUID  `gorm:"column:email_log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"email_log_id"`
	EmailLogRecipientID uuid.UUID  `gorm:"column:email_log_recipient_id;type:uuid;not null;index" json:"email_log_recipient_id"`
	EmailLogEmail       string     `gorm:"column:email_log_email;type:varchar(254);not null" json:"email_log_email"`
	EmailLogSubject     string     `gorm:"column:email_log_subject;type:varchar(200);not null" json:"email_log_subject"`
	EmailLogMessage     string     `gorm:"column:email_log_message;type:text;not null" json:"email_log_message"`
	EmailLogStatus      string     `gorm:"column:email_log_status;type:varchar(10);not null;default:'PENDING';index" json:"email_log_status"`
	EmailLogSentAt      *time.Time `gorm:"column:email_log_sent_at;type:timestamptz" json:"email_log_sent_at,omitempty"`
	EmailLogError       *string    `gorm:"column:email_log_error_message;type:text" json:"email_log_error_message,omitempty"`

	EmailLogCreatedAt time.Time `gorm:"column:email_log_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"email_log_created_at"`
}

func (EmailLogModel) TableName() string { return "email_logs" }

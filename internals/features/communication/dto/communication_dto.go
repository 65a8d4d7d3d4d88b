package dto

import (
	"strings"

	"github.com/google/uuid"

	"schooloffice_backend/internals/features/communication/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/dbtime"
)

type AnnouncementRequest struct {
	Title         string     `json:"announcement_title"           validate:"notblank,max=200"`
	Description   string     `json:"announcement_description"     validate:"notblank"`
	Type          string     `json:"announcement_type"            validate:"omitempty,oneof=GENERAL URGENT EVENT HOLIDAY EXAM"`
	Audience      string     `json:"announcement_target_audience" validate:"omitempty,oneof=ALL STUDENTS TEACHERS PARENTS STAFF"`
	CampusID      uuid.UUID  `json:"announcement_campus_id"       validate:"required"`
	ClassID       *uuid.UUID `json:"announcement_class_id"`
	AttachmentURL *string    `json:"announcement_attachment_url"  validate:"omitempty,max=2048"`
	IsActive      *bool      `json:"announcement_is_active"`
	StartDate     string     `json:"announcement_start_date"      validate:"required,datetime=2006-01-02"`
	EndDate       string     `json:"announcement_end_date"        validate:"required,datetime=2006-01-02"`
}

func (r AnnouncementRequest) ToModel() model.AnnouncementModel {
	m := model.AnnouncementModel{
		AnnouncementTitle:         strings.TrimSpace(r.Title),
		AnnouncementDescription:   strings.TrimSpace(r.Description),
		AnnouncementType:          "GENERAL",
		AnnouncementAudience:      "ALL",
		AnnouncementCampusID:      r.CampusID,
		AnnouncementClassID:       r.ClassID,
		AnnouncementAttachmentURL: helper.TrimPtr(r.AttachmentURL),
		AnnouncementIsActive:      helper.ValueOr(r.IsActive, true),
		AnnouncementStartDate:     dbtime.ParseDate(r.StartDate),
		AnnouncementEndDate:       dbtime.ParseDate(r.EndDate),
	}
	if r.Type != "" {
		m.AnnouncementType = r.Type
	}
	if r.Audience != "" {
		m.AnnouncementAudience = r.Audience
	}
	return m
}

type MessageRequest struct {
	RecipientID   uuid.UUID  `json:"message_recipient_id"   validate:"required"`
	Subject       string     `json:"message_subject"        validate:"notblank,max=200"`
	Message       string     `json:"message_message"        validate:"notblank"`
	AttachmentURL *string    `json:"message_attachment_url" validate:"omitempty,max=2048"`
	ParentID      *uuid.UUID `json:"message_parent_id"`
}

// ToModel leaves the sender to the caller.
func (r MessageRequest) ToModel() model.MessageModel {
	return model.MessageModel{
		MessageRecipientID:   r.RecipientID,
		MessageSubject:       strings.TrimSpace(r.Subject),
		MessageBody:          strings.TrimSpace(r.Message),
		MessageAttachmentURL: helper.TrimPtr(r.AttachmentURL),
		MessageStatus:        model.MessageSent,
		MessageParentID:      r.ParentID,
	}
}

type NotificationRequest struct {
	UserID  uuid.UUID `json:"notification_user_id" validate:"required"`
	Title   string    `json:"notification_title"   validate:"notblank,max=200"`
	Message string    `json:"notification_message" validate:"notblank"`
	Type    string    `json:"notification_type"    validate:"omitempty,oneof=INFO WARNING SUCCESS ERROR"`
	Link    *string   `json:"notification_link"    validate:"omitempty,max=500"`
}

func (r NotificationRequest) ToModel() model.NotificationModel {
	m := model.NotificationModel{
		NotificationUserID:  r.UserID,
		NotificationTitle:   strings.TrimSpace(r.Title),
		NotificationMessage: strings.TrimSpace(r.Message),
		NotificationType:    "INFO",
		NotificationLink:    helper.TrimPtr(r.Link),
	}
	if r.Type != "" {
		m.NotificationType = r.Type
	}
	return m
}

type SMSLogRequest struct {
	RecipientID uuid.UUID `json:"sms_log_recipient_id"  validate:"required"`
	PhoneNumber string    `json:"sms_log_phone_number"  validate:"notblank,max=20"`
	Message     string    `json:"sms_log_message"       validate:"notblank"`
	Status      string    `json:"sms_log_status"        validate:"omitempty,oneof=PENDING SENT FAILED"`
	Error       *string   `json:"sms_log_error_message"`
}

func (r SMSLogRequest) ToModel() model.SMSLogModel {
	m := model.SMSLogModel{
		SMSLogRecipientID: r.RecipientID,
		SMSLogPhoneNumber: strings.TrimSpace(r.PhoneNumber),
		SMSLogMessage:     strings.TrimSpace(r.Message),
		SMSLogStatus:      model.DeliveryPending,
		SMSLogError:       helper.TrimPtr(r.Error),
	}
	if r.Status != "" {
		m.SMSLogStatus = r.Status
	}
	return m
}

// SendEmailRequest addresses a user; Email overrides the user's own address.
type SendEmailRequest struct {
	RecipientID uuid.UUID `json:"email_log_recipient_id" validate:"required"`
	Email       *string   `json:"email_log_email"        validate:"omitempty,email,max=254"`
	Subject     string    `json:"email_log_subject"      validate:"notblank,max=200"`
	Message     string    `json:"email_log_message"      validate:"notblank"`
}

func (r SendEmailRequest) ToModel() model.EmailLogModel {
	m := model.EmailLogModel{
		EmailLogRecipientID: r.RecipientID,
		EmailLogSubject:     strings.TrimSpace(r.Subject),
		EmailLogMessage:     strings.TrimSpace(r.Message),
		EmailLogStatus:      model.DeliveryPending,
	}
	if e := helper.TrimPtr(r.Email); e != nil {
		m.EmailLogEmail = strings.ToLower(*e)
	}
	return m
}

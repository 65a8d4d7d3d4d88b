package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/communication/dto"
	"schooloffice_backend/internals/features/communication/model"
	"schooloffice_backend/internals/features/communication/service"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/dbtime"
)

const area = constants.AreaCommunication

func AnnouncementResource() *crud.Resource[model.AnnouncementModel, dto.AnnouncementRequest] {
	return &crud.Resource[model.AnnouncementModel, dto.AnnouncementRequest]{
		Name:    "announcement",
		Area:    area,
		OrderBy: "announcement_created_at DESC",
		Search:  []string{"announcements.announcement_title", "announcements.announcement_description"},
		Filters: []crud.Filter{
			{Param: "type", Column: "announcement_type", Kind: crud.FilterEnum},
			{Param: "audience", Column: "announcement_target_audience", Kind: crud.FilterEnum},
			{Param: "campus", Column: "announcement_campus_id", Kind: crud.FilterUUID},
			{Param: "class", Column: "announcement_class_id", Kind: crud.FilterUUID},
			{Param: "is_active", Column: "announcement_is_active", Kind: crud.FilterBool},
		},
		Keep: []string{"announcement_created_by"},
		BeforeWrite: func(w crud.WriteContext, old, m *model.AnnouncementModel) error {
			if dbtime.Before(m.AnnouncementEndDate, m.AnnouncementStartDate) {
				return apperr.Validation("announcement_end_date", "end date cannot be before start date")
			}
			if old == nil {
				m.AnnouncementCreatedBy = w.ActorPtr()
			}
			return nil
		},
	}
}

// MessageResource is personal: everyone with communication access can send,
// and only sees their own inbox and sent box.
func MessageResource() *crud.Resource[model.MessageModel, dto.MessageRequest] {
	read := constants.Read(area)
	return &crud.Resource[model.MessageModel, dto.MessageRequest]{
		Name:    "message",
		Area:    area,
		Ops:     crud.OpsRead | crud.OpCreate | crud.OpDelete,
		Caps:    map[crud.Op]constants.Capability{crud.OpCreate: read, crud.OpDelete: read},
		OrderBy: "message_created_at DESC",
		Search:  []string{"messages.message_subject", "messages.message_message"},
		Filters: []crud.Filter{
			{Param: "is_read", Column: "message_is_read", Kind: crud.FilterBool},
			{Param: "parent", Column: "message_parent_id", Kind: crud.FilterUUID},
		},
		Scope: func(tx *gorm.DB, c *fiber.Ctx) (*gorm.DB, error) {
			me := helper.ActorID(c)
			switch c.Query("box") {
			case "inbox":
				return tx.Where("messages.message_recipient_id = ?", me), nil
			case "sent":
				return tx.Where("messages.message_sender_id = ?", me), nil
			case "":
				return tx.Where("messages.message_recipient_id = ? OR messages.message_sender_id = ?", me, me), nil
			default:
				return nil, apperr.Validation("box", "must be inbox or sent")
			}
		},
		BeforeWrite: func(w crud.WriteContext, _, m *model.MessageModel) error {
			m.MessageSenderID = w.Actor
			return service.CheckReply(w.Tx, m)
		},
		BeforeDelete: func(w crud.WriteContext, m *model.MessageModel) error {
			if m.MessageSenderID != w.Actor {
				return apperr.Forbidden("only the sender can delete a message")
			}
			return nil
		},
	}
}

// NotificationResource shows users their own notifications; staff with
// communication write access see and manage everyone's.
func NotificationResource() *crud.Resource[model.NotificationModel, dto.NotificationRequest] {
	return &crud.Resource[model.NotificationModel, dto.NotificationRequest]{
		Name:     "notification",
		Area:     area,
		OrderBy:  "notification_created_at DESC",
		PageSize: 20,
		Search:   []string{"notifications.notification_title"},
		Filters: []crud.Filter{
			{Param: "user", Column: "notification_user_id", Kind: crud.FilterUUID},
			{Param: "type", Column: "notification_type", Kind: crud.FilterEnum},
			{Param: "is_read", Column: "notification_is_read", Kind: crud.FilterBool},
		},
		Keep: []string{"notification_is_read", "notification_read_at"},
		Scope: func(tx *gorm.DB, c *fiber.Ctx) (*gorm.DB, error) {
			mine := c.QueryBool("mine")
			if mine || !constants.Allows(helper.ActorRole(c), constants.Write(area)) {
				return tx.Where("notifications.notification_user_id = ?", helper.ActorID(c)), nil
			}
			return tx, nil
		},
	}
}

// logCaps keeps outbound delivery logs to roles that can send; they hold
// other people's phone numbers and addresses.
func logCaps() map[crud.Op]constants.Capability {
	write := constants.Write(area)
	return map[crud.Op]constants.Capability{crud.OpList: write, crud.OpGet: write}
}

func SMSLogResource() *crud.Resource[model.SMSLogModel, dto.SMSLogRequest] {
	return &crud.Resource[model.SMSLogModel, dto.SMSLogRequest]{
		Name:     "sms log",
		Area:     area,
		Ops:      crud.OpsRead | crud.OpCreate | crud.OpDelete,
		Caps:     logCaps(),
		OrderBy:  "sms_log_created_at DESC",
		PageSize: 20,
		Search:   []string{"sms_logs.sms_log_phone_number", "sms_logs.sms_log_message"},
		Filters: []crud.Filter{
			{Param: "recipient", Column: "sms_log_recipient_id", Kind: crud.FilterUUID},
			{Param: "status", Column: "sms_log_status", Kind: crud.FilterEnum},
		},
	}
}

// EmailLogResource lists emails; they are created by the send endpoint.
func EmailLogResource() *crud.Resource[model.EmailLogModel, dto.SendEmailRequest] {
	return &crud.Resource[model.EmailLogModel, dto.SendEmailRequest]{
		Name:     "email log",
		Area:     area,
		Ops:      crud.OpsRead | crud.OpDelete,
		Caps:     logCaps(),
		OrderBy:  "email_log_created_at DESC",
		PageSize: 20,
		Search:   []string{"email_logs.email_log_email", "email_logs.email_log_subject"},
		Filters: []crud.Filter{
			{Param: "recipient", Column: "email_log_recipient_id", Kind: crud.FilterUUID},
			{Param: "status", Column: "email_log_status", Kind: crud.FilterEnum},
		},
	}
}

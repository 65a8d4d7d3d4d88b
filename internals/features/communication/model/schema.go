package model

import database "schooloffice_backend/internals/databases"

func Schema() database.Schema {
	fk, cascade, setNull := database.FK, database.Cascade, database.SetNull
	return database.Schema{
		Models: []any{&AnnouncementModel{}, &MessageModel{}, &NotificationModel{}, &SMSLogModel{}, &EmailLogModel{}},
		ForeignKeys: []database.ForeignKey{
			fk("announcements", "announcement_campus_id", "campuses", "campus_id", cascade),
			fk("announcements", "announcement_class_id", "classes", "class_id", cascade),
			fk("announcements", "announcement_created_by", "users", "user_id", setNull),
			fk("messages", "message_sender_id", "users", "user_id", cascade),
			fk("messages", "message_recipient_id", "users", "user_id", cascade),
			fk("messages", "message_parent_id", "messages", "message_id", cascade),
			fk("notifications", "notification_user_id", "users", "user_id", cascade),
			fk("sms_logs", "sms_log_recipient_id", "users", "user_id", cascade),
			fk("email_logs", "email_log_recipient_id", "users", "user_id", cascade),
		},
		Statements: []string{
			database.Check("announcements", "ck_announcements_window", "announcement_end_date >= announcement_start_date"),
			database.Check("messages", "ck_messages_not_self", "message_sender_id <> message_recipient_id"),
		},
	}
}

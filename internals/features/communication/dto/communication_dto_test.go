package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"schooloffice_backend/internals/features/communication/model"
	helper "schooloffice_backend/internals/helpers"
)

func TestAnnouncementRequest_Defaults(t *testing.T) {
	m := AnnouncementRequest{Title: " Sports day ", Description: "x", CampusID: uuid.New(),
		StartDate: "2026-04-01", EndDate: "2026-04-03"}.ToModel()
	assert.Equal(t, "Sports day", m.AnnouncementTitle)
	assert.Equal(t, "GENERAL", m.AnnouncementType)
	assert.Equal(t, "ALL", m.AnnouncementAudience)
	assert.True(t, m.AnnouncementIsActive)
}

func TestSendEmailRequest(t *testing.T) {
	addr := " Parent@Mail.TEST "
	m := SendEmailRequest{RecipientID: uuid.New(), Email: &addr, Subject: "Fees", Message: "Reminder"}.ToModel()
	assert.Equal(t, "parent@mail.test", m.EmailLogEmail)
	assert.Equal(t, model.DeliveryPending, m.EmailLogStatus)

	bad := "not-an-email"
	errs := helper.NewValidator().Struct(SendEmailRequest{Email: &bad, Subject: " ", Message: "x"})
	assert.Contains(t, errs, "email_log_recipient_id")
	assert.Contains(t, errs, "email_log_email")
	assert.Contains(t, errs, "email_log_subject")
}

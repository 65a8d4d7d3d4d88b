package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"schooloffice_backend/internals/configs"
	"schooloffice_backend/internals/features/communication/model"
	"schooloffice_backend/internals/helpers/apperr"
)

func TestCheckReply_SelfMessage(t *testing.T) {
	me := uuid.New()
	err := CheckReply(nil, &model.MessageModel{MessageSenderID: me, MessageRecipientID: me})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Contains(t, apperr.From(err).Fields, "message_recipient_id")
}

func TestCheckReply_NoParent(t *testing.T) {
	assert.NoError(t, CheckReply(nil, &model.MessageModel{MessageSenderID: uuid.New(), MessageRecipientID: uuid.New()}))
}

func TestNewMailer(t *testing.T) {
	assert.Nil(t, NewMailer(configs.SendGridConfig{}))

	m := NewMailer(configs.SendGridConfig{APIKey: "SG.x", FromName: "School", FromEmail: "office@school.test"})
	assert.IsType(t, &SendGridMailer{}, m)
}

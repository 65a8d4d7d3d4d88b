package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooloffice_backend/internals/features/communication/dto"
	"schooloffice_backend/internals/features/communication/service"
	helper "schooloffice_backend/internals/helpers"
)

type CommunicationController struct {
	DB     *gorm.DB
	Mailer service.Mailer
	v      *helper.Validator
}

func NewCommunicationController(db *gorm.DB, mailer service.Mailer) *CommunicationController {
	return &CommunicationController{DB: db, Mailer: mailer, v: helper.NewValidator()}
}

// GET /communication/announcements/active
func (ctl *CommunicationController) ActiveAnnouncements(c *fiber.Ctx) error {
	rows, err := service.ActiveAnnouncements(c.UserContext(), ctl.DB, time.Now(), 0)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "active announcements", rows)
}

// POST /communication/messages/:id/read
func (ctl *CommunicationController) ReadMessage(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	m, err := service.MarkMessageRead(c.UserContext(), ctl.DB, id, helper.ActorID(c))
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "message read", m)
}

// POST /communication/notifications/:id/read
func (ctl *CommunicationController) ReadNotification(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	n, err := service.MarkNotificationRead(c.UserContext(), ctl.DB, id, helper.ActorID(c))
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "notification read", n)
}

// POST /communication/emails/send
func (ctl *CommunicationController) SendEmail(c *fiber.Ctx) error {
	var in dto.SendEmailRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := ctl.v.Struct(in); errs != nil {
		return helper.JsonValidationErrorWithInput(c, errs, in)
	}
	e, err := service.SendEmail(c.UserContext(), ctl.DB, ctl.Mailer, in)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "email "+e.EmailLogStatus, e)
}

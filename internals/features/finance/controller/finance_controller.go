package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooloffice_backend/internals/features/finance/dto"
	"schooloffice_backend/internals/features/finance/service"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/apperr"
)

type FinanceController struct {
	DB        *gorm.DB
	Gateway   service.Gateway
	ServerKey string
	v         *helper.Validator
}

func NewFinanceController(db *gorm.DB, gw service.Gateway, serverKey string) *FinanceController {
	return &FinanceController{DB: db, Gateway: gw, ServerKey: serverKey, v: helper.NewValidator()}
}

// bind parses and validates the body; ok=false means the response is written.
func (ctl *FinanceController) bind(c *fiber.Ctx, in any) (bool, error) {
	if err := c.BodyParser(in); err != nil {
		return false, helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := ctl.v.Struct(in); errs != nil {
		return false, helper.JsonValidationErrorWithInput(c, errs, in)
	}
	return true, nil
}

// GET /finance/overview
func (ctl *FinanceController) Overview(c *fiber.Ctx) error {
	out, err := service.Overview(c.UserContext(), ctl.DB)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "finance overview", out)
}

// POST /finance/invoices/generate
func (ctl *FinanceController) GenerateInvoice(c *fiber.Ctx) error {
	var in dto.GenerateInvoiceRequest
	if ok, err := ctl.bind(c, &in); !ok {
		return err
	}
	inv, err := service.GenerateInvoice(c.UserContext(), ctl.DB, in, helper.ActorID(c))
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "invoice generated", inv)
}

// POST /finance/invoices/:id/cancel
func (ctl *FinanceController) CancelInvoice(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	inv, err := service.CancelInvoice(c.UserContext(), ctl.DB, id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "invoice cancelled", inv)
}

// POST /finance/invoices/:id/pay-online
func (ctl *FinanceController) PayOnline(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	out, err := service.StartOnlinePayment(c.UserContext(), ctl.DB, ctl.Gateway, id, helper.ActorID(c))
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "checkout opened", out)
}

// POST /finance/payments
func (ctl *FinanceController) RecordPayment(c *fiber.Ctx) error {
	var in dto.PaymentRequest
	if ok, err := ctl.bind(c, &in); !ok {
		return err
	}
	out, err := service.RecordPayment(c.UserContext(), ctl.DB, in, helper.ActorID(c))
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "payment recorded", out)
}

// PATCH /finance/payments/:id/status
func (ctl *FinanceController) PaymentStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var in dto.PaymentStatusRequest
	if ok, err := ctl.bind(c, &in); !ok {
		return err
	}
	out, err := service.UpdatePaymentStatus(c.UserContext(), ctl.DB, id, in.Status)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "payment updated", out)
}

// POST /finance/expenses/:id/approve
func (ctl *FinanceController) ApproveExpense(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	e, err := service.ApproveExpense(c.UserContext(), ctl.DB, id, helper.ActorID(c))
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "expense approved", e)
}

// POST /finance/salaries/generate
func (ctl *FinanceController) GenerateSalaries(c *fiber.Ctx) error {
	var in dto.GenerateSalariesRequest
	if ok, err := ctl.bind(c, &in); !ok {
		return err
	}
	rows, err := service.GenerateSalaries(c.UserContext(), ctl.DB, in, helper.ActorID(c))
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "salaries generated", fiber.Map{"created": len(rows), "salaries": rows})
}

// POST /finance/salaries/:id/pay
func (ctl *FinanceController) PaySalary(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var in dto.PaySalaryRequest
	if len(c.Body()) > 0 {
		if ok, err := ctl.bind(c, &in); !ok {
			return err
		}
	}
	s, err := service.PaySalary(c.UserContext(), ctl.DB, id, in, helper.ActorID(c))
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "salary paid", s)
}

// POST /api/public/payments/notification
//
// The gateway retries anything but 2xx, so only a bad signature or payload is
// answered with an error.
func (ctl *FinanceController) Notification(c *fiber.Ctx) error {
	err := service.HandleNotification(c.UserContext(), ctl.DB, ctl.ServerKey, c.Body())
	if err == nil {
		return helper.JsonOK(c, "ok", nil)
	}
	switch apperr.From(err).Kind {
	case apperr.KindValidation, apperr.KindForbidden:
		return helper.JsonAppError(c, err)
	default:
		log.Printf("[WARN] payment notification: %v", err)
		return helper.JsonOK(c, "recorded", nil)
	}
}

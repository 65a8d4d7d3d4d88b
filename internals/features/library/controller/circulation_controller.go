package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooloffice_backend/internals/configs"
	"schooloffice_backend/internals/features/library/dto"
	"schooloffice_backend/internals/features/library/service"
	helper "schooloffice_backend/internals/helpers"
)

type CirculationController struct {
	DB *gorm.DB
	v  *helper.Validator
}

func NewCirculationController(db *gorm.DB) *CirculationController {
	return &CirculationController{DB: db, v: helper.NewValidator()}
}

// POST /library/issues
func (ctl *CirculationController) Issue(c *fiber.Ctx) error {
	var in dto.IssueBookRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := ctl.v.Struct(in); errs != nil {
		return helper.JsonValidationErrorWithInput(c, errs, in)
	}
	is, err := service.IssueBook(c.UserContext(), ctl.DB, in, helper.ActorID(c))
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "book issued", is)
}

// POST /library/issues/:id/return
func (ctl *CirculationController) Return(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	in := dto.ReturnBookRequest{Status: "RETURNED"}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
		}
	}
	if errs := ctl.v.Struct(in); errs != nil {
		return helper.JsonValidationErrorWithInput(c, errs, in)
	}
	is, err := service.ReturnBook(c.UserContext(), ctl.DB, id, in, configs.App.Library.FineRate())
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "issue closed", is)
}

// POST /library/issues/:id/pay-fine
func (ctl *CirculationController) PayFine(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	is, err := service.PayFine(c.UserContext(), ctl.DB, id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "fine paid", is)
}

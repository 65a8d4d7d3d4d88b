package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooloffice_backend/internals/features/staff/dto"
	"schooloffice_backend/internals/features/staff/service"
	helper "schooloffice_backend/internals/helpers"
)

type LeaveController struct {
	DB *gorm.DB
}

func NewLeaveController(db *gorm.DB) *LeaveController {
	return &LeaveController{DB: db}
}

// Decide serves POST /staff/leaves/:id/{approve,reject,cancel}.
func (ctl *LeaveController) Decide(action service.LeaveAction) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := helper.ParseUUIDParam(c, "id")
		if err != nil {
			return helper.JsonAppError(c, err)
		}
		var in dto.LeaveDecisionRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&in); err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
			}
		}
		l, err := service.DecideLeave(c.UserContext(), ctl.DB, id, action, in.Remarks, helper.ActorID(c))
		if err != nil {
			return helper.JsonAppError(c, err)
		}
		return helper.JsonUpdated(c, "leave "+l.LeaveStatus, l)
	}
}

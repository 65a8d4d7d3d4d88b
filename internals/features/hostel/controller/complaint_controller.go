package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooloffice_backend/internals/features/hostel/dto"
	"schooloffice_backend/internals/features/hostel/service"
	helper "schooloffice_backend/internals/helpers"
)

type ComplaintController struct {
	DB *gorm.DB
}

func NewComplaintController(db *gorm.DB) *ComplaintController {
	return &ComplaintController{DB: db}
}

// POST /hostel/complaints/:id/resolve
func (ctl *ComplaintController) Resolve(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var in dto.ResolveComplaintRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
		}
	}
	m, err := service.ResolveComplaint(c.UserContext(), ctl.DB, id, helper.TrimPtr(in.Remarks), helper.ActorID(c))
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "complaint resolved", m)
}

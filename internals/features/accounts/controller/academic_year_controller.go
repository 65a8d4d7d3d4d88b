package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooloffice_backend/internals/features/accounts/service"
	helper "schooloffice_backend/internals/helpers"
)

type AcademicYearController struct {
	DB *gorm.DB
}

// POST /accounts/academic-years/:id/set-current
func (ctl *AcademicYearController) SetCurrent(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	y, err := service.SetCurrentAcademicYear(c.UserContext(), ctl.DB, id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, y.AcademicYearName+" is now the current academic year", y)
}

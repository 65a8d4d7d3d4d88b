package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooloffice_backend/internals/features/academics/dto"
	"schooloffice_backend/internals/features/academics/service"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/dbtime"
)

type AcademicsController struct {
	DB *gorm.DB
	v  *helper.Validator
}

func NewAcademicsController(db *gorm.DB) *AcademicsController {
	return &AcademicsController{DB: db, v: helper.NewValidator()}
}

// POST /academics/attendance/bulk
func (ctl *AcademicsController) BulkAttendance(c *fiber.Ctx) error {
	var in dto.BulkAttendanceRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := ctl.v.Struct(in); errs != nil {
		return helper.JsonValidationErrorWithInput(c, errs, in)
	}
	rows, err := service.MarkSectionAttendance(c.UserContext(), ctl.DB, in, helper.ActorID(c))
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "attendance saved", fiber.Map{"count": len(rows), "items": rows})
}

// GET /academics/examinations/overview
func (ctl *AcademicsController) ExamOverview(c *fiber.Ctx) error {
	out, err := service.ExamOverview(c.UserContext(), ctl.DB, dbtime.Today())
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}

// POST /academics/homework-submissions/:id/grade
func (ctl *AcademicsController) GradeSubmission(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var in dto.GradeSubmissionRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := ctl.v.Struct(in); errs != nil {
		return helper.JsonValidationErrorWithInput(c, errs, in)
	}
	s, err := service.GradeSubmission(c.UserContext(), ctl.DB, id, in, helper.ActorID(c))
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "submission graded", s)
}

package controller

import (
	"bytes"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schooloffice_backend/internals/features/reports/dto"
	"schooloffice_backend/internals/features/reports/service"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/apperr"
)

type ReportsController struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewReportsController(db *gorm.DB) *ReportsController {
	return &ReportsController{DB: db, Now: time.Now}
}

// GET /dashboard
func (ctl *ReportsController) Dashboard(c *fiber.Ctx) error {
	out, err := service.Dashboard(c.UserContext(), ctl.DB, ctl.Now())
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "dashboard", out)
}

// GET /reports/students?class=&section=&gender=&status=&export=csv
func (ctl *ReportsController) Students(c *fiber.Ctx) error {
	q, err := parseStudentQuery(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	rows, err := service.StudentReport(c.UserContext(), ctl.DB, q)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if !strings.EqualFold(c.Query("export"), "csv") {
		return helper.JsonOK(c, "student report", rows)
	}

	var buf bytes.Buffer
	if err := service.WriteStudentCSV(&buf, rows); err != nil {
		return helper.JsonAppError(c, apperr.Internal("could not build export", err))
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Attachment(service.ReportFilename(ctl.Now()))
	return c.Send(buf.Bytes())
}

func parseStudentQuery(c *fiber.Ctx) (dto.StudentReportQuery, error) {
	q := dto.StudentReportQuery{Gender: c.Query("gender"), Status: c.Query("status")}
	var err error
	if q.ClassID, err = optionalUUID(c, "class"); err != nil {
		return q, err
	}
	if q.SectionID, err = optionalUUID(c, "section"); err != nil {
		return q, err
	}
	return q, nil
}

func optionalUUID(c *fiber.Ctx, param string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(param))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperr.Validation(param, "must be a valid id")
	}
	return &id, nil
}

package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schooloffice_backend/internals/features/site/dto"
	"schooloffice_backend/internals/features/site/model"
	"schooloffice_backend/internals/features/site/service"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/media"
)

type SiteController struct {
	DB       *gorm.DB
	Uploader *media.Uploader
	v        *helper.Validator
}

func NewSiteController(db *gorm.DB, up *media.Uploader) *SiteController {
	return &SiteController{DB: db, Uploader: up, v: helper.NewValidator()}
}

// GET /site/settings
func (ctl *SiteController) GetSettings(c *fiber.Ctx) error {
	s, err := service.Settings(c.UserContext(), ctl.DB)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if s == nil {
		return helper.JsonAppError(c, apperr.NotFound("site settings"))
	}
	return helper.JsonOK(c, "ok", s)
}

// PUT /site/settings
func (ctl *SiteController) PutSettings(c *fiber.Ctx) error {
	var in dto.SettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := ctl.v.Struct(in); errs != nil {
		return helper.JsonValidationErrorWithInput(c, errs, in)
	}
	s, err := service.UpsertSettings(c.UserContext(), ctl.DB, in)
	if err != nil {
		if ae := apperr.From(err); ae.Kind == apperr.KindValidation {
			return helper.JsonValidationErrorWithInput(c, ae.Fields, in)
		}
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "site settings saved", s)
}

// POST /site/uploads
func (ctl *SiteController) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{"file": {"a file is required"}})
	}
	folder := strings.TrimSpace(c.FormValue("folder", "site"))
	keep := c.FormValue("keep_original") == "true"

	up, err := ctl.Uploader.Save(c.UserContext(), fh, folder, keep)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{"file": {err.Error()}})
	}
	return helper.JsonCreated(c, "file uploaded", up)
}

/* =========================================================
   PUBLIC
========================================================= */

// GET /public/site/home
func (ctl *SiteController) Home(c *fiber.Ctx) error {
	out, err := service.Home(c.UserContext(), ctl.DB)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}

// GET /public/site/courses
func (ctl *SiteController) Courses(c *fiber.Ctx) error {
	var rows []model.CoursePageModel
	if err := ctl.DB.WithContext(c.UserContext()).Order("course_page_course_name").Find(&rows).Error; err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /public/site/courses/:slug
func (ctl *SiteController) Course(c *fiber.Ctx) error {
	var m model.CoursePageModel
	return ctl.bySlug(c, &m, "course_page_slug", "course")
}

// GET /public/site/teachers
func (ctl *SiteController) Teachers(c *fiber.Ctx) error {
	var rows []model.SiteTeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).Order("site_teacher_name").Find(&rows).Error; err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /public/site/teachers/:id
func (ctl *SiteController) Teacher(c *fiber.Ctx) error {
	var m model.SiteTeacherModel
	return ctl.byID(c, &m, "site_teacher_id", "teacher profile")
}

// GET /public/site/blogs
func (ctl *SiteController) Blogs(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 50)
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.BlogModel{})
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonAppError(c, err)
	}
	rows := make([]model.BlogModel, 0, p.Limit)
	if err := q.Order("blog_date DESC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /public/site/blogs/:slug
func (ctl *SiteController) Blog(c *fiber.Ctx) error {
	var m model.BlogModel
	return ctl.bySlug(c, &m, "blog_slug", "blog")
}

// GET /public/site/events
func (ctl *SiteController) Events(c *fiber.Ctx) error {
	var rows []model.EventModel
	if err := ctl.DB.WithContext(c.UserContext()).Order("event_date DESC").Find(&rows).Error; err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /public/site/events/:id
func (ctl *SiteController) Event(c *fiber.Ctx) error {
	var m model.EventModel
	return ctl.byID(c, &m, "event_id", "event")
}

// GET /public/site/gallery?type=<image_type_id>
func (ctl *SiteController) Gallery(c *fiber.Ctx) error {
	var typeID *uuid.UUID
	if raw := strings.TrimSpace(c.Query("type")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonAppError(c, apperr.Validation("type", "must be an image type id"))
		}
		typeID = &id
	}
	p := helper.ResolvePaging(c, 10, 10)
	items, total, err := service.GalleryPage(c.UserContext(), ctl.DB, typeID, p.Offset, p.Limit)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var types []model.ImageTypeModel
	if err := ctl.DB.WithContext(c.UserContext()).Order("image_type_name").Find(&types).Error; err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonListEx(c, "ok", items, helper.BuildPaginationFromPage(total, p.Page, p.PerPage),
		fiber.Map{"image_types": types})
}

func (ctl *SiteController) bySlug(c *fiber.Ctx, dst any, column, what string) error {
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))
	if err := ctl.DB.WithContext(c.UserContext()).Where(column+" = ?", slug).Take(dst).Error; err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return helper.JsonAppError(c, apperr.NotFound(what))
		}
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", dst)
}

func (ctl *SiteController) byID(c *fiber.Ctx, dst any, column, what string) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, apperr.NotFound(what))
	}
	if err := ctl.DB.WithContext(c.UserContext()).Where(column+" = ?", id).Take(dst).Error; err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return helper.JsonAppError(c, apperr.NotFound(what))
		}
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", dst)
}

package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schooloffice_backend/internals/features/students/dto"
	"schooloffice_backend/internals/features/students/service"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/media"
)

type DocumentController struct {
	DB       *gorm.DB
	Uploader *media.Uploader
	v        *helper.Validator
}

func NewDocumentController(db *gorm.DB, up *media.Uploader) *DocumentController {
	return &DocumentController{DB: db, Uploader: up, v: helper.NewValidator()}
}

// POST /students/documents/upload (multipart: file + document fields)
func (ctl *DocumentController) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{"file": {"a file is required"}})
	}
	studentID, _ := uuid.Parse(c.FormValue("student_document_student_id"))
	in := dto.StudentDocumentRequest{
		StudentDocumentStudentID: studentID,
		StudentDocumentType:      helper.Upper(c.FormValue("student_document_type")),
		StudentDocumentTitle:     c.FormValue("student_document_title"),
		// placeholder so the form validates; replaced by the stored URL
		StudentDocumentFileURL: fh.Filename,
	}
	if d := c.FormValue("student_document_description"); d != "" {
		in.StudentDocumentDescription = &d
	}
	if errs := ctl.v.Struct(in); errs != nil {
		return helper.JsonValidationErrorWithInput(c, errs, in)
	}

	doc := in.ToModel()
	actor := helper.ActorID(c)
	if actor != uuid.Nil {
		doc.StudentDocumentUploadedBy = &actor
	}
	out, err := service.AttachDocument(c.UserContext(), ctl.DB, ctl.Uploader, &doc, fh)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "document uploaded", out)
}

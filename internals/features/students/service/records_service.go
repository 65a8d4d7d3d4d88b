package service

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/features/students/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/media"
)

// BMI is weight(kg) / height(m)^2 rounded to 2 decimals; nil unless both are known.
func BMI(heightCM, weightKG *float64) *float64 {
	if heightCM == nil || weightKG == nil || *heightCM <= 0 {
		return nil
	}
	m := *heightCM / 100
	v := helper.Round2(*weightKG / (m * m))
	return &v
}

/* =========================================================
   PROMOTION
========================================================= */

// PreparePromotion fills the from_* placement from the student's current one
// when the request leaves it empty, and validates the target section.
func PreparePromotion(tx *gorm.DB, p *model.StudentPromotionModel) error {
	s, err := lockStudent(tx, p.StudentPromotionStudentID)
	if err != nil {
		return err
	}
	if p.StudentPromotionFromClassID == nil {
		p.StudentPromotionFromClassID = s.StudentCurrentClassID
	}
	if p.StudentPromotionFromSectionID == nil {
		p.StudentPromotionFromSectionID = s.StudentCurrentSectionID
	}
	to := p.StudentPromotionToClassID
	return SectionInClass(tx, p.StudentPromotionToSectionID, &to, "student_promotion_to_section_id")
}

// ApplyPromotion moves the student to the promotion's target placement.
func ApplyPromotion(tx *gorm.DB, p *model.StudentPromotionModel) error {
	return tx.Model(&model.StudentModel{}).
		Where("student_id = ?", p.StudentPromotionStudentID).
		Updates(map[string]any{
			"student_current_class_id":   p.StudentPromotionToClassID,
			"student_current_section_id": p.StudentPromotionToSectionID,
		}).Error
}

/* =========================================================
   SIBLINGS
========================================================= */

// CheckSiblingPair rejects a pair already linked in either order.
func CheckSiblingPair(tx *gorm.DB, m *model.SiblingModel) error {
	if m.SiblingStudent1ID == m.SiblingStudent2ID {
		return apperr.Validation("sibling_student2_id", "a student cannot be their own sibling")
	}
	var n int64
	q := tx.Model(&model.SiblingModel{}).
		Where("(sibling_student1_id = ? AND sibling_student2_id = ?) OR (sibling_student1_id = ? AND sibling_student2_id = ?)",
			m.SiblingStudent1ID, m.SiblingStudent2ID, m.SiblingStudent2ID, m.SiblingStudent1ID)
	if m.SiblingID != uuid.Nil {
		q = q.Where("sibling_id <> ?", m.SiblingID)
	}
	if err := q.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return apperr.Validation("sibling_student2_id", "these students are already linked as siblings")
	}
	return nil
}

/* =========================================================
   DOCUMENT UPLOAD
========================================================= */

// AttachDocument stores an uploaded file and records it against the student.
func AttachDocument(ctx context.Context, db *gorm.DB, up *media.Uploader, doc *model.StudentDocumentModel, fh *multipart.FileHeader) (*model.StudentDocumentModel, error) {
	var n int64
	if err := db.WithContext(ctx).Model(&model.StudentModel{}).
		Where("student_id = ?", doc.StudentDocumentStudentID).Count(&n).Error; err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, apperr.NotFound("student")
	}
	if !constants.DocumentFileAllowed(fh.Filename) {
		return nil, apperr.Validation("file", "only images, PDF and word documents can be attached")
	}
	saved, err := up.Save(ctx, fh, "students/documents", true)
	if err != nil {
		return nil, apperr.Validation("file", err.Error())
	}
	doc.StudentDocumentFileURL = saved.URL
	if err := db.WithContext(ctx).Create(doc).Error; err != nil {
		_ = up.Store.Delete(ctx, saved.Key)
		return nil, errors.Wrap(err, "save student document")
	}
	return doc, nil
}

package service

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/features/students/model"
	"schooloffice_backend/internals/helpers/apperr"
)

// CheckStudentUser requires the linked account to exist with role STUDENT.
func CheckStudentUser(tx *gorm.DB, userID uuid.UUID) error {
	var role string
	err := tx.Table("users").Where("user_id = ?", userID).Pluck("user_role", &role).Error
	if err != nil {
		return err
	}
	if role == "" {
		return apperr.Validation("student_user_id", "user does not exist")
	}
	if role != constants.RoleStudent {
		return apperr.Validation("student_user_id", "user must have the STUDENT role")
	}
	return nil
}

// SectionInClass fails when section is set and does not belong to class.
func SectionInClass(tx *gorm.DB, sectionID, classID *uuid.UUID, field string) error {
	if sectionID == nil {
		return nil
	}
	if classID == nil {
		return apperr.Validation(field, "a section needs a class")
	}
	var n int64
	if err := tx.Table("sections").
		Where("section_id = ? AND section_class_id = ?", *sectionID, *classID).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return apperr.Validation(field, "section does not belong to the selected class")
	}
	return nil
}

// CheckRoomVacancy rejects moving a student into a room already at capacity.
// The room row is locked so concurrent assignments serialize.
func CheckRoomVacancy(tx *gorm.DB, roomID *uuid.UUID, studentID uuid.UUID) error {
	if roomID == nil {
		return nil
	}
	var capacity []int
	if err := tx.Table("hostel_rooms").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("hostel_room_id = ?", *roomID).
		Pluck("hostel_room_capacity", &capacity).Error; err != nil {
		return err
	}
	if len(capacity) == 0 {
		return apperr.Validation("student_hostel_room_id", "hostel room does not exist")
	}
	var occupied int64
	q := tx.Model(&model.StudentModel{}).
		Where("student_hostel_room_id = ? AND student_status = ?", *roomID, model.StudentActive)
	if studentID != uuid.Nil {
		q = q.Where("student_id <> ?", studentID)
	}
	if err := q.Count(&occupied).Error; err != nil {
		return err
	}
	if occupied >= int64(capacity[0]) {
		return apperr.Conflict("hostel room is full")
	}
	return nil
}

// PrepareStudent runs the cross-table checks for a student about to be saved.
func PrepareStudent(tx *gorm.DB, old, m *model.StudentModel) error {
	if err := CheckStudentUser(tx, m.StudentUserID); err != nil {
		return err
	}
	if err := SectionInClass(tx, m.StudentCurrentSectionID, m.StudentCurrentClassID, "student_current_section_id"); err != nil {
		return err
	}
	if m.StudentHostelRoomID == nil || m.StudentStatus != model.StudentActive {
		return nil
	}
	// unchanged room assignments are not re-checked
	if old != nil && old.StudentHostelRoomID != nil && *old.StudentHostelRoomID == *m.StudentHostelRoomID &&
		old.StudentStatus == model.StudentActive {
		return nil
	}
	return CheckRoomVacancy(tx, m.StudentHostelRoomID, m.StudentID)
}

func lockStudent(tx *gorm.DB, id uuid.UUID) (*model.StudentModel, error) {
	var s model.StudentModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("student_id = ?", id).Take(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("student_promotion_student_id", "student does not exist")
		}
		return nil, err
	}
	return &s, nil
}

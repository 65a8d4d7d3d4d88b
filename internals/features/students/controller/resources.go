package controller

import (
	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/students/dto"
	"schooloffice_backend/internals/features/students/model"
	"schooloffice_backend/internals/features/students/service"
)

const area = constants.AreaStudents

const (
	userFirstName = "(SELECT u.user_first_name FROM users u WHERE u.user_id = students.student_user_id)"
	userLastName  = "(SELECT u.user_last_name FROM users u WHERE u.user_id = students.student_user_id)"
)

func StudentResource() *crud.Resource[model.StudentModel, dto.StudentRequest] {
	return &crud.Resource[model.StudentModel, dto.StudentRequest]{
		Name:    "student",
		Area:    area,
		OrderBy: "student_admission_number",
		Search:  []string{"students.student_admission_number", userFirstName, userLastName},
		Filters: []crud.Filter{
			{Param: "class", Column: "student_current_class_id", Kind: crud.FilterUUID},
			{Param: "section", Column: "student_current_section_id", Kind: crud.FilterUUID},
			{Param: "campus", Column: "student_campus_id", Kind: crud.FilterUUID},
			{Param: "status", Column: "student_status", Kind: crud.FilterEnum},
		},
		Unique: []crud.Unique{
			{Field: "student_admission_number", Columns: []string{"student_admission_number"}, Message: "a student with this admission number already exists"},
			{Field: "student_user_id", Columns: []string{"student_user_id"}, Message: "this user already has a student profile"},
		},
		BeforeWrite: func(w crud.WriteContext, old, m *model.StudentModel) error {
			return service.PrepareStudent(w.Tx, old, m)
		},
	}
}

func DocumentResource() *crud.Resource[model.StudentDocumentModel, dto.StudentDocumentRequest] {
	return &crud.Resource[model.StudentDocumentModel, dto.StudentDocumentRequest]{
		Name:    "student document",
		Area:    area,
		OrderBy: "student_document_uploaded_at DESC",
		Search:  []string{"student_documents.student_document_title"},
		Filters: []crud.Filter{
			{Param: "student", Column: "student_document_student_id", Kind: crud.FilterUUID},
			{Param: "type", Column: "student_document_type", Kind: crud.FilterEnum},
		},
		Keep: []string{"student_document_uploaded_by"},
		BeforeWrite: func(w crud.WriteContext, old, m *model.StudentDocumentModel) error {
			if old == nil {
				m.StudentDocumentUploadedBy = w.ActorPtr()
			}
			return nil
		},
	}
}

func HealthRecordResource() *crud.Resource[model.StudentHealthRecordModel, dto.HealthRecordRequest] {
	return &crud.Resource[model.StudentHealthRecordModel, dto.HealthRecordRequest]{
		Name:    "health record",
		Area:    area,
		OrderBy: "student_health_record_date DESC",
		Filters: []crud.Filter{
			{Param: "student", Column: "student_health_record_student_id", Kind: crud.FilterUUID},
		},
		Keep: []string{"student_health_record_created_by"},
		BeforeWrite: func(w crud.WriteContext, old, m *model.StudentHealthRecordModel) error {
			if old == nil {
				m.StudentHealthRecordCreatedBy = w.ActorPtr()
			}
			m.StudentHealthRecordBMI = service.BMI(m.StudentHealthRecordHeight, m.StudentHealthRecordWeight)
			return nil
		},
	}
}

// Promotions are history: they can be recorded or removed, never edited.
func PromotionResource() *crud.Resource[model.StudentPromotionModel, dto.PromotionRequest] {
	return &crud.Resource[model.StudentPromotionModel, dto.PromotionRequest]{
		Name:    "promotion",
		Area:    area,
		OrderBy: "student_promotion_date DESC",
		Ops:     crud.OpsRead | crud.OpCreate | crud.OpDelete,
		Filters: []crud.Filter{
			{Param: "student", Column: "student_promotion_student_id", Kind: crud.FilterUUID},
			{Param: "academic_year", Column: "student_promotion_academic_year_id", Kind: crud.FilterUUID},
		},
		BeforeWrite: func(w crud.WriteContext, _, m *model.StudentPromotionModel) error {
			m.StudentPromotionPromotedBy = w.ActorPtr()
			return service.PreparePromotion(w.Tx, m)
		},
		AfterWrite: func(w crud.WriteContext, m *model.StudentPromotionModel) error {
			return service.ApplyPromotion(w.Tx, m)
		},
	}
}

func SiblingResource() *crud.Resource[model.SiblingModel, dto.SiblingRequest] {
	return &crud.Resource[model.SiblingModel, dto.SiblingRequest]{
		Name:    "sibling",
		Area:    area,
		OrderBy: "sibling_created_at DESC",
		Filters: []crud.Filter{
			{Param: "student", Column: "sibling_student1_id", Kind: crud.FilterUUID},
			{Param: "relation", Column: "sibling_relation", Kind: crud.FilterEnum},
		},
		BeforeWrite: func(w crud.WriteContext, _, m *model.SiblingModel) error {
			return service.CheckSiblingPair(w.Tx, m)
		},
	}
}

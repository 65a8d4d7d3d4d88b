package model

import database "schooloffice_backend/internals/databases"

func Schema() database.Schema {
	fk, cascade, setNull := database.FK, database.Cascade, database.SetNull
	return database.Schema{
		Models: []any{
			&StudentModel{}, &StudentDocumentModel{}, &StudentHealthRecordModel{},
			&StudentPromotionModel{}, &SiblingModel{},
		},
		ForeignKeys: []database.ForeignKey{
			fk("students", "student_user_id", "users", "user_id", cascade),
			fk("students", "student_campus_id", "campuses", "campus_id", cascade),
			fk("students", "student_current_class_id", "classes", "class_id", setNull),
			fk("students", "student_current_section_id", "sections", "section_id", setNull),
			fk("students", "student_route_id", "routes", "route_id", setNull),
			fk("students", "student_hostel_room_id", "hostel_rooms", "hostel_room_id", setNull),

			fk("student_documents", "student_document_student_id", "students", "student_id", cascade),
			fk("student_documents", "student_document_uploaded_by", "users", "user_id", setNull),
			fk("student_health_records", "student_health_record_student_id", "students", "student_id", cascade),
			fk("student_health_records", "student_health_record_created_by", "users", "user_id", setNull),

			fk("student_promotions", "student_promotion_student_id", "students", "student_id", cascade),
			fk("student_promotions", "student_promotion_from_class_id", "classes", "class_id", setNull),
			fk("student_promotions", "student_promotion_to_class_id", "classes", "class_id", cascade),
			fk("student_promotions", "student_promotion_from_section_id", "sections", "section_id", setNull),
			fk("student_promotions", "student_promotion_to_section_id", "sections", "section_id", setNull),
			fk("student_promotions", "student_promotion_academic_year_id", "academic_years", "academic_year_id", cascade),
			fk("student_promotions", "student_promotion_promoted_by", "users", "user_id", setNull),

			fk("siblings", "sibling_student1_id", "students", "student_id", cascade),
			fk("siblings", "sibling_student2_id", "students", "student_id", cascade),
		},
		Statements: []string{
			database.Check("siblings", "ck_siblings_distinct", "sibling_student1_id <> sibling_student2_id"),
			`CREATE UNIQUE INDEX IF NOT EXISTS uq_siblings_unordered_pair
			   ON siblings (LEAST(sibling_student1_id, sibling_student2_id), GREATEST(sibling_student1_id, sibling_student2_id))`,
		},
	}
}

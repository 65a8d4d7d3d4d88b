package model

import database "schooloffice_backend/internals/databases"

func Schema() database.Schema {
	fk, cascade, setNull := database.FK, database.Cascade, database.SetNull
	return database.Schema{
		Models: []any{
			&DepartmentModel{}, &DesignationModel{}, &StaffModel{}, &StaffAttendanceModel{},
			&LeaveTypeModel{}, &LeaveModel{}, &PerformanceReviewModel{}, &StaffDocumentModel{},
		},
		ForeignKeys: []database.ForeignKey{
			fk("departments", "department_head_id", "users", "user_id", setNull),
			fk("staff", "staff_user_id", "users", "user_id", cascade),
			fk("staff", "staff_campus_id", "campuses", "campus_id", cascade),
			fk("staff", "staff_department_id", "departments", "department_id", setNull),
			fk("staff", "staff_designation_id", "designations", "designation_id", setNull),
			fk("staff_attendance", "staff_attendance_staff_id", "staff", "staff_id", cascade),
			fk("staff_attendance", "staff_attendance_marked_by", "users", "user_id", setNull),
			fk("leaves", "leave_staff_id", "staff", "staff_id", cascade),
			fk("leaves", "leave_leave_type_id", "leave_types", "leave_type_id", cascade),
			fk("leaves", "leave_approved_by", "users", "user_id", setNull),
			fk("performance_reviews", "performance_review_staff_id", "staff", "staff_id", cascade),
			fk("performance_reviews", "performance_review_reviewed_by", "users", "user_id", setNull),
			fk("staff_documents", "staff_document_staff_id", "staff", "staff_id", cascade),
			fk("staff_documents", "staff_document_uploaded_by", "users", "user_id", setNull),
		},
		Statements: []string{
			database.Check("staff", "ck_staff_leaving_after_joining",
				"staff_leaving_date IS NULL OR staff_leaving_date >= staff_joining_date"),
			database.Check("staff_attendance", "ck_staff_attendance_times",
				"staff_attendance_check_out IS NULL OR staff_attendance_check_in IS NULL OR staff_attendance_check_out > staff_attendance_check_in"),
			database.Check("leaves", "ck_leaves_range", "leave_end_date >= leave_start_date"),
			database.Check("performance_reviews", "ck_performance_reviews_ratings",
				"performance_review_punctuality BETWEEN 1 AND 5 AND performance_review_communication BETWEEN 1 AND 5 "+
					"AND performance_review_teamwork BETWEEN 1 AND 5 AND performance_review_discipline BETWEEN 1 AND 5 "+
					"AND (performance_review_teaching_quality IS NULL OR performance_review_teaching_quality BETWEEN 1 AND 5)"),
		},
	}
}

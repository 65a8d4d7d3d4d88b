package model

import database "schooloffice_backend/internals/databases"

func Schema() database.Schema {
	fk, cascade, setNull := database.FK, database.Cascade, database.SetNull
	return database.Schema{
		Models: []any{
			&ClassModel{}, &SectionModel{}, &SubjectModel{}, &ClassSubjectModel{},
			&TimetableModel{}, &AttendanceModel{},
			&ExaminationModel{}, &ExamScheduleModel{}, &GradeModel{},
			&HomeworkModel{}, &HomeworkSubmissionModel{},
		},
		ForeignKeys: []database.ForeignKey{
			fk("classes", "class_campus_id", "campuses", "campus_id", cascade),
			fk("classes", "class_class_teacher_id", "users", "user_id", setNull),
			fk("sections", "section_class_id", "classes", "class_id", cascade),

			fk("class_subjects", "class_subject_class_id", "classes", "class_id", cascade),
			fk("class_subjects", "class_subject_subject_id", "subjects", "subject_id", cascade),
			fk("class_subjects", "class_subject_academic_year_id", "academic_years", "academic_year_id", cascade),
			fk("class_subjects", "class_subject_teacher_id", "users", "user_id", setNull),

			fk("timetables", "timetable_class_id", "classes", "class_id", cascade),
			fk("timetables", "timetable_section_id", "sections", "section_id", cascade),
			fk("timetables", "timetable_subject_id", "subjects", "subject_id", cascade),
			fk("timetables", "timetable_teacher_id", "users", "user_id", setNull),
			fk("timetables", "timetable_academic_year_id", "academic_years", "academic_year_id", cascade),

			fk("attendance", "attendance_student_id", "students", "student_id", cascade),
			fk("attendance", "attendance_marked_by", "users", "user_id", setNull),

			fk("examinations", "examination_academic_year_id", "academic_years", "academic_year_id", cascade),
			fk("exam_schedules", "exam_schedule_examination_id", "examinations", "examination_id", cascade),
			fk("exam_schedules", "exam_schedule_class_id", "classes", "class_id", cascade),
			fk("exam_schedules", "exam_schedule_subject_id", "subjects", "subject_id", cascade),

			fk("grades", "grade_student_id", "students", "student_id", cascade),
			fk("grades", "grade_exam_schedule_id", "exam_schedules", "exam_schedule_id", cascade),
			fk("grades", "grade_entered_by", "users", "user_id", setNull),

			fk("homework", "homework_class_id", "classes", "class_id", cascade),
			fk("homework", "homework_section_id", "sections", "section_id", cascade),
			fk("homework", "homework_subject_id", "subjects", "subject_id", cascade),
			fk("homework", "homework_teacher_id", "users", "user_id", cascade),
			fk("homework_submissions", "homework_submission_homework_id", "homework", "homework_id", cascade),
			fk("homework_submissions", "homework_submission_student_id", "students", "student_id", cascade),
			fk("homework_submissions", "homework_submission_graded_by", "users", "user_id", setNull),
		},
		Statements: []string{
			database.Check("timetables", "ck_timetables_time", "timetable_end_time > timetable_start_time"),
			database.Check("examinations", "ck_examinations_range", "examination_end_date >= examination_start_date"),
			database.Check("exam_schedules", "ck_exam_schedules_marks", "exam_schedule_total_marks > 0 AND exam_schedule_pass_marks <= exam_schedule_total_marks"),
			database.Check("homework", "ck_homework_range", "homework_due_date >= homework_assigned_date"),
			database.Check("class_subjects", "ck_class_subjects_pass",
				"class_subject_pass_marks <= class_subject_theory_marks + class_subject_practical_marks"),
		},
	}
}

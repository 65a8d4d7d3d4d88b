package controller

import (
	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/staff/dto"
	"schooloffice_backend/internals/features/staff/model"
	"schooloffice_backend/internals/features/staff/service"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/dbtime"
)

const area = constants.AreaStaff

func DepartmentResource() *crud.Resource[model.DepartmentModel, dto.DepartmentRequest] {
	return &crud.Resource[model.DepartmentModel, dto.DepartmentRequest]{
		Name:    "department",
		Area:    area,
		OrderBy: "department_name",
		Search:  []string{"departments.department_name", "departments.department_code"},
		Filters: []crud.Filter{{Param: "is_active", Column: "department_is_active", Kind: crud.FilterBool}},
		Unique:  []crud.Unique{{Field: "department_code", Columns: []string{"department_code"}, Message: "a department with this code already exists"}},
	}
}

func DesignationResource() *crud.Resource[model.DesignationModel, dto.DesignationRequest] {
	return &crud.Resource[model.DesignationModel, dto.DesignationRequest]{
		Name:    "designation",
		Area:    area,
		OrderBy: "designation_name",
		Search:  []string{"designations.designation_name", "designations.designation_code"},
		Unique:  []crud.Unique{{Field: "designation_code", Columns: []string{"designation_code"}, Message: "a designation with this code already exists"}},
	}
}

func StaffResource() *crud.Resource[model.StaffModel, dto.StaffRequest] {
	return &crud.Resource[model.StaffModel, dto.StaffRequest]{
		Name:    "staff member",
		Area:    area,
		OrderBy: "staff_employee_id",
		Search: []string{
			"staff.staff_employee_id",
			"(SELECT u.user_first_name FROM users u WHERE u.user_id = staff.staff_user_id)",
			"(SELECT u.user_last_name FROM users u WHERE u.user_id = staff.staff_user_id)",
		},
		Filters: []crud.Filter{
			{Param: "campus", Column: "staff_campus_id", Kind: crud.FilterUUID},
			{Param: "department", Column: "staff_department_id", Kind: crud.FilterUUID},
			{Param: "designation", Column: "staff_designation_id", Kind: crud.FilterUUID},
			{Param: "employment_type", Column: "staff_employment_type", Kind: crud.FilterEnum},
			{Param: "is_active", Column: "staff_is_active", Kind: crud.FilterBool},
		},
		Unique: []crud.Unique{
			{Field: "staff_employee_id", Columns: []string{"staff_employee_id"}, Message: "a staff member with this employee id already exists"},
			{Field: "staff_user_id", Columns: []string{"staff_user_id"}, Message: "this user already has a staff profile"},
		},
		BeforeWrite: func(w crud.WriteContext, _, m *model.StaffModel) error {
			if err := service.CheckStaffDates(m); err != nil {
				return err
			}
			return service.CheckStaffUser(w.Tx, m.StaffUserID)
		},
	}
}

func StaffAttendanceResource() *crud.Resource[model.StaffAttendanceModel, dto.StaffAttendanceRequest] {
	return &crud.Resource[model.StaffAttendanceModel, dto.StaffAttendanceRequest]{
		Name:     "staff attendance",
		Area:     area,
		OrderBy:  "staff_attendance_date DESC",
		PageSize: 20,
		Filters: []crud.Filter{
			{Param: "staff", Column: "staff_attendance_staff_id", Kind: crud.FilterUUID},
			{Param: "date", Column: "staff_attendance_date", Kind: crud.FilterDate},
			{Param: "status", Column: "staff_attendance_status", Kind: crud.FilterEnum},
		},
		Unique: []crud.Unique{{
			Field: "staff_attendance_date", Columns: []string{"staff_attendance_staff_id", "staff_attendance_date"},
			Message: "attendance for this staff member is already recorded on this date",
		}},
		BeforeWrite: func(w crud.WriteContext, _, m *model.StaffAttendanceModel) error {
			in, out := m.StaffAttendanceCheckIn, m.StaffAttendanceCheckOut
			if in != nil && out != nil && *out <= *in {
				return apperr.Validation("staff_attendance_check_out", "check-out must be after check-in")
			}
			m.StaffAttendanceMarkedBy = w.ActorPtr()
			return nil
		},
	}
}

func LeaveTypeResource() *crud.Resource[model.LeaveTypeModel, dto.LeaveTypeRequest] {
	return &crud.Resource[model.LeaveTypeModel, dto.LeaveTypeRequest]{
		Name:    "leave type",
		Area:    area,
		OrderBy: "leave_type_name",
		Unique:  []crud.Unique{{Field: "leave_type_code", Columns: []string{"leave_type_code"}, Message: "a leave type with this code already exists"}},
	}
}

func LeaveResource() *crud.Resource[model.LeaveModel, dto.LeaveRequest] {
	return &crud.Resource[model.LeaveModel, dto.LeaveRequest]{
		Name:    "leave",
		Area:    area,
		OrderBy: "leave_applied_on DESC",
		Filters: []crud.Filter{
			{Param: "staff", Column: "leave_staff_id", Kind: crud.FilterUUID},
			{Param: "status", Column: "leave_status", Kind: crud.FilterEnum},
			{Param: "leave_type", Column: "leave_leave_type_id", Kind: crud.FilterUUID},
		},
		Keep: []string{"leave_status", "leave_approved_by", "leave_approved_on", "leave_remarks"},
		BeforeWrite: func(_ crud.WriteContext, old, m *model.LeaveModel) error {
			if old != nil && old.LeaveStatus != model.LeavePending {
				return apperr.Conflict("only pending leaves can be edited")
			}
			return service.PrepareLeave(m)
		},
	}
}

func PerformanceReviewResource() *crud.Resource[model.PerformanceReviewModel, dto.PerformanceReviewRequest] {
	return &crud.Resource[model.PerformanceReviewModel, dto.PerformanceReviewRequest]{
		Name:    "performance review",
		Area:    area,
		OrderBy: "performance_review_date DESC",
		Filters: []crud.Filter{{Param: "staff", Column: "performance_review_staff_id", Kind: crud.FilterUUID}},
		Keep:    []string{"performance_review_reviewed_by"},
		BeforeWrite: func(w crud.WriteContext, old, m *model.PerformanceReviewModel) error {
			if dbtime.Before(m.PerformanceReviewPeriodEnd, m.PerformanceReviewPeriodStart) {
				return apperr.Validation("performance_review_period_end", "period end cannot be before period start")
			}
			if old == nil {
				m.PerformanceReviewReviewedBy = w.ActorPtr()
			}
			m.PerformanceReviewOverallRating = service.OverallRating(m)
			return nil
		},
	}
}

func StaffDocumentResource() *crud.Resource[model.StaffDocumentModel, dto.StaffDocumentRequest] {
	return &crud.Resource[model.StaffDocumentModel, dto.StaffDocumentRequest]{
		Name:    "staff document",
		Area:    area,
		OrderBy: "staff_document_uploaded_at DESC",
		Search:  []string{"staff_documents.staff_document_title"},
		Filters: []crud.Filter{
			{Param: "staff", Column: "staff_document_staff_id", Kind: crud.FilterUUID},
			{Param: "type", Column: "staff_document_type", Kind: crud.FilterEnum},
		},
		Keep: []string{"staff_document_uploaded_by"},
		BeforeWrite: func(w crud.WriteContext, old, m *model.StaffDocumentModel) error {
			if old == nil {
				m.StaffDocumentUploadedBy = w.ActorPtr()
			}
			return nil
		},
	}
}

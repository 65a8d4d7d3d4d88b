package dto

import (
	"strings"

	"github.com/google/uuid"

	"schooloffice_backend/internals/features/staff/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/dbtime"
)

/* ===================== LEAVE ===================== */

type LeaveTypeRequest struct {
	LeaveTypeName        string  `json:"leave_type_name"         validate:"notblank,max=100"`
	LeaveTypeCode        string  `json:"leave_type_code"         validate:"notblank,max=20"`
	LeaveTypeDaysAllowed int     `json:"leave_type_days_allowed" validate:"gte=0,lte=366"`
	LeaveTypeDescription *string `json:"leave_type_description"`
	LeaveTypeIsActive    *bool   `json:"leave_type_is_active"`
}

func (r LeaveTypeRequest) ToModel() model.LeaveTypeModel {
	return model.LeaveTypeModel{
		LeaveTypeName:        strings.TrimSpace(r.LeaveTypeName),
		LeaveTypeCode:        helper.Upper(r.LeaveTypeCode),
		LeaveTypeDaysAllowed: r.LeaveTypeDaysAllowed,
		LeaveTypeDescription: helper.TrimPtr(r.LeaveTypeDescription),
		LeaveTypeIsActive:    helper.ValueOr(r.LeaveTypeIsActive, true),
	}
}

// LeaveRequest is the application form; status moves through the
// approve/reject/cancel endpoints only.
type LeaveRequest struct {
	LeaveStaffID     uuid.UUID `json:"leave_staff_id"      validate:"required"`
	LeaveLeaveTypeID uuid.UUID `json:"leave_leave_type_id" validate:"required"`
	LeaveStartDate   string    `json:"leave_start_date"    validate:"required,datetime=2006-01-02"`
	LeaveEndDate     string    `json:"leave_end_date"      validate:"required,datetime=2006-01-02"`
	LeaveReason      string    `json:"leave_reason"        validate:"notblank"`
}

func (r LeaveRequest) ToModel() model.LeaveModel {
	return model.LeaveModel{
		LeaveStaffID:     r.LeaveStaffID,
		LeaveLeaveTypeID: r.LeaveLeaveTypeID,
		LeaveStartDate:   dbtime.ParseDate(r.LeaveStartDate),
		LeaveEndDate:     dbtime.ParseDate(r.LeaveEndDate),
		LeaveReason:      strings.TrimSpace(r.LeaveReason),
		LeaveStatus:      model.LeavePending,
	}
}

type LeaveDecisionRequest struct {
	Remarks *string `json:"remarks"`
}

/* ===================== PERFORMANCE ===================== */

type PerformanceReviewRequest struct {
	PerformanceReviewStaffID         uuid.UUID `json:"performance_review_staff_id"         validate:"required"`
	PerformanceReviewDate            string    `json:"performance_review_date"             validate:"required,datetime=2006-01-02"`
	PerformanceReviewPeriodStart     string    `json:"performance_review_period_start"     validate:"required,datetime=2006-01-02"`
	PerformanceReviewPeriodEnd       string    `json:"performance_review_period_end"       validate:"required,datetime=2006-01-02"`
	PerformanceReviewPunctuality     int       `json:"performance_review_punctuality"      validate:"gte=1,lte=5"`
	PerformanceReviewTeachingQuality *int      `json:"performance_review_teaching_quality" validate:"omitempty,gte=1,lte=5"`
	PerformanceReviewCommunication   int       `json:"performance_review_communication"    validate:"gte=1,lte=5"`
	PerformanceReviewTeamwork        int       `json:"performance_review_teamwork"         validate:"gte=1,lte=5"`
	PerformanceReviewDiscipline      int       `json:"performance_review_discipline"       validate:"gte=1,lte=5"`
	PerformanceReviewStrengths       *string   `json:"performance_review_strengths"`
	PerformanceReviewWeaknesses      *string   `json:"performance_review_weaknesses"`
	PerformanceReviewRecommendations *string   `json:"performance_review_recommendations"`
}

func (r PerformanceReviewRequest) ToModel() model.PerformanceReviewModel {
	return model.PerformanceReviewModel{
		PerformanceReviewStaffID:         r.PerformanceReviewStaffID,
		PerformanceReviewDate:            dbtime.ParseDate(r.PerformanceReviewDate),
		PerformanceReviewPeriodStart:     dbtime.ParseDate(r.PerformanceReviewPeriodStart),
		PerformanceReviewPeriodEnd:       dbtime.ParseDate(r.PerformanceReviewPeriodEnd),
		PerformanceReviewPunctuality:     r.PerformanceReviewPunctuality,
		PerformanceReviewTeachingQuality: r.PerformanceReviewTeachingQuality,
		PerformanceReviewCommunication:   r.PerformanceReviewCommunication,
		PerformanceReviewTeamwork:        r.PerformanceReviewTeamwork,
		PerformanceReviewDiscipline:      r.PerformanceReviewDiscipline,
		PerformanceReviewStrengths:       helper.TrimPtr(r.PerformanceReviewStrengths),
		PerformanceReviewWeaknesses:      helper.TrimPtr(r.PerformanceReviewWeaknesses),
		PerformanceReviewRecommendations: helper.TrimPtr(r.PerformanceReviewRecommendations),
	}
}

/* ===================== DOCUMENT ===================== */

type StaffDocumentRequest struct {
	StaffDocumentStaffID     uuid.UUID `json:"staff_document_staff_id"  validate:"required"`
	StaffDocumentType        string    `json:"staff_document_type"      validate:"required,oneof=RESUME ID_PROOF CERTIFICATE EXPERIENCE_LETTER OTHER"`
	StaffDocumentTitle       string    `json:"staff_document_title"     validate:"notblank,max=200"`
	StaffDocumentFileURL     string    `json:"staff_document_file_url"  validate:"notblank"`
	StaffDocumentDescription *string   `json:"staff_document_description"`
}

func (r StaffDocumentRequest) ToModel() model.StaffDocumentModel {
	return model.StaffDocumentModel{
		StaffDocumentStaffID:     r.StaffDocumentStaffID,
		StaffDocumentType:        r.StaffDocumentType,
		StaffDocumentTitle:       strings.TrimSpace(r.StaffDocumentTitle),
		StaffDocumentFileURL:     strings.TrimSpace(r.StaffDocumentFileURL),
		StaffDocumentDescription: helper.TrimPtr(r.StaffDocumentDescription),
	}
}

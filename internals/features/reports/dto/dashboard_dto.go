package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type DashboardResponse struct {
	TotalStudents      int64           `json:"total_students"`
	TotalTeachers      int64           `json:"total_teachers"`
	TotalClasses       int64           `json:"total_classes"`
	PendingFees        decimal.Decimal `json:"pending_fees"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	PresentToday       int64           `json:"present_today"`
	AbsentToday        int64           `json:"absent_today"`
	StaffOnLeave       int64           `json:"staff_on_leave"`
	UpcomingExams      int64           `json:"upcoming_exams"`

	RecentAdmissions []RecentAdmission    `json:"recent_admissions"`
	Announcements    []AnnouncementBanner `json:"announcements"`
}

type RecentAdmission struct {
	StudentID              uuid.UUID      `json:"student_id"`
	StudentAdmissionNumber string         `json:"student_admission_number"`
	StudentAdmissionDate   datatypes.Date `json:"student_admission_date"`
	FirstName              string         `json:"first_name"`
	LastName               string         `json:"last_name"`
	ClassName              *string        `json:"class_name,omitempty"`
}

type AnnouncementBanner struct {
	AnnouncementID        uuid.UUID      `json:"announcement_id"`
	AnnouncementTitle     string         `json:"announcement_title"`
	AnnouncementType      string         `json:"announcement_type"`
	AnnouncementStartDate datatypes.Date `json:"announcement_start_date"`
	AnnouncementEndDate   datatypes.Date `json:"announcement_end_date"`
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PerformanceReviewModel struct {
	PerformanceReviewID          uuid.UUID      `gorm:"column:performance_review_id;type:uuid;default:gen_random_uuid();primaryKey" json:"performance_review_id"`
	PerformanceReviewStaffID     uuid.UUID      `gorm:"column:performance_review_staff_id;type:uuid;not null;index" json:"performance_review_staff_id"`
	PerformanceReviewDate        datatypes.Date `gorm:"column:performance_review_date;type:date;not null" json:"performance_review_date"`
	PerformanceReviewPeriodStart datatypes.Date `gorm:"column:performance_review_period_start;type:date;not null" json:"performance_review_period_start"`
	PerformanceReviewPeriodEnd   datatypes.Date `gorm:"column:performance_review_period_end;type:date;not null" json:"performance_review_period_end"`

	PerformanceReviewPunctuality     int     `gorm:"column:performance_review_punctuality;not null;default:3" json:"performance_review_punctuality"`
	PerformanceReviewTeachingQuality *int    `gorm:"column:performance_review_teaching_quality" json:"performance_review_teaching_quality,omitempty"`
	PerformanceReviewCommunication   int     `gorm:"column:performance_review_communication;not null;default:3" json:"performance_review_communication"`
	PerformanceReviewTeamwork        int     `gorm:"column:performance_review_teamwork;not null;default:3" json:"performance_review_teamwork"`
	PerformanceReviewDiscipline      int     `gorm:"column:performance_review_discipline;not null;default:3" json:"performance_review_discipline"`
	PerformanceReviewOverallRating   float64 `gorm:"column:performance_review_overall_rating;type:numeric(3,2);not null;default:3" json:"performance_review_overall_rating"`

	PerformanceReviewStrengths       *string    `gorm:"column:performance_review_strengths;type:text" json:"performance_review_strengths,omitempty"`
	PerformanceReviewWeaknesses      *string    `gorm:"column:performance_review_weaknesses;type:text" json:"performance_review_weaknesses,omitempty"`
	PerformanceReviewRecommendations *string    `gorm:"column:performance_review_recommendations;type:text" json:"performance_review_recommendations,omitempty"`
	PerformanceReviewReviewedBy      *uuid.UUID `gorm:"column:performance_review_reviewed_by;type:uuid" json:"performance_review_reviewed_by,omitempty"`

	PerformanceReviewCreatedAt time.Time `gorm:"column:performance_review_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"performance_review_created_at"`
	PerformanceReviewUpdatedAt time.Time `gorm:"column:performance_review_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"performance_review_updated_at"`
}

func (PerformanceReviewModel) TableName() string { return "performance_reviews" }

type StaffDocumentModel struct {
	StaffDocumentID          uuid.UUID  `gorm:"column:staff_document_id;type:uuid;default:gen_random_uuid();primaryKey" json:"staff_document_id"`
	StaffDocumentStaffID     uuid.UUID  `gorm:"column:staff_document_staff_id;type:uuid;not null;index" json:"staff_document_staff_id"`
	StaffDocumentType        string     `gorm:"column:staff_document_type;type:varchar(20);not null" json:"staff_document_type"`
	StaffDocumentTitle       string     `gorm:"column:staff_document_title;type:varchar(200);not null" json:"staff_document_title"`
	StaffDocumentFileURL     string     `gorm:"column:staff_document_file_url;type:text;not null" json:"staff_document_file_url"`
	StaffDocumentDescription *string    `gorm:"column:staff_document_description;type:text" json:"staff_document_description,omitempty"`
	StaffDocumentUploadedBy  *uuid.UUID `gorm:"column:staff_document_uploaded_by;type:uuid" json:"staff_document_uploaded_by,omitempty"`
	StaffDocumentUploadedAt  time.Time  `gorm:"column:staff_document_uploaded_at;type:timestamptz;not null;default:now();autoCreateTime" json:"staff_document_uploaded_at"`
}

func (StaffDocumentModel) TableName() string { return "staff_documents" }

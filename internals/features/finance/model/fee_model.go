package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	FrequencyMonthly    = "MONTHLY"
	FrequencyQuarterly  = "QUARTERLY"
	FrequencyHalfYearly = "HALF_YEARLY"
	FrequencyAnnually   = "ANNUALLY"
	FrequencyOneTime    = "ONE_TIME"
)

type FeeTypeModel struct {
	FeeTypeID          uuid.UUID `gorm:"column:fee_type_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_type_id"`
	FeeTypeName        string    `gorm:"column:fee_type_name;type:varchar(100);not null" json:"fee_type_name"`
	FeeTypeCode        string    `gorm:"column:fee_type_code;type:varchar(20);not null;uniqueIndex:uq_fee_types_code" json:"fee_type_code"`
	FeeTypeDescription *string   `gorm:"column:fee_type_description;type:text" json:"fee_type_description,omitempty"`
	FeeTypeIsActive    bool      `gorm:"column:fee_type_is_active;not null;default:true" json:"fee_type_is_active"`

	FeeTypeCreatedAt time.Time `gorm:"column:fee_type_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"fee_type_created_at"`
	FeeTypeUpdatedAt time.Time `gorm:"column:fee_type_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"fee_type_updated_at"`
}

func (FeeTypeModel) TableName() string { return "fee_types" }

type FeeStructureModel struct {
	FeeStructureID               uuid.UUID       `gorm:"column:fee_structure_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_structure_id"`
	FeeStructureClassID          uuid.UUID       `gorm:"column:fee_structure_class_id;type:uuid;not null;uniqueIndex:uq_fee_structures_triple" json:"fee_structure_class_id"`
	FeeStructureFeeTypeID        uuid.UUID       `gorm:"column:fee_structure_fee_type_id;type:uuid;not null;uniqueIndex:uq_fee_structures_triple" json:"fee_structure_fee_type_id"`
	FeeStructureAcademicYearID   uuid.UUID       `gorm:"column:fee_structure_academic_year_id;type:uuid;not null;uniqueIndex:uq_fee_structures_triple" json:"fee_structure_academic_year_id"`
	FeeStructureAmount           decimal.Decimal `gorm:"column:fee_structure_amount;type:numeric(12,2);not null" json:"fee_structure_amount"`
	FeeStructureFrequency        string          `gorm:"column:fee_structure_frequency;type:varchar(20);not null;default:'MONTHLY'" json:"fee_structure_frequency"`
	FeeStructureDueDay           int             `gorm:"column:fee_structure_due_day;not null;default:10" json:"fee_structure_due_day"`
	FeeStructureLateFeeAmount    decimal.Decimal `gorm:"column:fee_structure_late_fee_amount;type:numeric(12,2);not null;default:0" json:"fee_structure_late_fee_amount"`
	FeeStructureLateFeeAfterDays int             `gorm:"column:fee_structure_late_fee_after_days;not null;default:5" json:"fee_structure_late_fee_after_days"`
	FeeStructureIsActive         bool            `gorm:"column:fee_structure_is_active;not null;default:true" json:"fee_structure_is_active"`

	FeeStructureCreatedAt time.Time `gorm:"column:fee_structure_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"fee_structure_created_at"`
	FeeStructureUpdatedAt time.Time `gorm:"column:fee_structure_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"fee_structure_updated_at"`
}

func (FeeStructureModel) TableName() string { return "fee_structures" }

/* =========================================================
   DISCOUNTS
========================================================= */

const (
	DiscountPercentage = "PERCENTAGE"
	DiscountFixed      = "FIXED"
)

type DiscountModel struct {
	DiscountID          uuid.UUID       `gorm:"column:discount_id;type:uuid;default:gen_random_uuid();primaryKey" json:"discount_id"`
	DiscountName        string          `gorm:"column:discount_name;type:varchar(100);not null" json:"discount_name"`
	DiscountCode        string          `gorm:"column:discount_code;type:varchar(20);not null;uniqueIndex:uq_discounts_code" json:"discount_code"`
	DiscountType        string          `gorm:"column:discount_type;type:varchar(20);not null" json:"discount_type"`
	DiscountValue       decimal.Decimal `gorm:"column:discount_value;type:numeric(12,2);not null" json:"discount_value"`
	DiscountDescription *string         `gorm:"column:discount_description;type:text" json:"discount_description,omitempty"`
	DiscountIsActive    bool            `gorm:"column:discount_is_active;not null;default:true" json:"discount_is_active"`

	DiscountCreatedAt time.Time `gorm:"column:discount_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"discount_created_at"`
	DiscountUpdatedAt time.Time `gorm:"column:discount_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"discount_updated_at"`
}

func (DiscountModel) TableName() string { return "discounts" }

type StudentDiscountModel struct {
	StudentDiscountID             uuid.UUID  `gorm:"column:student_discount_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_discount_id"`
	StudentDiscountStudentID      uuid.UUID  `gorm:"column:student_discount_student_id;type:uuid;not null;index" json:"student_discount_student_id"`
	StudentDiscountDiscountID     uuid.UUID  `gorm:"column:student_discount_discount_id;type:uuid;not null" json:"student_discount_discount_id"`
	StudentDiscountAcademicYearID uuid.UUID  `gorm:"column:student_discount_academic_year_id;type:uuid;not null" json:"student_discount_academic_year_id"`
	StudentDiscountReason         *string    `gorm:"column:student_discount_reason;type:text" json:"student_discount_reason,omitempty"`
	StudentDiscountApprovedBy     *uuid.UUID `gorm:"column:student_discount_approved_by;type:uuid" json:"student_discount_approved_by,omitempty"`
	StudentDiscountIsActive       bool       `gorm:"column:student_discount_is_active;not null;default:true" json:"student_discount_is_active"`

	StudentDiscountCreatedAt time.Time `gorm:"column:student_discount_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"student_discount_created_at"`
	StudentDiscountUpdatedAt time.Time `gorm:"column:student_discount_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"student_discount_updated_at"`
}

func (StudentDiscountModel) TableName() string { return "student_discounts" }

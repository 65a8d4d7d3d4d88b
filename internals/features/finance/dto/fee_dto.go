package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"schooloffice_backend/internals/features/finance/model"
	helper "schooloffice_backend/internals/helpers"
)

/* ===================== FEE TYPE / STRUCTURE ===================== */

type FeeTypeRequest struct {
	FeeTypeName        string  `json:"fee_type_name"        validate:"notblank,max=100"`
	FeeTypeCode        string  `json:"fee_type_code"        validate:"notblank,max=20"`
	FeeTypeDescription *string `json:"fee_type_description"`
	FeeTypeIsActive    *bool   `json:"fee_type_is_active"`
}

func (r FeeTypeRequest) ToModel() model.FeeTypeModel {
	return model.FeeTypeModel{
		FeeTypeName:        strings.TrimSpace(r.FeeTypeName),
		FeeTypeCode:        helper.Upper(r.FeeTypeCode),
		FeeTypeDescription: helper.TrimPtr(r.FeeTypeDescription),
		FeeTypeIsActive:    helper.ValueOr(r.FeeTypeIsActive, true),
	}
}

type FeeStructureRequest struct {
	FeeStructureClassID          uuid.UUID       `json:"fee_structure_class_id"            validate:"required"`
	FeeStructureFeeTypeID        uuid.UUID       `json:"fee_structure_fee_type_id"         validate:"required"`
	FeeStructureAcademicYearID   uuid.UUID       `json:"fee_structure_academic_year_id"    validate:"required"`
	FeeStructureAmount           decimal.Decimal `json:"fee_structure_amount"              validate:"gte=0"`
	FeeStructureFrequency        string          `json:"fee_structure_frequency"           validate:"omitempty,oneof=MONTHLY QUARTERLY HALF_YEARLY ANNUALLY ONE_TIME"`
	FeeStructureDueDay           *int            `json:"fee_structure_due_day"             validate:"omitempty,gte=1,lte=28"`
	FeeStructureLateFeeAmount    decimal.Decimal `json:"fee_structure_late_fee_amount"     validate:"gte=0"`
	FeeStructureLateFeeAfterDays *int            `json:"fee_structure_late_fee_after_days" validate:"omitempty,gte=0"`
	FeeStructureIsActive         *bool           `json:"fee_structure_is_active"`
}

func (r FeeStructureRequest) ToModel() model.FeeStructureModel {
	m := model.FeeStructureModel{
		FeeStructureClassID:          r.FeeStructureClassID,
		FeeStructureFeeTypeID:        r.FeeStructureFeeTypeID,
		FeeStructureAcademicYearID:   r.FeeStructureAcademicYearID,
		FeeStructureAmount:           helper.Cents(r.FeeStructureAmount),
		FeeStructureFrequency:        model.FrequencyMonthly,
		FeeStructureDueDay:           helper.ValueOr(r.FeeStructureDueDay, 10),
		FeeStructureLateFeeAmount:    helper.Cents(r.FeeStructureLateFeeAmount),
		FeeStructureLateFeeAfterDays: helper.ValueOr(r.FeeStructureLateFeeAfterDays, 5),
		FeeStructureIsActive:         helper.ValueOr(r.FeeStructureIsActive, true),
	}
	if r.FeeStructureFrequency != "" {
		m.FeeStructureFrequency = r.FeeStructureFrequency
	}
	return m
}

/* ===================== DISCOUNTS ===================== */

type DiscountRequest struct {
	DiscountName        string          `json:"discount_name"        validate:"notblank,max=100"`
	DiscountCode        string          `json:"discount_code"        validate:"notblank,max=20"`
	DiscountType        string          `json:"discount_type"        validate:"required,oneof=PERCENTAGE FIXED"`
	DiscountValue       decimal.Decimal `json:"discount_value"       validate:"gt=0"`
	DiscountDescription *string         `json:"discount_description"`
	DiscountIsActive    *bool           `json:"discount_is_active"`
}

func (r DiscountRequest) ToModel() model.DiscountModel {
	return model.DiscountModel{
		DiscountName:        strings.TrimSpace(r.DiscountName),
		DiscountCode:        helper.Upper(r.DiscountCode),
		DiscountType:        r.DiscountType,
		DiscountValue:       helper.Cents(r.DiscountValue),
		DiscountDescription: helper.TrimPtr(r.DiscountDescription),
		DiscountIsActive:    helper.ValueOr(r.DiscountIsActive, true),
	}
}

type StudentDiscountRequest struct {
	StudentDiscountStudentID      uuid.UUID `json:"student_discount_student_id"       validate:"required"`
	StudentDiscountDiscountID     uuid.UUID `json:"student_discount_discount_id"      validate:"required"`
	StudentDiscountAcademicYearID uuid.UUID `json:"student_discount_academic_year_id" validate:"required"`
	StudentDiscountReason         *string   `json:"student_discount_reason"`
	StudentDiscountIsActive       *bool     `json:"student_discount_is_active"`
}

func (r StudentDiscountRequest) ToModel() model.StudentDiscountModel {
	return model.StudentDiscountModel{
		StudentDiscountStudentID:      r.StudentDiscountStudentID,
		StudentDiscountDiscountID:     r.StudentDiscountDiscountID,
		StudentDiscountAcademicYearID: r.StudentDiscountAcademicYearID,
		StudentDiscountReason:         helper.TrimPtr(r.StudentDiscountReason),
		StudentDiscountIsActive:       helper.ValueOr(r.StudentDiscountIsActive, true),
	}
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	helper "schooloffice_backend/internals/helpers"
)

type ExpenseModel struct {
	ExpenseID            uuid.UUID       `gorm:"column:expense_id;type:uuid;default:gen_random_uuid();primaryKey" json:"expense_id"`
	ExpenseTitle         string          `gorm:"column:expense_title;type:varchar(200);not null" json:"expense_title"`
	ExpenseCategory      string          `gorm:"column:expense_category;type:varchar(20);not null;index" json:"expense_category"`
	ExpenseAmount        decimal.Decimal `gorm:"column:expense_amount;type:numeric(12,2);not null" json:"expense_amount"`
	ExpenseDate          datatypes.Date  `gorm:"column:expense_date;type:date;not null" json:"expense_date"`
	ExpenseDescription   *string         `gorm:"column:expense_description;type:text" json:"expense_description,omitempty"`
	ExpenseReceiptURL    *string         `gorm:"column:expense_receipt_url;type:text" json:"expense_receipt_url,omitempty"`
	ExpensePaidTo        *string         `gorm:"column:expense_paid_to;type:varchar(200)" json:"expense_paid_to,omitempty"`
	ExpensePaymentMethod string          `gorm:"column:expense_payment_method;type:varchar(20);not null;default:'CASH'" json:"expense_payment_method"`
	ExpenseCreatedBy     *uuid.UUID      `gorm:"column:expense_created_by;type:uuid" json:"expense_created_by,omitempty"`
	ExpenseApprovedBy    *uuid.UUID      `gorm:"column:expense_approved_by;type:uuid" json:"expense_approved_by,omitempty"`
	ExpenseIsApproved    bool            `gorm:"column:expense_is_approved;not null;default:false" json:"expense_is_approved"`

	ExpenseCreatedAt time.Time `gorm:"column:expense_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"expense_created_at"`
	ExpenseUpdatedAt time.Time `gorm:"column:expense_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"expense_updated_at"`
}

func (ExpenseModel) TableName() string { return "expenses" }

/* =========================================================
   SALARIES
========================================================= */

const (
	SalaryPending   = "PENDING"
	SalaryPaid      = "PAID"
	SalaryCancelled = "CANCELLED"
)

type SalaryModel struct {
	SalaryID            uuid.UUID       `gorm:"column:salary_id;type:uuid;default:gen_random_uuid();primaryKey" json:"salary_id"`
	SalaryStaffID       uuid.UUID       `gorm:"column:salary_staff_id;type:uuid;not null;uniqueIndex:uq_salaries_period" json:"salary_staff_id"`
	SalaryMonth         int             `gorm:"column:salary_month;not null;uniqueIndex:uq_salaries_period" json:"salary_month"`
	SalaryYear          int             `gorm:"column:salary_year;not null;uniqueIndex:uq_salaries_period" json:"salary_year"`
	SalaryBasic         decimal.Decimal `gorm:"column:salary_basic;type:numeric(12,2);not null" json:"salary_basic"`
	SalaryAllowances    decimal.Decimal `gorm:"column:salary_allowances;type:numeric(12,2);not null;default:0" json:"salary_allowances"`
	SalaryDeductions    decimal.Decimal `gorm:"column:salary_deductions;type:numeric(12,2);not null;default:0" json:"salary_deductions"`
	SalaryBonus         decimal.Decimal `gorm:"column:salary_bonus;type:numeric(12,2);not null;default:0" json:"salary_bonus"`
	SalaryNet           decimal.Decimal `gorm:"column:salary_net;type:numeric(12,2);not null" json:"salary_net"`
	SalaryPaymentDate   *datatypes.Date `gorm:"column:salary_payment_date;type:date" json:"salary_payment_date,omitempty"`
	SalaryPaymentMethod string          `gorm:"column:salary_payment_method;type:varchar(20);not null;default:'BANK_TRANSFER'" json:"salary_payment_method"`
	SalaryStatus        string          `gorm:"column:salary_status;type:varchar(20);not null;default:'PENDING';index" json:"salary_status"`
	SalaryRemarks       *string         `gorm:"column:salary_remarks;type:text" json:"salary_remarks,omitempty"`
	SalaryProcessedBy   *uuid.UUID      `gorm:"column:salary_processed_by;type:uuid" json:"salary_processed_by,omitempty"`

	SalaryCreatedAt time.Time `gorm:"column:salary_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"salary_created_at"`
	SalaryUpdatedAt time.Time `gorm:"column:salary_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"salary_updated_at"`
}

func (SalaryModel) TableName() string { return "salaries" }

// ComputeNet sets net = basic + allowances + bonus - deductions.
func (m *SalaryModel) ComputeNet() {
	m.SalaryNet = helper.SumCents(m.SalaryBasic, m.SalaryAllowances, m.SalaryBonus, m.SalaryDeductions.Neg())
}

// BeforeSave keeps net in step with its parts on every write path.
func (m *SalaryModel) BeforeSave(_ *gorm.DB) error {
	m.ComputeNet()
	return nil
}

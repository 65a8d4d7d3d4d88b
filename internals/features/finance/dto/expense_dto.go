package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"schooloffice_backend/internals/features/finance/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/dbtime"
)

type ExpenseRequest struct {
	ExpenseTitle         string          `json:"expense_title"          validate:"notblank,max=200"`
	ExpenseCategory      string          `json:"expense_category"       validate:"required,oneof=SALARY UTILITY MAINTENANCE STATIONERY TRANSPORT FOOD OTHER"`
	ExpenseAmount        decimal.Decimal `json:"expense_amount"         validate:"gt=0"`
	ExpenseDate          string          `json:"expense_date"           validate:"required,datetime=2006-01-02"`
	ExpenseDescription   *string         `json:"expense_description"`
	ExpenseReceiptURL    *string         `json:"expense_receipt_url"    validate:"omitempty,max=2048"`
	ExpensePaidTo        *string         `json:"expense_paid_to"        validate:"omitempty,max=200"`
	ExpensePaymentMethod string          `json:"expense_payment_method" validate:"omitempty,oneof=CASH CHEQUE BANK_TRANSFER ONLINE CARD"`
}

func (r ExpenseRequest) ToModel() model.ExpenseModel {
	m := model.ExpenseModel{
		ExpenseTitle:         strings.TrimSpace(r.ExpenseTitle),
		ExpenseCategory:      r.ExpenseCategory,
		ExpenseAmount:        helper.Cents(r.ExpenseAmount),
		ExpenseDate:          dbtime.ParseDate(r.ExpenseDate),
		ExpenseDescription:   helper.TrimPtr(r.ExpenseDescription),
		ExpenseReceiptURL:    helper.TrimPtr(r.ExpenseReceiptURL),
		ExpensePaidTo:        helper.TrimPtr(r.ExpensePaidTo),
		ExpensePaymentMethod: model.MethodCash,
	}
	if r.ExpensePaymentMethod != "" {
		m.ExpensePaymentMethod = r.ExpensePaymentMethod
	}
	return m
}

/* ===================== SALARY ===================== */

type SalaryRequest struct {
	SalaryStaffID       uuid.UUID       `json:"salary_staff_id"       validate:"required"`
	SalaryMonth         int             `json:"salary_month"          validate:"gte=1,lte=12"`
	SalaryYear          int             `json:"salary_year"           validate:"gte=2000,lte=2100"`
	SalaryBasic         decimal.Decimal `json:"salary_basic"          validate:"gte=0"`
	SalaryAllowances    decimal.Decimal `json:"salary_allowances"     validate:"gte=0"`
	SalaryDeductions    decimal.Decimal `json:"salary_deductions"     validate:"gte=0"`
	SalaryBonus         decimal.Decimal `json:"salary_bonus"          validate:"gte=0"`
	SalaryPaymentDate   *string         `json:"salary_payment_date"   validate:"omitempty,datetime=2006-01-02"`
	SalaryPaymentMethod string          `json:"salary_payment_method" validate:"omitempty,oneof=CASH CHEQUE BANK_TRANSFER ONLINE CARD"`
	SalaryStatus        string          `json:"salary_status"         validate:"omitempty,oneof=PENDING PAID CANCELLED"`
	SalaryRemarks       *string         `json:"salary_remarks"`
}

func (r SalaryRequest) ToModel() model.SalaryModel {
	m := model.SalaryModel{
		SalaryStaffID:       r.SalaryStaffID,
		SalaryMonth:         r.SalaryMonth,
		SalaryYear:          r.SalaryYear,
		SalaryBasic:         helper.Cents(r.SalaryBasic),
		SalaryAllowances:    helper.Cents(r.SalaryAllowances),
		SalaryDeductions:    helper.Cents(r.SalaryDeductions),
		SalaryBonus:         helper.Cents(r.SalaryBonus),
		SalaryPaymentDate:   dbtime.ParseDatePtr(r.SalaryPaymentDate),
		SalaryPaymentMethod: model.MethodBankTransfer,
		SalaryStatus:        model.SalaryPending,
		SalaryRemarks:       helper.TrimPtr(r.SalaryRemarks),
	}
	if r.SalaryPaymentMethod != "" {
		m.SalaryPaymentMethod = r.SalaryPaymentMethod
	}
	if r.SalaryStatus != "" {
		m.SalaryStatus = r.SalaryStatus
	}
	m.ComputeNet()
	return m
}

type GenerateSalariesRequest struct {
	Month int `json:"month" validate:"gte=1,lte=12"`
	Year  int `json:"year"  validate:"gte=2000,lte=2100"`
}

type PaySalaryRequest struct {
	PaymentDate   *string `json:"payment_date"   validate:"omitempty,datetime=2006-01-02"`
	PaymentMethod string  `json:"payment_method" validate:"omitempty,oneof=CASH CHEQUE BANK_TRANSFER ONLINE CARD"`
}

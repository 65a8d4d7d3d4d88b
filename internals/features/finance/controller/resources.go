package controller

import (
	"github.com/shopspring/decimal"

	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/finance/dto"
	"schooloffice_backend/internals/features/finance/model"
	"schooloffice_backend/internals/features/finance/service"
	"schooloffice_backend/internals/helpers/apperr"
)

const area = constants.AreaFinance

func FeeTypeResource() *crud.Resource[model.FeeTypeModel, dto.FeeTypeRequest] {
	return &crud.Resource[model.FeeTypeModel, dto.FeeTypeRequest]{
		Name:    "fee type",
		Area:    area,
		OrderBy: "fee_type_name",
		Search:  []string{"fee_types.fee_type_name", "fee_types.fee_type_code"},
		Filters: []crud.Filter{{Param: "is_active", Column: "fee_type_is_active", Kind: crud.FilterBool}},
		Unique:  []crud.Unique{{Field: "fee_type_code", Columns: []string{"fee_type_code"}, Message: "a fee type with this code already exists"}},
	}
}

func FeeStructureResource() *crud.Resource[model.FeeStructureModel, dto.FeeStructureRequest] {
	return &crud.Resource[model.FeeStructureModel, dto.FeeStructureRequest]{
		Name:    "fee structure",
		Area:    area,
		OrderBy: "fee_structure_created_at DESC",
		Filters: []crud.Filter{
			{Param: "class", Column: "fee_structure_class_id", Kind: crud.FilterUUID},
			{Param: "fee_type", Column: "fee_structure_fee_type_id", Kind: crud.FilterUUID},
			{Param: "academic_year", Column: "fee_structure_academic_year_id", Kind: crud.FilterUUID},
			{Param: "frequency", Column: "fee_structure_frequency", Kind: crud.FilterEnum},
			{Param: "is_active", Column: "fee_structure_is_active", Kind: crud.FilterBool},
		},
		Unique: []crud.Unique{{
			Field:   "fee_structure_fee_type_id",
			Columns: []string{"fee_structure_class_id", "fee_structure_fee_type_id", "fee_structure_academic_year_id"},
			Message: "this class already has this fee for the academic year",
		}},
	}
}

func DiscountResource() *crud.Resource[model.DiscountModel, dto.DiscountRequest] {
	return &crud.Resource[model.DiscountModel, dto.DiscountRequest]{
		Name:    "discount",
		Area:    area,
		OrderBy: "discount_name",
		Search:  []string{"discounts.discount_name", "discounts.discount_code"},
		Filters: []crud.Filter{
			{Param: "type", Column: "discount_type", Kind: crud.FilterEnum},
			{Param: "is_active", Column: "discount_is_active", Kind: crud.FilterBool},
		},
		Unique: []crud.Unique{{Field: "discount_code", Columns: []string{"discount_code"}, Message: "a discount with this code already exists"}},
		BeforeWrite: func(_ crud.WriteContext, _, m *model.DiscountModel) error {
			if m.DiscountType == model.DiscountPercentage && m.DiscountValue.GreaterThan(decimal.NewFromInt(100)) {
				return apperr.Validation("discount_value", "a percentage discount cannot exceed 100")
			}
			return nil
		},
	}
}

func StudentDiscountResource() *crud.Resource[model.StudentDiscountModel, dto.StudentDiscountRequest] {
	return &crud.Resource[model.StudentDiscountModel, dto.StudentDiscountRequest]{
		Name:    "student discount",
		Area:    area,
		OrderBy: "student_discount_created_at DESC",
		Filters: []crud.Filter{
			{Param: "student", Column: "student_discount_student_id", Kind: crud.FilterUUID},
			{Param: "discount", Column: "student_discount_discount_id", Kind: crud.FilterUUID},
			{Param: "academic_year", Column: "student_discount_academic_year_id", Kind: crud.FilterUUID},
			{Param: "is_active", Column: "student_discount_is_active", Kind: crud.FilterBool},
		},
		Keep: []string{"student_discount_approved_by"},
		BeforeWrite: func(w crud.WriteContext, old, m *model.StudentDiscountModel) error {
			if old == nil {
				m.StudentDiscountApprovedBy = w.ActorPtr()
			}
			return nil
		},
	}
}

func InvoiceResource() *crud.Resource[model.FeeInvoiceModel, dto.InvoiceRequest] {
	return &crud.Resource[model.FeeInvoiceModel, dto.InvoiceRequest]{
		Name:    "invoice",
		Area:    area,
		OrderBy: "fee_invoice_date DESC, fee_invoice_number DESC",
		Search: []string{
			"fee_invoices.fee_invoice_number",
			"(SELECT s.student_admission_number FROM students s WHERE s.student_id = fee_invoices.fee_invoice_student_id)",
		},
		Filters: []crud.Filter{
			{Param: "student", Column: "fee_invoice_student_id", Kind: crud.FilterUUID},
			{Param: "academic_year", Column: "fee_invoice_academic_year_id", Kind: crud.FilterUUID},
			{Param: "status", Column: "fee_invoice_status", Kind: crud.FilterEnum},
			{Param: "due_date", Column: "fee_invoice_due_date", Kind: crud.FilterDate},
		},
		Unique: []crud.Unique{{Field: "fee_invoice_number", Columns: []string{"fee_invoice_number"}, Message: "an invoice with this number already exists"}},
		Keep:   []string{"fee_invoice_paid_amount", "fee_invoice_created_by"},
		BeforeWrite: func(w crud.WriteContext, old, m *model.FeeInvoiceModel) error {
			return service.PrepareInvoice(w.Tx, old, m, w.ActorPtr())
		},
		BeforeDelete: func(w crud.WriteContext, m *model.FeeInvoiceModel) error {
			var n int64
			if err := w.Tx.Model(&model.PaymentModel{}).
				Where("payment_invoice_id = ?", m.FeeInvoiceID).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return apperr.Conflict("an invoice with payments cannot be deleted; cancel it instead")
			}
			return nil
		},
		Decorate: service.DecorateInvoices,
	}
}

// PaymentResource is read-only; payments are booked through RecordPayment.
func PaymentResource() *crud.Resource[model.PaymentModel, dto.PaymentRequest] {
	return &crud.Resource[model.PaymentModel, dto.PaymentRequest]{
		Name:     "payment",
		Area:     area,
		Ops:      crud.OpsRead,
		OrderBy:  "payment_date DESC, payment_created_at DESC",
		PageSize: 20,
		Search:   []string{"payments.payment_receipt_number", "payments.payment_transaction_id"},
		Filters: []crud.Filter{
			{Param: "invoice", Column: "payment_invoice_id", Kind: crud.FilterUUID},
			{Param: "method", Column: "payment_method", Kind: crud.FilterEnum},
			{Param: "status", Column: "payment_status", Kind: crud.FilterEnum},
			{Param: "date", Column: "payment_date", Kind: crud.FilterDate},
		},
	}
}

func ExpenseResource() *crud.Resource[model.ExpenseModel, dto.ExpenseRequest] {
	return &crud.Resource[model.ExpenseModel, dto.ExpenseRequest]{
		Name:    "expense",
		Area:    area,
		OrderBy: "expense_date DESC",
		Search:  []string{"expenses.expense_title", "expenses.expense_paid_to"},
		Filters: []crud.Filter{
			{Param: "category", Column: "expense_category", Kind: crud.FilterEnum},
			{Param: "is_approved", Column: "expense_is_approved", Kind: crud.FilterBool},
			{Param: "date", Column: "expense_date", Kind: crud.FilterDate},
		},
		Keep: []string{"expense_created_by", "expense_approved_by", "expense_is_approved"},
		BeforeWrite: func(w crud.WriteContext, old, m *model.ExpenseModel) error {
			if old == nil {
				m.ExpenseCreatedBy = w.ActorPtr()
				return nil
			}
			if old.ExpenseIsApproved {
				return apperr.Conflict("an approved expense cannot be edited")
			}
			return nil
		},
	}
}

func SalaryResource() *crud.Resource[model.SalaryModel, dto.SalaryRequest] {
	return &crud.Resource[model.SalaryModel, dto.SalaryRequest]{
		Name:    "salary",
		Area:    area,
		OrderBy: "salary_year DESC, salary_month DESC",
		Filters: []crud.Filter{
			{Param: "staff", Column: "salary_staff_id", Kind: crud.FilterUUID},
			{Param: "month", Column: "salary_month", Kind: crud.FilterInt},
			{Param: "year", Column: "salary_year", Kind: crud.FilterInt},
			{Param: "status", Column: "salary_status", Kind: crud.FilterEnum},
		},
		Unique: []crud.Unique{{
			Field:   "salary_month",
			Columns: []string{"salary_staff_id", "salary_month", "salary_year"},
			Message: "a salary for this staff member and period already exists",
		}},
		BeforeWrite: func(w crud.WriteContext, old, m *model.SalaryModel) error {
			if old != nil && old.SalaryStatus == model.SalaryPaid {
				return apperr.Conflict("a paid salary cannot be edited")
			}
			m.SalaryProcessedBy = w.ActorPtr()
			return nil
		},
	}
}

package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"schooloffice_backend/internals/features/finance/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/dbtime"
)

/* ===================== INVOICE ===================== */

type InvoiceItemRequest struct {
	FeeTypeID   uuid.UUID       `json:"fee_invoice_item_fee_type_id" validate:"required"`
	Description string          `json:"fee_invoice_item_description" validate:"notblank,max=200"`
	Amount      decimal.Decimal `json:"fee_invoice_item_amount"      validate:"gte=0"`
}

type InvoiceRequest struct {
	FeeInvoiceNumber         *string              `json:"fee_invoice_number"          validate:"omitempty,max=50"`
	FeeInvoiceStudentID      uuid.UUID            `json:"fee_invoice_student_id"      validate:"required"`
	FeeInvoiceAcademicYearID uuid.UUID            `json:"fee_invoice_academic_year_id" validate:"required"`
	FeeInvoiceDate           string               `json:"fee_invoice_date"            validate:"required,datetime=2006-01-02"`
	FeeInvoiceDueDate        string               `json:"fee_invoice_due_date"        validate:"required,datetime=2006-01-02"`
	FeeInvoiceTotalAmount    decimal.Decimal      `json:"fee_invoice_total_amount"    validate:"gte=0"`
	FeeInvoiceDiscountAmount decimal.Decimal      `json:"fee_invoice_discount_amount" validate:"gte=0"`
	FeeInvoiceLateFee        decimal.Decimal      `json:"fee_invoice_late_fee"        validate:"gte=0"`
	FeeInvoiceRemarks        *string              `json:"fee_invoice_remarks"`
	Items                    []InvoiceItemRequest `json:"items"                       validate:"omitempty,dive"`
}

// ToModel sums the items into the total when items are given.
func (r InvoiceRequest) ToModel() model.FeeInvoiceModel {
	m := model.FeeInvoiceModel{
		FeeInvoiceStudentID:      r.FeeInvoiceStudentID,
		FeeInvoiceAcademicYearID: r.FeeInvoiceAcademicYearID,
		FeeInvoiceDate:           dbtime.ParseDate(r.FeeInvoiceDate),
		FeeInvoiceDueDate:        dbtime.ParseDate(r.FeeInvoiceDueDate),
		FeeInvoiceTotalAmount:    helper.Cents(r.FeeInvoiceTotalAmount),
		FeeInvoiceDiscountAmount: helper.Cents(r.FeeInvoiceDiscountAmount),
		FeeInvoiceLateFee:        helper.Cents(r.FeeInvoiceLateFee),
		FeeInvoiceStatus:         model.InvoicePending,
		FeeInvoiceRemarks:        helper.TrimPtr(r.FeeInvoiceRemarks),
	}
	if n := helper.UpperPtr(r.FeeInvoiceNumber); n != nil {
		m.FeeInvoiceNumber = *n
	}
	if len(r.Items) > 0 {
		total := decimal.Zero
		for _, it := range r.Items {
			amt := helper.Cents(it.Amount)
			total = total.Add(amt)
			m.Items = append(m.Items, model.FeeInvoiceItemModel{
				FeeInvoiceItemFeeTypeID:   it.FeeTypeID,
				FeeInvoiceItemDescription: strings.TrimSpace(it.Description),
				FeeInvoiceItemAmount:      amt,
			})
		}
		m.FeeInvoiceTotalAmount = helper.Cents(total)
	}
	return m
}

type GenerateInvoiceRequest struct {
	StudentID      uuid.UUID `json:"student_id"       validate:"required"`
	AcademicYearID uuid.UUID `json:"academic_year_id" validate:"required"`
	InvoiceDate    *string   `json:"invoice_date"     validate:"omitempty,datetime=2006-01-02"`
	DueDate        *string   `json:"due_date"         validate:"omitempty,datetime=2006-01-02"`
}

type FinanceOverview struct {
	TotalRevenue   decimal.Decimal         `json:"total_revenue"`
	PendingAmount  decimal.Decimal         `json:"pending_amount"`
	RecentInvoices []model.FeeInvoiceModel `json:"recent_invoices"`
}

/* ===================== PAYMENT ===================== */

type PaymentRequest struct {
	PaymentReceiptNumber *string         `json:"payment_receipt_number" validate:"omitempty,max=50"`
	PaymentInvoiceID     uuid.UUID       `json:"payment_invoice_id"     validate:"required"`
	PaymentDate          *string         `json:"payment_date"           validate:"omitempty,datetime=2006-01-02"`
	PaymentAmount        decimal.Decimal `json:"payment_amount"         validate:"gt=0"`
	PaymentMethod        string          `json:"payment_method"         validate:"required,oneof=CASH CHEQUE BANK_TRANSFER ONLINE CARD"`
	PaymentStatus        string          `json:"payment_status"         validate:"omitempty,oneof=PENDING COMPLETED FAILED REFUNDED"`
	PaymentTransactionID *string         `json:"payment_transaction_id" validate:"omitempty,max=100"`
	PaymentChequeNumber  *string         `json:"payment_cheque_number"  validate:"omitempty,max=50"`
	PaymentBankName      *string         `json:"payment_bank_name"      validate:"omitempty,max=100"`
	PaymentRemarks       *string         `json:"payment_remarks"`
}

type PaymentStatusRequest struct {
	Status string `json:"payment_status" validate:"required,oneof=PENDING COMPLETED FAILED REFUNDED"`
}

type OnlinePaymentResponse struct {
	Payment     model.PaymentModel `json:"payment"`
	SnapToken   string             `json:"snap_token"`
	RedirectURL string             `json:"redirect_url"`
}

// ToModel leaves the receipt number empty when none is given. Date defaults
// to today and status to COMPLETED.
func (r PaymentRequest) ToModel() model.PaymentModel {
	p := model.PaymentModel{
		PaymentInvoiceID:     r.PaymentInvoiceID,
		PaymentDate:          datatypes.Date(dbtime.Today()),
		PaymentAmount:        helper.Cents(r.PaymentAmount),
		PaymentMethod:        r.PaymentMethod,
		PaymentStatus:        model.PaymentCompleted,
		PaymentTransactionID: helper.TrimPtr(r.PaymentTransactionID),
		PaymentChequeNumber:  helper.TrimPtr(r.PaymentChequeNumber),
		PaymentBankName:      helper.TrimPtr(r.PaymentBankName),
		PaymentRemarks:       helper.TrimPtr(r.PaymentRemarks),
	}
	if d := dbtime.ParseDatePtr(r.PaymentDate); d != nil {
		p.PaymentDate = *d
	}
	if r.PaymentStatus != "" {
		p.PaymentStatus = r.PaymentStatus
	}
	if n := helper.UpperPtr(r.PaymentReceiptNumber); n != nil {
		p.PaymentReceiptNumber = *n
	}
	return p
}

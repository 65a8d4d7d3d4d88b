package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	helper "schooloffice_backend/internals/helpers"
)

const (
	InvoicePending   = "PENDING"
	InvoicePartial   = "PARTIAL"
	InvoicePaid      = "PAID"
	InvoiceOverdue   = "OVERDUE"
	InvoiceCancelled = "CANCELLED"
)

// OpenInvoiceStatuses still expect money.
var OpenInvoiceStatuses = []string{InvoicePending, InvoicePartial, InvoiceOverdue}

type FeeInvoiceModel struct {
	FeeInvoiceID             uuid.UUID       `gorm:"column:fee_invoice_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_invoice_id"`
	FeeInvoiceNumber         string          `gorm:"column:fee_invoice_number;type:varchar(50);not null;uniqueIndex:uq_fee_invoices_number" json:"fee_invoice_number"`
	FeeInvoiceStudentID      uuid.UUID       `gorm:"column:fee_invoice_student_id;type:uuid;not null;index" json:"fee_invoice_student_id"`
	FeeInvoiceAcademicYearID uuid.UUID       `gorm:"column:fee_invoice_academic_year_id;type:uuid;not null;index" json:"fee_invoice_academic_year_id"`
	FeeInvoiceDate           datatypes.Date  `gorm:"column:fee_invoice_date;type:date;not null" json:"fee_invoice_date"`
	FeeInvoiceDueDate        datatypes.Date  `gorm:"column:fee_invoice_due_date;type:date;not null" json:"fee_invoice_due_date"`
	FeeInvoiceTotalAmount    decimal.Decimal `gorm:"column:fee_invoice_total_amount;type:numeric(12,2);not null;default:0" json:"fee_invoice_total_amount"`
	FeeInvoicePaidAmount     decimal.Decimal `gorm:"column:fee_invoice_paid_amount;type:numeric(12,2);not null;default:0" json:"fee_invoice_paid_amount"`
	FeeInvoiceDiscountAmount decimal.Decimal `gorm:"column:fee_invoice_discount_amount;type:numeric(12,2);not null;default:0" json:"fee_invoice_discount_amount"`
	FeeInvoiceLateFee        decimal.Decimal `gorm:"column:fee_invoice_late_fee;type:numeric(12,2);not null;default:0" json:"fee_invoice_late_fee"`
	FeeInvoiceStatus         string          `gorm:"column:fee_invoice_status;type:varchar(20);not null;default:'PENDING';index" json:"fee_invoice_status"`
	FeeInvoiceRemarks        *string         `gorm:"column:fee_invoice_remarks;type:text" json:"fee_invoice_remarks,omitempty"`
	FeeInvoiceCreatedBy      *uuid.UUID      `gorm:"column:fee_invoice_created_by;type:uuid" json:"fee_invoice_created_by,omitempty"`

	FeeInvoiceCreatedAt time.Time `gorm:"column:fee_invoice_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"fee_invoice_created_at"`
	FeeInvoiceUpdatedAt time.Time `gorm:"column:fee_invoice_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"fee_invoice_updated_at"`

	// derived
	FeeInvoiceBalance decimal.Decimal       `gorm:"-" json:"fee_invoice_balance_amount"`
	Items             []FeeInvoiceItemModel `gorm:"foreignKey:FeeInvoiceItemInvoiceID;references:FeeInvoiceID" json:"items,omitempty"`
}

func (FeeInvoiceModel) TableName() string { return "fee_invoices" }

// Balance = total + late fee - discount - paid.
func (m *FeeInvoiceModel) Balance() decimal.Decimal {
	return helper.Cents(m.FeeInvoiceTotalAmount.
		Add(m.FeeInvoiceLateFee).
		Sub(m.FeeInvoiceDiscountAmount).
		Sub(m.FeeInvoicePaidAmount))
}

type FeeInvoiceItemModel struct {
	FeeInvoiceItemID          uuid.UUID       `gorm:"column:fee_invoice_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_invoice_item_id"`
	FeeInvoiceItemInvoiceID   uuid.UUID       `gorm:"column:fee_invoice_item_invoice_id;type:uuid;not null;index" json:"fee_invoice_item_invoice_id"`
	FeeInvoiceItemFeeTypeID   uuid.UUID       `gorm:"column:fee_invoice_item_fee_type_id;type:uuid;not null" json:"fee_invoice_item_fee_type_id"`
	FeeInvoiceItemDescription string          `gorm:"column:fee_invoice_item_description;type:varchar(200);not null" json:"fee_invoice_item_description"`
	FeeInvoiceItemAmount      decimal.Decimal `gorm:"column:fee_invoice_item_amount;type:numeric(12,2);not null" json:"fee_invoice_item_amount"`
}

func (FeeInvoiceItemModel) TableName() string { return "fee_invoice_items" }

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
	PaymentRefunded  = "REFUNDED"
)

const (
	MethodCash         = "CASH"
	MethodCheque       = "CHEQUE"
	MethodBankTransfer = "BANK_TRANSFER"
	MethodOnline       = "ONLINE"
	MethodCard         = "CARD"
)

type PaymentModel struct {
	PaymentID            uuid.UUID       `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentReceiptNumber string          `gorm:"column:payment_receipt_number;type:varchar(50);not null;uniqueIndex:uq_payments_receipt_number" json:"payment_receipt_number"`
	PaymentInvoiceID     uuid.UUID       `gorm:"column:payment_invoice_id;type:uuid;not null;index" json:"payment_invoice_id"`
	PaymentDate          datatypes.Date  `gorm:"column:payment_date;type:date;not null" json:"payment_date"`
	PaymentAmount        decimal.Decimal `gorm:"column:payment_amount;type:numeric(12,2);not null" json:"payment_amount"`
	PaymentMethod        string          `gorm:"column:payment_method;type:varchar(20);not null" json:"payment_method"`
	PaymentStatus        string          `gorm:"column:payment_status;type:varchar(20);not null;default:'COMPLETED';index" json:"payment_status"`
	PaymentTransactionID *string         `gorm:"column:payment_transaction_id;type:varchar(100);index" json:"payment_transaction_id,omitempty"`
	PaymentChequeNumber  *string         `gorm:"column:payment_cheque_number;type:varchar(50)" json:"payment_cheque_number,omitempty"`
	PaymentBankName      *string         `gorm:"column:payment_bank_name;type:varchar(100)" json:"payment_bank_name,omitempty"`
	PaymentRemarks       *string         `gorm:"column:payment_remarks;type:text" json:"payment_remarks,omitempty"`
	PaymentReceivedBy    *uuid.UUID      `gorm:"column:payment_received_by;type:uuid" json:"payment_received_by,omitempty"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time `gorm:"column:payment_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"payment_updated_at"`
}

func (PaymentModel) TableName() string { return "payments" }

/* =========================================================
   Gateway callbacks, one row per notification received
========================================================= */

const (
	GatewayEventReceived  = "RECEIVED"
	GatewayEventProcessed = "PROCESSED"
	GatewayEventIgnored   = "IGNORED"
	GatewayEventFailed    = "FAILED"
)

type PaymentGatewayEventModel struct {
	GatewayEventID            uuid.UUID      `gorm:"column:gateway_event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"gateway_event_id"`
	GatewayEventPaymentID     *uuid.UUID     `gorm:"column:gateway_event_payment_id;type:uuid;index" json:"gateway_event_payment_id,omitempty"`
	GatewayEventProvider      string         `gorm:"column:gateway_event_provider;type:varchar(20);not null;default:'midtrans'" json:"gateway_event_provider"`
	GatewayEventOrderID       string         `gorm:"column:gateway_event_order_id;type:varchar(100);not null;index" json:"gateway_event_order_id"`
	GatewayEventTransactionID *string        `gorm:"column:gateway_event_transaction_id;type:varchar(100)" json:"gateway_event_transaction_id,omitempty"`
	GatewayEventType          string         `gorm:"column:gateway_event_type;type:varchar(50);not null" json:"gateway_event_type"`
	GatewayEventPayload       datatypes.JSON `gorm:"column:gateway_event_payload;type:jsonb" json:"gateway_event_payload"`
	GatewayEventStatus        string         `gorm:"column:gateway_event_status;type:varchar(20);not null;default:'RECEIVED'" json:"gateway_event_status"`
	GatewayEventError         *string        `gorm:"column:gateway_event_error;type:text" json:"gateway_event_error,omitempty"`
	GatewayEventReceivedAt    time.Time      `gorm:"column:gateway_event_received_at;type:timestamptz;not null;default:now();autoCreateTime" json:"gateway_event_received_at"`
	GatewayEventProcessedAt   *time.Time     `gorm:"column:gateway_event_processed_at;type:timestamptz" json:"gateway_event_processed_at,omitempty"`
}

func (PaymentGatewayEventModel) TableName() string { return "payment_gateway_events" }

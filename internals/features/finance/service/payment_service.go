package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schooloffice_backend/internals/features/finance/dto"
	"schooloffice_backend/internals/features/finance/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/dbtime"
	"schooloffice_backend/internals/metrics"
)

// PaymentResult is the saved payment with the invoice as it stands after it.
type PaymentResult struct {
	Payment model.PaymentModel    `json:"payment"`
	Invoice model.FeeInvoiceModel `json:"invoice"`
}

// RecordPayment books a payment against its invoice in one transaction: the
// invoice row is locked, the payment inserted and the invoice's paid amount
// and status recomputed from its completed payments.
func RecordPayment(ctx context.Context, db *gorm.DB, in dto.PaymentRequest, actor uuid.UUID) (*PaymentResult, error) {
	var out PaymentResult
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inv, err := lockInvoice(tx, in.PaymentInvoiceID)
		if err != nil {
			return err
		}
		if inv.FeeInvoiceStatus == model.InvoiceCancelled {
			return apperr.Conflict("payments cannot be recorded on a cancelled invoice")
		}

		p := in.ToModel()
		if actor != uuid.Nil {
			p.PaymentReceivedBy = &actor
		}
		if p.PaymentReceiptNumber == "" {
			p.PaymentReceiptNumber = helper.DocumentNumber("RCPT", time.Now())
		}
		if p.PaymentMethod == model.MethodCheque && p.PaymentChequeNumber == nil {
			return apperr.Validation("payment_cheque_number", "cheque payments need a cheque number")
		}

		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		if err := settleInvoice(tx, inv); err != nil {
			return err
		}
		out = PaymentResult{Payment: p, Invoice: *inv}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "record payment")
	}
	metrics.PaymentsRecorded.WithLabelValues(out.Payment.PaymentMethod, out.Payment.PaymentStatus).Inc()
	return &out, nil
}

// UpdatePaymentStatus moves a payment to status (e.g. REFUNDED) and
// resettles its invoice under the same locks RecordPayment takes.
func UpdatePaymentStatus(ctx context.Context, db *gorm.DB, paymentID uuid.UUID, status string) (*PaymentResult, error) {
	var out PaymentResult
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var invoiceIDs []uuid.UUID
		if err := tx.Model(&model.PaymentModel{}).Where("payment_id = ?", paymentID).
			Pluck("payment_invoice_id", &invoiceIDs).Error; err != nil {
			return err
		}
		if len(invoiceIDs) == 0 {
			return apperr.NotFound("payment")
		}
		// invoice before payment, the order RecordPayment locks in
		inv, err := lockInvoice(tx, invoiceIDs[0])
		if err != nil {
			return err
		}
		var p model.PaymentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("payment_id = ?", paymentID).Take(&p).Error; err != nil {
			return err
		}
		if p.PaymentStatus != status {
			p.PaymentStatus = status
			if err := tx.Model(&p).Update("payment_status", status).Error; err != nil {
				return err
			}
		}
		if err := settleInvoice(tx, inv); err != nil {
			return err
		}
		out = PaymentResult{Payment: p, Invoice: *inv}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "update payment status")
	}
	metrics.PaymentsRecorded.WithLabelValues(out.Payment.PaymentMethod, out.Payment.PaymentStatus).Inc()
	return &out, nil
}

// settleInvoice recomputes paid_amount from COMPLETED payments and saves the
// derived status. inv must be locked by the caller.
func settleInvoice(tx *gorm.DB, inv *model.FeeInvoiceModel) error {
	var sum struct{ Paid decimal.Decimal }
	if err := tx.Model(&model.PaymentModel{}).
		Where("payment_invoice_id = ? AND payment_status = ?", inv.FeeInvoiceID, model.PaymentCompleted).
		Select("COALESCE(SUM(payment_amount), 0) AS paid").Scan(&sum).Error; err != nil {
		return err
	}
	inv.FeeInvoicePaidAmount = helper.Cents(sum.Paid)
	Refresh(inv, dbtime.Today())
	return tx.Model(inv).Updates(map[string]any{
		"fee_invoice_paid_amount": inv.FeeInvoicePaidAmount,
		"fee_invoice_status":      inv.FeeInvoiceStatus,
	}).Error
}

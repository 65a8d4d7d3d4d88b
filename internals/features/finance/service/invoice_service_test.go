package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"schooloffice_backend/internals/features/finance/model"
	"schooloffice_backend/internals/helpers/dbtime"
)

func invoice(total, paid int64, due string) *model.FeeInvoiceModel {
	return &model.FeeInvoiceModel{
		FeeInvoiceTotalAmount: decimal.NewFromInt(total),
		FeeInvoicePaidAmount:  decimal.NewFromInt(paid),
		FeeInvoiceDueDate:     dbtime.ParseDate(due),
		FeeInvoiceStatus:      model.InvoicePending,
	}
}

func TestInvoiceStatus(t *testing.T) {
	today := time.Date(2026, 3, 15, 9, 30, 0, 0, time.Local)

	assert.Equal(t, model.InvoicePending, InvoiceStatus(invoice(1000, 0, "2026-03-15"), today))
	assert.Equal(t, model.InvoiceOverdue, InvoiceStatus(invoice(1000, 0, "2026-03-14"), today))
	assert.Equal(t, model.InvoicePartial, InvoiceStatus(invoice(1000, 400, "2026-03-01"), today))
	assert.Equal(t, model.InvoicePaid, InvoiceStatus(invoice(1000, 1000, "2026-03-01"), today))

	cancelled := invoice(1000, 1000, "2026-03-01")
	cancelled.FeeInvoiceStatus = model.InvoiceCancelled
	assert.Equal(t, model.InvoiceCancelled, InvoiceStatus(cancelled, today))
}

func TestRefresh_BalanceIncludesLateFeeAndDiscount(t *testing.T) {
	inv := invoice(1000, 300, "2026-04-10")
	inv.FeeInvoiceLateFee = decimal.NewFromInt(50)
	inv.FeeInvoiceDiscountAmount = decimal.NewFromInt(100)

	Refresh(inv, time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local))
	assert.Equal(t, "650.00", inv.FeeInvoiceBalance.StringFixed(2))
	assert.Equal(t, model.InvoicePartial, inv.FeeInvoiceStatus)

	inv.FeeInvoicePaidAmount = decimal.NewFromInt(950)
	Refresh(inv, time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local))
	assert.True(t, inv.FeeInvoiceBalance.IsZero())
	assert.Equal(t, model.InvoicePaid, inv.FeeInvoiceStatus)
}

func TestInvoiceStatus_CentExactBalance(t *testing.T) {
	// three payments of 0.10 settle 0.30 exactly
	dime := decimal.RequireFromString("0.10")
	inv := &model.FeeInvoiceModel{
		FeeInvoiceTotalAmount: decimal.RequireFromString("0.30"),
		FeeInvoicePaidAmount:  decimal.Sum(dime, dime, dime),
		FeeInvoiceDueDate:     dbtime.ParseDate("2026-03-01"),
		FeeInvoiceStatus:      model.InvoicePartial,
	}
	Refresh(inv, time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local))
	assert.True(t, inv.FeeInvoiceBalance.IsZero())
	assert.Equal(t, model.InvoicePaid, inv.FeeInvoiceStatus)
}

func TestDueDateFor(t *testing.T) {
	assert.Equal(t, "2026-03-10", dbtime.Format(dueDateFor(dbtime.ParseDate("2026-03-02"), 10)))
	assert.Equal(t, "2026-03-10", dbtime.Format(dueDateFor(dbtime.ParseDate("2026-03-10"), 10)))
	assert.Equal(t, "2026-04-10", dbtime.Format(dueDateFor(dbtime.ParseDate("2026-03-11"), 10)))
	assert.Equal(t, "2027-01-05", dbtime.Format(dueDateFor(dbtime.ParseDate("2026-12-20"), 5)))
}

func TestUntilNextDay(t *testing.T) {
	now := time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Hour+5*time.Second, untilNextDay(now))
}

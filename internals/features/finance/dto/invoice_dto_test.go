package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooloffice_backend/internals/features/finance/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/dbtime"
)

func TestInvoiceRequest_ItemsOverrideTotal(t *testing.T) {
	num := " inv-7 "
	r := InvoiceRequest{
		FeeInvoiceNumber:      &num,
		FeeInvoiceStudentID:   uuid.New(),
		FeeInvoiceDate:        "2026-03-01",
		FeeInvoiceDueDate:     "2026-03-10",
		FeeInvoiceTotalAmount: decimal.NewFromInt(1),
		Items: []InvoiceItemRequest{
			{FeeTypeID: uuid.New(), Description: " Tuition ", Amount: decimal.RequireFromString("1500.25")},
			{FeeTypeID: uuid.New(), Description: "Lab", Amount: decimal.NewFromInt(250)},
		},
	}
	m := r.ToModel()
	assert.Equal(t, "INV-7", m.FeeInvoiceNumber)
	assert.Equal(t, model.InvoicePending, m.FeeInvoiceStatus)
	require.Len(t, m.Items, 2)
	assert.Equal(t, "Tuition", m.Items[0].FeeInvoiceItemDescription)
	assert.Equal(t, "1750.25", m.FeeInvoiceTotalAmount.StringFixed(2))
}

func TestPaymentRequest_Defaults(t *testing.T) {
	p := PaymentRequest{PaymentInvoiceID: uuid.New(), PaymentAmount: decimal.RequireFromString("99.999"), PaymentMethod: model.MethodCash}.ToModel()
	assert.Equal(t, model.PaymentCompleted, p.PaymentStatus)
	assert.Equal(t, "", p.PaymentReceiptNumber)
	assert.Equal(t, "100.00", p.PaymentAmount.StringFixed(2))
	assert.Equal(t, dbtime.Today().Format(dbtime.DateLayout), dbtime.Format(p.PaymentDate))
}

func TestPaymentRequest_Validation(t *testing.T) {
	v := helper.NewValidator()
	errs := v.Struct(PaymentRequest{PaymentAmount: decimal.Zero, PaymentMethod: "BITCOIN"})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "payment_invoice_id")
	assert.Contains(t, errs, "payment_amount")
	assert.Contains(t, errs, "payment_method")
}

func TestSalaryRequest_ComputesNet(t *testing.T) {
	m := SalaryRequest{
		SalaryStaffID: uuid.New(), SalaryMonth: 3, SalaryYear: 2026,
		SalaryBasic:      decimal.NewFromInt(50000),
		SalaryAllowances: decimal.NewFromInt(5000),
		SalaryBonus:      decimal.NewFromInt(2000),
		SalaryDeductions: decimal.RequireFromString("1500.10"),
	}.ToModel()
	assert.Equal(t, "55499.90", m.SalaryNet.StringFixed(2))
	assert.Equal(t, model.SalaryPending, m.SalaryStatus)
	assert.Equal(t, model.MethodBankTransfer, m.SalaryPaymentMethod)
}

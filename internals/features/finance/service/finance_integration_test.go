//go:build integration

package service_test

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/features/finance/dto"
	"schooloffice_backend/internals/features/finance/model"
	"schooloffice_backend/internals/features/finance/service"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/dbtime"
	"schooloffice_backend/internals/testing/testdb"
)

func seedInvoice(t *testing.T, db *gorm.DB, number, due string, total int64) model.FeeInvoiceModel {
	campus := testdb.Campus(t, db, number)
	year := testdb.AcademicYear(t, db, campus.CampusID)
	st := testdb.Student(t, db, campus.CampusID, "ADM-"+number)
	inv := model.FeeInvoiceModel{
		FeeInvoiceNumber:         number,
		FeeInvoiceStudentID:      st.StudentID,
		FeeInvoiceAcademicYearID: year.AcademicYearID,
		FeeInvoiceDate:           dbtime.ParseDate("2026-01-01"),
		FeeInvoiceDueDate:        dbtime.ParseDate(due),
		FeeInvoiceTotalAmount:    decimal.NewFromInt(total),
		FeeInvoiceStatus:         model.InvoicePending,
	}
	require.NoError(t, db.Create(&inv).Error)
	return inv
}

func cash(invoice uuid.UUID, amount int64) dto.PaymentRequest {
	return dto.PaymentRequest{PaymentInvoiceID: invoice, PaymentAmount: decimal.NewFromInt(amount), PaymentMethod: model.MethodCash}
}

func TestRecordPayment_SettlesInvoice(t *testing.T) {
	pg := testdb.SetupSharedPostgres(t)
	db := pg.DB
	testdb.CleanupTables(t, db, "campuses", "users")
	ctx := context.Background()

	inv := seedInvoice(t, db, "INV-1", "2099-01-31", 1000)

	res, err := service.RecordPayment(ctx, db, cash(inv.FeeInvoiceID, 400), uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, model.InvoicePartial, res.Invoice.FeeInvoiceStatus)
	assert.Equal(t, "400.00", res.Invoice.FeeInvoicePaidAmount.StringFixed(2))
	assert.NotEmpty(t, res.Payment.PaymentReceiptNumber)

	res, err = service.RecordPayment(ctx, db, cash(inv.FeeInvoiceID, 600), uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, model.InvoicePaid, res.Invoice.FeeInvoiceStatus)

	// a refund reopens the invoice
	res, err = service.UpdatePaymentStatus(ctx, db, res.Payment.PaymentID, model.PaymentRefunded)
	require.NoError(t, err)
	assert.Equal(t, model.InvoicePartial, res.Invoice.FeeInvoiceStatus)
	assert.Equal(t, "400.00", res.Invoice.FeeInvoicePaidAmount.StringFixed(2))

	_, err = service.RecordPayment(ctx, db, cash(uuid.New(), 10), uuid.Nil)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestRecordPayment_RejectsCancelledInvoice(t *testing.T) {
	pg := testdb.SetupSharedPostgres(t)
	db := pg.DB
	testdb.CleanupTables(t, db, "campuses", "users")
	ctx := context.Background()

	inv := seedInvoice(t, db, "INV-2", "2099-01-31", 500)
	_, err := service.CancelInvoice(ctx, db, inv.FeeInvoiceID)
	require.NoError(t, err)

	_, err = service.RecordPayment(ctx, db, cash(inv.FeeInvoiceID, 100), uuid.Nil)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestMarkOverdueInvoices(t *testing.T) {
	pg := testdb.SetupSharedPostgres(t)
	db := pg.DB
	testdb.CleanupTables(t, db, "campuses", "users")
	ctx := context.Background()

	late := seedInvoice(t, db, "INV-3", "2026-02-01", 300)
	onTime := seedInvoice(t, db, "INV-4", "2026-04-01", 300)

	n, err := service.MarkOverdueInvoices(ctx, db, dbtime.T(dbtime.ParseDate("2026-03-01")))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	var got model.FeeInvoiceModel
	require.NoError(t, db.First(&got, "fee_invoice_id = ?", late.FeeInvoiceID).Error)
	assert.Equal(t, model.InvoiceOverdue, got.FeeInvoiceStatus)
	require.NoError(t, db.First(&got, "fee_invoice_id = ?", onTime.FeeInvoiceID).Error)
	assert.Equal(t, model.InvoicePending, got.FeeInvoiceStatus)
}

func TestGenerateSalaries_ConcurrentCallsSplitRows(t *testing.T) {
	pg := testdb.SetupSharedPostgres(t)
	db := pg.DB
	testdb.CleanupTables(t, db, "campuses", "users")
	ctx := context.Background()

	campus := testdb.Campus(t, db, "SAL")
	for _, id := range []string{"E-1", "E-2", "E-3"} {
		testdb.Staff(t, db, campus.CampusID, id, constants.RoleTeacher, decimal.RequireFromString("42000.50"))
	}

	const callers = 4
	var (
		wg      sync.WaitGroup
		results [callers][]model.SalaryModel
		errs    [callers]error
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = service.GenerateSalaries(ctx, db, dto.GenerateSalariesRequest{Month: 3, Year: 2026}, uuid.Nil)
		}(i)
	}
	wg.Wait()

	perStaff := map[uuid.UUID]int{}
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		for _, row := range results[i] {
			assert.NotEqual(t, uuid.Nil, row.SalaryID)
			assert.Equal(t, "42000.50", row.SalaryNet.StringFixed(2))
			perStaff[row.SalaryStaffID]++
		}
	}
	assert.Len(t, perStaff, 3)
	for staff, n := range perStaff {
		assert.Equal(t, 1, n, "staff %s returned more than once", staff)
	}

	var stored int64
	require.NoError(t, db.Model(&model.SalaryModel{}).Count(&stored).Error)
	assert.EqualValues(t, 3, stored)

	again, err := service.GenerateSalaries(ctx, db, dto.GenerateSalariesRequest{Month: 3, Year: 2026}, uuid.Nil)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func signedNotification(t *testing.T, serverKey, orderID, gross string) []byte {
	t.Helper()
	sum := sha512.Sum512([]byte(orderID + "200" + gross + serverKey))
	raw, err := json.Marshal(service.Notification{
		OrderID: orderID, StatusCode: "200", GrossAmount: gross,
		SignatureKey: hex.EncodeToString(sum[:]), TransactionID: "trx-" + gross, TransactionStatus: "settlement",
	})
	require.NoError(t, err)
	return raw
}

func TestHandleNotification_GrossAmountMustMatch(t *testing.T) {
	pg := testdb.SetupSharedPostgres(t)
	db := pg.DB
	testdb.CleanupTables(t, db, "campuses", "users", "payment_gateway_events")
	ctx := context.Background()
	const key = "server-key"

	inv := seedInvoice(t, db, "INV-5", "2099-01-31", 1000)
	p := model.PaymentModel{
		PaymentReceiptNumber: "ORD-5",
		PaymentInvoiceID:     inv.FeeInvoiceID,
		PaymentDate:          dbtime.ParseDate("2026-01-05"),
		PaymentAmount:        decimal.RequireFromString("999.50"),
		PaymentMethod:        model.MethodOnline,
		PaymentStatus:        model.PaymentPending,
	}
	require.NoError(t, db.Create(&p).Error)

	// correctly signed, but for less than was charged
	err := service.HandleNotification(ctx, db, key, signedNotification(t, key, "ORD-5", "1.00"))
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	var got model.PaymentModel
	require.NoError(t, db.First(&got, "payment_id = ?", p.PaymentID).Error)
	assert.Equal(t, model.PaymentPending, got.PaymentStatus)

	var ev model.PaymentGatewayEventModel
	require.NoError(t, db.Order("gateway_event_received_at DESC").First(&ev).Error)
	assert.Equal(t, model.GatewayEventFailed, ev.GatewayEventStatus)

	// the charged amount is rounded up to whole units
	require.NoError(t, service.HandleNotification(ctx, db, key, signedNotification(t, key, "ORD-5", "1000.00")))
	require.NoError(t, db.First(&got, "payment_id = ?", p.PaymentID).Error)
	assert.Equal(t, model.PaymentCompleted, got.PaymentStatus)
}

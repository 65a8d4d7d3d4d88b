package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schooloffice_backend/internals/features/finance/dto"
	"schooloffice_backend/internals/features/finance/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/dbtime"
)

// InvoiceStatus derives the status from the amounts and the due date.
// A cancelled invoice stays cancelled.
func InvoiceStatus(inv *model.FeeInvoiceModel, today time.Time) string {
	switch {
	case inv.FeeInvoiceStatus == model.InvoiceCancelled:
		return model.InvoiceCancelled
	case !inv.Balance().IsPositive():
		return model.InvoicePaid
	case inv.FeeInvoicePaidAmount.IsPositive():
		return model.InvoicePartial
	case dbtime.T(inv.FeeInvoiceDueDate).Before(dbtime.DateOf(today)):
		return model.InvoiceOverdue
	default:
		return model.InvoicePending
	}
}

// Refresh fills the derived balance and status.
func Refresh(inv *model.FeeInvoiceModel, today time.Time) {
	inv.FeeInvoiceBalance = inv.Balance()
	inv.FeeInvoiceStatus = InvoiceStatus(inv, today)
}

// PrepareInvoice runs inside the create/edit transaction.
func PrepareInvoice(tx *gorm.DB, old, m *model.FeeInvoiceModel, actor *uuid.UUID) error {
	if dbtime.Before(m.FeeInvoiceDueDate, m.FeeInvoiceDate) {
		return apperr.Validation("fee_invoice_due_date", "due date cannot be before the invoice date")
	}
	if old == nil {
		if m.FeeInvoiceNumber == "" {
			m.FeeInvoiceNumber = helper.DocumentNumber("INV", time.Now())
		}
		m.FeeInvoiceCreatedBy = actor
		Refresh(m, dbtime.Today())
		return nil
	}

	if m.FeeInvoiceNumber == "" {
		m.FeeInvoiceNumber = old.FeeInvoiceNumber
	}
	m.FeeInvoiceStatus = old.FeeInvoiceStatus
	if len(m.Items) > 0 {
		if err := tx.Where("fee_invoice_item_invoice_id = ?", old.FeeInvoiceID).
			Delete(&model.FeeInvoiceItemModel{}).Error; err != nil {
			return err
		}
		for i := range m.Items {
			m.Items[i].FeeInvoiceItemInvoiceID = old.FeeInvoiceID
		}
	}
	Refresh(m, dbtime.Today())
	return nil
}

// DecorateInvoices loads items and recomputes balance and status for display.
func DecorateInvoices(ctx context.Context, db *gorm.DB, invs []model.FeeInvoiceModel) error {
	if len(invs) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(invs))
	for i := range invs {
		ids[i] = invs[i].FeeInvoiceID
	}
	var items []model.FeeInvoiceItemModel
	if err := db.WithContext(ctx).
		Where("fee_invoice_item_invoice_id IN ?", ids).
		Order("fee_invoice_item_description").
		Find(&items).Error; err != nil {
		return err
	}
	byInvoice := make(map[uuid.UUID][]model.FeeInvoiceItemModel, len(invs))
	for _, it := range items {
		byInvoice[it.FeeInvoiceItemInvoiceID] = append(byInvoice[it.FeeInvoiceItemInvoiceID], it)
	}
	today := dbtime.Today()
	for i := range invs {
		invs[i].Items = byInvoice[invs[i].FeeInvoiceID]
		Refresh(&invs[i], today)
	}
	return nil
}

func lockInvoice(tx *gorm.DB, id uuid.UUID) (*model.FeeInvoiceModel, error) {
	var inv model.FeeInvoiceModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("fee_invoice_id = ?", id).Take(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("invoice")
		}
		return nil, err
	}
	return &inv, nil
}

// CancelInvoice marks an invoice CANCELLED. Fully paid invoices cannot be cancelled.
func CancelInvoice(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.FeeInvoiceModel, error) {
	var out *model.FeeInvoiceModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inv, err := lockInvoice(tx, id)
		if err != nil {
			return err
		}
		if inv.FeeInvoiceStatus == model.InvoicePaid {
			return apperr.Conflict("a paid invoice cannot be cancelled")
		}
		inv.FeeInvoiceStatus = model.InvoiceCancelled
		if err := tx.Model(inv).Update("fee_invoice_status", model.InvoiceCancelled).Error; err != nil {
			return err
		}
		Refresh(inv, dbtime.Today())
		out = inv
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "cancel invoice")
	}
	return out, nil
}

// GenerateInvoice bills a student for every active fee structure of their
// current class in the given academic year.
func GenerateInvoice(ctx context.Context, db *gorm.DB, in dto.GenerateInvoiceRequest, actor uuid.UUID) (*model.FeeInvoiceModel, error) {
	today := dbtime.Today()
	var inv model.FeeInvoiceModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var classIDs []*uuid.UUID
		if err := tx.Table("students").Where("student_id = ?", in.StudentID).
			Pluck("student_current_class_id", &classIDs).Error; err != nil {
			return err
		}
		if len(classIDs) == 0 {
			return apperr.NotFound("student")
		}
		if classIDs[0] == nil {
			return apperr.Validation("student_id", "student is not assigned to a class")
		}

		type line struct {
			FeeTypeID   uuid.UUID
			FeeTypeName string
			Frequency   string
			Amount      decimal.Decimal
			DueDay      int
		}
		var lines []line
		if err := tx.Table("fee_structures fs").
			Select("fs.fee_structure_fee_type_id AS fee_type_id, ft.fee_type_name, fs.fee_structure_frequency AS frequency, fs.fee_structure_amount AS amount, fs.fee_structure_due_day AS due_day").
			Joins("JOIN fee_types ft ON ft.fee_type_id = fs.fee_structure_fee_type_id").
			Where("fs.fee_structure_class_id = ? AND fs.fee_structure_academic_year_id = ? AND fs.fee_structure_is_active AND ft.fee_type_is_active",
				*classIDs[0], in.AcademicYearID).
			Order("ft.fee_type_name").
			Scan(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return apperr.Validation("student_id", "no active fee structure for the student's class in this academic year")
		}

		invDate := datatypes.Date(today)
		if d := dbtime.ParseDatePtr(in.InvoiceDate); d != nil {
			invDate = *d
		}
		inv = model.FeeInvoiceModel{
			FeeInvoiceNumber:         helper.DocumentNumber("INV", time.Now()),
			FeeInvoiceStudentID:      in.StudentID,
			FeeInvoiceAcademicYearID: in.AcademicYearID,
			FeeInvoiceDate:           invDate,
			FeeInvoiceDueDate:        dueDateFor(invDate, lines[0].DueDay),
			FeeInvoiceStatus:         model.InvoicePending,
			FeeInvoiceCreatedBy:      &actor,
		}
		if d := dbtime.ParseDatePtr(in.DueDate); d != nil {
			inv.FeeInvoiceDueDate = *d
		}
		if dbtime.Before(inv.FeeInvoiceDueDate, inv.FeeInvoiceDate) {
			return apperr.Validation("due_date", "due date cannot be before the invoice date")
		}
		amounts := make([]decimal.Decimal, 0, len(lines))
		for _, l := range lines {
			amounts = append(amounts, l.Amount)
			inv.Items = append(inv.Items, model.FeeInvoiceItemModel{
				FeeInvoiceItemFeeTypeID:   l.FeeTypeID,
				FeeInvoiceItemDescription: l.FeeTypeName + " (" + l.Frequency + ")",
				FeeInvoiceItemAmount:      l.Amount,
			})
		}
		inv.FeeInvoiceTotalAmount = helper.SumCents(amounts...)
		Refresh(&inv, today)
		return tx.Create(&inv).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "generate invoice")
	}
	return &inv, nil
}

// dueDateFor is the structure's due day in the invoice month, or the next
// month when that day has already passed.
func dueDateFor(invDate datatypes.Date, dueDay int) datatypes.Date {
	t := dbtime.T(invDate)
	due := time.Date(t.Year(), t.Month(), dueDay, 0, 0, 0, 0, time.Local)
	if due.Before(t) {
		due = due.AddDate(0, 1, 0)
	}
	return datatypes.Date(due)
}

// Overview sums revenue over PAID invoices and pending over open ones.
func Overview(ctx context.Context, db *gorm.DB) (*dto.FinanceOverview, error) {
	var sums struct {
		Revenue decimal.Decimal
		Pending decimal.Decimal
	}
	if err := db.WithContext(ctx).Model(&model.FeeInvoiceModel{}).
		Select(`COALESCE(SUM(fee_invoice_total_amount) FILTER (WHERE fee_invoice_status = ?), 0) AS revenue,
			COALESCE(SUM(fee_invoice_total_amount) FILTER (WHERE fee_invoice_status IN ?), 0) AS pending`,
			model.InvoicePaid, model.OpenInvoiceStatuses).
		Scan(&sums).Error; err != nil {
		return nil, err
	}
	out := &dto.FinanceOverview{
		TotalRevenue:  helper.Cents(sums.Revenue),
		PendingAmount: helper.Cents(sums.Pending),
	}
	if err := db.WithContext(ctx).Order("fee_invoice_date DESC, fee_invoice_created_at DESC").
		Limit(10).Find(&out.RecentInvoices).Error; err != nil {
		return nil, err
	}
	if err := DecorateInvoices(ctx, db, out.RecentInvoices); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkOverdueInvoices persists OVERDUE on unpaid invoices past their due date
// so status filters agree with what reads display.
func MarkOverdueInvoices(ctx context.Context, db *gorm.DB, today time.Time) (int64, error) {
	res := db.WithContext(ctx).Model(&model.FeeInvoiceModel{}).
		Where("fee_invoice_status = ? AND fee_invoice_due_date < ?", model.InvoicePending, dbtime.DateOf(today)).
		Update("fee_invoice_status", model.InvoiceOverdue)
	return res.RowsAffected, res.Error
}

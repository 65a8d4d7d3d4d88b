package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schooloffice_backend/internals/features/finance/dto"
	"schooloffice_backend/internals/features/finance/model"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/dbtime"
)

// ApproveExpense flags an expense approved by actor. Approving twice is a conflict.
func ApproveExpense(ctx context.Context, db *gorm.DB, id, actor uuid.UUID) (*model.ExpenseModel, error) {
	var e model.ExpenseModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("expense_id = ?", id).Take(&e).Error; err != nil {
			return err
		}
		if e.ExpenseIsApproved {
			return apperr.Conflict("expense is already approved")
		}
		e.ExpenseIsApproved = true
		e.ExpenseApprovedBy = &actor
		return tx.Model(&e).Select("expense_is_approved", "expense_approved_by").Updates(&e).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "approve expense")
	}
	return &e, nil
}

// GenerateSalaries creates a PENDING salary for every active staff member who
// has none for the period yet. It returns only the rows this call inserted;
// a row another request created first is skipped.
func GenerateSalaries(ctx context.Context, db *gorm.DB, in dto.GenerateSalariesRequest, actor uuid.UUID) ([]model.SalaryModel, error) {
	out := []model.SalaryModel{}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var staff []struct {
			StaffID          uuid.UUID
			StaffBasicSalary decimal.Decimal
		}
		if err := tx.Table("staff").
			Select("staff_id, staff_basic_salary").
			Where("staff_is_active = TRUE").
			Where("NOT EXISTS (SELECT 1 FROM salaries s WHERE s.salary_staff_id = staff.staff_id AND s.salary_month = ? AND s.salary_year = ?)", in.Month, in.Year).
			Order("staff_employee_id").
			Scan(&staff).Error; err != nil {
			return err
		}
		for _, s := range staff {
			row := model.SalaryModel{
				SalaryStaffID:       s.StaffID,
				SalaryMonth:         in.Month,
				SalaryYear:          in.Year,
				SalaryBasic:         s.StaffBasicSalary,
				SalaryPaymentMethod: model.MethodBankTransfer,
				SalaryStatus:        model.SalaryPending,
				SalaryProcessedBy:   &actor,
			}
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 1 && row.SalaryID != uuid.Nil {
				out = append(out, row)
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "generate salaries")
	}
	return out, nil
}

// PaySalary settles a PENDING salary.
func PaySalary(ctx context.Context, db *gorm.DB, id uuid.UUID, in dto.PaySalaryRequest, actor uuid.UUID) (*model.SalaryModel, error) {
	var s model.SalaryModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("salary_id = ?", id).Take(&s).Error; err != nil {
			return err
		}
		if s.SalaryStatus != model.SalaryPending {
			return apperr.Conflict("only a pending salary can be paid")
		}
		paid := datatypes.Date(dbtime.Today())
		if d := dbtime.ParseDatePtr(in.PaymentDate); d != nil {
			paid = *d
		}
		s.SalaryPaymentDate = &paid
		if in.PaymentMethod != "" {
			s.SalaryPaymentMethod = in.PaymentMethod
		}
		s.SalaryStatus = model.SalaryPaid
		s.SalaryProcessedBy = &actor
		return tx.Save(&s).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "pay salary")
	}
	return &s, nil
}

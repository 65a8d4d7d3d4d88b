package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schooloffice_backend/internals/features/library/dto"
	"schooloffice_backend/internals/features/library/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/dbtime"
	"schooloffice_backend/internals/metrics"
)

// PrepareBook shifts available copies by the change in total copies on edit.
func PrepareBook(old, m *model.BookModel) error {
	if old == nil {
		m.BookAvailableCopies = m.BookTotalCopies
		return nil
	}
	m.BookAvailableCopies = old.BookAvailableCopies + (m.BookTotalCopies - old.BookTotalCopies)
	if m.BookAvailableCopies < 0 {
		out := old.BookTotalCopies - old.BookAvailableCopies
		return apperr.Validation("book_total_copies",
			"cannot be lower than the "+strconv.Itoa(out)+" copies currently issued")
	}
	return nil
}

func lockBook(tx *gorm.DB, id uuid.UUID) (*model.BookModel, error) {
	var b model.BookModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("book_id = ?", id).Take(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("book")
		}
		return nil, err
	}
	return &b, nil
}

func lockIssue(tx *gorm.DB, id uuid.UUID) (*model.BookIssueModel, error) {
	var is model.BookIssueModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("book_issue_id = ?", id).Take(&is).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("book issue")
		}
		return nil, err
	}
	return &is, nil
}

// IssueBook lends one copy: the book row is locked, a copy taken off the
// shelf and the ISSUED row inserted in the same transaction.
func IssueBook(ctx context.Context, db *gorm.DB, in dto.IssueBookRequest, actor uuid.UUID) (*model.BookIssueModel, error) {
	is := in.ToModel()
	if dbtime.Before(is.BookIssueDueDate, is.BookIssueIssueDate) {
		return nil, apperr.Validation("book_issue_due_date", "due date cannot be before the issue date")
	}
	if actor != uuid.Nil {
		is.BookIssueIssuedBy = &actor
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := lockBook(tx, is.BookIssueBookID)
		if err != nil {
			return err
		}
		if !b.BookIsActive {
			return apperr.Conflict("this book is not in circulation")
		}
		if b.BookAvailableCopies <= 0 {
			return apperr.Conflict("no copies of this book are available")
		}
		if err := tx.Model(b).Update("book_available_copies", gorm.Expr("book_available_copies - 1")).Error; err != nil {
			return err
		}
		return tx.Create(&is).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "issue book")
	}
	metrics.BookCirculation.WithLabelValues("issued").Inc()
	return &is, nil
}

// Fine is the default late fine: whole days past due times the daily rate.
func Fine(due datatypes.Date, returned time.Time, perDay decimal.Decimal) decimal.Decimal {
	return helper.Cents(perDay.Mul(decimal.NewFromInt(int64(dbtime.DaysLate(due, returned)))))
}

// ReturnBook closes an ISSUED issue as RETURNED, LOST or DAMAGED. Only a
// return puts the copy back, never above the book's total.
func ReturnBook(ctx context.Context, db *gorm.DB, id uuid.UUID, in dto.ReturnBookRequest, finePerDay decimal.Decimal) (*model.BookIssueModel, error) {
	var out *model.BookIssueModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		is, err := lockIssue(tx, id)
		if err != nil {
			return err
		}
		if is.BookIssueStatus != model.IssueIssued {
			return apperr.Conflict("this issue is already closed as " + is.BookIssueStatus)
		}
		b, err := lockBook(tx, is.BookIssueBookID)
		if err != nil {
			return err
		}

		returned := datatypes.Date(dbtime.Today())
		if d := dbtime.ParseDatePtr(in.ReturnDate); d != nil {
			returned = *d
		}
		if dbtime.Before(returned, is.BookIssueIssueDate) {
			return apperr.Validation("book_issue_return_date", "return date cannot be before the issue date")
		}

		is.BookIssueStatus = in.Status
		is.BookIssueReturnDate = &returned
		if in.FineAmount != nil {
			is.BookIssueFineAmount = helper.Cents(*in.FineAmount)
		} else {
			is.BookIssueFineAmount = Fine(is.BookIssueDueDate, dbtime.T(returned), finePerDay)
		}
		if r := helper.TrimPtr(in.Remarks); r != nil {
			is.BookIssueRemarks = r
		}
		if err := tx.Save(is).Error; err != nil {
			return err
		}

		if in.Status == model.IssueReturned && b.BookAvailableCopies < b.BookTotalCopies {
			if err := tx.Model(b).Update("book_available_copies", gorm.Expr("book_available_copies + 1")).Error; err != nil {
				return err
			}
		}
		out = is
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "return book")
	}
	metrics.BookCirculation.WithLabelValues(strings.ToLower(out.BookIssueStatus)).Inc()
	return out, nil
}

// PayFine marks an outstanding fine as settled.
func PayFine(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.BookIssueModel, error) {
	var out *model.BookIssueModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		is, err := lockIssue(tx, id)
		if err != nil {
			return err
		}
		switch {
		case !is.BookIssueFineAmount.IsPositive():
			return apperr.Conflict("there is no fine on this issue")
		case is.BookIssueFinePaid:
			return apperr.Conflict("the fine is already paid")
		}
		is.BookIssueFinePaid = true
		if err := tx.Model(is).Update("book_issue_fine_paid", true).Error; err != nil {
			return err
		}
		out = is
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "pay fine")
	}
	return out, nil
}

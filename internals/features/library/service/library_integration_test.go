//go:build integration

package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/features/library/dto"
	"schooloffice_backend/internals/features/library/model"
	"schooloffice_backend/internals/features/library/service"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/testing/testdb"
)

func seedBook(t *testing.T, db *gorm.DB, campus uuid.UUID, copies int) model.BookModel {
	b := model.BookModel{
		BookTitle: "Go in Practice", BookAuthor: "Someone", BookCampusID: campus,
		BookTotalCopies: copies, BookAvailableCopies: copies, BookIsActive: true,
	}
	require.NoError(t, db.Create(&b).Error)
	return b
}

func available(t *testing.T, db *gorm.DB, id uuid.UUID) int {
	var b model.BookModel
	require.NoError(t, db.First(&b, "book_id = ?", id).Error)
	return b.BookAvailableCopies
}

func TestIssueAndReturnBook(t *testing.T) {
	pg := testdb.SetupSharedPostgres(t)
	db := pg.DB
	testdb.CleanupTables(t, db, "campuses", "users")
	ctx := context.Background()

	campus := testdb.Campus(t, db, "LIB")
	reader := testdb.User(t, db, "reader", constants.RoleStudent)
	b := seedBook(t, db, campus.CampusID, 1)

	issue := dto.IssueBookRequest{
		BookID: b.BookID, IssuedTo: reader.UserID,
		IssueDate: strPtr("2026-01-01"), DueDate: "2026-01-10",
	}
	is, err := service.IssueBook(ctx, db, issue, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, model.IssueIssued, is.BookIssueStatus)
	assert.Equal(t, 0, available(t, db, b.BookID))

	// last copy is out
	_, err = service.IssueBook(ctx, db, issue, uuid.Nil)
	assert.True(t, apperr.Is(err, apperr.KindConflict))

	back, err := service.ReturnBook(ctx, db, is.BookIssueID,
		dto.ReturnBookRequest{Status: model.IssueReturned, ReturnDate: strPtr("2026-01-13")}, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.Equal(t, model.IssueReturned, back.BookIssueStatus)
	assert.Equal(t, "15.00", back.BookIssueFineAmount.StringFixed(2))
	assert.Equal(t, 1, available(t, db, b.BookID))

	_, err = service.ReturnBook(ctx, db, is.BookIssueID, dto.ReturnBookRequest{Status: model.IssueReturned}, decimal.NewFromInt(5))
	assert.True(t, apperr.Is(err, apperr.KindConflict))

	paid, err := service.PayFine(ctx, db, is.BookIssueID)
	require.NoError(t, err)
	assert.True(t, paid.BookIssueFinePaid)
	_, err = service.PayFine(ctx, db, is.BookIssueID)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestLostBookStaysOffShelf(t *testing.T) {
	pg := testdb.SetupSharedPostgres(t)
	db := pg.DB
	testdb.CleanupTables(t, db, "campuses", "users")
	ctx := context.Background()

	campus := testdb.Campus(t, db, "LIB2")
	reader := testdb.User(t, db, "reader2", constants.RoleStudent)
	b := seedBook(t, db, campus.CampusID, 2)

	is, err := service.IssueBook(ctx, db, dto.IssueBookRequest{BookID: b.BookID, IssuedTo: reader.UserID, DueDate: "2099-01-01"}, uuid.Nil)
	require.NoError(t, err)
	_, err = service.ReturnBook(ctx, db, is.BookIssueID, dto.ReturnBookRequest{Status: model.IssueLost}, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.Equal(t, 1, available(t, db, b.BookID))
}

func strPtr(s string) *string { return &s }

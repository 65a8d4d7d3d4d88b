package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooloffice_backend/internals/features/library/model"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/helpers/dbtime"
)

func TestPrepareBook(t *testing.T) {
	m := &model.BookModel{BookTotalCopies: 4}
	require.NoError(t, PrepareBook(nil, m))
	assert.Equal(t, 4, m.BookAvailableCopies)

	old := &model.BookModel{BookTotalCopies: 5, BookAvailableCopies: 2}

	m = &model.BookModel{BookTotalCopies: 7}
	require.NoError(t, PrepareBook(old, m))
	assert.Equal(t, 4, m.BookAvailableCopies)

	m = &model.BookModel{BookTotalCopies: 3}
	require.NoError(t, PrepareBook(old, m))
	assert.Equal(t, 0, m.BookAvailableCopies)

	m = &model.BookModel{BookTotalCopies: 2}
	err := PrepareBook(old, m)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Contains(t, apperr.From(err).Fields["book_total_copies"][0], "3 copies")
}

func TestFine(t *testing.T) {
	due := dbtime.ParseDate("2026-03-10")
	five := decimal.NewFromInt(5)
	assert.True(t, Fine(due, time.Date(2026, 3, 9, 18, 0, 0, 0, time.Local), five).IsZero())
	assert.True(t, Fine(due, time.Date(2026, 3, 10, 18, 0, 0, 0, time.Local), five).IsZero())
	assert.Equal(t, "15.00", Fine(due, time.Date(2026, 3, 13, 8, 0, 0, 0, time.Local), five).StringFixed(2))
	assert.Equal(t, "7.50", Fine(due, time.Date(2026, 3, 13, 0, 0, 0, 0, time.Local), decimal.RequireFromString("2.5")).StringFixed(2))
	assert.Equal(t, "0.30", Fine(due, time.Date(2026, 3, 13, 0, 0, 0, 0, time.Local), decimal.RequireFromString("0.1")).StringFixed(2))
}

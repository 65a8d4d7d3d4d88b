package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"schooloffice_backend/internals/features/library/model"
	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/dbtime"
)

type BookCategoryRequest struct {
	BookCategoryName        string  `json:"book_category_name"        validate:"notblank,max=100"`
	BookCategoryCode        string  `json:"book_category_code"        validate:"notblank,max=20"`
	BookCategoryDescription *string `json:"book_category_description"`
	BookCategoryIsActive    *bool   `json:"book_category_is_active"`
}

func (r BookCategoryRequest) ToModel() model.BookCategoryModel {
	return model.BookCategoryModel{
		BookCategoryName:        strings.TrimSpace(r.BookCategoryName),
		BookCategoryCode:        helper.Upper(r.BookCategoryCode),
		BookCategoryDescription: helper.TrimPtr(r.BookCategoryDescription),
		BookCategoryIsActive:    helper.ValueOr(r.BookCategoryIsActive, true),
	}
}

type BookRequest struct {
	BookTitle           string           `json:"book_title"            validate:"notblank,max=300"`
	BookISBN            *string          `json:"book_isbn"             validate:"omitempty,max=20"`
	BookAuthor          string           `json:"book_author"           validate:"notblank,max=200"`
	BookPublisher       *string          `json:"book_publisher"        validate:"omitempty,max=200"`
	BookPublicationYear *int             `json:"book_publication_year" validate:"omitempty,gte=1000,lte=2100"`
	BookCategoryID      *uuid.UUID       `json:"book_category_id"`
	BookCampusID        uuid.UUID        `json:"book_campus_id"        validate:"required"`
	BookTotalCopies     int              `json:"book_total_copies"     validate:"gte=1"`
	BookRackNumber      *string          `json:"book_rack_number"      validate:"omitempty,max=50"`
	BookPrice           *decimal.Decimal `json:"book_price"            validate:"omitempty,gte=0"`
	BookDescription     *string          `json:"book_description"`
	BookCoverURL        *string          `json:"book_cover_url"        validate:"omitempty,max=2048"`
	BookIsActive        *bool            `json:"book_is_active"`
}

// ToModel starts with every copy on the shelf; edits adjust availability
// from the stored row.
func (r BookRequest) ToModel() model.BookModel {
	m := model.BookModel{
		BookTitle:           strings.TrimSpace(r.BookTitle),
		BookISBN:            helper.UpperPtr(r.BookISBN),
		BookAuthor:          strings.TrimSpace(r.BookAuthor),
		BookPublisher:       helper.TrimPtr(r.BookPublisher),
		BookPublicationYear: r.BookPublicationYear,
		BookCategoryID:      r.BookCategoryID,
		BookCampusID:        r.BookCampusID,
		BookTotalCopies:     r.BookTotalCopies,
		BookAvailableCopies: r.BookTotalCopies,
		BookRackNumber:      helper.TrimPtr(r.BookRackNumber),
		BookDescription:     helper.TrimPtr(r.BookDescription),
		BookCoverURL:        helper.TrimPtr(r.BookCoverURL),
		BookIsActive:        helper.ValueOr(r.BookIsActive, true),
	}
	m.BookPrice = helper.CentsPtr(r.BookPrice)
	return m
}

type IssueBookRequest struct {
	BookID    uuid.UUID `json:"book_issue_book_id"    validate:"required"`
	IssuedTo  uuid.UUID `json:"book_issue_issued_to"  validate:"required"`
	IssueDate *string   `json:"book_issue_issue_date" validate:"omitempty,datetime=2006-01-02"`
	DueDate   string    `json:"book_issue_due_date"   validate:"required,datetime=2006-01-02"`
	Remarks   *string   `json:"book_issue_remarks"`
}

// ToModel builds the ISSUED row; issue date defaults to today.
func (r IssueBookRequest) ToModel() model.BookIssueModel {
	m := model.BookIssueModel{
		BookIssueBookID:    r.BookID,
		BookIssueIssuedTo:  r.IssuedTo,
		BookIssueIssueDate: datatypes.Date(dbtime.Today()),
		BookIssueDueDate:   dbtime.ParseDate(r.DueDate),
		BookIssueStatus:    model.IssueIssued,
		BookIssueRemarks:   helper.TrimPtr(r.Remarks),
	}
	if d := dbtime.ParseDatePtr(r.IssueDate); d != nil {
		m.BookIssueIssueDate = *d
	}
	return m
}

type ReturnBookRequest struct {
	Status     string           `json:"book_issue_status"      validate:"required,oneof=RETURNED LOST DAMAGED"`
	ReturnDate *string          `json:"book_issue_return_date" validate:"omitempty,datetime=2006-01-02"`
	FineAmount *decimal.Decimal `json:"book_issue_fine_amount" validate:"omitempty,gte=0"`
	Remarks    *string          `json:"book_issue_remarks"`
}

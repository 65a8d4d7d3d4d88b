package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type BookCategoryModel struct {
	BookCategoryID          uuid.UUID `gorm:"column:book_category_id;type:uuid;default:gen_random_uuid();primaryKey" json:"book_category_id"`
	BookCategoryName        string    `gorm:"column:book_category_name;type:varchar(100);not null" json:"book_category_name"`
	BookCategoryCode        string    `gorm:"column:book_category_code;type:varchar(20);not null;uniqueIndex:uq_book_categories_code" json:"book_category_code"`
	BookCategoryDescription *string   `gorm:"column:book_category_description;type:text" json:"book_category_description,omitempty"`
	BookCategoryIsActive    bool      `gorm:"column:book_category_is_active;not null;default:true" json:"book_category_is_active"`

	BookCategoryCreatedAt time.Time `gorm:"column:book_category_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"book_category_created_at"`
	BookCategoryUpdatedAt time.Time `gorm:"column:book_category_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"book_category_updated_at"`
}

func (BookCategoryModel) TableName() string { return "book_categories" }

/* =========================================================
   BOOKS
========================================================= */

type BookModel struct {
	BookID              uuid.UUID        `gorm:"column:book_id;type:uuid;default:gen_random_uuid();primaryKey" json:"book_id"`
	BookTitle           string           `gorm:"column:book_title;type:varchar(300);not null" json:"book_title"`
	BookISBN            *string          `gorm:"column:book_isbn;type:varchar(20);uniqueIndex:uq_books_isbn" json:"book_isbn,omitempty"`
	BookAuthor          string           `gorm:"column:book_author;type:varchar(200);not null" json:"book_author"`
	BookPublisher       *string          `gorm:"column:book_publisher;type:varchar(200)" json:"book_publisher,omitempty"`
	BookPublicationYear *int             `gorm:"column:book_publication_year" json:"book_publication_year,omitempty"`
	BookCategoryID      *uuid.UUID       `gorm:"column:book_category_id;type:uuid;index" json:"book_category_id,omitempty"`
	BookCampusID        uuid.UUID        `gorm:"column:book_campus_id;type:uuid;not null;index" json:"book_campus_id"`
	BookTotalCopies     int              `gorm:"column:book_total_copies;not null;default:1" json:"book_total_copies"`
	BookAvailableCopies int              `gorm:"column:book_available_copies;not null;default:1" json:"book_available_copies"`
	BookRackNumber      *string          `gorm:"column:book_rack_number;type:varchar(50)" json:"book_rack_number,omitempty"`
	BookPrice           *decimal.Decimal `gorm:"column:book_price;type:numeric(10,2)" json:"book_price,omitempty"`
	BookDescription     *string          `gorm:"column:book_description;type:text" json:"book_description,omitempty"`
	BookCoverURL        *string          `gorm:"column:book_cover_url;type:text" json:"book_cover_url,omitempty"`
	BookIsActive        bool             `gorm:"column:book_is_active;not null;default:true;index" json:"book_is_active"`

	BookCreatedAt time.Time `gorm:"column:book_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"book_created_at"`
	BookUpdatedAt time.Time `gorm:"column:book_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"book_updated_at"`
}

func (BookModel) TableName() string { return "books" }

/* =========================================================
   ISSUES
========================================================= */

const (
	IssueIssued   = "ISSUED"
	IssueReturned = "RETURNED"
	IssueLost     = "LOST"
	IssueDamaged  = "DAMAGED"
)

type BookIssueModel struct {
	BookIssueID         uuid.UUID       `gorm:"column:book_issue_id;type:uuid;default:gen_random_uuid();primaryKey" json:"book_issue_id"`
	BookIssueBookID     uuid.UUID       `gorm:"column:book_issue_book_id;type:uuid;not null;index" json:"book_issue_book_id"`
	BookIssueIssuedTo   uuid.UUID       `gorm:"column:book_issue_issued_to;type:uuid;not null;index" json:"book_issue_issued_to"`
	BookIssueIssueDate  datatypes.Date  `gorm:"column:book_issue_issue_date;type:date;not null" json:"book_issue_issue_date"`
	BookIssueDueDate    datatypes.Date  `gorm:"column:book_issue_due_date;type:date;not null" json:"book_issue_due_date"`
	BookIssueReturnDate *datatypes.Date `gorm:"column:book_issue_return_date;type:date" json:"book_issue_return_date,omitempty"`
	BookIssueStatus     string          `gorm:"column:book_issue_status;type:varchar(20);not null;default:'ISSUED';index" json:"book_issue_status"`
	BookIssueFineAmount decimal.Decimal `gorm:"column:book_issue_fine_amount;type:numeric(10,2);not null;default:0" json:"book_issue_fine_amount"`
	BookIssueFinePaid   bool            `gorm:"column:book_issue_fine_paid;not null;default:false" json:"book_issue_fine_paid"`
	BookIssueRemarks    *string         `gorm:"column:book_issue_remarks;type:text" json:"book_issue_remarks,omitempty"`
	BookIssueIssuedBy   *uuid.UUID      `gorm:"column:book_issue_issued_by;type:uuid" json:"book_issue_issued_by,omitempty"`

	BookIssueCreatedAt time.Time `gorm:"column:book_issue_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"book_issue_created_at"`
	BookIssueUpdatedAt time.Time `gorm:"column:book_issue_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"book_issue_updated_at"`
}

func (BookIssueModel) TableName() string { return "book_issues" }

package controller

import (
	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/library/dto"
	"schooloffice_backend/internals/features/library/model"
	"schooloffice_backend/internals/features/library/service"
	"schooloffice_backend/internals/helpers/apperr"
)

const area = constants.AreaLibrary

func BookCategoryResource() *crud.Resource[model.BookCategoryModel, dto.BookCategoryRequest] {
	return &crud.Resource[model.BookCategoryModel, dto.BookCategoryRequest]{
		Name:    "book category",
		Area:    area,
		OrderBy: "book_category_name",
		Search:  []string{"book_categories.book_category_name", "book_categories.book_category_code"},
		Filters: []crud.Filter{{Param: "is_active", Column: "book_category_is_active", Kind: crud.FilterBool}},
		Unique:  []crud.Unique{{Field: "book_category_code", Columns: []string{"book_category_code"}, Message: "a category with this code already exists"}},
	}
}

func BookResource() *crud.Resource[model.BookModel, dto.BookRequest] {
	return &crud.Resource[model.BookModel, dto.BookRequest]{
		Name:     "book",
		Area:     area,
		OrderBy:  "book_title",
		PageSize: 20,
		Search:   []string{"books.book_title", "books.book_author", "books.book_isbn"},
		Filters: []crud.Filter{
			{Param: "category", Column: "book_category_id", Kind: crud.FilterUUID},
			{Param: "campus", Column: "book_campus_id", Kind: crud.FilterUUID},
			{Param: "is_active", Column: "book_is_active", Kind: crud.FilterBool},
		},
		Unique: []crud.Unique{{Field: "book_isbn", Columns: []string{"book_isbn"}, Message: "a book with this ISBN already exists"}},
		BeforeWrite: func(_ crud.WriteContext, old, m *model.BookModel) error {
			return service.PrepareBook(old, m)
		},
		BeforeDelete: func(w crud.WriteContext, m *model.BookModel) error {
			var n int64
			if err := w.Tx.Model(&model.BookIssueModel{}).
				Where("book_issue_book_id = ? AND book_issue_status = ?", m.BookID, model.IssueIssued).
				Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return apperr.Conflict("this book still has copies on loan")
			}
			return nil
		},
	}
}

// BookIssueResource lists issues; lending and returns go through the
// circulation endpoints.
func BookIssueResource() *crud.Resource[model.BookIssueModel, dto.IssueBookRequest] {
	return &crud.Resource[model.BookIssueModel, dto.IssueBookRequest]{
		Name:     "book issue",
		Area:     area,
		Ops:      crud.OpsRead,
		OrderBy:  "book_issue_issue_date DESC",
		PageSize: 20,
		Search: []string{
			"(SELECT b.book_title FROM books b WHERE b.book_id = book_issues.book_issue_book_id)",
			"(SELECT u.user_first_name || ' ' || u.user_last_name FROM users u WHERE u.user_id = book_issues.book_issue_issued_to)",
		},
		Filters: []crud.Filter{
			{Param: "book", Column: "book_issue_book_id", Kind: crud.FilterUUID},
			{Param: "issued_to", Column: "book_issue_issued_to", Kind: crud.FilterUUID},
			{Param: "status", Column: "book_issue_status", Kind: crud.FilterEnum},
			{Param: "fine_paid", Column: "book_issue_fine_paid", Kind: crud.FilterBool},
			{Param: "issue_date", Column: "book_issue_issue_date", Kind: crud.FilterDate},
		},
	}
}

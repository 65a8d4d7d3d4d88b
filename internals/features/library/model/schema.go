package model

import database "schooloffice_backend/internals/databases"

func Schema() database.Schema {
	fk, cascade, setNull := database.FK, database.Cascade, database.SetNull
	return database.Schema{
		Models: []any{&BookCategoryModel{}, &BookModel{}, &BookIssueModel{}},
		ForeignKeys: []database.ForeignKey{
			fk("books", "book_category_id", "book_categories", "book_category_id", setNull),
			fk("books", "book_campus_id", "campuses", "campus_id", cascade),
			fk("book_issues", "book_issue_book_id", "books", "book_id", cascade),
			fk("book_issues", "book_issue_issued_to", "users", "user_id", cascade),
			fk("book_issues", "book_issue_issued_by", "users", "user_id", setNull),
		},
		Statements: []string{
			database.Check("books", "ck_books_copies",
				"book_total_copies >= 1 AND book_available_copies >= 0 AND book_available_copies <= book_total_copies"),
			database.Check("book_issues", "ck_book_issues_due", "book_issue_due_date >= book_issue_issue_date"),
			database.Check("book_issues", "ck_book_issues_fine", "book_issue_fine_amount >= 0"),
		},
	}
}

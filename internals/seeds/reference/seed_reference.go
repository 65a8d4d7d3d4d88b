package reference

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	accountModel "schooloffice_backend/internals/features/accounts/model"
	financeModel "schooloffice_backend/internals/features/finance/model"
	libraryModel "schooloffice_backend/internals/features/library/model"
	staffModel "schooloffice_backend/internals/features/staff/model"
)

type Seed struct {
	Campuses       []accountModel.CampusModel       `json:"campuses"`
	FeeTypes       []financeModel.FeeTypeModel      `json:"fee_types"`
	LeaveTypes     []staffModel.LeaveTypeModel      `json:"leave_types"`
	BookCategories []libraryModel.BookCategoryModel `json:"book_categories"`
}

// SeedReferenceFromJSON loads lookup tables; rows whose code already exists are left alone.
func SeedReferenceFromJSON(db *gorm.DB, filePath string) {
	log.Println("[INFO] seeding reference data from", filePath)

	raw, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("[ERROR] read %s: %v", filePath, err)
	}
	var s Seed
	if err := json.Unmarshal(raw, &s); err != nil {
		log.Fatalf("[ERROR] decode %s: %v", filePath, err)
	}

	insert(db, "campuses", "campus_code", &s.Campuses, len(s.Campuses))
	insert(db, "fee types", "fee_type_code", &s.FeeTypes, len(s.FeeTypes))
	insert(db, "leave types", "leave_type_code", &s.LeaveTypes, len(s.LeaveTypes))
	insert(db, "book categories", "book_category_code", &s.BookCategories, len(s.BookCategories))
}

func insert(db *gorm.DB, what, codeColumn string, rows any, n int) {
	if n == 0 {
		return
	}
	res := db.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: codeColumn}}, DoNothing: true}).Create(rows)
	if res.Error != nil {
		log.Printf("[ERROR] seed %s: %v", what, res.Error)
		return
	}
	log.Printf("[INFO] %s: %d new of %d", what, res.RowsAffected, n)
}

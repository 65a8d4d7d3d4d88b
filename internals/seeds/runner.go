package seeds

import (
	"path/filepath"

	"gorm.io/gorm"

	"schooloffice_backend/internals/seeds/accounts"
	"schooloffice_backend/internals/seeds/reference"
	"schooloffice_backend/internals/seeds/site"
)

// RunAllSeeds loads the JSON files in dir. Every seeder skips rows that exist.
func RunAllSeeds(db *gorm.DB, dir string) {
	reference.SeedReferenceFromJSON(db, filepath.Join(dir, "data_reference.json"))
	accounts.SeedUsersFromJSON(db, filepath.Join(dir, "data_users.json"))
	site.SeedSettings(db)
}

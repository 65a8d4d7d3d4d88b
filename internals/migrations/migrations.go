// Package migrations lists every area's schema in dependency order.
package migrations

import (
	"gorm.io/gorm"

	database "schooloffice_backend/internals/databases"
	accounts "schooloffice_backend/internals/features/accounts/model"
	academics "schooloffice_backend/internals/features/academics/model"
	communication "schooloffice_backend/internals/features/communication/model"
	finance "schooloffice_backend/internals/features/finance/model"
	hostel "schooloffice_backend/internals/features/hostel/model"
	library "schooloffice_backend/internals/features/library/model"
	site "schooloffice_backend/internals/features/site/model"
	staff "schooloffice_backend/internals/features/staff/model"
	students "schooloffice_backend/internals/features/students/model"
	transport "schooloffice_backend/internals/features/transport/model"
)

func All() []database.Schema {
	return []database.Schema{
		accounts.Schema(),
		academics.Schema(),
		transport.Schema(),
		hostel.Schema(),
		students.Schema(),
		staff.Schema(),
		finance.Schema(),
		library.Schema(),
		communication.Schema(),
		site.Schema(),
	}
}

func Run(db *gorm.DB) error {
	return database.Migrate(db, All()...)
}

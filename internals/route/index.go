package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooloffice_backend/internals/configs"
	accountsRoute "schooloffice_backend/internals/features/accounts/route"
	academicsRoute "schooloffice_backend/internals/features/academics/route"
	communicationRoute "schooloffice_backend/internals/features/communication/route"
	financeRoute "schooloffice_backend/internals/features/finance/route"
	hostelRoute "schooloffice_backend/internals/features/hostel/route"
	libraryRoute "schooloffice_backend/internals/features/library/route"
	reportsRoute "schooloffice_backend/internals/features/reports/route"
	siteRoute "schooloffice_backend/internals/features/site/route"
	staffRoute "schooloffice_backend/internals/features/staff/route"
	studentsRoute "schooloffice_backend/internals/features/students/route"
	transportRoute "schooloffice_backend/internals/features/transport/route"
	"schooloffice_backend/internals/helpers/media"
	authMiddleware "schooloffice_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app)

	store, err := media.NewStore(configs.App.Media)
	if err != nil {
		log.Fatalf("[ERROR] media store: %v", err)
	}
	uploader := media.NewUploader(store, configs.App.Media)
	if _, local := store.(*media.LocalStore); local {
		app.Static(configs.App.Media.PublicPrefix, configs.App.Media.LocalDir)
	}

	log.Println("[INFO] mounting auth routes...")
	accountsRoute.AuthRoutes(app, db)

	log.Println("[INFO] mounting public routes...")
	public := app.Group("/api/public")
	siteRoute.SitePublicRoutes(public, db)
	financeRoute.FinancePublicRoutes(public, db)

	log.Println("[INFO] mounting back-office routes...")
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))
	accountsRoute.AccountsRoutes(api, db)
	academicsRoute.AcademicsRoutes(api, db)
	studentsRoute.StudentsRoutes(api, db, uploader)
	staffRoute.StaffRoutes(api, db)
	financeRoute.FinanceRoutes(api, db)
	libraryRoute.LibraryRoutes(api, db)
	transportRoute.TransportRoutes(api, db)
	hostelRoute.HostelRoutes(api, db)
	communicationRoute.CommunicationRoutes(api, db)
	siteRoute.SiteRoutes(api, db, uploader)
	reportsRoute.ReportsRoutes(api, db)
}

package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/features/reports/controller"
	authMiddleware "schooloffice_backend/internals/middlewares/auth"
)

func ReportsRoutes(api fiber.Router, db *gorm.DB) {
	read := authMiddleware.Require(constants.Read(constants.AreaReports))
	ctl := controller.NewReportsController(db)

	api.Get("/dashboard", read, ctl.Dashboard)
	api.Get("/reports/students", read, ctl.Students)
}

package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/accounts/controller"
	"schooloffice_backend/internals/middlewares"
	authMiddleware "schooloffice_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /api/auth. Login endpoints are public; the rest need a session.
func AuthRoutes(app fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	pub := app.Group("/api/auth")
	pub.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	pub.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	pub.Post("/refresh", ctl.Refresh)

	protected := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", ctl.Logout)
	protected.Get("/me", ctl.Me)
	protected.Post("/change-password", ctl.ChangePassword)
}

// AccountsRoutes mounts /accounts/* under an authenticated group.
func AccountsRoutes(api fiber.Router, db *gorm.DB) {
	g := api.Group("/accounts")

	crud.Register(g.Group("/users"), db, controller.UserResource())
	crud.Register(g.Group("/campuses"), db, controller.CampusResource())

	years := g.Group("/academic-years")
	yc := &controller.AcademicYearController{DB: db}
	years.Post("/:id/set-current", authMiddleware.Require(constants.Write(constants.AreaAccounts)), yc.SetCurrent)
	crud.Register(years, db, controller.AcademicYearResource())

	crud.Register(g.Group("/holidays"), db, controller.HolidayResource())
}

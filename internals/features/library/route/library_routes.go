package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/library/controller"
	authMiddleware "schooloffice_backend/internals/middlewares/auth"
)

func LibraryRoutes(api fiber.Router, db *gorm.DB) {
	g := api.Group("/library")
	write := authMiddleware.Require(constants.Write(constants.AreaLibrary))

	crud.Register(g.Group("/categories"), db, controller.BookCategoryResource())
	crud.Register(g.Group("/books"), db, controller.BookResource())

	issues := g.Group("/issues")
	cc := controller.NewCirculationController(db)
	issues.Post("/", write, cc.Issue)
	issues.Post("/:id/return", write, cc.Return)
	issues.Post("/:id/pay-fine", write, cc.PayFine)
	crud.Register(issues, db, controller.BookIssueResource())
}

package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/students/controller"
	"schooloffice_backend/internals/helpers/media"
	authMiddleware "schooloffice_backend/internals/middlewares/auth"
)

func StudentsRoutes(api fiber.Router, db *gorm.DB, up *media.Uploader) {
	g := api.Group("/students")
	write := authMiddleware.Require(constants.Write(constants.AreaStudents))

	docs := g.Group("/documents")
	docs.Post("/upload", write, controller.NewDocumentController(db, up).Upload)
	crud.Register(docs, db, controller.DocumentResource())
	crud.Register(g.Group("/health-records"), db, controller.HealthRecordResource())
	crud.Register(g.Group("/promotions"), db, controller.PromotionResource())
	crud.Register(g.Group("/siblings"), db, controller.SiblingResource())

	// registered last: /students/:id would otherwise shadow the groups above
	crud.Register(g, db, controller.StudentResource())
}

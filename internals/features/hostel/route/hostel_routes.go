package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/hostel/controller"
	authMiddleware "schooloffice_backend/internals/middlewares/auth"
)

func HostelRoutes(api fiber.Router, db *gorm.DB) {
	g := api.Group("/hostel")

	crud.Register(g.Group("/rooms"), db, controller.HostelRoomResource())
	crud.Register(g.Group("/facilities"), db, controller.HostelFacilityResource())

	complaints := g.Group("/complaints")
	complaints.Post("/:id/resolve",
		authMiddleware.Require(constants.Write(constants.AreaHostel)),
		controller.NewComplaintController(db).Resolve)
	crud.Register(complaints, db, controller.ComplaintResource())

	crud.Register(g.Group("/hostels"), db, controller.HostelResource())
}

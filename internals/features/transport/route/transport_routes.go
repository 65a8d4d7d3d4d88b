package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/transport/controller"
)

func TransportRoutes(api fiber.Router, db *gorm.DB) {
	g := api.Group("/transport")
	crud.Register(g.Group("/vehicles"), db, controller.VehicleResource())
	crud.Register(g.Group("/routes"), db, controller.RouteResource())
	crud.Register(g.Group("/stops"), db, controller.RouteStopResource())
	crud.Register(g.Group("/maintenance"), db, controller.MaintenanceResource())
}

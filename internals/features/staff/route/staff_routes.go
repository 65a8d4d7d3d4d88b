package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/staff/controller"
	"schooloffice_backend/internals/features/staff/service"
	authMiddleware "schooloffice_backend/internals/middlewares/auth"
)

func StaffRoutes(api fiber.Router, db *gorm.DB) {
	g := api.Group("/staff")
	write := authMiddleware.Require(constants.Write(constants.AreaStaff))

	crud.Register(g.Group("/departments"), db, controller.DepartmentResource())
	crud.Register(g.Group("/designations"), db, controller.DesignationResource())
	crud.Register(g.Group("/attendance"), db, controller.StaffAttendanceResource())
	crud.Register(g.Group("/leave-types"), db, controller.LeaveTypeResource())

	leaves := g.Group("/leaves")
	lc := controller.NewLeaveController(db)
	leaves.Post("/:id/approve", write, lc.Decide(service.ActionApprove))
	leaves.Post("/:id/reject", write, lc.Decide(service.ActionReject))
	leaves.Post("/:id/cancel", write, lc.Decide(service.ActionCancel))
	crud.Register(leaves, db, controller.LeaveResource())

	crud.Register(g.Group("/performance-reviews"), db, controller.PerformanceReviewResource())
	crud.Register(g.Group("/documents"), db, controller.StaffDocumentResource())

	// "/:id" of the members resource comes last
	crud.Register(g, db, controller.StaffResource())
}

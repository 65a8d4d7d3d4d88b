package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooloffice_backend/internals/configs"
	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/finance/controller"
	"schooloffice_backend/internals/features/finance/service"
	authMiddleware "schooloffice_backend/internals/middlewares/auth"
)

func newController(db *gorm.DB) *controller.FinanceController {
	cfg := configs.App.Midtrans
	return controller.NewFinanceController(db, service.NewMidtransGateway(cfg), cfg.ServerKey)
}

// FinanceRoutes mounts /finance behind authentication.
func FinanceRoutes(api fiber.Router, db *gorm.DB) {
	g := api.Group("/finance")
	read := authMiddleware.Require(constants.Read(constants.AreaFinance))
	write := authMiddleware.Require(constants.Write(constants.AreaFinance))
	ctl := newController(db)

	g.Get("/overview", read, ctl.Overview)

	crud.Register(g.Group("/fee-types"), db, controller.FeeTypeResource())
	crud.Register(g.Group("/fee-structures"), db, controller.FeeStructureResource())
	crud.Register(g.Group("/discounts"), db, controller.DiscountResource())
	crud.Register(g.Group("/student-discounts"), db, controller.StudentDiscountResource())

	invoices := g.Group("/invoices")
	invoices.Post("/generate", write, ctl.GenerateInvoice)
	invoices.Post("/:id/cancel", write, ctl.CancelInvoice)
	invoices.Post("/:id/pay-online", write, ctl.PayOnline)
	crud.Register(invoices, db, controller.InvoiceResource())

	payments := g.Group("/payments")
	payments.Post("/", write, ctl.RecordPayment)
	payments.Patch("/:id/status", write, ctl.PaymentStatus)
	crud.Register(payments, db, controller.PaymentResource())

	expenses := g.Group("/expenses")
	expenses.Post("/:id/approve", write, ctl.ApproveExpense)
	crud.Register(expenses, db, controller.ExpenseResource())

	salaries := g.Group("/salaries")
	salaries.Post("/generate", write, ctl.GenerateSalaries)
	salaries.Post("/:id/pay", write, ctl.PaySalary)
	crud.Register(salaries, db, controller.SalaryResource())
}

// FinancePublicRoutes mounts the gateway callback, which carries no token.
func FinancePublicRoutes(public fiber.Router, db *gorm.DB) {
	public.Post("/payments/notification", newController(db).Notification)
}

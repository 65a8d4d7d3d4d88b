package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooloffice_backend/internals/configs"
	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/communication/controller"
	"schooloffice_backend/internals/features/communication/service"
	authMiddleware "schooloffice_backend/internals/middlewares/auth"
)

func CommunicationRoutes(api fiber.Router, db *gorm.DB) {
	g := api.Group("/communication")
	read := authMiddleware.Require(constants.Read(constants.AreaCommunication))
	write := authMiddleware.Require(constants.Write(constants.AreaCommunication))
	ctl := controller.NewCommunicationController(db, service.NewMailer(configs.App.SendGrid))

	announcements := g.Group("/announcements")
	announcements.Get("/active", read, ctl.ActiveAnnouncements)
	crud.Register(announcements, db, controller.AnnouncementResource())

	messages := g.Group("/messages")
	messages.Post("/:id/read", read, ctl.ReadMessage)
	crud.Register(messages, db, controller.MessageResource())

	notifications := g.Group("/notifications")
	notifications.Post("/:id/read", read, ctl.ReadNotification)
	crud.Register(notifications, db, controller.NotificationResource())

	crud.Register(g.Group("/sms"), db, controller.SMSLogResource())

	emails := g.Group("/emails")
	emails.Post("/send", write, ctl.SendEmail)
	crud.Register(emails, db, controller.EmailLogResource())
}

package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/site/controller"
	"schooloffice_backend/internals/helpers/media"
	authMiddleware "schooloffice_backend/internals/middlewares/auth"
)

func SiteRoutes(api fiber.Router, db *gorm.DB, up *media.Uploader) {
	g := api.Group("/site")
	read := authMiddleware.Require(constants.Read(constants.AreaSite))
	write := authMiddleware.Require(constants.Write(constants.AreaSite))
	ctl := controller.NewSiteController(db, up)

	g.Get("/settings", read, ctl.GetSettings)
	g.Put("/settings", write, ctl.PutSettings)
	g.Post("/uploads", write, ctl.Upload)

	crud.Register(g.Group("/social-links"), db, controller.SocialLinkResource())
	crud.Register(g.Group("/blogs"), db, controller.BlogResource())
	crud.Register(g.Group("/courses"), db, controller.CoursePageResource())
	crud.Register(g.Group("/events"), db, controller.EventResource())
	crud.Register(g.Group("/image-types"), db, controller.ImageTypeResource())
	crud.Register(g.Group("/gallery"), db, controller.GalleryResource())
	crud.Register(g.Group("/sliders"), db, controller.SliderResource())
	crud.Register(g.Group("/teachers"), db, controller.SiteTeacherResource())
}

// SitePublicRoutes serves the public website without authentication.
func SitePublicRoutes(public fiber.Router, db *gorm.DB) {
	g := public.Group("/site")
	ctl := controller.NewSiteController(db, nil)

	g.Get("/home", ctl.Home)
	g.Get("/courses", ctl.Courses)
	g.Get("/courses/:slug", ctl.Course)
	g.Get("/teachers", ctl.Teachers)
	g.Get("/teachers/:id", ctl.Teacher)
	g.Get("/blogs", ctl.Blogs)
	g.Get("/blogs/:slug", ctl.Blog)
	g.Get("/events", ctl.Events)
	g.Get("/events/:id", ctl.Event)
	g.Get("/gallery", ctl.Gallery)
}

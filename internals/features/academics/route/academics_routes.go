package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/academics/controller"
	authMiddleware "schooloffice_backend/internals/middlewares/auth"
)

func AcademicsRoutes(api fiber.Router, db *gorm.DB) {
	g := api.Group("/academics")
	ctl := controller.NewAcademicsController(db)
	read := authMiddleware.Require(constants.Read(constants.AreaAcademics))
	write := authMiddleware.Require(constants.Write(constants.AreaAcademics))

	crud.Register(g.Group("/classes"), db, controller.ClassResource())
	crud.Register(g.Group("/sections"), db, controller.SectionResource())
	crud.Register(g.Group("/subjects"), db, controller.SubjectResource())
	crud.Register(g.Group("/class-subjects"), db, controller.ClassSubjectResource())
	crud.Register(g.Group("/timetables"), db, controller.TimetableResource())

	attendance := g.Group("/attendance")
	attendance.Post("/bulk", write, ctl.BulkAttendance)
	crud.Register(attendance, db, controller.AttendanceResource())

	exams := g.Group("/examinations")
	exams.Get("/overview", read, ctl.ExamOverview)
	crud.Register(exams, db, controller.ExaminationResource())

	crud.Register(g.Group("/exam-schedules"), db, controller.ExamScheduleResource())
	crud.Register(g.Group("/grades"), db, controller.GradeResource())
	crud.Register(g.Group("/homework"), db, controller.HomeworkResource())

	subs := g.Group("/homework-submissions")
	subs.Post("/:id/grade", write, ctl.GradeSubmission)
	crud.Register(subs, db, controller.HomeworkSubmissionResource())
}

package courseRoutes

import (
	controllers "coursehub/controllers/course"
	"coursehub/middleware"
	validators "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.RequireAdmin)

	// Course CRUD
	adminGroup.Post("/create", validators.CreateCourseAdmin(), controllers.AdminCreateCourse)
	adminGroup.Get("/list", validators.AdminList(), controllers.AdminGetAllCourses)
	adminGroup.Put("/:id", validators.UpdateCourseAdmin(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", validators.CourseID(), controllers.AdminDeleteCourse)
	adminGroup.Get("/:id", validators.CourseID(), controllers.AdminGetCourseDetails)
	adminGroup.Post("/:id/publish", validators.PublishCourse(), controllers.AdminPublishCourse)

	// Assignment Management
	subLessonGroup := app.Group("/admin/sublessons", middleware.JWTMiddleware, middleware.RequireAdmin)
	subLessonGroup.Post("/:id/assignment", validators.CreateAssignment(), controllers.AdminCreateAssignment)
	subLessonGroup.Get("/:id/assignments", validators.SubLessonID(), controllers.AdminListAssignments)

	assignmentGroup := app.Group("/admin/assignments", middleware.JWTMiddleware, middleware.RequireAdmin)
	assignmentGroup.Put("/:id", validators.UpdateAssignment(), controllers.AdminUpdateAssignment)
	assignmentGroup.Delete("/:id", validators.AssignmentID(), controllers.AdminDeleteAssignment)
}

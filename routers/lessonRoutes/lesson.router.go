package lessonRoutes

import (
	controllers "coursehub/controllers/course"
	"coursehub/middleware"
	validators "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupLessonRoutes sets up the admin lesson editor endpoints. A "lesson"
// here is a module of a course; its children are sub-lessons.
func SetupLessonRoutes(app *fiber.App) {
	lessonGroup := app.Group("/lessons", middleware.JWTMiddleware, middleware.RequireAdmin)

	// Reorder routes must be registered before the :id routes
	lessonGroup.Put("/reorder", validators.ReorderLessons(), controllers.AdminReorderLessons)
	lessonGroup.Put("/sublessons/reorder", validators.ReorderSubLessons(), controllers.AdminReorderSubLessons)

	lessonGroup.Post("/", validators.CreateLesson(), controllers.AdminCreateLesson)
	lessonGroup.Get("/:id", validators.LessonID(), controllers.AdminGetLesson)
	lessonGroup.Put("/:id", validators.UpdateLesson(), controllers.AdminUpdateLesson)
	lessonGroup.Delete("/:id", validators.LessonID(), controllers.AdminDeleteLesson)
}

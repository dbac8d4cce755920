package courseRoutes

import (
	controllers "coursehub/controllers/course"
	"coursehub/middleware"
	validators "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	userGroup := app.Group("/course")

	// Catalog
	userGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	userGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment (free courses; paid courses go through checkout)
	userGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)

	// Wishlist
	userGroup.Post("/:id/wishlist", middleware.JWTMiddleware, validators.CourseID(), controllers.AddToWishlist)
	userGroup.Delete("/:id/wishlist", middleware.JWTMiddleware, validators.CourseID(), controllers.RemoveFromWishlist)

	userEnrollGroup := app.Group("/user")
	userEnrollGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetEnrollments)
	userEnrollGroup.Get("/wishlist", middleware.JWTMiddleware, controllers.GetWishlist)
}

package mediaRoutes

import (
	controllers "coursehub/controllers/media"
	"coursehub/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupMediaRoutes(app *fiber.App) {
	mediaGroup := app.Group("/admin/media", middleware.JWTMiddleware, middleware.RequireAdmin)

	mediaGroup.Post("/video", controllers.UploadVideo)
	mediaGroup.Post("/image", controllers.UploadImage)
}

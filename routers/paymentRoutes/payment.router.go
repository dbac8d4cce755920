package paymentRoutes

import (
	controllers "coursehub/controllers/payment"
	"coursehub/middleware"
	validators "coursehub/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payments", middleware.JWTMiddleware)

	paymentGroup.Post("/checkout", validators.Checkout(), controllers.Checkout)
	paymentGroup.Post("/:id/confirm", validators.Confirm(), controllers.Confirm)
	paymentGroup.Get("/history", validators.History(), controllers.History)
}

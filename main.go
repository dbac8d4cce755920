package main

import (
	"coursehub/config"
	"coursehub/database"
	authRoutes "coursehub/routers/authRoutes"
	courseRoutes "coursehub/routers/courseRoutes"
	lessonRoutes "coursehub/routers/lessonRoutes"
	mediaRoutes "coursehub/routers/mediaRoutes"
	paymentRoutes "coursehub/routers/paymentRoutes"
	"coursehub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded thumbnails and images
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	lessonRoutes.SetupLessonRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	mediaRoutes.SetupMediaRoutes(app)

	utils.InitializeVideoStatusScheduler()
	utils.InitializePaymentScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

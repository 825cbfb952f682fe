package main

import (
	"log"

	"courseshop/config"
	"courseshop/database"
	"courseshop/routers/authRoutes"
	"courseshop/routers/boughtCourseRoutes"
	"courseshop/routers/cartRoutes"
	"courseshop/routers/categoryRoutes"
	"courseshop/routers/commentRoutes"
	"courseshop/routers/courseRoutes"
	"courseshop/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Static("/static", "./static")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	categoryRoutes.SetupCategoryRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	cartRoutes.SetupCartRoutes(app)
	boughtCourseRoutes.SetupBoughtCourseRoutes(app)
	commentRoutes.SetupCommentRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

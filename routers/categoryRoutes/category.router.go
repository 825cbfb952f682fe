package categoryRoutes

import (
	categoryControllers "courseshop/controllers/category"
	"courseshop/middleware"
	categoryValidators "courseshop/validators/category"

	"github.com/gofiber/fiber/v2"
)

func SetupCategoryRoutes(app *fiber.App) {
	categoryGroup := app.Group("/categories")

	categoryGroup.Get("/", categoryControllers.GetCategories)
	categoryGroup.Get("/:id", categoryControllers.GetCategory)

	// Catalog mutation is admin only
	categoryGroup.Post("/", middleware.JWTMiddleware, middleware.AdminMiddleware, categoryValidators.CreateCategory(), categoryControllers.CreateCategory)
	categoryGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminMiddleware, categoryValidators.CreateCategory(), categoryControllers.UpdateCategory)
	categoryGroup.Patch("/:id", middleware.JWTMiddleware, middleware.AdminMiddleware, categoryValidators.UpdateCategoryPartial(), categoryControllers.UpdateCategoryPartial)
	categoryGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminMiddleware, categoryControllers.DeleteCategory)
}

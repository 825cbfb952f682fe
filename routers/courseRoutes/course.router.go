package courseRoutes

import (
	courseControllers "courseshop/controllers/course"
	"courseshop/middleware"
	courseValidators "courseshop/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	// Owner flows must be registered before the /:id routes
	courseGroup.Post("/my", middleware.JWTMiddleware, courseControllers.CreateMyCourse)
	courseGroup.Get("/my", middleware.JWTMiddleware, courseControllers.GetMyCourses)
	courseGroup.Put("/my/:id", middleware.JWTMiddleware, courseValidators.CreateCourse(), courseControllers.UpdateMyCourse)
	courseGroup.Delete("/my/:id", middleware.JWTMiddleware, courseControllers.DeleteMyCourse)

	courseGroup.Get("/by-category/:category_id", courseControllers.GetCoursesByCategory)
	courseGroup.Get("/", courseValidators.CourseList(), courseControllers.GetAllCourses)
	courseGroup.Get("/:id", courseControllers.GetCourse)

	// Catalog mutation is admin only
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.AdminMiddleware, courseValidators.CreateCourse(), courseControllers.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminMiddleware, courseValidators.CreateCourse(), courseControllers.UpdateCourse)
	courseGroup.Patch("/:id", middleware.JWTMiddleware, middleware.AdminMiddleware, courseValidators.UpdateCoursePartial(), courseControllers.UpdateCoursePartial)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminMiddleware, courseControllers.DeleteCourse)
}

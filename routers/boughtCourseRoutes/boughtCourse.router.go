package boughtCourseRoutes

import (
	boughtCourseControllers "courseshop/controllers/boughtCourse"
	boughtCourseValidators "courseshop/validators/boughtCourse"

	"github.com/gofiber/fiber/v2"
)

func SetupBoughtCourseRoutes(app *fiber.App) {
	boughtGroup := app.Group("/bought-courses")

	boughtGroup.Post("/", boughtCourseValidators.CreateBoughtCourse(), boughtCourseControllers.CreateBoughtCourse)
	boughtGroup.Get("/user/:user_id", boughtCourseControllers.GetUserBoughtCourses)
	boughtGroup.Get("/:id", boughtCourseControllers.GetBoughtCourse)
	boughtGroup.Put("/:id", boughtCourseValidators.CreateBoughtCourse(), boughtCourseControllers.UpdateBoughtCourse)
	boughtGroup.Patch("/:id", boughtCourseValidators.UpdateBoughtCoursePartial(), boughtCourseControllers.UpdateBoughtCoursePartial)
	boughtGroup.Delete("/:id", boughtCourseControllers.DeleteBoughtCourse)
}

package commentRoutes

import (
	commentControllers "courseshop/controllers/comment"
	commentValidators "courseshop/validators/comment"

	"github.com/gofiber/fiber/v2"
)

func SetupCommentRoutes(app *fiber.App) {
	commentGroup := app.Group("/comments")

	commentGroup.Post("/", commentValidators.CreateComment(), commentControllers.CreateComment)
	commentGroup.Get("/course/:course_id", commentControllers.GetCourseComments)
	commentGroup.Get("/:id", commentControllers.GetComment)
	commentGroup.Put("/:id", commentValidators.CreateComment(), commentControllers.UpdateComment)
	commentGroup.Patch("/:id", commentValidators.UpdateCommentPartial(), commentControllers.UpdateCommentPartial)
	commentGroup.Delete("/:id", commentControllers.DeleteComment)
}

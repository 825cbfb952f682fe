package userRoutes

import (
	userControllers "courseshop/controllers/user"
	"courseshop/middleware"
	userValidators "courseshop/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users")

	userGroup.Post("/", userValidators.CreateUser(), userControllers.CreateUser)
	userGroup.Get("/", userValidators.UserList(), userControllers.GetUsers)
	userGroup.Get("/me", middleware.JWTMiddleware, userControllers.GetCurrentUser)
	userGroup.Get("/email/:email", userControllers.GetUserByEmail)
	userGroup.Get("/username/:username", userControllers.GetUserByUsername)
	userGroup.Get("/:id", userControllers.GetUser)
	userGroup.Put("/:id", userValidators.UpdateUser(), userControllers.UpdateUser)
	userGroup.Patch("/:id", userValidators.UpdateUserPartial(), userControllers.UpdateUserPartial)
	userGroup.Delete("/:id", userControllers.DeleteUser)
}

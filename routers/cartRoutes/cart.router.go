package cartRoutes

import (
	cartControllers "courseshop/controllers/cart"
	"courseshop/middleware"
	cartValidators "courseshop/validators/cart"

	"github.com/gofiber/fiber/v2"
)

func SetupCartRoutes(app *fiber.App) {
	cartGroup := app.Group("/cart", middleware.JWTMiddleware)

	cartGroup.Post("/checkout", cartControllers.Checkout)
	cartGroup.Post("/", cartValidators.AddToCart(), cartControllers.AddToCart)
	cartGroup.Get("/", cartControllers.GetCart)
	cartGroup.Delete("/:id", cartControllers.RemoveFromCart)
	cartGroup.Delete("/", cartControllers.ClearCart)
}

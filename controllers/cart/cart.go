package cartController

import (
	"courseshop/database"
	"courseshop/middleware"
	"courseshop/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

func AddToCart(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	reqData, ok := c.Locals("validatedAddToCart").(*struct {
		CourseID uint `json:"course_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := database.Database.Db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// No de-duplication: the same course may sit in the cart twice
	cartItem := models.Cart{
		UserID:   userID,
		CourseID: reqData.CourseID,
	}

	if err := database.Database.Db.Create(&cartItem).Error; err != nil {
		log.Printf("Error adding to cart: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add to cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course added to cart.", cartItem)
}

func GetCart(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	var cartItems []models.Cart
	if err := database.Database.Db.Where("user_id = ?", userID).Preload("Course").Order("id").Find(&cartItems).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart fetched successfully.", cartItems)
}

func RemoveFromCart(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid cart id!", nil)
	}

	var cartItem models.Cart
	if err := database.Database.Db.First(&cartItem, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cart item not found!", nil)
	}

	if cartItem.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Forbidden!", nil)
	}

	if err := database.Database.Db.Delete(&cartItem).Error; err != nil {
		log.Printf("Error removing cart item: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove cart item!", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ClearCart deletes every cart row of the current user. A no-op on an
// empty cart.
func ClearCart(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if err := database.Database.Db.Where("user_id = ?", userID).Delete(&models.Cart{}).Error; err != nil {
		log.Printf("Error clearing cart: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to clear cart!", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

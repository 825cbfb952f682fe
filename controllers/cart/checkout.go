package cartController

import (
	"courseshop/database"
	"courseshop/middleware"
	"courseshop/models"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var errCartEmpty = errors.New("cart is empty")

// Checkout converts the user's cart into purchase-ledger rows and
// bumps each course's purchase counter, then clears the cart. The
// whole sequence runs in one transaction: any failure rolls back all
// writes and leaves the cart exactly as it was.
func Checkout(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	coursesCount := 0

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		var cartItems []models.Cart
		if err := tx.Where("user_id = ?", userID).Order("id").Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return errCartEmpty
		}

		for _, item := range cartItems {
			bought := models.BoughtCourse{
				UserID:   item.UserID,
				CourseID: item.CourseID,
			}
			if err := tx.Create(&bought).Error; err != nil {
				return err
			}

			if err := tx.Model(&models.Course{}).
				Where("id = ?", item.CourseID).
				UpdateColumn("purchased_count", gorm.Expr("purchased_count + 1")).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.Cart{}).Error; err != nil {
			return err
		}

		coursesCount = len(cartItems)
		return nil
	})

	if errors.Is(err, errCartEmpty) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cart is empty!", nil)
	}
	if err != nil {
		log.Printf("Checkout failed for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Checkout failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout successful.", fiber.Map{
		"courses_count": coursesCount,
	})
}

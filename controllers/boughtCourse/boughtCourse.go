package boughtCourseController

import (
	"courseshop/database"
	"courseshop/middleware"
	"courseshop/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateBoughtCourse records a purchase directly and bumps the course
// counter, mirroring what checkout does per cart row.
func CreateBoughtCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBoughtCourse").(*struct {
		UserID   *uint `json:"user_id"`
		CourseID *uint `json:"course_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	bought := models.BoughtCourse{
		UserID:   *reqData.UserID,
		CourseID: *reqData.CourseID,
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&bought).Error; err != nil {
			return err
		}
		return tx.Model(&models.Course{}).
			Where("id = ?", bought.CourseID).
			UpdateColumn("purchased_count", gorm.Expr("purchased_count + 1")).Error
	})
	if err != nil {
		log.Printf("Error creating bought course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record purchase!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Purchase recorded successfully.", bought)
}

func GetBoughtCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid purchase id!", nil)
	}

	var bought models.BoughtCourse
	if err := database.Database.Db.First(&bought, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Purchase not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchase fetched successfully.", bought)
}

func GetUserBoughtCourses(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("user_id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	var boughtCourses []models.BoughtCourse
	if err := database.Database.Db.Where("user_id = ?", userID).Preload("Course").Order("id").Find(&boughtCourses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch purchases!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchases fetched successfully.", boughtCourses)
}

func UpdateBoughtCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid purchase id!", nil)
	}

	reqData, ok := c.Locals("validatedBoughtCourse").(*struct {
		UserID   *uint `json:"user_id"`
		CourseID *uint `json:"course_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var bought models.BoughtCourse
	if err := db.First(&bought, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Purchase not found!", nil)
	}

	bought.UserID = *reqData.UserID
	bought.CourseID = *reqData.CourseID

	if err := db.Save(&bought).Error; err != nil {
		log.Printf("Error updating bought course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update purchase!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchase updated successfully.", bought)
}

func UpdateBoughtCoursePartial(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid purchase id!", nil)
	}

	reqData, ok := c.Locals("validatedBoughtCoursePartial").(*struct {
		UserID   *uint `json:"user_id"`
		CourseID *uint `json:"course_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var bought models.BoughtCourse
	if err := db.First(&bought, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Purchase not found!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.UserID != nil {
		updates["user_id"] = *reqData.UserID
	}
	if reqData.CourseID != nil {
		updates["course_id"] = *reqData.CourseID
	}

	if len(updates) > 0 {
		if err := db.Model(&bought).Updates(updates).Error; err != nil {
			log.Printf("Error updating bought course: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update purchase!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchase updated successfully.", bought)
}

func DeleteBoughtCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid purchase id!", nil)
	}

	result := database.Database.Db.Delete(&models.BoughtCourse{}, id)
	if result.Error != nil {
		log.Printf("Error deleting bought course: %v", result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete purchase!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Purchase not found!", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

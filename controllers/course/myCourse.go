package courseController

import (
	"courseshop/config"
	"courseshop/database"
	"courseshop/middleware"
	"courseshop/models"
	"courseshop/utils"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// CreateMyCourse creates a course owned by the current user from a
// multipart form with an image upload.
func CreateMyCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	title := c.FormValue("title")
	format := c.FormValue("format")
	description := c.FormValue("description")

	errors := make(map[string]string)
	if title == "" {
		errors["title"] = "Title is required!"
	}
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || price < 0 {
		errors["price"] = "Price must be a non-negative number!"
	}
	durationHours, err := strconv.ParseInt(c.FormValue("duration_hours"), 10, 64)
	if err != nil || durationHours < 0 {
		errors["duration_hours"] = "Duration must be a non-negative number!"
	}
	categoryID, err := strconv.ParseUint(c.FormValue("category_id"), 10, 64)
	if err != nil || categoryID == 0 {
		errors["category_id"] = "Category is required!"
	}
	image, err := c.FormFile("image")
	if err != nil {
		errors["image"] = "Image file is required!"
	}
	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	imageURL, err := utils.SaveUploadedFile(image, config.AppConfig.UploadDir, config.AppConfig.UploadURLPrefix)
	if err != nil {
		log.Printf("Error saving course image: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store image!", nil)
	}

	course := models.Course{
		Title:         title,
		Format:        format,
		Description:   description,
		Price:         price,
		DurationHours: durationHours,
		CategoryID:    uint(categoryID),
		OwnerID:       userID,
		ImageURL:      imageURL,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully.", course)
}

// GetMyCourses lists courses owned by the current user
func GetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []models.Course
	if err := database.Database.Db.Where("owner_id = ?", userID).Order("id").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
}

// UpdateMyCourse applies a full update to a course owned by the caller
func UpdateMyCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title         *string  `json:"title"`
		Format        *string  `json:"format"`
		Description   *string  `json:"description"`
		Price         *float64 `json:"price"`
		DurationHours *int64   `json:"duration_hours"`
		Rating        *float64 `json:"rating"`
		CategoryID    *uint    `json:"category_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Forbidden!", nil)
	}
	if course.OwnerID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Forbidden!", nil)
	}

	course.Title = *reqData.Title
	course.Format = *reqData.Format
	course.Description = *reqData.Description
	course.Price = *reqData.Price
	course.DurationHours = *reqData.DurationHours
	course.Rating = *reqData.Rating
	course.CategoryID = *reqData.CategoryID

	if err := db.Save(&course).Error; err != nil {
		log.Printf("Error updating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully.", course)
}

// DeleteMyCourse deletes a course owned by the caller along with its
// image asset when the image is not the default one.
func DeleteMyCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if course.OwnerID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Forbidden!", nil)
	}

	if err := db.Delete(&course).Error; err != nil {
		log.Printf("Error deleting course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	utils.RemoveCourseImage(course.ImageURL, config.AppConfig.UploadDir)

	return c.SendStatus(fiber.StatusNoContent)
}

package courseController

import (
	"courseshop/config"
	"courseshop/database"
	"courseshop/middleware"
	"courseshop/models"
	"courseshop/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists courses with optional text, category and price
// filters. Pagination is applied in-process after full retrieval.
func GetAllCourses(c *fiber.Ctx) error {
	skip := 0
	limit := 100

	db := database.Database.Db
	query := db.Model(&models.Course{}).Order("id")

	if reqData, ok := c.Locals("validatedCourseList").(*struct {
		Search     *string  `query:"search"`
		CategoryID *uint    `query:"category_id"`
		PriceMin   *float64 `query:"price_min"`
		PriceMax   *float64 `query:"price_max"`
		Skip       *int     `query:"skip"`
		Limit      *int     `query:"limit"`
	}); ok {
		if reqData.Search != nil && *reqData.Search != "" {
			search := "%" + *reqData.Search + "%"
			query = query.Where("title LIKE ? OR description LIKE ?", search, search)
		}
		if reqData.CategoryID != nil {
			query = query.Where("category_id = ?", *reqData.CategoryID)
		}
		if reqData.PriceMin != nil {
			query = query.Where("price >= ?", *reqData.PriceMin)
		}
		if reqData.PriceMax != nil {
			query = query.Where("price <= ?", *reqData.PriceMax)
		}
		if reqData.Skip != nil {
			skip = *reqData.Skip
		}
		if reqData.Limit != nil {
			limit = *reqData.Limit
		}
	}

	var courses []models.Course
	if err := query.Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	total := len(courses)
	if skip >= total {
		courses = []models.Course{}
	} else {
		end := skip + limit
		if end > total {
			end = total
		}
		courses = courses[skip:end]
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", fiber.Map{
		"courses": courses,
		"total":   total,
	})
}

func GetCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var course models.Course
	if err := database.Database.Db.First(&course, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", course)
}

func GetCoursesByCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("category_id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	var courses []models.Course
	if err := database.Database.Db.Where("category_id = ?", categoryID).Order("id").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
}

func CreateCourse(c *fiber.Ctx) error {
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

	userID, _ := c.Locals("userId").(uint)

	course := models.Course{
		Title:         *reqData.Title,
		Format:        *reqData.Format,
		Description:   *reqData.Description,
		Price:         *reqData.Price,
		DurationHours: *reqData.DurationHours,
		Rating:        *reqData.Rating,
		CategoryID:    *reqData.CategoryID,
		OwnerID:       userID,
		ImageURL:      models.DefaultCourseImage,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully.", course)
}

func UpdateCourse(c *fiber.Ctx) error {
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
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
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

func UpdateCoursePartial(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedCoursePartial").(*struct {
		Title         *string  `json:"title"`
		Format        *string  `json:"format"`
		Description   *string  `json:"description"`
		Price         *float64 `json:"price"`
		DurationHours *int64   `json:"duration_hours"`
		Rating        *float64 `json:"rating"`
		CategoryID    *uint    `json:"category_id"`
		ImageURL      *string  `json:"image_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Only fields present in the payload change
	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Format != nil {
		updates["format"] = *reqData.Format
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Price != nil {
		updates["price"] = *reqData.Price
	}
	if reqData.DurationHours != nil {
		updates["duration_hours"] = *reqData.DurationHours
	}
	if reqData.Rating != nil {
		updates["rating"] = *reqData.Rating
	}
	if reqData.CategoryID != nil {
		updates["category_id"] = *reqData.CategoryID
	}
	if reqData.ImageURL != nil {
		updates["image_url"] = *reqData.ImageURL
	}

	if len(updates) > 0 {
		if err := db.Model(&course).Updates(updates).Error; err != nil {
			log.Printf("Error updating course: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully.", course)
}

func DeleteCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := db.Delete(&course).Error; err != nil {
		log.Printf("Error deleting course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	utils.RemoveCourseImage(course.ImageURL, config.AppConfig.UploadDir)

	return c.SendStatus(fiber.StatusNoContent)
}

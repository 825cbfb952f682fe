package commentController

import (
	"courseshop/database"
	"courseshop/middleware"
	"courseshop/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

func CreateComment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedComment").(*struct {
		UserID   *uint   `json:"user_id"`
		CourseID *uint   `json:"course_id"`
		Content  *string `json:"content"`
		Rating   *int    `json:"rating"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	comment := models.Comment{
		UserID:   *reqData.UserID,
		CourseID: *reqData.CourseID,
		Content:  *reqData.Content,
		Rating:   *reqData.Rating,
	}

	if err := database.Database.Db.Create(&comment).Error; err != nil {
		log.Printf("Error creating comment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create comment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Comment created successfully.", comment)
}

func GetComment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid comment id!", nil)
	}

	var comment models.Comment
	if err := database.Database.Db.First(&comment, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Comment not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment fetched successfully.", comment)
}

func GetCourseComments(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("course_id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var comments []models.Comment
	if err := database.Database.Db.Where("course_id = ?", courseID).Order("id").Find(&comments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch comments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comments fetched successfully.", comments)
}

func UpdateComment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid comment id!", nil)
	}

	reqData, ok := c.Locals("validatedComment").(*struct {
		UserID   *uint   `json:"user_id"`
		CourseID *uint   `json:"course_id"`
		Content  *string `json:"content"`
		Rating   *int    `json:"rating"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var comment models.Comment
	if err := db.First(&comment, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Comment not found!", nil)
	}

	comment.UserID = *reqData.UserID
	comment.CourseID = *reqData.CourseID
	comment.Content = *reqData.Content
	comment.Rating = *reqData.Rating

	if err := db.Save(&comment).Error; err != nil {
		log.Printf("Error updating comment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update comment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment updated successfully.", comment)
}

func UpdateCommentPartial(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid comment id!", nil)
	}

	reqData, ok := c.Locals("validatedCommentPartial").(*struct {
		UserID   *uint   `json:"user_id"`
		CourseID *uint   `json:"course_id"`
		Content  *string `json:"content"`
		Rating   *int    `json:"rating"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var comment models.Comment
	if err := db.First(&comment, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Comment not found!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.UserID != nil {
		updates["user_id"] = *reqData.UserID
	}
	if reqData.CourseID != nil {
		updates["course_id"] = *reqData.CourseID
	}
	if reqData.Content != nil {
		updates["content"] = *reqData.Content
	}
	if reqData.Rating != nil {
		updates["rating"] = *reqData.Rating
	}

	if len(updates) > 0 {
		if err := db.Model(&comment).Updates(updates).Error; err != nil {
			log.Printf("Error updating comment: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update comment!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment updated successfully.", comment)
}

func DeleteComment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid comment id!", nil)
	}

	result := database.Database.Db.Delete(&models.Comment{}, id)
	if result.Error != nil {
		log.Printf("Error deleting comment: %v", result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete comment!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Comment not found!", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

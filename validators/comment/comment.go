package commentValidator

import (
	"courseshop/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateComment validates a comment create or full update payload.
// Rating is a free integer, no range is enforced.
func CreateComment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID   *uint   `json:"user_id"`
			CourseID *uint   `json:"course_id"`
			Content  *string `json:"content"`
			Rating   *int    `json:"rating"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == nil || *reqData.UserID == 0 {
			errors["user_id"] = "User is required!"
		}
		if reqData.CourseID == nil || *reqData.CourseID == 0 {
			errors["course_id"] = "Course is required!"
		}
		if reqData.Content == nil || strings.TrimSpace(*reqData.Content) == "" {
			errors["content"] = "Content is required!"
		}
		if reqData.Rating == nil {
			errors["rating"] = "Rating is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedComment", reqData)
		return c.Next()
	}
}

// UpdateCommentPartial validates a partial comment update
func UpdateCommentPartial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID   *uint   `json:"user_id"`
			CourseID *uint   `json:"course_id"`
			Content  *string `json:"content"`
			Rating   *int    `json:"rating"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Content != nil && strings.TrimSpace(*reqData.Content) == "" {
			errors["content"] = "Content must not be empty!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCommentPartial", reqData)
		return c.Next()
	}
}

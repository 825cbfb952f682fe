package boughtCourseValidator

import (
	"courseshop/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateBoughtCourse validates a ledger create or full update payload
func CreateBoughtCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID   *uint `json:"user_id"`
			CourseID *uint `json:"course_id"`
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

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBoughtCourse", reqData)
		return c.Next()
	}
}

// UpdateBoughtCoursePartial validates a partial ledger update
func UpdateBoughtCoursePartial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID   *uint `json:"user_id"`
			CourseID *uint `json:"course_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID != nil && *reqData.UserID == 0 {
			errors["user_id"] = "User must not be zero!"
		}
		if reqData.CourseID != nil && *reqData.CourseID == 0 {
			errors["course_id"] = "Course must not be zero!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBoughtCoursePartial", reqData)
		return c.Next()
	}
}

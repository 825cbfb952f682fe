package courseValidator

import (
	"courseshop/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse validates a course create or full update payload.
// Every field must be present.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title         *string  `json:"title"`
			Format        *string  `json:"format"`
			Description   *string  `json:"description"`
			Price         *float64 `json:"price"`
			DurationHours *int64   `json:"duration_hours"`
			Rating        *float64 `json:"rating"`
			CategoryID    *uint    `json:"category_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title == nil || strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Format == nil {
			errors["format"] = "Format is required!"
		}
		if reqData.Description == nil {
			errors["description"] = "Description is required!"
		}
		if reqData.Price == nil || *reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}
		if reqData.DurationHours == nil || *reqData.DurationHours < 0 {
			errors["duration_hours"] = "Duration must not be negative!"
		}
		if reqData.Rating == nil {
			errors["rating"] = "Rating is required!"
		}
		if reqData.CategoryID == nil || *reqData.CategoryID == 0 {
			errors["category_id"] = "Category is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCoursePartial validates a partial course update.
// Only fields present in the payload are checked.
func UpdateCoursePartial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title         *string  `json:"title"`
			Format        *string  `json:"format"`
			Description   *string  `json:"description"`
			Price         *float64 `json:"price"`
			DurationHours *int64   `json:"duration_hours"`
			Rating        *float64 `json:"rating"`
			CategoryID    *uint    `json:"category_id"`
			ImageURL      *string  `json:"image_url"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Title must not be empty!"
		}
		if reqData.Price != nil && *reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}
		if reqData.DurationHours != nil && *reqData.DurationHours < 0 {
			errors["duration_hours"] = "Duration must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCoursePartial", reqData)
		return c.Next()
	}
}

// CourseList validates search, filter and pagination query params
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Search     *string  `query:"search"`
			CategoryID *uint    `query:"category_id"`
			PriceMin   *float64 `query:"price_min"`
			PriceMax   *float64 `query:"price_max"`
			Skip       *int     `query:"skip"`
			Limit      *int     `query:"limit"`
		})
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Skip != nil && *reqData.Skip < 0 {
			errors["skip"] = "Skip must not be negative!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}
		if reqData.PriceMin != nil && *reqData.PriceMin < 0 {
			errors["price_min"] = "Price must not be negative!"
		}
		if reqData.PriceMax != nil && *reqData.PriceMax < 0 {
			errors["price_max"] = "Price must not be negative!"
		}
		if reqData.PriceMin != nil && reqData.PriceMax != nil && *reqData.PriceMin > *reqData.PriceMax {
			errors["price_min"] = "Price range is inverted!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseList", reqData)
		return c.Next()
	}
}

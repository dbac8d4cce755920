package courseValidator

import (
	"coursehub/middleware"
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// parseID validates a numeric path parameter and returns it, or writes a 400
// response and returns 0.
func parseID(c *fiber.Ctx, param, label string) (int, error) {
	idStr := strings.TrimSpace(c.Params(param))
	if idStr == "" {
		return 0, middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" is required!", nil)
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+"!", nil)
	}
	return id, nil
}

// ============ Course Validators ============

// CreateCourseAdmin validates admin course creation request
func CreateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title           string  `json:"title"`
			Description     string  `json:"description"`
			Summary         string  `json:"summary"`
			Category        string  `json:"category"`
			Instructor      string  `json:"instructor"`
			Price           float64 `json:"price"`
			Currency        string  `json:"currency"`
			DurationHours   int64   `json:"duration_hours"`
			ThumbnailURL    string  `json:"thumbnail_url"`
			TrailerVideoURL string  `json:"trailer_video_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)
		reqData.Instructor = strings.TrimSpace(reqData.Instructor)
		reqData.Currency = strings.ToUpper(strings.TrimSpace(reqData.Currency))

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		} else if len(reqData.Description) < 5 {
			errors["description"] = "Description must be at least 5 characters long!"
		}

		if reqData.Instructor == "" {
			errors["instructor"] = "Instructor is required!"
		} else if matched, _ := regexp.MatchString(`[<>{}]`, reqData.Instructor); matched {
			errors["instructor"] = "Instructor name contains invalid characters!"
		}

		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if reqData.DurationHours < 0 {
			errors["duration_hours"] = "Duration must be a positive number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourseAdmin validates admin course update request
func UpdateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := parseID(c, "id", "Course ID")
		if err != nil {
			return err
		}

		reqData := new(struct {
			Title           string  `json:"title"`
			Description     string  `json:"description"`
			Summary         string  `json:"summary"`
			Category        string  `json:"category"`
			Instructor      string  `json:"instructor"`
			Price           float64 `json:"price"`
			Currency        string  `json:"currency"`
			DurationHours   int64   `json:"duration_hours"`
			ThumbnailURL    string  `json:"thumbnail_url"`
			TrailerVideoURL string  `json:"trailer_video_url"`
			Status          string  `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)
		reqData.Status = strings.ToUpper(strings.TrimSpace(reqData.Status))

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.Description != "" && len(reqData.Description) < 5 {
			errors["description"] = "Description must be at least 5 characters long!"
		}

		if reqData.Status != "" {
			validStatuses := map[string]bool{"DRAFT": true, "ACTIVE": true, "INACTIVE": true}
			if !validStatuses[reqData.Status] {
				errors["status"] = "Status must be DRAFT, ACTIVE, or INACTIVE!"
			}
		}

		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CourseID validates requests keyed only by a course id path parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := parseID(c, "id", "Course ID")
		if err != nil {
			return err
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// PublishCourse validates course publish/unpublish request
func PublishCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := parseID(c, "id", "Course ID")
		if err != nil {
			return err
		}

		reqData := new(struct {
			IsPublished bool `json:"is_published"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("publishStatus", reqData.IsPublished)
		return c.Next()
	}
}

// CourseList validates public catalog listing with pagination and filters
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page     *int   `query:"page"`
			Limit    *int   `query:"limit"`
			Category string `query:"category"`
			Search   string `query:"search"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		c.Locals("validatedCourseList", reqData)
		return c.Next()
	}
}

// AdminList validates admin list request with pagination
func AdminList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		c.Locals("validatedAdminList", reqData)
		return c.Next()
	}
}

package courseValidator

import (
	"coursehub/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateAssignment validates assignment creation for a sub-lesson
func CreateAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID, err := parseID(c, "id", "Sub-lesson ID")
		if err != nil {
			return err
		}

		reqData := new(struct {
			Question string `json:"question"`
			Answer   string `json:"answer"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		reqData.Question = strings.TrimSpace(reqData.Question)
		reqData.Answer = strings.TrimSpace(reqData.Answer)

		if reqData.Question == "" {
			errors["question"] = "Question is required!"
		}
		if reqData.Answer == "" {
			errors["answer"] = "Answer is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("lessonID", lessonID)
		c.Locals("validatedAssignment", reqData)
		return c.Next()
	}
}

// UpdateAssignment validates assignment update
func UpdateAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		assignmentID, err := parseID(c, "id", "Assignment ID")
		if err != nil {
			return err
		}

		reqData := new(struct {
			Question string `json:"question"`
			Answer   string `json:"answer"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("assignmentID", assignmentID)
		c.Locals("validatedAssignmentUpdate", reqData)
		return c.Next()
	}
}

// AssignmentID validates requests keyed only by an assignment id
func AssignmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		assignmentID, err := parseID(c, "id", "Assignment ID")
		if err != nil {
			return err
		}

		c.Locals("assignmentID", assignmentID)
		return c.Next()
	}
}

// SubLessonID validates requests keyed only by a sub-lesson id
func SubLessonID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID, err := parseID(c, "id", "Sub-lesson ID")
		if err != nil {
			return err
		}

		c.Locals("lessonID", lessonID)
		return c.Next()
	}
}

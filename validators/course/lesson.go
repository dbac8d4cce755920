package courseValidator

import (
	"coursehub/middleware"
	courseModels "coursehub/models/course"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// validateSubLessons checks the submitted sub-lesson entries. Submitted order
// values are ignored; position in the array is authoritative.
func validateSubLessons(subLessons []courseModels.SubLessonInput, errors map[string]string) {
	for i := range subLessons {
		subLessons[i].Title = strings.TrimSpace(subLessons[i].Title)
		subLessons[i].VideoURL = strings.TrimSpace(subLessons[i].VideoURL)
		if subLessons[i].Title == "" {
			errors["subLessons"] = "Every sub-lesson needs a title!"
			return
		}
	}
}

// CreateLesson validates the create-module-with-children request
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseModels.LessonCreateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.LessonTitle = strings.TrimSpace(reqData.LessonTitle)

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required!"
		}

		if reqData.LessonTitle == "" {
			errors["lessonTitle"] = "Lesson title is required!"
		} else if len(reqData.LessonTitle) < 3 {
			errors["lessonTitle"] = "Lesson title must be at least 3 characters long!"
		}

		validateSubLessons(reqData.SubLessons, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// UpdateLesson validates the full-replace request. The path id may be either
// a module id or a sub-lesson id; the handler resolves it.
func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, err := parseID(c, "id", "Lesson ID")
		if err != nil {
			return err
		}

		reqData := new(courseModels.LessonUpdateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.LessonTitle = strings.TrimSpace(reqData.LessonTitle)

		if reqData.LessonTitle == "" {
			errors["lessonTitle"] = "Lesson title is required!"
		} else if len(reqData.LessonTitle) < 3 {
			errors["lessonTitle"] = "Lesson title must be at least 3 characters long!"
		}

		validateSubLessons(reqData.SubLessons, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("moduleID", moduleID)
		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}

// LessonID validates requests keyed only by a lesson (module) id
func LessonID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, err := parseID(c, "id", "Lesson ID")
		if err != nil {
			return err
		}

		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}

// ReorderLessons validates the bulk module reorder request
func ReorderLessons() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseModels.LessonReorderRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required!"
		}

		if len(reqData.LessonOrders) == 0 {
			errors["lessonOrders"] = "At least one order entry is required!"
		}
		for _, entry := range reqData.LessonOrders {
			if entry.ID == 0 || entry.OrderIndex <= 0 {
				errors["lessonOrders"] = "Every entry needs a valid id and order_index!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReorder", reqData)
		return c.Next()
	}
}

// ReorderSubLessons validates the bulk sub-lesson reorder request
func ReorderSubLessons() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseModels.SubLessonReorderRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ModuleID == 0 {
			errors["moduleId"] = "Module ID is required!"
		}

		if len(reqData.SubLessonOrders) == 0 {
			errors["subLessonOrders"] = "At least one order entry is required!"
		}
		for _, entry := range reqData.SubLessonOrders {
			if entry.ID == 0 || entry.OrderIndex <= 0 {
				errors["subLessonOrders"] = "Every entry needs a valid id and order_index!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubReorder", reqData)
		return c.Next()
	}
}

package controllers

import (
	"coursehub/database"
	"coursehub/middleware"
	courseModels "coursehub/models/course"
	"log"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateAssignment attaches an assignment to a sub-lesson
func AdminCreateAssignment(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sub-lesson not found!", nil)
	}

	reqData, ok := c.Locals("validatedAssignment").(*struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	assignment := courseModels.Assignment{
		LessonID: lesson.ID,
		Question: reqData.Question,
		Answer:   reqData.Answer,
	}

	if err := database.Database.Db.Create(&assignment).Error; err != nil {
		log.Printf("Error creating assignment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment created successfully!", assignment)
}

// AdminListAssignments lists all assignments of a sub-lesson
func AdminListAssignments(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sub-lesson not found!", nil)
	}

	var assignments []courseModels.Assignment
	if err := database.Database.Db.Where("lesson_id = ? AND is_deleted = ?", lessonID, false).
		Order("created_at asc").Find(&assignments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignments fetched successfully!", fiber.Map{
		"assignments": assignments,
	})
}

// AdminUpdateAssignment updates an assignment's question/answer
func AdminUpdateAssignment(c *fiber.Ctx) error {
	assignmentID := c.Locals("assignmentID").(int)

	var assignment courseModels.Assignment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", assignmentID, false).First(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	reqData, ok := c.Locals("validatedAssignmentUpdate").(*struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Question != "" {
		assignment.Question = reqData.Question
	}
	if reqData.Answer != "" {
		assignment.Answer = reqData.Answer
	}

	if err := database.Database.Db.Save(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment updated successfully!", assignment)
}

// AdminDeleteAssignment soft deletes an assignment
func AdminDeleteAssignment(c *fiber.Ctx) error {
	assignmentID := c.Locals("assignmentID").(int)

	var assignment courseModels.Assignment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", assignmentID, false).First(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	assignment.IsDeleted = true
	if err := database.Database.Db.Save(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment deleted successfully!", nil)
}

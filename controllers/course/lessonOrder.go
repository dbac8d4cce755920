package controllers

import (
	"coursehub/database"
	"coursehub/middleware"
	courseModels "coursehub/models/course"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminReorderLessons applies bulk position updates for modules within a
// course. Every update is scoped by course_id, so an id belonging to a
// different course updates nothing instead of failing the request.
func AdminReorderLessons(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReorder").(*courseModels.LessonReorderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	tx := db.Begin()

	var applied int64
	for _, entry := range reqData.LessonOrders {
		res := tx.Model(&courseModels.Module{}).
			Where("id = ? AND course_id = ? AND is_deleted = ?", entry.ID, reqData.CourseID, false).
			Update("order_index", entry.OrderIndex)
		if res.Error != nil {
			tx.Rollback()
			log.Printf("Error reordering module %d: %v", entry.ID, res.Error)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reorder lessons!", nil)
		}
		applied += res.RowsAffected
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons reordered successfully!", fiber.Map{
		"applied": applied,
	})
}

// AdminReorderSubLessons applies bulk position updates for sub-lessons
// within a module, scoped the same way by module_id
func AdminReorderSubLessons(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubReorder").(*courseModels.SubLessonReorderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	module, err := resolveModule(db, int(reqData.ModuleID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
		}
		log.Printf("Error resolving module %d: %v", reqData.ModuleID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reorder sub-lessons!", nil)
	}

	tx := db.Begin()

	var applied int64
	for _, entry := range reqData.SubLessonOrders {
		res := tx.Model(&courseModels.Lesson{}).
			Where("id = ? AND module_id = ? AND is_deleted = ?", entry.ID, module.ID, false).
			Update("order_index", entry.OrderIndex)
		if res.Error != nil {
			tx.Rollback()
			log.Printf("Error reordering sub-lesson %d: %v", entry.ID, res.Error)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reorder sub-lessons!", nil)
		}
		applied += res.RowsAffected
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sub-lessons reordered successfully!", fiber.Map{
		"applied": applied,
	})
}

package controllers

import (
	"coursehub/database"
	"coursehub/middleware"
	courseModels "coursehub/models/course"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// resolveModule looks up a module by id. Different editor screens pass
// different kinds of ids for the same parameter: some hold the module id,
// some only know a sub-lesson id. When the id does not match a module row,
// it is retried as a sub-lesson id and the owning module is returned.
func resolveModule(db *gorm.DB, id int) (*courseModels.Module, error) {
	var module courseModels.Module
	err := db.Where("id = ? AND is_deleted = ?", id, false).First(&module).Error
	if err == nil {
		return &module, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&lesson).Error; err != nil {
		return nil, err
	}

	if err := db.Where("id = ? AND is_deleted = ?", lesson.ModuleID, false).First(&module).Error; err != nil {
		return nil, err
	}
	return &module, nil
}

// replaceSubLessons soft-deletes every sub-lesson of a module (and the
// assignments hanging off them) and inserts the submitted list with 1-based
// order indexes. Runs inside the caller's transaction.
func replaceSubLessons(tx *gorm.DB, moduleID uint, subLessons []courseModels.SubLessonInput) ([]courseModels.Lesson, error) {
	var oldIDs []uint
	if err := tx.Model(&courseModels.Lesson{}).
		Where("module_id = ? AND is_deleted = ?", moduleID, false).
		Pluck("id", &oldIDs).Error; err != nil {
		return nil, err
	}

	if len(oldIDs) > 0 {
		if err := tx.Model(&courseModels.Assignment{}).
			Where("lesson_id IN ? AND is_deleted = ?", oldIDs, false).
			Update("is_deleted", true).Error; err != nil {
			return nil, err
		}
		if err := tx.Model(&courseModels.Lesson{}).
			Where("id IN ?", oldIDs).
			Update("is_deleted", true).Error; err != nil {
			return nil, err
		}
	}

	return insertSubLessons(tx, moduleID, subLessons)
}

// insertSubLessons creates the submitted sub-lessons with order_index taken
// from array position, 1-based
func insertSubLessons(tx *gorm.DB, moduleID uint, subLessons []courseModels.SubLessonInput) ([]courseModels.Lesson, error) {
	lessons := make([]courseModels.Lesson, 0, len(subLessons))
	for i, sub := range subLessons {
		lesson := courseModels.Lesson{
			ModuleID:     moduleID,
			Title:        sub.Title,
			OrderIndex:   i + 1,
			VideoURL:     sub.VideoURL,
			VideoAssetID: sub.VideoAssetID,
		}
		if err := tx.Create(&lesson).Error; err != nil {
			return nil, err
		}
		lessons = append(lessons, lesson)
	}
	return lessons, nil
}

// AdminCreateLesson creates one module and its sub-lessons in a single call
func AdminCreateLesson(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLesson").(*courseModels.LessonCreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if course exists
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Append after the last sibling
	var maxOrder int
	db.Model(&courseModels.Module{}).
		Where("course_id = ? AND is_deleted = ?", reqData.CourseID, false).
		Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)

	module := courseModels.Module{
		CourseID:   reqData.CourseID,
		Title:      reqData.LessonTitle,
		OrderIndex: maxOrder + 1,
	}

	tx := db.Begin()

	if err := tx.Create(&module).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating module: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	lessons, err := insertSubLessons(tx, module.ID, reqData.SubLessons)
	if err != nil {
		tx.Rollback()
		log.Printf("Error creating sub-lessons: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create sub-lessons!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", fiber.Map{
		"moduleId":    module.ID,
		"lesson":      module,
		"sub_lessons": lessons,
	})
}

// AdminGetLesson returns a module with its sub-lessons in order
func AdminGetLesson(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	db := database.Database.Db

	module, err := resolveModule(db, moduleID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
		}
		log.Printf("Error resolving module %d: %v", moduleID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lesson!", nil)
	}

	var lessons []courseModels.Lesson
	if err := db.Where("module_id = ? AND is_deleted = ?", module.ID, false).
		Order("order_index asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sub-lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", fiber.Map{
		"lesson":      module,
		"sub_lessons": lessons,
	})
}

// AdminUpdateLesson updates a module's title and replaces its full
// sub-lesson set. Sub-lessons missing from the submitted list are gone for
// good; the new rows get new ids.
func AdminUpdateLesson(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	reqData, ok := c.Locals("validatedLessonUpdate").(*courseModels.LessonUpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	module, err := resolveModule(db, moduleID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
		}
		log.Printf("Error resolving module %d: %v", moduleID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	// Cross-course guard
	if reqData.CourseID != 0 && reqData.CourseID != module.CourseID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson does not belong to the given course!", nil)
	}

	tx := db.Begin()

	module.Title = reqData.LessonTitle
	if err := tx.Save(module).Error; err != nil {
		tx.Rollback()
		log.Printf("Error updating module %d: %v", module.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	lessons, err := replaceSubLessons(tx, module.ID, reqData.SubLessons)
	if err != nil {
		tx.Rollback()
		log.Printf("Error replacing sub-lessons of module %d: %v", module.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update sub-lessons!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", fiber.Map{
		"lesson":      module,
		"sub_lessons": lessons,
	})
}

// AdminDeleteLesson deletes a module with all its sub-lessons
func AdminDeleteLesson(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	db := database.Database.Db

	module, err := resolveModule(db, moduleID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
		}
		log.Printf("Error resolving module %d: %v", moduleID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	tx := db.Begin()

	var lessonIDs []uint
	if err := tx.Model(&courseModels.Lesson{}).
		Where("module_id = ? AND is_deleted = ?", module.ID, false).
		Pluck("id", &lessonIDs).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	if len(lessonIDs) > 0 {
		if err := tx.Model(&courseModels.Assignment{}).
			Where("lesson_id IN ? AND is_deleted = ?", lessonIDs, false).
			Update("is_deleted", true).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete assignments!", nil)
		}
		if err := tx.Model(&courseModels.Lesson{}).
			Where("id IN ?", lessonIDs).
			Update("is_deleted", true).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete sub-lessons!", nil)
		}
	}

	module.IsDeleted = true
	if err := tx.Save(module).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}

package controllers

import (
	"coursehub/database"
	"coursehub/middleware"
	courseModels "coursehub/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists published courses for the catalog, with optional
// category filter and title search
func GetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseList").(*struct {
		Page     *int   `query:"page"`
		Limit    *int   `query:"limit"`
		Category string `query:"category"`
		Search   string `query:"search"`
	})

	page := 1
	limit := 10
	category := ""
	search := ""
	if ok {
		if reqData.Page != nil && *reqData.Page > 0 {
			page = *reqData.Page
		}
		if reqData.Limit != nil && *reqData.Limit > 0 {
			limit = *reqData.Limit
		}
		category = reqData.Category
		search = reqData.Search
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Course{}).
		Where("is_deleted = ? AND is_published = ? AND status = ?", false, true, "ACTIVE")

	if category != "" {
		db = db.Where("category = ?", category)
	}
	if search != "" {
		db = db.Where("title LIKE ?", "%"+search+"%")
	}

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetCourseDetails returns a published course with its lesson outline.
// Playback URLs are withheld unless the caller holds an active enrollment.
func GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []courseModels.Module
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&modules)

	// Check if user is enrolled
	var enrollment courseModels.Enrollment
	isEnrolled := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND is_deleted = ? AND status <> ?", userID, courseID, false, courseModels.EnrollmentPending).
		First(&enrollment).Error == nil

	type moduleWithLessons struct {
		courseModels.Module
		SubLessons []courseModels.Lesson `json:"sub_lessons"`
	}

	outline := make([]moduleWithLessons, len(modules))
	for i, mod := range modules {
		var lessons []courseModels.Lesson
		database.Database.Db.Where("module_id = ? AND is_deleted = ?", mod.ID, false).Order("order_index asc").Find(&lessons)

		if !isEnrolled {
			for j := range lessons {
				lessons[j].VideoURL = ""
			}
		}

		outline[i] = moduleWithLessons{Module: mod, SubLessons: lessons}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":      course,
		"lessons":     outline,
		"is_enrolled": isEnrolled,
	})
}

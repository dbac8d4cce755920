package controllers

import (
	"coursehub/database"
	"coursehub/middleware"
	courseModels "coursehub/models/course"
	"log"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateCourse creates a new course
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*struct {
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
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	currency := reqData.Currency
	if currency == "" {
		currency = "INR"
	}

	course := courseModels.Course{
		Title:           reqData.Title,
		Description:     reqData.Description,
		Summary:         reqData.Summary,
		Category:        reqData.Category,
		Instructor:      reqData.Instructor,
		Price:           reqData.Price,
		Currency:        currency,
		DurationHours:   reqData.DurationHours,
		ThumbnailURL:    reqData.ThumbnailURL,
		TrailerVideoURL: reqData.TrailerVideoURL,
		Status:          "DRAFT",
		IsPublished:     false,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse updates an existing course
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
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
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Summary != "" {
		course.Summary = reqData.Summary
	}
	if reqData.Category != "" {
		course.Category = reqData.Category
	}
	if reqData.Instructor != "" {
		course.Instructor = reqData.Instructor
	}
	if reqData.Price > 0 {
		course.Price = reqData.Price
	}
	if reqData.Currency != "" {
		course.Currency = reqData.Currency
	}
	if reqData.DurationHours > 0 {
		course.DurationHours = reqData.DurationHours
	}
	if reqData.ThumbnailURL != "" {
		course.ThumbnailURL = reqData.ThumbnailURL
	}
	if reqData.TrailerVideoURL != "" {
		course.TrailerVideoURL = reqData.TrailerVideoURL
	}
	if reqData.Status != "" {
		course.Status = reqData.Status
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		log.Printf("Error updating course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse soft deletes a course
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.IsDeleted = true
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminGetAllCourses lists all courses for admin
func AdminGetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAdminList").(*struct {
		Page  *int `query:"page"`
		Limit *int `query:"limit"`
	})

	page := 1
	limit := 10
	if ok && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	var courses []courseModels.Course
	var total int64

	db := database.Database.Db.Model(&courseModels.Course{}).Where("is_deleted = ?", false)
	db.Count(&total)

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

// AdminGetCourseDetails gets a single course with its module outline
func AdminGetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []courseModels.Module
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&modules)

	var enrollmentCount int64
	database.Database.Db.Model(&courseModels.Enrollment{}).Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&enrollmentCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":           course,
		"lessons":          modules,
		"enrollment_count": enrollmentCount,
	})
}

// AdminPublishCourse publishes or unpublishes a course
func AdminPublishCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	publishStatus := c.Locals("publishStatus").(bool)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.IsPublished = publishStatus
	if publishStatus {
		course.Status = "ACTIVE"
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	message := "Course unpublished successfully!"
	if publishStatus {
		message = "Course published successfully!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, course)
}

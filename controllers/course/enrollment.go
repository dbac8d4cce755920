package controllers

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	courseModels "coursehub/models/course"
	"coursehub/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse enrolls the user directly into a free course. Paid courses
// go through the payment checkout instead.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND status = ?", courseID, false, "ACTIVE").First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not active!", nil)
	}

	if course.Price > 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This is a paid course. Please use checkout!", nil)
	}

	// Check if user is already enrolled
	var existingEnrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	enrollment := courseModels.Enrollment{
		UserID:   userID,
		CourseID: uint(courseID),
		Status:   courseModels.EnrollmentActive,
	}

	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	go func() {
		if err := utils.SendEnrollmentEmail(user.Email, user.Name, course.Title); err != nil {
			log.Printf("Error sending enrollment email to %s: %v", user.Email, err)
		}
	}()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrollments lists the user's enrollments with pagination
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Where("status <> ?", courseModels.EnrollmentPending)

	var total int64
	db.Count(&total)

	var enrollments []courseModels.Enrollment
	if err := db.Preload("Course").Offset(offset).Limit(limit).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AddToWishlist saves a course on the user's wishlist
func AddToWishlist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var existing courseModels.WishlistItem
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course already in wishlist!", nil)
	}

	item := courseModels.WishlistItem{
		UserID:   userID,
		CourseID: uint(courseID),
	}

	if err := database.Database.Db.Create(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add to wishlist!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course added to wishlist!", item)
}

// RemoveFromWishlist removes a course from the user's wishlist
func RemoveFromWishlist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var item courseModels.WishlistItem
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not in wishlist!", nil)
	}

	item.IsDeleted = true
	if err := database.Database.Db.Save(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove from wishlist!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course removed from wishlist!", nil)
}

// GetWishlist lists the user's wishlist
func GetWishlist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var items []courseModels.WishlistItem
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("Course").Order("created_at desc").Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch wishlist!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wishlist fetched successfully!", fiber.Map{
		"wishlist": items,
	})
}

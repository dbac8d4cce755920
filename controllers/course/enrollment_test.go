package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"coursehub/config"
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	courseModels "coursehub/models/course"
	"coursehub/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupCourseApp prepares the user-facing course routes with a regular user
func setupCourseApp(t *testing.T) (*fiber.App, *gorm.DB, string) {
	t.Helper()

	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	user := models.User{
		Name:     "Student",
		Email:    "student@coursehub.in",
		Role:     "USER",
		Password: "not-a-real-hash",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)

	return app, db, token
}

func seedPaidCourse(t *testing.T, db *gorm.DB, title string, price float64) courseModels.Course {
	t.Helper()

	course := courseModels.Course{Title: title, Price: price, Status: "ACTIVE", IsPublished: true}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("Failed to seed course: %v", err)
	}
	return course
}

func TestEnrollInFreeCourse(t *testing.T) {
	app, db, token := setupCourseApp(t)
	course := seedPaidCourse(t, db, "Free Intro", 0)

	status, resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d (%v)", status, resp["message"])
	}

	var enrollment courseModels.Enrollment
	if err := db.Where("course_id = ?", course.ID).First(&enrollment).Error; err != nil {
		t.Fatalf("Expected enrollment row: %v", err)
	}
	if enrollment.Status != courseModels.EnrollmentActive {
		t.Errorf("Expected ACTIVE enrollment, got %q", enrollment.Status)
	}

	// Enrolling twice is rejected
	status, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	if status != http.StatusConflict {
		t.Fatalf("Expected 409 for duplicate enrollment, got %d", status)
	}
}

func TestEnrollInPaidCourseRejected(t *testing.T) {
	app, db, token := setupCourseApp(t)
	course := seedPaidCourse(t, db, "Paid Course", 499)

	status, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("Expected 400 for paid course enroll, got %d", status)
	}
}

func TestEnrollInUnpublishedCourse(t *testing.T) {
	app, db, token := setupCourseApp(t)

	course := courseModels.Course{Title: "Draft Course", Status: "DRAFT"}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("Failed to seed course: %v", err)
	}

	status, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	if status != http.StatusNotFound {
		t.Fatalf("Expected 404 for draft course, got %d", status)
	}
}

func TestCatalogListsOnlyPublishedCourses(t *testing.T) {
	app, db, token := setupCourseApp(t)
	seedPaidCourse(t, db, "Visible Course", 0)

	draft := courseModels.Course{Title: "Hidden Draft", Status: "DRAFT"}
	if err := db.Create(&draft).Error; err != nil {
		t.Fatalf("Failed to seed draft: %v", err)
	}

	status, resp := doJSON(t, app, http.MethodGet, "/course/list", token, nil)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}

	courses := resp["data"].(map[string]interface{})["courses"].([]interface{})
	if len(courses) != 1 {
		t.Fatalf("Expected 1 catalog course, got %d", len(courses))
	}
	title := courses[0].(map[string]interface{})["title"]
	if title != "Visible Course" {
		t.Errorf("Expected only the published course, got %v", title)
	}
}

func TestCourseDetailsWithholdsVideosUntilEnrolled(t *testing.T) {
	app, db, token := setupCourseApp(t)
	course := seedPaidCourse(t, db, "Video Course", 0)
	module := seedModule(t, db, course.ID, "Module 1", 1)

	lesson := courseModels.Lesson{
		ModuleID:   module.ID,
		Title:      "Secret Video",
		OrderIndex: 1,
		VideoURL:   "https://cdn.example.com/play/abc",
	}
	if err := db.Create(&lesson).Error; err != nil {
		t.Fatalf("Failed to seed lesson: %v", err)
	}

	path := fmt.Sprintf("/course/%d", course.ID)

	readVideoURL := func(resp map[string]interface{}) string {
		lessons := resp["data"].(map[string]interface{})["lessons"].([]interface{})
		subLessons := lessons[0].(map[string]interface{})["sub_lessons"].([]interface{})
		return subLessons[0].(map[string]interface{})["video_url"].(string)
	}

	status, resp := doJSON(t, app, http.MethodGet, path, token, nil)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if url := readVideoURL(resp); url != "" {
		t.Errorf("Expected playback URL withheld before enrollment, got %q", url)
	}

	if status, _ := doJSON(t, app, http.MethodPost, path+"/enroll", token, nil); status != http.StatusOK {
		t.Fatalf("Enrollment failed with %d", status)
	}

	status, resp = doJSON(t, app, http.MethodGet, path, token, nil)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if url := readVideoURL(resp); url == "" {
		t.Error("Expected playback URL visible after enrollment")
	}
}

func TestWishlistAddAndRemove(t *testing.T) {
	app, db, token := setupCourseApp(t)
	course := seedPaidCourse(t, db, "Wishlist Course", 999)

	path := fmt.Sprintf("/course/%d/wishlist", course.ID)

	status, _ := doJSON(t, app, http.MethodPost, path, token, nil)
	if status != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", status)
	}

	// Adding the same course twice is rejected
	status, _ = doJSON(t, app, http.MethodPost, path, token, nil)
	if status != http.StatusConflict {
		t.Fatalf("Expected 409 for duplicate wishlist add, got %d", status)
	}

	status, resp := doJSON(t, app, http.MethodGet, "/user/wishlist", token, nil)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	items := resp["data"].(map[string]interface{})["wishlist"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("Expected 1 wishlist item, got %d", len(items))
	}

	status, _ = doJSON(t, app, http.MethodDelete, path, token, nil)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}

	status, resp = doJSON(t, app, http.MethodGet, "/user/wishlist", token, nil)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	items = resp["data"].(map[string]interface{})["wishlist"].([]interface{})
	if len(items) != 0 {
		t.Fatalf("Expected empty wishlist after removal, got %d items", len(items))
	}
}

func TestEnrollmentsExcludePendingCheckouts(t *testing.T) {
	app, db, token := setupCourseApp(t)
	freeCourse := seedPaidCourse(t, db, "Free Course", 0)
	paidCourse := seedPaidCourse(t, db, "Paid Course", 499)

	if status, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", freeCourse.ID), token, nil); status != http.StatusOK {
		t.Fatalf("Enrollment failed with %d", status)
	}

	// A checkout that was never paid stays PENDING and hidden
	var user models.User
	if err := db.Where("email = ?", "student@coursehub.in").First(&user).Error; err != nil {
		t.Fatalf("Failed to load user: %v", err)
	}
	pending := courseModels.Enrollment{UserID: user.ID, CourseID: paidCourse.ID, Status: courseModels.EnrollmentPending}
	if err := db.Create(&pending).Error; err != nil {
		t.Fatalf("Failed to seed pending enrollment: %v", err)
	}

	status, resp := doJSON(t, app, http.MethodGet, "/user/enrollments", token, nil)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}

	enrollments := resp["data"].(map[string]interface{})["enrollments"].([]interface{})
	if len(enrollments) != 1 {
		t.Fatalf("Expected only the active enrollment, got %d", len(enrollments))
	}
	courseID := enrollments[0].(map[string]interface{})["course_id"].(float64)
	if uint(courseID) != freeCourse.ID {
		t.Errorf("Expected enrollment in course %d, got %v", freeCourse.ID, courseID)
	}
}

package paymentController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursehub/config"
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	courseModels "coursehub/models/course"
	"coursehub/routers/paymentRoutes"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPaymentApp(t *testing.T) (*fiber.App, *gorm.DB, models.User, string) {
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

	user := models.User{Name: "Buyer", Email: "buyer@coursehub.in", Role: "USER", Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	app := fiber.New()
	paymentRoutes.SetupPaymentRoutes(app)

	return app, db, user, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Request %s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	var parsed map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("Failed to decode response of %s %s: %v", method, path, err)
	}
	return resp.StatusCode, parsed
}

func TestCheckoutRejectsFreeCourse(t *testing.T) {
	app, db, _, token := setupPaymentApp(t)

	course := courseModels.Course{Title: "Free Course", Price: 0, Status: "ACTIVE", IsPublished: true}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("Failed to seed course: %v", err)
	}

	status, _ := doJSON(t, app, http.MethodPost, "/payments/checkout", token, fiber.Map{
		"courseId": course.ID,
	})
	if status != http.StatusBadRequest {
		t.Fatalf("Expected 400 for free course checkout, got %d", status)
	}
}

func TestCheckoutMissingCourse(t *testing.T) {
	app, _, _, token := setupPaymentApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/payments/checkout", token, fiber.Map{
		"courseId": 9999,
	})
	if status != http.StatusNotFound {
		t.Fatalf("Expected 404 for missing course, got %d", status)
	}
}

func TestCheckoutAlreadyEnrolled(t *testing.T) {
	app, db, user, token := setupPaymentApp(t)

	course := courseModels.Course{Title: "Paid Course", Price: 499, Status: "ACTIVE", IsPublished: true}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("Failed to seed course: %v", err)
	}
	enrollment := courseModels.Enrollment{UserID: user.ID, CourseID: course.ID, Status: courseModels.EnrollmentActive}
	if err := db.Create(&enrollment).Error; err != nil {
		t.Fatalf("Failed to seed enrollment: %v", err)
	}

	status, _ := doJSON(t, app, http.MethodPost, "/payments/checkout", token, fiber.Map{
		"courseId": course.ID,
	})
	if status != http.StatusConflict {
		t.Fatalf("Expected 409 for already enrolled user, got %d", status)
	}
}

func TestCheckoutValidation(t *testing.T) {
	app, _, _, token := setupPaymentApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/payments/checkout", token, fiber.Map{})
	if status != http.StatusBadRequest {
		t.Fatalf("Expected 400 without courseId, got %d", status)
	}

	status, _ = doJSON(t, app, http.MethodPost, "/payments/checkout", token, fiber.Map{
		"courseId":      1,
		"paymentMethod": "BARTER",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("Expected 400 for unknown payment method, got %d", status)
	}
}

func TestConfirmGuards(t *testing.T) {
	app, db, user, token := setupPaymentApp(t)

	course := courseModels.Course{Title: "Paid Course", Price: 499, Status: "ACTIVE", IsPublished: true}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("Failed to seed course: %v", err)
	}

	status, _ := doJSON(t, app, http.MethodPost, "/payments/9999/confirm", token, fiber.Map{
		"gatewayPaymentId": "pay_missing",
	})
	if status != http.StatusNotFound {
		t.Fatalf("Expected 404 for unknown payment, got %d", status)
	}

	// Already settled payments are not confirmed twice
	paid := models.Payment{
		UserID: user.ID, CourseID: course.ID, Amount: 499, Currency: "INR",
		Status: models.PaymentStatusPaid, ReceiptNo: "rcpt-paid", GatewayPaymentID: "pay_done",
	}
	if err := db.Create(&paid).Error; err != nil {
		t.Fatalf("Failed to seed paid payment: %v", err)
	}
	status, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/payments/%d/confirm", paid.ID), token, fiber.Map{
		"gatewayPaymentId": "pay_done",
	})
	if status != http.StatusConflict {
		t.Fatalf("Expected 409 for already paid payment, got %d", status)
	}

	// A capture id already consumed by another payment is rejected
	pending := models.Payment{
		UserID: user.ID, CourseID: course.ID, Amount: 499, Currency: "INR",
		Status: models.PaymentStatusPending, ReceiptNo: "rcpt-pending", GatewayOrderID: "order_x",
	}
	if err := db.Create(&pending).Error; err != nil {
		t.Fatalf("Failed to seed pending payment: %v", err)
	}
	status, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/payments/%d/confirm", pending.ID), token, fiber.Map{
		"gatewayPaymentId": "pay_done",
	})
	if status != http.StatusConflict {
		t.Fatalf("Expected 409 for replayed capture id, got %d", status)
	}
}

func TestGatewayPaymentIDUniquePerCapture(t *testing.T) {
	_, db, user, _ := setupPaymentApp(t)

	first := models.Payment{
		UserID: user.ID, CourseID: 1, Amount: 100, Currency: "INR",
		Status: models.PaymentStatusPaid, ReceiptNo: "r-cap-1", GatewayPaymentID: "pay_dup",
	}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("Failed to create payment: %v", err)
	}

	// The store rejects a second row claiming the same capture id
	second := models.Payment{
		UserID: user.ID, CourseID: 2, Amount: 200, Currency: "INR",
		Status: models.PaymentStatusPaid, ReceiptNo: "r-cap-2", GatewayPaymentID: "pay_dup",
	}
	if err := db.Create(&second).Error; err == nil {
		t.Fatal("Expected duplicate gateway payment id to be rejected by the database")
	}

	// Unconfirmed checkouts all carry an empty capture id and coexist fine
	for i, receipt := range []string{"r-pend-1", "r-pend-2"} {
		pending := models.Payment{
			UserID: user.ID, CourseID: uint(10 + i), Amount: 300, Currency: "INR",
			Status: models.PaymentStatusPending, ReceiptNo: receipt,
		}
		if err := db.Create(&pending).Error; err != nil {
			t.Fatalf("Failed to create pending payment %s: %v", receipt, err)
		}
	}
}

func TestHistoryListsOwnPaymentsOnly(t *testing.T) {
	app, db, user, token := setupPaymentApp(t)

	other := models.User{Name: "Other", Email: "other@coursehub.in", Role: "USER", Password: "x"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("Failed to seed other user: %v", err)
	}

	payments := []models.Payment{
		{UserID: user.ID, CourseID: 1, Amount: 100, Currency: "INR", Status: models.PaymentStatusPaid, ReceiptNo: "r1"},
		{UserID: user.ID, CourseID: 2, Amount: 200, Currency: "INR", Status: models.PaymentStatusPending, ReceiptNo: "r2"},
		{UserID: other.ID, CourseID: 1, Amount: 100, Currency: "INR", Status: models.PaymentStatusPaid, ReceiptNo: "r3"},
	}
	for i := range payments {
		if err := db.Create(&payments[i]).Error; err != nil {
			t.Fatalf("Failed to seed payment: %v", err)
		}
	}

	status, resp := doJSON(t, app, http.MethodGet, "/payments/history", token, nil)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}

	data := resp["data"].(map[string]interface{})
	list := data["payments"].([]interface{})
	if len(list) != 2 {
		t.Fatalf("Expected 2 payments for the user, got %d", len(list))
	}
	total := data["pagination"].(map[string]interface{})["total"].(float64)
	if total != 2 {
		t.Errorf("Expected total 2, got %v", total)
	}
}

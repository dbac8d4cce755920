package utils_test

import (
	"testing"
	"time"

	"coursehub/database"
	"coursehub/models"
	courseModels "coursehub/models/course"
	"coursehub/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDb(t *testing.T) *gorm.DB {
	t.Helper()

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

	return db
}

func TestExpireStalePayments(t *testing.T) {
	db := setupDb(t)

	stale := models.Payment{
		UserID: 1, CourseID: 1, Amount: 499, Currency: "INR",
		Status: models.PaymentStatusPending, ReceiptNo: "stale",
	}
	stale.CreatedAt = time.Now().Add(-48 * time.Hour)
	if err := db.Create(&stale).Error; err != nil {
		t.Fatalf("Failed to seed stale payment: %v", err)
	}

	fresh := models.Payment{
		UserID: 1, CourseID: 2, Amount: 499, Currency: "INR",
		Status: models.PaymentStatusPending, ReceiptNo: "fresh",
	}
	if err := db.Create(&fresh).Error; err != nil {
		t.Fatalf("Failed to seed fresh payment: %v", err)
	}

	enrollment := courseModels.Enrollment{UserID: 1, CourseID: 1, Status: courseModels.EnrollmentPending}
	if err := db.Create(&enrollment).Error; err != nil {
		t.Fatalf("Failed to seed enrollment: %v", err)
	}

	utils.ExpireStalePayments()

	var expired models.Payment
	if err := db.First(&expired, stale.ID).Error; err != nil {
		t.Fatalf("Failed to reload stale payment: %v", err)
	}
	if expired.Status != models.PaymentStatusExpired {
		t.Errorf("Expected stale payment EXPIRED, got %q", expired.Status)
	}

	var untouched models.Payment
	if err := db.First(&untouched, fresh.ID).Error; err != nil {
		t.Fatalf("Failed to reload fresh payment: %v", err)
	}
	if untouched.Status != models.PaymentStatusPending {
		t.Errorf("Expected today's payment untouched, got %q", untouched.Status)
	}

	var cleared courseModels.Enrollment
	if err := db.First(&cleared, enrollment.ID).Error; err != nil {
		t.Fatalf("Failed to reload enrollment: %v", err)
	}
	if !cleared.IsDeleted {
		t.Error("Expected placeholder enrollment cleared with the expired payment")
	}
}

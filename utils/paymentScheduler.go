package utils

import (
	"coursehub/database"
	"coursehub/models"
	courseModels "coursehub/models/course"
	"log"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializePaymentScheduler expires checkouts that never completed
func InitializePaymentScheduler() {
	log.Println("[PAYMENT-SCHEDULER] Initializing payment scheduler...")

	c := cron.New()

	// Run daily at 2 AM
	c.AddFunc("0 2 * * *", func() {
		log.Println("[PAYMENT-SCHEDULER] Running daily pending payment sweep...")
		ExpireStalePayments()
	})

	c.Start()
	log.Println("[PAYMENT-SCHEDULER] Payment scheduler started - runs daily at 2 AM")
}

// ExpireStalePayments marks payments still pending from before today as
// expired and clears their placeholder enrollments
func ExpireStalePayments() {
	db := database.Database.Db
	cutoff := now.BeginningOfDay()

	var stale []models.Payment
	if err := db.
		Where("status = ? AND created_at < ? AND is_deleted = ?", models.PaymentStatusPending, cutoff, false).
		Find(&stale).Error; err != nil {
		log.Printf("[PAYMENT-SCHEDULER] Error fetching stale payments: %v", err)
		return
	}

	if len(stale) == 0 {
		log.Println("[PAYMENT-SCHEDULER] No stale payments found")
		return
	}

	log.Printf("[PAYMENT-SCHEDULER] Expiring %d stale payments", len(stale))

	for _, payment := range stale {
		tx := db.Begin()

		if err := tx.Model(&models.Payment{}).
			Where("id = ?", payment.ID).
			Update("status", models.PaymentStatusExpired).Error; err != nil {
			tx.Rollback()
			log.Printf("[PAYMENT-SCHEDULER] Error expiring payment %d: %v", payment.ID, err)
			continue
		}

		// Drop the pending enrollment opened by the checkout
		if err := tx.Model(&courseModels.Enrollment{}).
			Where("user_id = ? AND course_id = ? AND status = ? AND is_deleted = ?",
				payment.UserID, payment.CourseID, courseModels.EnrollmentPending, false).
			Update("is_deleted", true).Error; err != nil {
			tx.Rollback()
			log.Printf("[PAYMENT-SCHEDULER] Error clearing enrollment for payment %d: %v", payment.ID, err)
			continue
		}

		tx.Commit()
	}
}

package paymentController

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	courseModels "coursehub/models/course"
	"coursehub/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Checkout opens a gateway order for a paid course and records a pending
// payment plus a placeholder enrollment
func Checkout(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedCheckout").(*struct {
		CourseID      uint   `json:"courseId"`
		PaymentMethod string `json:"paymentMethod"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ? AND status = ?", reqData.CourseID, false, "ACTIVE").First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not active!", nil)
	}

	if course.Price <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This course is free. Enroll directly!", nil)
	}

	// Already enrolled (active or better) means nothing to pay for
	var existing courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ? AND status <> ?",
		userID, course.ID, false, courseModels.EnrollmentPending).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	receiptNo := uuid.NewString()

	order, err := utils.CreateGatewayOrder(course.Price, course.Currency, receiptNo)
	if err != nil {
		log.Printf("Error creating gateway order: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to initiate payment!", nil)
	}

	payment := models.Payment{
		UserID:          userID,
		CourseID:        course.ID,
		Amount:          course.Price,
		Currency:        course.Currency,
		Status:          models.PaymentStatusPending,
		ReceiptNo:       receiptNo,
		GatewayOrderID:  order.OrderID,
		PaymentMethod:   reqData.PaymentMethod,
		GatewayResponse: datatypes.JSON(order.Raw),
	}

	tx := db.Begin()

	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating payment record: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	// Placeholder enrollment, activated on confirmation
	var enrollment courseModels.Enrollment
	err = tx.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, course.ID, false).First(&enrollment).Error
	if err != nil {
		enrollment = courseModels.Enrollment{
			UserID:   userID,
			CourseID: course.ID,
			Status:   courseModels.EnrollmentPending,
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			tx.Rollback()
			log.Printf("Error creating pending enrollment: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record enrollment!", nil)
		}
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Checkout initiated!", fiber.Map{
		"paymentId":      payment.ID,
		"receiptNo":      payment.ReceiptNo,
		"gatewayOrderId": payment.GatewayOrderID,
		"amount":         payment.Amount,
		"currency":       payment.Currency,
	})
}

// Confirm verifies a client-reported capture with the gateway and activates
// the enrollment
func Confirm(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	paymentID := c.Locals("paymentID").(int)

	reqData, ok := c.Locals("validatedConfirm").(*struct {
		GatewayPaymentID string `json:"gatewayPaymentId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var payment models.Payment
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = ?", paymentID, userID, false).First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
	}

	if payment.Status == models.PaymentStatusPaid {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Payment already processed!", nil)
	}

	// Guard against replaying another payment's capture id
	var duplicate models.Payment
	if err := db.Where("gateway_payment_id = ? AND is_deleted = ?", reqData.GatewayPaymentID, false).First(&duplicate).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Transaction already processed!", nil)
	}

	gatewayPayment, err := utils.FetchGatewayPayment(reqData.GatewayPaymentID)
	if err != nil {
		log.Printf("Error verifying gateway payment %s: %v", reqData.GatewayPaymentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify payment!", nil)
	}

	if gatewayPayment.OrderID != payment.GatewayOrderID || gatewayPayment.Status != "captured" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment not captured!", nil)
	}

	paidAt := time.Now()

	tx := db.Begin()

	payment.Status = models.PaymentStatusPaid
	payment.GatewayPaymentID = gatewayPayment.PaymentID
	payment.PaymentMethod = gatewayPayment.Method
	payment.GatewayResponse = datatypes.JSON(gatewayPayment.Raw)
	payment.PaidAt = &paidAt

	if err := tx.Save(&payment).Error; err != nil {
		tx.Rollback()
		log.Printf("Error updating payment %d: %v", payment.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update payment!", nil)
	}

	// Activate the enrollment opened at checkout
	res := tx.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", payment.UserID, payment.CourseID, false).
		Update("status", courseModels.EnrollmentActive)
	if res.Error != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to activate enrollment!", nil)
	}
	if res.RowsAffected == 0 {
		enrollment := courseModels.Enrollment{
			UserID:   payment.UserID,
			CourseID: payment.CourseID,
			Status:   courseModels.EnrollmentActive,
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to activate enrollment!", nil)
		}
	}

	tx.Commit()

	var course courseModels.Course
	if err := db.Where("id = ?", payment.CourseID).First(&course).Error; err == nil {
		go func() {
			if err := utils.SendPaymentReceiptEmail(user.Email, user.Name, course.Title, payment.ReceiptNo, payment.Amount, payment.Currency); err != nil {
				log.Printf("Error sending receipt email to %s: %v", user.Email, err)
			}
		}()
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment confirmed!", fiber.Map{
		"paymentId": payment.ID,
		"receiptNo": payment.ReceiptNo,
		"status":    payment.Status,
		"paidAt":    payment.PaidAt,
	})
}

// History lists the user's payments
func History(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedHistory").(*struct {
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

	db := database.Database.Db.Model(&models.Payment{}).Where("user_id = ? AND is_deleted = ?", userID, false)

	var total int64
	db.Count(&total)

	var payments []models.Payment
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", fiber.Map{
		"payments": payments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

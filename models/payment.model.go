package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Payment statuses
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
	PaymentStatusFailed  = "FAILED"
	PaymentStatusExpired = "EXPIRED"
)

// Payment records a checkout attempt for a course against the payment gateway
type Payment struct {
	gorm.Model
	UserID           uint           `json:"user_id" gorm:"index;not null"`
	CourseID         uint           `json:"course_id" gorm:"index;not null"`
	Amount           float64        `json:"amount" gorm:"not null"`
	Currency         string         `json:"currency" gorm:"default:'INR'"`
	Status           string         `json:"status" gorm:"default:'PENDING'"`
	ReceiptNo        string         `json:"receipt_no" gorm:"uniqueIndex"`
	GatewayOrderID   string         `json:"gateway_order_id" gorm:"index"`
	GatewayPaymentID string         `json:"gateway_payment_id"` // unique when set, via partial index in migrations
	PaymentMethod    string         `json:"payment_method"` // CARD, UPI, NETBANKING, QR
	GatewayResponse  datatypes.JSON `json:"gateway_response"`
	PaidAt           *time.Time     `json:"paid_at"`
	IsDeleted        bool           `gorm:"default:false"`
}

package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses
const (
	EnrollmentPending    = "PENDING"
	EnrollmentActive     = "ACTIVE"
	EnrollmentInProgress = "IN_PROGRESS"
	EnrollmentCompleted  = "COMPLETED"
)

// Enrollment tracks a user's enrollment in a course
type Enrollment struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"index;not null"`
	CourseID    uint       `json:"course_id" gorm:"index;not null"`
	Status      string     `json:"status" gorm:"default:'PENDING'"` // PENDING, ACTIVE, IN_PROGRESS, COMPLETED
	CompletedAt *time.Time `json:"completed_at"`
	IsDeleted   bool       `gorm:"default:false"`

	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}

// WishlistItem marks a course a user wants to come back to
type WishlistItem struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"index;not null"`
	CourseID  uint `json:"course_id" gorm:"index;not null"`
	IsDeleted bool `gorm:"default:false"`

	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}

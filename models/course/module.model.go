package course

import "gorm.io/gorm"

// Module is a mid-level grouping of content within a course. The admin UI
// calls it a "lesson".
type Module struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	Title      string `json:"title"`
	OrderIndex int    `json:"order_index" gorm:"default:0"` // Module order in course
	IsDeleted  bool   `gorm:"default:false"`
}

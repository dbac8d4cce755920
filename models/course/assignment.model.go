package course

import "gorm.io/gorm"

// Assignment is a question/answer exercise attached to a sub-lesson
type Assignment struct {
	gorm.Model
	LessonID  uint   `json:"lesson_id" gorm:"index;not null"`
	Question  string `json:"question" gorm:"type:text"`
	Answer    string `json:"answer" gorm:"type:text"`
	IsDeleted bool   `gorm:"default:false"`
}

package course

import "gorm.io/gorm"

// Course represents a sellable course in the catalog
type Course struct {
	gorm.Model
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Summary         string  `json:"summary"`
	Category        string  `json:"category"`
	Instructor      string  `json:"instructor"`
	Price           float64 `json:"price" gorm:"default:0"`
	Currency        string  `json:"currency" gorm:"default:'INR'"`
	DurationHours   int64   `json:"duration_hours" gorm:"default:0"`
	ThumbnailURL    string  `json:"thumbnail_url"`
	TrailerVideoURL string  `json:"trailer_video_url"`
	Status          string  `json:"status" gorm:"default:'DRAFT'"` // DRAFT, ACTIVE, INACTIVE
	IsPublished     bool    `json:"is_published" gorm:"default:false"`
	IsDeleted       bool    `gorm:"default:false"`
}

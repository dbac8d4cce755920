package course

import "gorm.io/gorm"

// Lesson is the leaf content unit within a module, with an optional video
// hosted on the video platform. The admin UI calls it a "sub-lesson".
type Lesson struct {
	gorm.Model
	ModuleID     uint   `json:"module_id" gorm:"index;not null"`
	Title        string `json:"title"`
	OrderIndex   int    `json:"order_index" gorm:"default:0"` // Order within module
	VideoURL     string `json:"video_url"`                    // Playback URL issued by the video platform
	VideoAssetID string `json:"video_asset_id"`               // Asset id on the video platform
	IsDeleted    bool   `gorm:"default:false"`
}

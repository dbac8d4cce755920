package utils

import (
	"coursehub/database"
	courseModels "coursehub/models/course"
	"log"

	"github.com/robfig/cron/v3"
)

// InitializeVideoStatusScheduler polls the video platform for assets that
// are still transcoding and backfills playback URLs once they are ready
func InitializeVideoStatusScheduler() {
	log.Println("[VIDEO-SCHEDULER] Initializing video status scheduler...")

	c := cron.New()

	// Every 5 minutes
	c.AddFunc("*/5 * * * *", func() {
		BackfillVideoURLs()
	})

	c.Start()
	log.Println("[VIDEO-SCHEDULER] Video status scheduler started - runs every 5 minutes")
}

// BackfillVideoURLs resolves playback URLs for sub-lessons whose asset has
// finished transcoding
func BackfillVideoURLs() {
	db := database.Database.Db

	var pending []courseModels.Lesson
	if err := db.
		Where("video_asset_id <> '' AND video_url = '' AND is_deleted = ?", false).
		Find(&pending).Error; err != nil {
		log.Printf("[VIDEO-SCHEDULER] Error fetching pending lessons: %v", err)
		return
	}

	if len(pending) == 0 {
		return
	}

	log.Printf("[VIDEO-SCHEDULER] Checking %d pending video assets", len(pending))

	for _, lesson := range pending {
		asset, err := GetVideoAsset(lesson.VideoAssetID)
		if err != nil {
			log.Printf("[VIDEO-SCHEDULER] Error fetching asset %s: %v", lesson.VideoAssetID, err)
			continue
		}

		if asset.Status != VideoStatusReady || asset.PlaybackURL == "" {
			continue
		}

		if err := db.Model(&courseModels.Lesson{}).
			Where("id = ?", lesson.ID).
			Update("video_url", asset.PlaybackURL).Error; err != nil {
			log.Printf("[VIDEO-SCHEDULER] Error updating lesson %d: %v", lesson.ID, err)
			continue
		}

		log.Printf("[VIDEO-SCHEDULER] Lesson %d video ready: %s", lesson.ID, asset.PlaybackURL)
	}
}

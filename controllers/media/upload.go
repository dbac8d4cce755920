package mediaController

import (
	"coursehub/config"
	"coursehub/middleware"
	"coursehub/utils"
	"log"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// UploadVideo receives a video file, pushes it to the video platform, and
// returns the asset id with the playback URL when available. Transcoding is
// asynchronous, so the URL may arrive later via the status scheduler.
func UploadVideo(c *fiber.Ctx) error {
	file, err := c.FormFile("video")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video file is required!", nil)
	}

	title := c.FormValue("title")
	if title == "" {
		title = file.Filename
	}

	filePath, err := utils.SaveUploadedFile(file, filepath.Join(config.AppConfig.UploadDir, "videos"))
	if err != nil {
		log.Printf("Error saving uploaded video: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save uploaded file!", nil)
	}
	// The platform holds the source; the local copy is only a staging file
	defer os.Remove(filePath)

	asset, err := utils.CreateVideoAsset(filePath, title)
	if err != nil {
		log.Printf("Error pushing video to platform: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Video uploaded successfully!", fiber.Map{
		"asset_id":     asset.AssetID,
		"status":       asset.Status,
		"playback_url": asset.PlaybackURL,
	})
}

// UploadImage stores a thumbnail image and returns its public URL
func UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Image file is required!", nil)
	}

	filePath, err := utils.SaveUploadedFile(file, filepath.Join(config.AppConfig.UploadDir, "images"))
	if err != nil {
		log.Printf("Error saving uploaded image: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save uploaded file!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Image uploaded successfully!", fiber.Map{
		"url": utils.GetFileURL(filePath),
	})
}

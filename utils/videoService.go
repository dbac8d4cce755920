package utils

import (
	"coursehub/config"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
)

// Video asset statuses reported by the video platform
const (
	VideoStatusUploading = "UPLOADING"
	VideoStatusReady     = "READY"
)

// VideoAsset is the portion of the video platform's asset object we use
type VideoAsset struct {
	AssetID     string `json:"videoId"`
	Status      string `json:"status"`
	PlaybackURL string `json:"playerUrl"`
}

type videoAssetResponse struct {
	VideoID string `json:"videoId"`
	Status  string `json:"status"`
	Assets  struct {
		Player string `json:"player"`
		HLS    string `json:"hls"`
	} `json:"assets"`
}

// CreateVideoAsset pushes a local video file to the video platform and
// returns the asset. Transcoding is asynchronous; the playback URL may still
// be empty, in which case the status scheduler backfills it later.
func CreateVideoAsset(filePath, title string) (*VideoAsset, error) {
	client := resty.New()

	// Create the asset container first
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.VideoApiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"title": title}).
		Post(config.AppConfig.VideoApiURL + "/videos")
	if err != nil {
		return nil, fmt.Errorf("failed to create video asset: %v", err)
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Video platform create failed: %s", resp.String())
		return nil, fmt.Errorf("video platform returned %d", resp.StatusCode())
	}

	var created videoAssetResponse
	if err := json.Unmarshal(resp.Body(), &created); err != nil {
		return nil, fmt.Errorf("failed to parse video platform response: %v", err)
	}

	// Upload the source file to the asset
	resp, err = client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.VideoApiKey).
		SetFile("file", filePath).
		Post(fmt.Sprintf("%s/videos/%s/source", config.AppConfig.VideoApiURL, created.VideoID))
	if err != nil {
		return nil, fmt.Errorf("failed to upload video source: %v", err)
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Video platform upload failed: %s", resp.String())
		return nil, fmt.Errorf("video platform returned %d", resp.StatusCode())
	}

	asset := &VideoAsset{
		AssetID:     created.VideoID,
		Status:      VideoStatusUploading,
		PlaybackURL: created.Assets.Player,
	}
	if asset.PlaybackURL != "" {
		asset.Status = VideoStatusReady
	}
	return asset, nil
}

// GetVideoAsset fetches the current state of an asset from the video platform
func GetVideoAsset(assetID string) (*VideoAsset, error) {
	client := resty.New()

	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.VideoApiKey).
		Get(fmt.Sprintf("%s/videos/%s", config.AppConfig.VideoApiURL, assetID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video asset: %v", err)
	}
	if resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("video platform returned %d", resp.StatusCode())
	}

	var fetched videoAssetResponse
	if err := json.Unmarshal(resp.Body(), &fetched); err != nil {
		return nil, fmt.Errorf("failed to parse video platform response: %v", err)
	}

	asset := &VideoAsset{
		AssetID:     fetched.VideoID,
		Status:      VideoStatusUploading,
		PlaybackURL: fetched.Assets.Player,
	}
	if asset.PlaybackURL != "" {
		asset.Status = VideoStatusReady
	}
	return asset, nil
}

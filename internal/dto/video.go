package dto

import (
	"time"

	"video-quiz/internal/domain"
)

// VideoListResponse is the body of GET /api/videos
// @Description Videos known to the Vision service
type VideoListResponse struct {
	Videos    []domain.Video `json:"videos"`
	FetchedAt time.Time      `json:"fetched_at"`
	Stale     bool           `json:"stale"`
}

// UploadVideoRequest represents the body of POST /api/upload_video
// @Description Request body for indexing a video by URL
type UploadVideoRequest struct {
	VideoName string `json:"video_name" example:"Intro to waves"`
	VideoURL  string `json:"video_url" example:"https://example.com/waves.mp4"`
}

// UploadVideoResponse represents a successful upload
type UploadVideoResponse struct {
	Success bool   `json:"success"`
	VideoID string `json:"video_id"`
	Message string `json:"message"`
}

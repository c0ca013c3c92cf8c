package domain

import (
	"context"
	"time"
)

// Video is a reference to a video known to the Vision service. It is never
// modified by this application.
type Video struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnail"`
	URL          string `json:"url,omitempty"`
}

// VideoListing is an ordered list of videos together with when it was fetched.
// Stale is set when the upstream could not be reached and the list comes from
// an earlier successful fetch.
type VideoListing struct {
	Videos    []Video   `json:"videos"`
	FetchedAt time.Time `json:"fetched_at"`
	Stale     bool      `json:"stale"`
}

// UploadVideoRequest asks the Vision service to ingest and index a video by URL.
type UploadVideoRequest struct {
	Name string `json:"video_name" validate:"required,max=200"`
	URL  string `json:"video_url" validate:"required,http_url"`
}

type UploadResult struct {
	VideoID string `json:"video_id"`
}

// ChatReply is what the Vision chat endpoint answered for a video. A reply
// without a chat response is reported as an error by the client, so
// SystemMessage is only ever an aside.
type ChatReply struct {
	ChatResponse  string `json:"chat_response"`
	SystemMessage string `json:"system_message"`
}

// Text returns the generated answer.
func (r ChatReply) Text() string {
	return r.ChatResponse
}

// VisionClient is the port to the external Vision service.
type VisionClient interface {
	ListVideos(ctx context.Context) ([]Video, error)
	Chat(ctx context.Context, videoID, prompt string) (*ChatReply, error)
	// ChatQuiz is Chat with the longer time budget of structured quiz generation.
	ChatQuiz(ctx context.Context, videoID, prompt string) (*ChatReply, error)
	UploadVideo(ctx context.Context, req UploadVideoRequest) (*UploadResult, error)
}

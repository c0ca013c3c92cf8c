package dto

import "video-quiz/internal/domain"

// AnalyzeRequest represents the body of POST /api/analyze
// @Description Request body for analyzing a video
type AnalyzeRequest struct {
	VideoID string `json:"video_id" example:"3f2c8a8e-1b1e-4a8e-9d6b-2f1f0a0c9e11"`
}

// AnalyzeResponse carries the educational analysis of a video
type AnalyzeResponse struct {
	Success  bool                  `json:"success"`
	Analysis *domain.VideoAnalysis `json:"analysis"`
	Message  string                `json:"message"`
}

// GenerateQuizRequest represents the body of POST /api/generate_quiz
// @Description Request body for generating a structured quiz from an analysis
type GenerateQuizRequest struct {
	VideoID  string                `json:"video_id"`
	Analysis *domain.VideoAnalysis `json:"analysis"`
}

// GenerateQuizResponse carries a structured quiz
type GenerateQuizResponse struct {
	Success bool         `json:"success"`
	Quiz    *domain.Quiz `json:"quiz"`
	Message string       `json:"message"`
}

// ProcessRequest represents the body of POST /api/process
// @Description Free-form question about a video; an empty prompt asks for a quiz
type ProcessRequest struct {
	VideoID string `json:"video_id"`
	Prompt  string `json:"prompt,omitempty"`
}

// ProcessResponse carries the Vision service reply as text and as sanitised HTML
type ProcessResponse struct {
	Success  bool   `json:"success"`
	VideoID  string `json:"video_id"`
	Response string `json:"response"`
	HTML     string `json:"html"`
}

// HealthResponse is the body of GET /healthz
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}

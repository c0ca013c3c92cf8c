package handler

import (
	"strings"

	"video-quiz/internal/domain"
	"video-quiz/internal/dto"
	"video-quiz/internal/markdown"
	"video-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// APIHandler serves the JSON API. Errors are returned to the central error
// handler.
type APIHandler struct {
	videos  service.VideoService
	quizzes service.QuizService
}

// NewAPIHandler creates a new APIHandler instance
func NewAPIHandler(videos service.VideoService, quizzes service.QuizService) *APIHandler {
	return &APIHandler{
		videos:  videos,
		quizzes: quizzes,
	}
}

// ListVideos godoc
// @Summary List videos
// @Description Returns the videos indexed by the Vision service
// @Tags videos
// @Produce json
// @Success 200 {object} dto.VideoListResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 504 {object} middleware.ErrorResponse
// @Router /videos [get]
func (h *APIHandler) ListVideos(c *fiber.Ctx) error {
	listing, err := h.videos.ListVideos(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(dto.VideoListResponse{
		Videos:    listing.Videos,
		FetchedAt: listing.FetchedAt,
		Stale:     listing.Stale,
	})
}

// UploadVideo godoc
// @Summary Upload a video
// @Description Asks the Vision service to fetch and index a video by URL
// @Tags videos
// @Accept json
// @Produce json
// @Param request body dto.UploadVideoRequest true "Video to index"
// @Success 200 {object} dto.UploadVideoResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 504 {object} middleware.ErrorResponse
// @Router /upload_video [post]
func (h *APIHandler) UploadVideo(c *fiber.Ctx) error {
	var req dto.UploadVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("body", "request body must be valid JSON")
	}

	result, err := h.videos.UploadVideo(c.UserContext(), domain.UploadVideoRequest{
		Name: strings.TrimSpace(req.VideoName),
		URL:  strings.TrimSpace(req.VideoURL),
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.UploadVideoResponse{
		Success: true,
		VideoID: result.VideoID,
		Message: "Video uploaded successfully",
	})
}

// Analyze godoc
// @Summary Analyze a video
// @Description Returns an educational analysis of a video
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeRequest true "Video to analyze"
// @Success 200 {object} dto.AnalyzeResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 504 {object} middleware.ErrorResponse
// @Router /analyze [post]
func (h *APIHandler) Analyze(c *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("body", "request body must be valid JSON")
	}

	analysis, err := h.quizzes.AnalyzeVideo(c.UserContext(), req.VideoID)
	if err != nil {
		return err
	}

	message := "Video analysis completed successfully"
	if !analysis.Structured() {
		message = "Analysis completed but response format may be unexpected"
	}
	return c.JSON(dto.AnalyzeResponse{
		Success:  true,
		Analysis: analysis,
		Message:  message,
	})
}

// GenerateQuiz godoc
// @Summary Generate a structured quiz
// @Description Builds a quiz from a previous analysis of the same video
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Video and its analysis"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 504 {object} middleware.ErrorResponse
// @Router /generate_quiz [post]
func (h *APIHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("body", "request body must be valid JSON")
	}

	quiz, err := h.quizzes.GenerateStructuredQuiz(c.UserContext(), req.VideoID, req.Analysis)
	if err != nil {
		return err
	}

	message := "Quiz generated successfully"
	if !quiz.Structured() {
		message = "Quiz generated but response format may be unexpected"
	}
	return c.JSON(dto.GenerateQuizResponse{
		Success: true,
		Quiz:    quiz,
		Message: message,
	})
}

// Process godoc
// @Summary Ask about a video
// @Description Sends a prompt about a video to the Vision service. An empty prompt asks for a quiz.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.ProcessRequest true "Video and prompt"
// @Success 200 {object} dto.ProcessResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 504 {object} middleware.ErrorResponse
// @Router /process [post]
func (h *APIHandler) Process(c *fiber.Ctx) error {
	var req dto.ProcessRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("body", "request body must be valid JSON")
	}

	text, err := h.quizzes.GenerateQuiz(c.UserContext(), req.VideoID, req.Prompt)
	if err != nil {
		return err
	}

	return c.JSON(dto.ProcessResponse{
		Success:  true,
		VideoID:  strings.TrimSpace(req.VideoID),
		Response: text,
		HTML:     string(markdown.ToHTML(text)),
	})
}

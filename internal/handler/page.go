package handler

import (
	"errors"
	"html/template"
	"strings"

	"video-quiz/internal/domain"
	"video-quiz/internal/logger"
	"video-quiz/internal/markdown"
	"video-quiz/internal/middleware"
	"video-quiz/internal/service"
	"video-quiz/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	bannerTimeout     = "The video service took too long to respond. Please try again."
	bannerUnavailable = "The video service is unavailable right now. Please try again later."
	noticeStale       = "The video service is not responding, so this is the last list we saw."
)

// quizPage is the data behind the quiz template.
type quizPage struct {
	Title           string
	Videos          []domain.Video
	Banner          string
	Notice          string
	Submitted       bool
	SelectedVideoID string
	Prompt          string
	ValidationError string
	Quiz            template.HTML
}

// PageHandler serves the HTML pages. Its handlers always render a page; failures
// of the Vision service become a banner.
type PageHandler struct {
	videos  service.VideoService
	quizzes service.QuizService
}

// NewPageHandler creates a new PageHandler instance
func NewPageHandler(videos service.VideoService, quizzes service.QuizService) *PageHandler {
	return &PageHandler{
		videos:  videos,
		quizzes: quizzes,
	}
}

// Home handles GET /. It never calls the Vision service.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{"Title": "Home"}, web.Layout)
}

// QuizForm handles GET /quiz
func (h *PageHandler) QuizForm(c *fiber.Ctx) error {
	page := quizPage{Title: "Choose a video", Videos: []domain.Video{}}

	listing, err := h.videos.ListVideos(c.UserContext())
	if err != nil {
		logger.Get().Warn("Failed to list videos for quiz form",
			zap.String("request_id", middleware.RequestIDFrom(c)),
			zap.Error(err))
		page.Banner = bannerFor(err)
	} else {
		page.Videos = listing.Videos
		if listing.Stale {
			page.Notice = noticeStale
		}
	}

	return c.Render("quiz", page, web.Layout)
}

// SubmitQuiz handles POST /quiz with form fields video_id and optional prompt.
func (h *PageHandler) SubmitQuiz(c *fiber.Ctx) error {
	videoID := strings.TrimSpace(c.FormValue("video_id"))
	userPrompt := c.FormValue("prompt")

	page := quizPage{
		Title:           "Your quiz",
		Submitted:       true,
		SelectedVideoID: videoID,
		Prompt:          userPrompt,
	}

	text, err := h.quizzes.GenerateQuiz(c.UserContext(), videoID, userPrompt)
	switch {
	case err == nil:
		page.Quiz = markdown.ToHTML(text)
	case domain.IsValidation(err):
		// Back to the form without listing videos again, so bad input never
		// costs an upstream call.
		c.Status(fiber.StatusBadRequest)
		page.Title = "Choose a video"
		page.Submitted = false
		page.Videos = []domain.Video{}
		page.ValidationError = messageOf(err)
	default:
		logger.Get().Warn("Failed to generate quiz",
			zap.String("request_id", middleware.RequestIDFrom(c)),
			zap.String("video_id", videoID),
			zap.Error(err))
		page.Banner = bannerFor(err)
	}

	return c.Render("quiz", page, web.Layout)
}

func bannerFor(err error) string {
	if domain.IsTimeout(err) {
		return bannerTimeout
	}
	return bannerUnavailable
}

func messageOf(err error) string {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return err.Error()
}

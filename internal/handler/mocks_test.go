package handler_test

import (
	"context"
	"time"

	"video-quiz/internal/domain"
	"video-quiz/internal/handler"
	"video-quiz/internal/middleware"
	"video-quiz/web"

	"github.com/gofiber/fiber/v2"
)

// --- Manual Mocks ---

// MockVideoService
type MockVideoService struct {
	ListVideosFunc  func(ctx context.Context) (*domain.VideoListing, error)
	UploadVideoFunc func(ctx context.Context, req domain.UploadVideoRequest) (*domain.UploadResult, error)
}

func (m *MockVideoService) ListVideos(ctx context.Context) (*domain.VideoListing, error) {
	if m.ListVideosFunc != nil {
		return m.ListVideosFunc(ctx)
	}
	panic("MockVideoService.ListVideosFunc not implemented")
}

func (m *MockVideoService) UploadVideo(ctx context.Context, req domain.UploadVideoRequest) (*domain.UploadResult, error) {
	if m.UploadVideoFunc != nil {
		return m.UploadVideoFunc(ctx, req)
	}
	panic("MockVideoService.UploadVideoFunc not implemented")
}

// MockQuizService
type MockQuizService struct {
	GenerateQuizFunc           func(ctx context.Context, videoID, userPrompt string) (string, error)
	AnalyzeVideoFunc           func(ctx context.Context, videoID string) (*domain.VideoAnalysis, error)
	GenerateStructuredQuizFunc func(ctx context.Context, videoID string, analysis *domain.VideoAnalysis) (*domain.Quiz, error)
}

func (m *MockQuizService) GenerateQuiz(ctx context.Context, videoID, userPrompt string) (string, error) {
	if m.GenerateQuizFunc != nil {
		return m.GenerateQuizFunc(ctx, videoID, userPrompt)
	}
	panic("MockQuizService.GenerateQuizFunc not implemented")
}

func (m *MockQuizService) AnalyzeVideo(ctx context.Context, videoID string) (*domain.VideoAnalysis, error) {
	if m.AnalyzeVideoFunc != nil {
		return m.AnalyzeVideoFunc(ctx, videoID)
	}
	panic("MockQuizService.AnalyzeVideoFunc not implemented")
}

func (m *MockQuizService) GenerateStructuredQuiz(ctx context.Context, videoID string, analysis *domain.VideoAnalysis) (*domain.Quiz, error) {
	if m.GenerateStructuredQuizFunc != nil {
		return m.GenerateStructuredQuizFunc(ctx, videoID, analysis)
	}
	panic("MockQuizService.GenerateStructuredQuizFunc not implemented")
}

// MockCache
type MockCache struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockCache) Get(context.Context, string) (string, error) { return "", domain.ErrCacheMiss }
func (m *MockCache) Set(context.Context, string, string, time.Duration) error {
	return nil
}
func (m *MockCache) Delete(context.Context, string) error { return nil }
func (m *MockCache) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func newTestApp(videos *MockVideoService, quizzes *MockQuizService) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:        web.NewViewEngine(),
		ErrorHandler: middleware.ErrorHandler(),
	})

	pages := handler.NewPageHandler(videos, quizzes)
	app.Get("/", pages.Home)
	app.Get("/quiz", pages.QuizForm)
	app.Post("/quiz", pages.SubmitQuiz)

	api := handler.NewAPIHandler(videos, quizzes)
	apiGroup := app.Group("/api")
	apiGroup.Get("/videos", api.ListVideos)
	apiGroup.Post("/upload_video", api.UploadVideo)
	apiGroup.Post("/analyze", api.Analyze)
	apiGroup.Post("/generate_quiz", api.GenerateQuiz)
	apiGroup.Post("/process", api.Process)
	return app
}

package service

import (
	"context"
	"strings"

	"video-quiz/internal/domain"
	"video-quiz/internal/logger"
	"video-quiz/internal/prompt"
	"video-quiz/internal/validation"

	"go.uber.org/zap"
)

// QuizService turns videos into quizzes by asking the Vision service about them.
type QuizService interface {
	// GenerateQuiz returns the upstream reply for the prompt unchanged. A blank
	// prompt uses prompt.DefaultQuizPrompt.
	GenerateQuiz(ctx context.Context, videoID, userPrompt string) (string, error)
	AnalyzeVideo(ctx context.Context, videoID string) (*domain.VideoAnalysis, error)
	GenerateStructuredQuiz(ctx context.Context, videoID string, analysis *domain.VideoAnalysis) (*domain.Quiz, error)
}

type quizService struct {
	client    domain.VisionClient
	validator *validation.Validator
	shape     prompt.QuizShape
}

func NewQuizService(client domain.VisionClient, v *validation.Validator) QuizService {
	if v == nil {
		v = validation.NewValidator()
	}
	return &quizService{
		client:    client,
		validator: v,
		shape:     prompt.DefaultQuizShape,
	}
}

func (s *quizService) GenerateQuiz(ctx context.Context, videoID, userPrompt string) (string, error) {
	videoID = strings.TrimSpace(videoID)
	if err := s.validator.ValidateVideoID(videoID); err != nil {
		return "", err
	}

	userPrompt = strings.TrimSpace(userPrompt)
	if userPrompt == "" {
		userPrompt = prompt.DefaultQuizPrompt
	}

	reply, err := s.client.Chat(ctx, videoID, userPrompt)
	if err != nil {
		logger.Get().Warn("Quiz generation failed",
			zap.String("video_id", videoID),
			zap.String("code", string(domain.CodeOf(err))),
			zap.Error(err))
		return "", err
	}

	return reply.Text(), nil
}

func (s *quizService) AnalyzeVideo(ctx context.Context, videoID string) (*domain.VideoAnalysis, error) {
	videoID = strings.TrimSpace(videoID)
	if err := s.validator.ValidateVideoID(videoID); err != nil {
		return nil, err
	}

	analysisPrompt, err := prompt.Analysis()
	if err != nil {
		return nil, domain.NewInternalError("failed to build analysis prompt", err)
	}

	reply, err := s.client.Chat(ctx, videoID, analysisPrompt)
	if err != nil {
		return nil, err
	}

	analysis := domain.ParseAnalysis(reply.Text())
	if !analysis.Structured() {
		logger.Get().Info("Video analysis reply was not JSON, keeping raw text", zap.String("video_id", videoID))
	}
	return analysis, nil
}

func (s *quizService) GenerateStructuredQuiz(ctx context.Context, videoID string, analysis *domain.VideoAnalysis) (*domain.Quiz, error) {
	videoID = strings.TrimSpace(videoID)
	if err := s.validator.ValidateVideoID(videoID); err != nil {
		return nil, err
	}
	if analysis.IsEmpty() {
		return nil, domain.NewValidationError("analysis", "analysis is required")
	}

	quizPrompt, err := prompt.Quiz(analysis, s.shape)
	if err != nil {
		return nil, domain.NewInternalError("failed to build quiz prompt", err)
	}

	reply, err := s.client.ChatQuiz(ctx, videoID, quizPrompt)
	if err != nil {
		return nil, err
	}

	quiz := domain.ParseQuiz(reply.Text())
	if !quiz.Structured() {
		logger.Get().Info("Quiz reply was not JSON, keeping raw text", zap.String("video_id", videoID))
	}
	return quiz, nil
}

package service

import (
	"context"
	"time"

	"video-quiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockVisionClient ---
type MockVisionClient struct {
	mock.Mock
}

func (m *MockVisionClient) ListVideos(ctx context.Context) ([]domain.Video, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Video), args.Error(1)
}

func (m *MockVisionClient) Chat(ctx context.Context, videoID, prompt string) (*domain.ChatReply, error) {
	args := m.Called(ctx, videoID, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatReply), args.Error(1)
}

func (m *MockVisionClient) ChatQuiz(ctx context.Context, videoID, prompt string) (*domain.ChatReply, error) {
	args := m.Called(ctx, videoID, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatReply), args.Error(1)
}

func (m *MockVisionClient) UploadVideo(ctx context.Context, req domain.UploadVideoRequest) (*domain.UploadResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadResult), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

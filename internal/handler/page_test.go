package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"video-quiz/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/quiz", strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return req
}

func TestPageHandler_Home(t *testing.T) {
	// Home must not touch the services at all.
	app := newTestApp(&MockVideoService{}, &MockQuizService{})

	status, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Turn any video into a quiz")
	assert.Contains(t, body, `href="/quiz"`)
}

func TestPageHandler_QuizForm(t *testing.T) {
	t.Run("lists videos", func(t *testing.T) {
		videos := &MockVideoService{
			ListVideosFunc: func(ctx context.Context) (*domain.VideoListing, error) {
				return &domain.VideoListing{Videos: []domain.Video{
					{ID: "v1", Name: "Beach Trip", ThumbnailURL: "https://cdn.example.com/v1.jpg"},
				}, FetchedAt: time.Now()}, nil
			},
		}
		app := newTestApp(videos, &MockQuizService{})

		status, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/quiz", nil))
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "Beach Trip")
		assert.Contains(t, body, `value="v1"`)
		assert.Contains(t, body, "https://cdn.example.com/v1.jpg")
		assert.NotContains(t, body, "banner-error")
	})

	t.Run("upstream failure renders banner and empty list", func(t *testing.T) {
		videos := &MockVideoService{
			ListVideosFunc: func(ctx context.Context) (*domain.VideoListing, error) {
				return nil, domain.NewUpstreamError("list videos", 500, errors.New("internal"))
			},
		}
		app := newTestApp(videos, &MockQuizService{})

		status, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/quiz", nil))
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "banner-error")
		assert.Contains(t, body, "unavailable right now")
		assert.Contains(t, body, "No videos are available yet.")
	})

	t.Run("timeout renders timeout banner", func(t *testing.T) {
		videos := &MockVideoService{
			ListVideosFunc: func(ctx context.Context) (*domain.VideoListing, error) {
				return nil, domain.NewTimeoutError("list videos", context.DeadlineExceeded)
			},
		}
		app := newTestApp(videos, &MockQuizService{})

		status, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/quiz", nil))
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "took too long")
	})

	t.Run("stale list renders notice", func(t *testing.T) {
		videos := &MockVideoService{
			ListVideosFunc: func(ctx context.Context) (*domain.VideoListing, error) {
				return &domain.VideoListing{
					Videos: []domain.Video{{ID: "v1", Name: "Beach Trip"}},
					Stale:  true,
				}, nil
			},
		}
		app := newTestApp(videos, &MockQuizService{})

		status, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/quiz", nil))
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "Beach Trip")
		assert.Contains(t, body, "banner-warning")
	})
}

func TestPageHandler_SubmitQuiz(t *testing.T) {
	t.Run("renders upstream text", func(t *testing.T) {
		var gotID, gotPrompt string
		quizzes := &MockQuizService{
			GenerateQuizFunc: func(ctx context.Context, videoID, userPrompt string) (string, error) {
				gotID, gotPrompt = videoID, userPrompt
				return "Question 1: What colour is the sand?", nil
			},
		}
		app := newTestApp(&MockVideoService{}, quizzes)

		status, body := doRequest(t, app, postForm(url.Values{"video_id": {"v1"}}))
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "v1", gotID)
		assert.Empty(t, gotPrompt)
		assert.Contains(t, body, "Question 1: What colour is the sand?")
	})

	t.Run("markdown is rendered", func(t *testing.T) {
		quizzes := &MockQuizService{
			GenerateQuizFunc: func(ctx context.Context, videoID, userPrompt string) (string, error) {
				return "## Answers\n\n1. **Blue**", nil
			},
		}
		app := newTestApp(&MockVideoService{}, quizzes)

		_, body := doRequest(t, app, postForm(url.Values{"video_id": {"v1"}, "prompt": {"Make it hard"}}))
		assert.Contains(t, body, "<h2>Answers</h2>")
		assert.Contains(t, body, "<strong>Blue</strong>")
	})

	t.Run("model output cannot inject script", func(t *testing.T) {
		quizzes := &MockQuizService{
			GenerateQuizFunc: func(ctx context.Context, videoID, userPrompt string) (string, error) {
				return "Hello <script>alert(1)</script>", nil
			},
		}
		app := newTestApp(&MockVideoService{}, quizzes)

		_, body := doRequest(t, app, postForm(url.Values{"video_id": {"v1"}}))
		assert.NotContains(t, body, "<script>alert(1)</script>")
	})

	t.Run("missing video id renders inline error", func(t *testing.T) {
		quizzes := &MockQuizService{
			GenerateQuizFunc: func(ctx context.Context, videoID, userPrompt string) (string, error) {
				return "", domain.NewValidationError("video_id", "Please choose a video first.")
			},
		}
		app := newTestApp(&MockVideoService{}, quizzes)

		status, body := doRequest(t, app, postForm(url.Values{"prompt": {"Only two questions"}}))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, "field-error")
		assert.Contains(t, body, "Please choose a video first.")
		assert.Contains(t, body, `<form method="post" action="/quiz">`)
		assert.Contains(t, body, "Only two questions", "prompt is kept in the form")
		assert.NotContains(t, body, "No videos are available yet.")
	})

	t.Run("upstream failure renders banner", func(t *testing.T) {
		quizzes := &MockQuizService{
			GenerateQuizFunc: func(ctx context.Context, videoID, userPrompt string) (string, error) {
				return "", domain.NewUpstreamError("chat", 500, errors.New("internal"))
			},
		}
		app := newTestApp(&MockVideoService{}, quizzes)

		status, body := doRequest(t, app, postForm(url.Values{"video_id": {"v1"}}))
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "unavailable right now")
		assert.NotContains(t, body, "quiz-text")
	})

	t.Run("timeout renders banner", func(t *testing.T) {
		quizzes := &MockQuizService{
			GenerateQuizFunc: func(ctx context.Context, videoID, userPrompt string) (string, error) {
				return "", domain.NewTimeoutError("chat", context.DeadlineExceeded)
			},
		}
		app := newTestApp(&MockVideoService{}, quizzes)

		status, body := doRequest(t, app, postForm(url.Values{"video_id": {"v1"}}))
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "took too long")
	})
}

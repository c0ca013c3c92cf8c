package vision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"video-quiz/internal/config"
	"video-quiz/internal/domain"
	"video-quiz/internal/logger"

	"github.com/avast/retry-go"
	"go.uber.org/zap"
	"resty.dev/v3"
)

const (
	apiKeyHeader = "X-Api-Key"

	listVideosPath  = "/videos/get"
	uploadVideoPath = "/videos/upload"

	// DefaultThumbnail is shown for videos whose metadata has no thumbnail.
	DefaultThumbnail = "/static/images/placeholder.svg"

	opListVideos  = "list videos"
	opChat        = "chat"
	opUploadVideo = "upload video"
)

// Client talks to the Vision service over HTTP. It holds no per-request state
// and is safe for concurrent use.
type Client struct {
	httpClient    *resty.Client
	qaEndpoint    string
	timeout       time.Duration
	chatTimeout   time.Duration
	quizTimeout   time.Duration
	retryAttempts uint
	retryDelay    time.Duration
}

// NewClient creates a Vision client for the given upstream configuration.
func NewClient(cfg config.UpstreamConfig) *Client {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))
	client.SetHeader(apiKeyHeader, cfg.APIKey)
	client.SetHeader("Accept", "application/json")

	qaEndpoint := cfg.QAEndpoint
	if qaEndpoint == "" {
		qaEndpoint = strings.TrimRight(cfg.BaseURL, "/") + "/qa/chat"
	}

	quizTimeout := cfg.QuizTimeout
	if quizTimeout <= 0 {
		quizTimeout = cfg.ChatTimeout
	}

	return &Client{
		httpClient:    client,
		qaEndpoint:    qaEndpoint,
		timeout:       cfg.Timeout,
		chatTimeout:   cfg.ChatTimeout,
		quizTimeout:   quizTimeout,
		retryAttempts: cfg.RetryAttempts,
		retryDelay:    cfg.RetryDelay,
	}
}

func (c *Client) Close() error {
	return c.httpClient.Close()
}

var _ domain.VisionClient = (*Client)(nil)

type videoMetadata struct {
	Title     string `json:"title"`
	VideoName string `json:"video_name"`
	Thumbnail string `json:"thumbnail"`
	URL       string `json:"url"`
}

type videoResult struct {
	VideoID  string        `json:"video_id"`
	URL      string        `json:"url"`
	Metadata videoMetadata `json:"metadata"`
}

type listVideosResponse struct {
	Results []videoResult `json:"results"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	VideoID  string        `json:"video_id"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	ChatResponse  json.RawMessage `json:"chat_response"`
	SystemMessage string          `json:"system_message"`
	Error         string          `json:"error"`
	Status        string          `json:"status"`
}

type uploadResponse struct {
	VideoID string `json:"video_id"`
}

// errorBody is the shape of upstream error payloads; any field may be absent.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// ListVideos returns the videos known to the Vision service, in upstream order.
// Server errors, rate limiting and connection failures are retried with
// backoff inside the overall timeout.
func (c *Client) ListVideos(ctx context.Context) ([]domain.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var videos []domain.Video
	err := retry.Do(
		func() error {
			result, err := c.listVideos(ctx)
			if err != nil {
				if !isRetryable(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			videos = result
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.retryAttempts+1),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Get().Warn("Retrying vision list videos", zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
	if err != nil {
		return nil, asDomainError(opListVideos, err)
	}
	return videos, nil
}

func (c *Client) listVideos(ctx context.Context) ([]domain.Video, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Post(listVideosPath)
	if err != nil {
		return nil, classifyTransportError(opListVideos, err)
	}
	body := resp.String()
	if !resp.IsSuccess() {
		return nil, domain.NewUpstreamError(opListVideos, resp.StatusCode(), upstreamCause(body))
	}

	var payload listVideosResponse
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return nil, domain.NewUpstreamError(opListVideos, 0, fmt.Errorf("malformed payload: %w", err))
	}

	videos := make([]domain.Video, 0, len(payload.Results))
	for _, result := range payload.Results {
		if result.VideoID == "" {
			logger.Get().Debug("Skipping video without id", zap.String("title", result.Metadata.Title))
			continue
		}
		videos = append(videos, toVideo(result))
	}
	return videos, nil
}

func toVideo(result videoResult) domain.Video {
	meta := result.Metadata
	name := firstNonEmpty(meta.Title, meta.VideoName, "Untitled")
	return domain.Video{
		ID:           result.VideoID,
		Name:         name,
		ThumbnailURL: firstNonEmpty(meta.Thumbnail, DefaultThumbnail),
		URL:          firstNonEmpty(result.URL, meta.URL),
	}
}

// Chat asks the Vision service a single question about a video. It is not
// retried: generation is slow and the endpoint is not idempotent.
func (c *Client) Chat(ctx context.Context, videoID, prompt string) (*domain.ChatReply, error) {
	return c.chat(ctx, videoID, prompt, c.chatTimeout)
}

// ChatQuiz is Chat bounded by the quiz timeout, for prompts that ask for a
// whole structured quiz.
func (c *Client) ChatQuiz(ctx context.Context, videoID, prompt string) (*domain.ChatReply, error) {
	return c.chat(ctx, videoID, prompt, c.quizTimeout)
}

func (c *Client) chat(ctx context.Context, videoID, prompt string, timeout time.Duration) (*domain.ChatReply, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	request := chatRequest{
		VideoID:  videoID,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	}

	logger.Get().Debug("Calling vision chat", zap.String("video_id", videoID), zap.Int("prompt_length", len(prompt)))

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post(c.qaEndpoint)
	if err != nil {
		return nil, classifyTransportError(opChat, err)
	}
	body := resp.String()
	if !resp.IsSuccess() {
		return nil, domain.NewUpstreamError(opChat, resp.StatusCode(), upstreamCause(body)).
			WithContext("video_id", videoID)
	}

	var payload chatResponse
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return nil, domain.NewUpstreamError(opChat, 0, fmt.Errorf("malformed payload: %w", err))
	}

	reply := &domain.ChatReply{
		ChatResponse:  sectionsText(rawText(payload.ChatResponse)),
		SystemMessage: payload.SystemMessage,
	}
	if reply.Text() == "" {
		// Without a chat response the system message explains what went wrong,
		// e.g. the video is still being indexed.
		cause := firstNonEmpty(payload.SystemMessage, payload.Error, "empty chat response")
		return nil, domain.NewUpstreamError(opChat, 0, errors.New(cause)).WithContext("video_id", videoID)
	}
	return reply, nil
}

// UploadVideo registers a video URL with the Vision service and asks for it to
// be indexed.
func (c *Client) UploadVideo(ctx context.Context, req domain.UploadVideoRequest) (*domain.UploadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.chatTimeout)
	defer cancel()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"video_name": req.Name,
			"video_url":  req.URL,
			"index":      "true",
		}).
		Post(uploadVideoPath)
	if err != nil {
		return nil, classifyTransportError(opUploadVideo, err)
	}
	body := resp.String()
	if !resp.IsSuccess() {
		return nil, domain.NewUpstreamError(opUploadVideo, resp.StatusCode(), upstreamCause(body))
	}

	var payload uploadResponse
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return nil, domain.NewUpstreamError(opUploadVideo, 0, fmt.Errorf("malformed payload: %w", err))
	}
	if payload.VideoID == "" {
		return nil, domain.NewUpstreamError(opUploadVideo, 0, errors.New("response has no video_id"))
	}
	return &domain.UploadResult{VideoID: payload.VideoID}, nil
}

// rawText returns a JSON string's value, or the raw JSON for any other value.
func rawText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

type sectionedReply struct {
	Sections []struct {
		SectionContent string `json:"section_content"`
	} `json:"sections"`
}

// sectionsText joins the content of a {"sections":[...]} reply into one
// markdown document. Any other text is returned unchanged.
func sectionsText(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "{") {
		return text
	}
	var reply sectionedReply
	if err := json.Unmarshal([]byte(trimmed), &reply); err != nil {
		return text
	}
	parts := make([]string, 0, len(reply.Sections))
	for _, section := range reply.Sections {
		if section.SectionContent != "" {
			parts = append(parts, section.SectionContent)
		}
	}
	if len(parts) == 0 {
		return text
	}
	return strings.Join(parts, "\n\n")
}

func upstreamCause(body string) error {
	var eb errorBody
	if err := json.Unmarshal([]byte(body), &eb); err == nil {
		if msg := firstNonEmpty(eb.Error, eb.Message, eb.Detail); msg != "" {
			return errors.New(msg)
		}
	}
	if body = strings.TrimSpace(body); body != "" {
		if len(body) > 200 {
			body = body[:200]
		}
		return errors.New(body)
	}
	return nil
}

func classifyTransportError(op string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return domain.NewTimeoutError(op, err)
	}
	return domain.NewUpstreamError(op, 0, err).WithContext("transport", true)
}

// asDomainError makes sure errors escaping retry.Do (for example a context
// that expired between attempts) are classified.
func asDomainError(op string, err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return classifyTransportError(op, err)
}

// isRetryable reports whether a failed list call may succeed when repeated.
func isRetryable(err error) bool {
	var domainErr *domain.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != domain.CodeUpstream {
		return false
	}
	if transport, _ := domainErr.Context["transport"].(bool); transport {
		return true
	}
	status, _ := domainErr.Context["status"].(int)
	return status == 429 || status >= 500
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

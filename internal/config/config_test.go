package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("API_KEY", "test-key")
	t.Setenv("BASE_URL", "https://vision.example.com/v1/")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8111, cfg.Server.Port)
	assert.Equal(t, ":8111", cfg.ListenAddr())
	assert.Equal(t, "test-key", cfg.Upstream.APIKey)
	assert.Equal(t, "https://vision.example.com/v1", cfg.Upstream.BaseURL)
	assert.Equal(t, "https://vision.example.com/v1/qa/chat", cfg.Upstream.QAEndpoint)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 60*time.Second, cfg.Upstream.ChatTimeout)
	assert.Equal(t, 90*time.Second, cfg.Upstream.QuizTimeout)
	assert.Equal(t, uint(2), cfg.Upstream.RetryAttempts)
	assert.Equal(t, time.Duration(0), cfg.Cache.VideoTTL)
	assert.False(t, cfg.RedisEnabled())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("REKA_VIDEO_QA_ENDPOINT", "https://qa.example.com/chat")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("UPSTREAM_CHAT_TIMEOUT", "45s")
	t.Setenv("UPSTREAM_QUIZ_TIMEOUT", "2m")
	t.Setenv("VIDEO_CACHE_TTL", "1m")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "https://qa.example.com/chat", cfg.Upstream.QAEndpoint)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 45*time.Second, cfg.Upstream.ChatTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Upstream.QuizTimeout)
	assert.Equal(t, time.Minute, cfg.Cache.VideoTTL)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		baseURL string
		wantMsg []string
	}{
		{
			name:    "both missing",
			wantMsg: []string{"API_KEY", "BASE_URL"},
		},
		{
			name:    "api key missing",
			baseURL: "https://vision.example.com",
			wantMsg: []string{"API_KEY"},
		},
		{
			name:    "base url missing",
			apiKey:  "key",
			wantMsg: []string{"BASE_URL"},
		},
		{
			name:    "base url not a url",
			apiKey:  "key",
			baseURL: "vision.example.com",
			wantMsg: []string{"BASE_URL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("API_KEY", tt.apiKey)
			t.Setenv("BASE_URL", tt.baseURL)

			cfg, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			for _, msg := range tt.wantMsg {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorPredicates(t *testing.T) {
	cause := errors.New("boom")

	validation := NewValidationError("video_id", "video_id is required")
	upstream := NewUpstreamError("list videos", 500, cause)
	timeout := NewTimeoutError("chat", cause)
	wrapped := fmt.Errorf("handler: %w", timeout)

	assert.True(t, IsValidation(validation))
	assert.False(t, IsUpstream(validation))

	assert.True(t, IsUpstream(upstream))
	assert.False(t, IsTimeout(upstream))
	assert.ErrorIs(t, upstream, cause)

	assert.True(t, IsTimeout(wrapped))
	assert.True(t, IsUpstream(wrapped), "timeouts are upstream failures for display")

	assert.False(t, IsUpstream(nil))
	assert.Equal(t, CodeInternal, CodeOf(cause))
}

func TestDomainError_Messages(t *testing.T) {
	assert.Equal(t, "vision service list videos failed with HTTP 503: boom",
		NewUpstreamError("list videos", 503, errors.New("boom")).Error())
	assert.Equal(t, "vision service chat failed",
		NewUpstreamError("chat", 0, nil).Error())

	err := NewValidationError("video_id", "video_id is required")
	assert.Equal(t, "video_id", err.Context["field"])

	b, marshalErr := err.MarshalJSON()
	assert.NoError(t, marshalErr)
	assert.JSONEq(t, `{"code":"VALIDATION_ERROR","message":"video_id is required","context":{"field":"video_id"}}`, string(b))
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBucketKey_EscapesDelimiters(t *testing.T) {
	assert.Equal(t, "ims:rl:auth:10.0.0.1", BucketKey(ClassAuth, "10.0.0.1"))
	assert.Equal(t, "ims:rl:write:__1", BucketKey(ClassWrite, "::1"))
}

func TestRetryAfterSeconds(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, RetryAfterSeconds(now, now.Add(-time.Second)))
	assert.Equal(t, 1, RetryAfterSeconds(now, now.Add(200*time.Millisecond)))
	assert.Equal(t, 30, RetryAfterSeconds(now, now.Add(29500*time.Millisecond)))
}

func TestEndpointClass_IsValid(t *testing.T) {
	assert.True(t, ClassAuth.IsValid())
	assert.True(t, ClassWrite.IsValid())
	assert.False(t, EndpointClass("sensitive").IsValid())
}

package hcloud

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
	"github.com/stretchr/testify/assert"
)

func apiError(code hcloud.ErrorCode) error {
	return hcloud.Error{Code: code, Message: "test"}
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFound(apiError(hcloud.ErrorCodeNotFound)))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", apiError(hcloud.ErrorCodeNotFound))))
	assert.False(t, IsNotFound(apiError(hcloud.ErrorCodeRateLimitExceeded)))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestIsConflict(t *testing.T) {
	t.Parallel()

	assert.True(t, IsConflict(apiError(hcloud.ErrorCodeConflict)))
	assert.True(t, IsConflict(apiError(hcloud.ErrorCodeLocked)))
	assert.False(t, IsConflict(apiError(hcloud.ErrorCodeNotFound)))
}

func TestIsRateLimited(t *testing.T) {
	t.Parallel()

	assert.True(t, IsRateLimited(apiError(hcloud.ErrorCodeRateLimitExceeded)))
	assert.False(t, IsRateLimited(apiError(hcloud.ErrorCodeConflict)))
	assert.False(t, IsRateLimited(nil))
}

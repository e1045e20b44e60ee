package hcloud

import (
	"errors"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

func isHCloudErrorCode(err error, codes ...hcloud.ErrorCode) bool {
	if err == nil {
		return false
	}

	var hcloudErr hcloud.Error
	if errors.As(err, &hcloudErr) {
		for _, code := range codes {
			if hcloudErr.Code == code {
				return true
			}
		}
	}
	return false
}

// IsNotFound reports whether err indicates a missing resource.
func IsNotFound(err error) bool {
	return isHCloudErrorCode(err, hcloud.ErrorCodeNotFound)
}

// IsConflict reports whether err indicates the resource changed during
// the request. Retryable.
func IsConflict(err error) bool {
	return isHCloudErrorCode(err, hcloud.ErrorCodeConflict, hcloud.ErrorCodeLocked)
}

// IsRateLimited reports whether err indicates API rate limiting. Retryable.
func IsRateLimited(err error) bool {
	return isHCloudErrorCode(err, hcloud.ErrorCodeRateLimitExceeded)
}

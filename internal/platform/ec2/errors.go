package ec2

import (
	"errors"

	"github.com/aws/smithy-go"
)

func isAPIErrorCode(err error, codes ...string) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		for _, code := range codes {
			if apiErr.ErrorCode() == code {
				return true
			}
		}
	}
	return false
}

// IsThrottled reports whether err indicates API rate limiting. Retryable.
func IsThrottled(err error) bool {
	return isAPIErrorCode(err, "Throttling", "ThrottlingException", "RequestLimitExceeded")
}

// IsNotFound reports whether err indicates a missing instance.
func IsNotFound(err error) bool {
	return isAPIErrorCode(err, "InvalidInstanceID.NotFound")
}

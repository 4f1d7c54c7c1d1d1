package ebay

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRequired means no usable credential exists and the seller must
	// run the consent flow again.
	ErrAuthRequired = errors.New("ebay authorization required")

	// ErrTokenRefreshFailed means a refresh grant did not produce a token.
	ErrTokenRefreshFailed = errors.New("ebay token refresh failed")

	// ErrOAuthNotConfigured means client id, client secret or redirect URI is unset.
	ErrOAuthNotConfigured = errors.New("ebay oauth client is not configured")
)

// RefreshError describes a failed refresh grant. When eBay rejected the
// refresh token (a 4xx answer) it also matches ErrAuthRequired.
type RefreshError struct {
	StatusCode int // 0 when no response was received
	Body       string
	Err        error
}

func (e *RefreshError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%v: %v", ErrTokenRefreshFailed, e.Err)
	}
	return fmt.Sprintf("%v (status %d): %s", ErrTokenRefreshFailed, e.StatusCode, e.Body)
}

// Rejected reports whether eBay answered and refused the refresh token.
func (e *RefreshError) Rejected() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// Unwrap lets errors.Is match ErrTokenRefreshFailed always, ErrAuthRequired
// when the grant was rejected, and the transport error when one occurred.
func (e *RefreshError) Unwrap() []error {
	errs := []error{ErrTokenRefreshFailed}
	if e.Rejected() {
		errs = append(errs, ErrAuthRequired)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// UpstreamError is a non-success Sell API response. Body holds the decoded
// JSON answer, or {"raw": text} when the answer was not JSON.
type UpstreamError struct {
	Operation  string
	StatusCode int
	Body       any
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ebay %s failed with status %d", e.Operation, e.StatusCode)
}

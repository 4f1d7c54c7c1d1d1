package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/quicklist/internal/ebay"
)

const reauthorizeHint = "ebay authorization required, open /auth to connect the seller account"

// upstreamError maps errors from the eBay layer to API errors.
func upstreamError(action string, err error) error {
	var ue *ebay.UpstreamError
	switch {
	case errors.Is(err, ebay.ErrAuthRequired):
		return huma.Error401Unauthorized(reauthorizeHint, err)
	case errors.Is(err, ebay.ErrDailyLimitReached):
		return huma.Error429TooManyRequests("daily eBay API budget exhausted", err)
	case errors.As(err, &ue):
		return huma.Error502BadGateway(
			fmt.Sprintf("%s: eBay answered %d", action, ue.StatusCode),
			&huma.ErrorDetail{Message: "upstream response", Location: ue.Operation, Value: ue.Body},
		)
	case errors.Is(err, ebay.ErrTokenRefreshFailed):
		return huma.Error502BadGateway("refreshing eBay token failed", err)
	case errors.Is(err, context.DeadlineExceeded):
		return huma.Error504GatewayTimeout(action+": timed out", err)
	default:
		return huma.Error500InternalServerError(action+" failed", err)
	}
}

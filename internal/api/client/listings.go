package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/donaldgifford/quicklist/internal/pipeline"
	domain "github.com/donaldgifford/quicklist/pkg/types"
)

// ListingsResponse wraps a paginated listing history response.
type ListingsResponse struct {
	Listings []domain.LastListing `json:"listings"`
	Total    int                  `json:"total"`
	Limit    int                  `json:"limit"`
	Offset   int                  `json:"offset"`
}

// ListListingsParams defines query parameters for the listing history.
type ListListingsParams struct {
	Published *bool
	SKU       string
	Title     string
	Since     time.Time
	Limit     int
	Offset    int
	OrderBy   string
}

// CreateListing submits a product to the listing pipeline. A step rejected by
// eBay is reported through the result, not as an error.
func (c *Client) CreateListing(ctx context.Context, req *domain.ListingRequest) (*pipeline.Result, error) {
	var res pipeline.Result
	err := c.post(ctx, "/api/listings/create", req, &res)
	if err == nil {
		return &res, nil
	}

	var ae *APIError
	if errors.As(err, &ae) && ae.StatusCode == http.StatusBadRequest {
		var failed pipeline.Result
		if json.Unmarshal(ae.Body, &failed) == nil && failed.Outcome == pipeline.OutcomeStepFailed {
			return &failed, nil
		}
	}
	return nil, err
}

// ListListings returns recorded listings matching params.
func (c *Client) ListListings(
	ctx context.Context,
	params *ListListingsParams,
) (*ListingsResponse, error) {
	q := url.Values{}
	if params.Published != nil {
		q.Set("published", strconv.FormatBool(*params.Published))
	}
	if params.SKU != "" {
		q.Set("sku", params.SKU)
	}
	if params.Title != "" {
		q.Set("title", params.Title)
	}
	if !params.Since.IsZero() {
		q.Set("since", params.Since.UTC().Format(time.RFC3339))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := "/api/listings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ListingsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/quicklist/internal/pipeline"
	"github.com/donaldgifford/quicklist/internal/store"
	domain "github.com/donaldgifford/quicklist/pkg/types"
)

// ListingCreator runs the listing pipeline.
type ListingCreator interface {
	Create(ctx context.Context, req *domain.ListingRequest) (*pipeline.Result, error)
}

// ListingHistory pages through recorded listings.
type ListingHistory interface {
	ListListings(ctx context.Context, q *store.ListingQuery) ([]domain.LastListing, int, error)
}

// ListingsHandler handles listing creation and history endpoints.
type ListingsHandler struct {
	creator ListingCreator
	history ListingHistory
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(c ListingCreator, h ListingHistory) *ListingsHandler {
	return &ListingsHandler{creator: c, history: h}
}

// --- Input/Output types ---

// CreateListingBody is a scraped product plus operator overrides. Unknown
// fields sent by the extension are ignored.
type CreateListingBody struct {
	_ struct{} `json:"-" additionalProperties:"true"`
	domain.ListingRequest
}

// CreateListingInput is the input for creating a listing.
type CreateListingInput struct {
	Body CreateListingBody
}

// CreateListingOutput carries the pipeline result. Status is 400 when a step
// was rejected by eBay.
type CreateListingOutput struct {
	Status int
	Body   *pipeline.Result
}

// ListListingsInput filters the listing history.
type ListListingsInput struct {
	Published string    `query:"published" doc:"Filter by publish state"            enum:"true,false,"`
	SKU       string    `query:"sku"       doc:"Exact SKU"`
	Title     string    `query:"title"     doc:"Case-insensitive title substring"`
	Since     time.Time `query:"since"     doc:"Only listings created at or after this time"`
	Limit     int       `query:"limit"     doc:"Number of results (default 50)"     minimum:"0" maximum:"500"`
	Offset    int       `query:"offset"    doc:"Pagination offset"                  minimum:"0"`
	OrderBy   string    `query:"order_by"  doc:"Sort field"                         enum:"created_at,title,sku,"`
}

// ListListingsOutput is the response for the listing history.
type ListListingsOutput struct {
	Body struct {
		Listings []domain.LastListing `json:"listings"`
		Total    int                  `json:"total"`
		Limit    int                  `json:"limit"`
		Offset   int                  `json:"offset"`
	}
}

// --- Handlers ---

// CreateListing runs the pipeline for one product.
func (h *ListingsHandler) CreateListing(
	ctx context.Context,
	input *CreateListingInput,
) (*CreateListingOutput, error) {
	res, err := h.creator.Create(ctx, &input.Body.ListingRequest)
	if err != nil {
		var ve *pipeline.ValidationError
		if errors.As(err, &ve) {
			details := make([]error, 0, len(ve.Fields))
			for _, f := range ve.Fields {
				details = append(details, &huma.ErrorDetail{
					Message:  "required",
					Location: "body." + f,
				})
			}
			return nil, huma.Error400BadRequest(ve.Error(), details...)
		}
		return nil, upstreamError("creating listing", err)
	}

	status := http.StatusOK
	if res.Outcome == pipeline.OutcomeStepFailed {
		status = http.StatusBadRequest
	}
	return &CreateListingOutput{Status: status, Body: res}, nil
}

// ListListings returns recorded listings, newest first by default.
func (h *ListingsHandler) ListListings(
	ctx context.Context,
	input *ListListingsInput,
) (*ListListingsOutput, error) {
	q := &store.ListingQuery{
		Limit:   input.Limit,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.Published != "" {
		published := input.Published == "true"
		q.Published = &published
	}

	if input.SKU != "" {
		q.SKU = &input.SKU
	}

	if input.Title != "" {
		q.Title = &input.Title
	}

	if !input.Since.IsZero() {
		q.Since = &input.Since
	}

	listings, total, err := h.history.ListListings(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing query failed", err)
	}

	resp := &ListListingsOutput{}
	resp.Body.Listings = nonNil(listings)
	resp.Body.Total = total
	resp.Body.Limit = q.PageLimit()
	resp.Body.Offset = q.Offset

	return resp, nil
}

// RegisterListingRoutes registers listing endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "create-listing",
		Method:      http.MethodPost,
		Path:        "/api/listings/create",
		Summary:     "Create an eBay listing",
		Description: "Upserts the inventory item, creates an offer and publishes it when category, " +
			"location and all three business policies are known. Missing policy ids are filled " +
			"with the seller's first policy of each kind.",
		Tags:   []string{"listings"},
		Errors: []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusTooManyRequests, http.StatusBadGateway},
	}, h.CreateListing)

	huma.Register(api, huma.Operation{
		OperationID: "list-listings",
		Method:      http.MethodGet,
		Path:        "/api/listings",
		Summary:     "List created listings",
		Description: "Returns the listings this instance created, with optional filters and pagination.",
		Tags:        []string{"listings"},
	}, h.ListListings)
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/quicklist/pkg/types"
)

// StateReader reads the stored credential and the most recent listing.
type StateReader interface {
	GetCredential(ctx context.Context) (*domain.Credential, error)
	GetLastListing(ctx context.Context) (*domain.LastListing, error)
}

// StoreHandler exposes a redacted view of the stored state.
type StoreHandler struct {
	store StateReader
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(s StateReader) *StoreHandler {
	return &StoreHandler{store: s}
}

// StoreStateOutput never carries token values.
type StoreStateOutput struct {
	Body struct {
		HasAccessToken  bool                `json:"has_access_token"`
		HasRefreshToken bool                `json:"has_refresh_token"`
		ExpiresAt       *time.Time          `json:"expires_at"`
		LastListing     *domain.LastListing `json:"last_listing"`
	}
}

// GetStoreState returns which tokens are stored, when the access token
// expires and the last listing created.
func (h *StoreHandler) GetStoreState(ctx context.Context, _ *struct{}) (*StoreStateOutput, error) {
	resp := &StoreStateOutput{}

	cred, err := h.store.GetCredential(ctx)
	switch {
	case errors.Is(err, domain.ErrNoCredential):
	case err != nil:
		return nil, huma.Error500InternalServerError("reading credential failed", err)
	case cred != nil:
		resp.Body.HasAccessToken = cred.AccessToken != ""
		resp.Body.HasRefreshToken = cred.RefreshToken != ""
		if !cred.ExpiresAt.IsZero() {
			exp := cred.ExpiresAt
			resp.Body.ExpiresAt = &exp
		}
	}

	last, err := h.store.GetLastListing(ctx)
	switch {
	case errors.Is(err, domain.ErrNoLastListing):
	case err != nil:
		return nil, huma.Error500InternalServerError("reading last listing failed", err)
	default:
		resp.Body.LastListing = last
	}

	return resp, nil
}

// RegisterStoreRoutes registers the store view with the Huma API.
func RegisterStoreRoutes(api huma.API, h *StoreHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-store-state",
		Method:      http.MethodGet,
		Path:        "/api/store",
		Summary:     "Get stored state",
		Description: "Returns a redacted view of the stored credential and the last listing.",
		Tags:        []string{"store"},
	}, h.GetStoreState)
}

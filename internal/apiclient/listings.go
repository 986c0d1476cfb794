package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"handmeup-backend/internal/domain"
)

type CreateListingParams struct {
	OwnerID     string `json:"owner_id"`
	OwnerName   string `json:"owner_name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Privacy     string `json:"privacy"`
}

func (c *Client) CreateListing(ctx context.Context, params CreateListingParams) (*domain.Listing, error) {
	var out domain.Listing
	if err := c.do(ctx, http.MethodPost, "/listings", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetListing(ctx context.Context, listingID int32) (*domain.Listing, error) {
	var out domain.Listing
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/listings/%d", listingID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListListings fetches the recommendations feed as seen by viewerID.
func (c *Client) ListListings(ctx context.Context, viewerID string) ([]domain.Listing, error) {
	path := "/listings"
	if viewerID != "" {
		path += "?user_id=" + url.QueryEscape(viewerID)
	}
	var out []domain.Listing
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"handmeup-backend/internal/domain"
)

type CreateClothingParams struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	PricePerDayCents int32  `json:"price_per_day_cents"`
	Visibility       string `json:"visibility"`
}

type CreateClothingResponse struct {
	Item      *domain.ClothingItem `json:"item"`
	UploadURL string               `json:"upload_url,omitempty"`
}

func (c *Client) CreateClothing(ctx context.Context, params CreateClothingParams) (*CreateClothingResponse, error) {
	var out CreateClothingResponse
	if err := c.do(ctx, http.MethodPost, "/clothing", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type ConfirmImageParams struct {
	FileSize int64 `json:"file_size"`
}

func (c *Client) ConfirmClothingImage(ctx context.Context, itemID int64, params ConfirmImageParams) (*domain.ClothingItem, error) {
	var out domain.ClothingItem
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/clothing/%d/image/confirm", itemID), params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetClothing(ctx context.Context, itemID int64) (*domain.ClothingItem, error) {
	var out domain.ClothingItem
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/clothing/%d", itemID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMarketplace fetches all public clothing rows.
func (c *Client) ListMarketplace(ctx context.Context) ([]domain.ClothingItem, error) {
	var out []domain.ClothingItem
	if err := c.do(ctx, http.MethodGet, "/clothing", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListMyClothing(ctx context.Context) ([]domain.ClothingItem, error) {
	var out []domain.ClothingItem
	if err := c.do(ctx, http.MethodGet, "/clothing/mine", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type ConnectionParams struct {
	ConnectedUserID string `json:"connected_user_id"`
}

type connectionStatusResponse struct {
	Status string `json:"status"`
}

// RequestConnection upserts a pending connection to the target account.
// Re-requesting an existing connection is not an error.
func (c *Client) RequestConnection(ctx context.Context, connectedUserID string) error {
	return c.do(ctx, http.MethodPost, "/connections", ConnectionParams{ConnectedUserID: connectedUserID}, &connectionStatusResponse{})
}

func (c *Client) AcceptConnection(ctx context.Context, connectedUserID string) error {
	return c.do(ctx, http.MethodPost, "/connections/accept", ConnectionParams{ConnectedUserID: connectedUserID}, &connectionStatusResponse{})
}

func (c *Client) RemoveConnection(ctx context.Context, otherID string) error {
	return c.do(ctx, http.MethodDelete, "/connections/"+url.PathEscape(otherID), nil, nil)
}

func (c *Client) ListConnections(ctx context.Context) ([]domain.Connection, error) {
	var out []domain.Connection
	if err := c.do(ctx, http.MethodGet, "/connections", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

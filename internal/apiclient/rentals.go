package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"handmeup-backend/internal/domain"
)

type RentalRequestParams struct {
	ListingID string `json:"listing_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Message   string `json:"message"`
}

func (c *Client) RequestRental(ctx context.Context, params RentalRequestParams) (*domain.RentalRequest, error) {
	var out domain.RentalRequest
	if err := c.do(ctx, http.MethodPost, "/rentals/request", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type RentalDecisionParams struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DecideRental confirms or rejects a pending request; Status must be
// "confirmed" or "rejected".
func (c *Client) DecideRental(ctx context.Context, rentalID int64, params RentalDecisionParams) (*domain.RentalRequest, error) {
	var out domain.RentalRequest
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/rentals/%d/confirm", rentalID), params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type PaymentParams struct {
	Method string `json:"method"`
}

type PaymentResult struct {
	Rental  *domain.RentalRequest `json:"rental"`
	Payment *domain.Payment       `json:"payment"`
}

func (c *Client) CompletePayment(ctx context.Context, rentalID int64, params PaymentParams) (*PaymentResult, error) {
	var out PaymentResult
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/rentals/%d/payment", rentalID), params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListPendingRentals(ctx context.Context, ownerID string) ([]domain.RentalRequest, error) {
	path := fmt.Sprintf("/rentals/owner/%s/pending", url.PathEscape(ownerID))
	var out []domain.RentalRequest
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListMyRentals(ctx context.Context, userID string) ([]domain.RentalRequest, error) {
	path := "/rentals/user/" + url.PathEscape(userID)
	var out []domain.RentalRequest
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

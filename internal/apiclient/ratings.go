package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"handmeup-backend/internal/domain"
)

type ClothingRatingParams struct {
	RaterID         int32  `json:"user_id"`
	ListingID       int32  `json:"listing_id"`
	Rating          int32  `json:"rating"`
	QualityRating   int32  `json:"quality_rating"`
	StyleRating     int32  `json:"style_rating"`
	ConditionRating int32  `json:"condition_rating"`
	Comment         string `json:"comment"`
}

func (c *Client) RateClothing(ctx context.Context, params ClothingRatingParams) error {
	return c.do(ctx, http.MethodPost, "/ratings/clothing", params, nil)
}

type UserRatingParams struct {
	RaterID             int32  `json:"rater_id"`
	RatedUserID         string `json:"rated_user_id"`
	Rating              int32  `json:"rating"`
	ReliabilityRating   int32  `json:"reliability_rating"`
	CommunicationRating int32  `json:"communication_rating"`
	CareRating          int32  `json:"care_rating"`
	Comment             string `json:"comment"`
}

func (c *Client) RateUser(ctx context.Context, params UserRatingParams) error {
	return c.do(ctx, http.MethodPost, "/ratings/user", params, nil)
}

func (c *Client) GetClothingRatingStats(ctx context.Context, listingID int32) (*domain.ClothingRatingStats, error) {
	var out domain.ClothingRatingStats
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/ratings/clothing/%d/stats", listingID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListClothingRatings(ctx context.Context, listingID int32) ([]domain.ClothingRating, error) {
	var out []domain.ClothingRating
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/ratings/clothing/%d", listingID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetUserRatingStats(ctx context.Context, userID string) (*domain.UserRatingStats, error) {
	var out domain.UserRatingStats
	if err := c.do(ctx, http.MethodGet, "/ratings/user/"+url.PathEscape(userID)+"/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListUserRatings(ctx context.Context, userID string) ([]domain.UserRating, error) {
	var out []domain.UserRating
	if err := c.do(ctx, http.MethodGet, "/ratings/user/"+url.PathEscape(userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

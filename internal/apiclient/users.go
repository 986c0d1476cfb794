package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"handmeup-backend/internal/domain"
)

type CreateUserParams struct {
	UserID int32  `json:"user_id"`
	Name   string `json:"name"`
	Circle string `json:"circle"`
}

// CreateUser registers a backend user under its derived integer id.
func (c *Client) CreateUser(ctx context.Context, params CreateUserParams) (*domain.BackendUser, error) {
	var out domain.BackendUser
	if err := c.do(ctx, http.MethodPost, "/users", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUser(ctx context.Context, userID int32) (*domain.BackendUser, error) {
	var out domain.BackendUser
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchAccounts matches profile display names, excluding the caller.
func (c *Client) SearchAccounts(ctx context.Context, callerID, query string) ([]domain.AccountSummary, error) {
	path := fmt.Sprintf("/users/%s/search?query=%s", url.PathEscape(callerID), url.QueryEscape(query))
	var out []domain.AccountSummary
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	var out domain.Profile
	if err := c.do(ctx, http.MethodGet, "/profiles/"+url.PathEscape(userID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SaveProfile(ctx context.Context, profile *domain.Profile) error {
	return c.do(ctx, http.MethodPut, "/profiles/"+url.PathEscape(profile.UserID), profile, nil)
}

package apiclient

import (
	"context"
	"net/http"

	"handmeup-backend/internal/domain"
)

type SignUpParams struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type SignInParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResponse struct {
	Account      *domain.Account `json:"account"`
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (c *Client) SignUp(ctx context.Context, params SignUpParams) (*SessionResponse, error) {
	var out SessionResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SignIn(ctx context.Context, params SignInParams) (*SessionResponse, error) {
	var out SessionResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signin", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Refresh exchanges the installed refresh token for a fresh pair. The
// caller is responsible for installing the returned access token.
func (c *Client) Refresh(ctx context.Context) (*TokenPair, error) {
	var out TokenPair
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CurrentAccount(ctx context.Context) (*domain.Account, error) {
	var out domain.Account
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

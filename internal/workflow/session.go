// Package workflow implements the client-side lifecycles on top of the
// typed API client: conversations, rentals, payment, ratings and the
// marketplace view. Every workflow hangs off an explicit Session; there
// is no ambient global account state.
package workflow

import (
	"context"

	"handmeup-backend/internal/apiclient"
	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/identity"
)

// Session holds a signed-in account and its derived engine identity.
// Favorites live only on the session; they do not survive a restart.
type Session struct {
	client *apiclient.Client

	AccountID   string
	Email       string
	DisplayName string

	engineID  int32
	favorites map[int64]struct{}
}

// NewSession builds a session for an already-authenticated account.
// The client must carry the account's access token.
func NewSession(client *apiclient.Client, account *domain.Account) *Session {
	return &Session{
		client:      client,
		AccountID:   account.ID,
		Email:       account.Email,
		DisplayName: account.DisplayName,
		engineID:    identity.NonZeroBackendID(account.ID),
		favorites:   make(map[int64]struct{}),
	}
}

// SignIn authenticates and returns a ready session.
func SignIn(ctx context.Context, client *apiclient.Client, email, password string) (*Session, error) {
	resp, err := client.SignIn(ctx, apiclient.SignInParams{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	client.SetToken(resp.AccessToken)
	return NewSession(client, resp.Account), nil
}

// SignUp registers a new account and returns a ready session.
func SignUp(ctx context.Context, client *apiclient.Client, email, password, displayName string) (*Session, error) {
	resp, err := client.SignUp(ctx, apiclient.SignUpParams{Email: email, Password: password, DisplayName: displayName})
	if err != nil {
		return nil, err
	}
	client.SetToken(resp.AccessToken)
	return NewSession(client, resp.Account), nil
}

// EngineID is the hash-derived integer identity the matching engine and
// messaging surface key on.
func (s *Session) EngineID() int32 {
	return s.engineID
}

// Client exposes the underlying API client.
func (s *Session) Client() *apiclient.Client {
	return s.client
}

// EnsureBackendUser lazily mirrors the account into the engine: fetch by
// the derived id, create on not-found. Collisions between distinct
// accounts map to the same row and are not detected.
func (s *Session) EnsureBackendUser(ctx context.Context) (*domain.BackendUser, error) {
	user, err := s.client.GetUser(ctx, s.engineID)
	if err == nil {
		return user, nil
	}

	return s.client.CreateUser(ctx, apiclient.CreateUserParams{
		UserID: s.engineID,
		Name:   s.DisplayName,
		Circle: "community",
	})
}

// ToggleFavorite flips an item in the session-local favorites set and
// reports the new state.
func (s *Session) ToggleFavorite(itemID int64) bool {
	if _, ok := s.favorites[itemID]; ok {
		delete(s.favorites, itemID)
		return false
	}
	s.favorites[itemID] = struct{}{}
	return true
}

// IsFavorite reports whether the item is in the session favorites.
func (s *Session) IsFavorite(itemID int64) bool {
	_, ok := s.favorites[itemID]
	return ok
}

// Favorites returns the favorited item ids in no particular order.
func (s *Session) Favorites() []int64 {
	out := make([]int64, 0, len(s.favorites))
	for id := range s.favorites {
		out = append(out, id)
	}
	return out
}

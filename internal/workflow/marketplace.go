package workflow

import (
	"context"
	"sort"

	"handmeup-backend/internal/domain"
)

// OwnerGroup is one marketplace section owner with their items.
type OwnerGroup struct {
	OwnerID     string
	DisplayName string
	Items       []domain.ClothingItem
}

// MarketplaceView holds the two marketplace sections. The clothing rows
// and the engine recommendations come from independent sources and are
// never deduplicated or merged by identity.
type MarketplaceView struct {
	OwnerGroups     []OwnerGroup
	Recommendations []domain.Listing
}

// ListingActions says which controls a viewer gets on one item.
type ListingActions struct {
	IsOwn       bool
	CanRent     bool
	CanMessage  bool
	CanRate     bool
	ShowConnect bool
	// Badge is empty when the Connect action shows instead.
	Badge domain.ConnectionStatus
}

// Marketplace builds the aggregated listing view for one session.
type Marketplace struct {
	session *Session
}

func NewMarketplace(session *Session) *Marketplace {
	return &Marketplace{session: session}
}

// Load fetches both sources and groups the row-store items by owner.
// Display names resolve through a profile lookup, then the item's
// denormalized uploader name, then "Unknown User".
func (m *Marketplace) Load(ctx context.Context) (*MarketplaceView, error) {
	items, err := m.session.Client().ListMarketplace(ctx)
	if err != nil {
		return nil, err
	}

	// A recommendations failure does not take down the whole view; the
	// section just renders empty.
	recommendations, err := m.session.Client().ListListings(ctx, m.session.AccountID)
	if err != nil {
		recommendations = []domain.Listing{}
	}

	byOwner := make(map[string][]domain.ClothingItem)
	for _, item := range items {
		byOwner[item.OwnerID] = append(byOwner[item.OwnerID], item)
	}

	ownerIDs := make([]string, 0, len(byOwner))
	for ownerID := range byOwner {
		ownerIDs = append(ownerIDs, ownerID)
	}
	sort.Strings(ownerIDs)

	groups := make([]OwnerGroup, 0, len(ownerIDs))
	for _, ownerID := range ownerIDs {
		groups = append(groups, OwnerGroup{
			OwnerID:     ownerID,
			DisplayName: m.resolveOwnerName(ctx, ownerID, byOwner[ownerID]),
			Items:       byOwner[ownerID],
		})
	}

	return &MarketplaceView{
		OwnerGroups:     groups,
		Recommendations: recommendations,
	}, nil
}

func (m *Marketplace) resolveOwnerName(ctx context.Context, ownerID string, items []domain.ClothingItem) string {
	if profile, err := m.session.Client().GetProfile(ctx, ownerID); err == nil && profile.DisplayName != "" {
		return profile.DisplayName
	}
	for _, item := range items {
		if item.UploaderName != "" {
			return item.UploaderName
		}
	}
	return "Unknown User"
}

// Connections fetches the session user's connection rows, keyed by the
// other account for action gating.
func (m *Marketplace) Connections(ctx context.Context) (map[string]domain.ConnectionStatus, error) {
	conns, err := m.session.Client().ListConnections(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]domain.ConnectionStatus, len(conns))
	for _, conn := range conns {
		other := conn.ConnectedUserID
		if other == m.session.AccountID {
			other = conn.UserID
		}
		out[other] = conn.Status
	}
	return out, nil
}

// Actions gates the per-item controls. Owners see no rent/message/rate
// actions on their own items. Other viewers always get all three; the
// connect control shows only while no connection row exists, otherwise
// the row's status renders as a badge.
func (m *Marketplace) Actions(ownerID string, connections map[string]domain.ConnectionStatus) ListingActions {
	if ownerID == m.session.AccountID {
		return ListingActions{IsOwn: true}
	}

	actions := ListingActions{
		CanRent:    true,
		CanMessage: true,
		CanRate:    true,
	}
	if status, ok := connections[ownerID]; ok {
		actions.Badge = status
	} else {
		actions.ShowConnect = true
	}
	return actions
}

// Connect upserts a pending connection to the target owner. Re-invoking
// while already pending or accepted is a no-op for the caller.
func (m *Marketplace) Connect(ctx context.Context, ownerID string) error {
	return m.session.Client().RequestConnection(ctx, ownerID)
}

package service

import (
	"context"
	"strings"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/identity"
	"handmeup-backend/internal/repository"
)

type listingService struct {
	listingRepo     repository.ListingRepository
	backendUserRepo repository.BackendUserRepository
}

func NewListingService(listingRepo repository.ListingRepository, backendUserRepo repository.BackendUserRepository) ListingService {
	return &listingService{
		listingRepo:     listingRepo,
		backendUserRepo: backendUserRepo,
	}
}

// CreateListing publishes an item into the matching engine. The engine
// keys owners by the small integer id derived from the account UUID, so
// the backing user row is created on first use.
func (s *listingService) CreateListing(ctx context.Context, callerID, callerName, title, description string, privacy domain.Visibility) (*domain.Listing, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrValidation
	}
	if privacy != domain.VisibilityPublic && privacy != domain.VisibilityCircle {
		return nil, ErrValidation
	}

	ownerID := identity.BackendID(callerID)
	if _, err := s.backendUserRepo.GetByID(ctx, ownerID); err != nil {
		user := &domain.BackendUser{
			UserID: ownerID,
			Name:   callerName,
			Circle: "community",
		}
		if err := s.backendUserRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	listing := &domain.Listing{
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Privacy:     privacy,
		OwnerName:   callerName,
	}
	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *listingService) GetListing(ctx context.Context, id int32) (*domain.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return listing, nil
}

func (s *listingService) ListListings(ctx context.Context, callerID string) ([]domain.Listing, error) {
	return s.listingRepo.List(ctx, identity.BackendID(callerID))
}

package service

import (
	"context"
	"strings"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/repository"
)

type profileService struct {
	accountRepo repository.AccountRepository
}

func NewProfileService(accountRepo repository.AccountRepository) ProfileService {
	return &profileService{accountRepo: accountRepo}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.accountRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return profile, nil
}

func (s *profileService) SaveProfile(ctx context.Context, profile *domain.Profile) error {
	if profile.UserID == "" || strings.TrimSpace(profile.DisplayName) == "" {
		return ErrValidation
	}
	return s.accountRepo.UpsertProfile(ctx, profile)
}

// SearchUsers finds accounts by display name substring, excluding the
// caller. Results carry the account UUID; messaging ids are derived
// from it on the client.
func (s *profileService) SearchUsers(ctx context.Context, query, callerID string) ([]domain.AccountSummary, error) {
	// An empty query matches every profile except the caller's; clients
	// are expected to short-circuit empty searches themselves.
	query = strings.TrimSpace(query)

	profiles, err := s.accountRepo.SearchProfiles(ctx, query, callerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.AccountSummary, 0, len(profiles))
	for _, p := range profiles {
		summary := domain.AccountSummary{
			UserID: p.UserID,
			Name:   p.DisplayName,
			Email:  p.UserID,
			Circle: "community",
		}
		if account, err := s.accountRepo.GetAccountByID(ctx, p.UserID); err == nil {
			summary.Email = account.Email
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

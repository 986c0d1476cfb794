package service

import (
	"context"
	"math"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/repository"
)

type ratingService struct {
	ratingRepo repository.RatingRepository
}

func NewRatingService(ratingRepo repository.RatingRepository) RatingService {
	return &ratingService{ratingRepo: ratingRepo}
}

func (s *ratingService) RateClothing(ctx context.Context, rating *domain.ClothingRating) error {
	if rating.Rating < 1 || rating.Rating > 5 {
		return ErrValidation
	}
	for _, dim := range []int32{rating.QualityRating, rating.StyleRating, rating.ConditionRating} {
		if dim < 0 || dim > 5 {
			return ErrValidation
		}
	}
	return s.ratingRepo.CreateClothingRating(ctx, rating)
}

func (s *ratingService) GetClothingRatings(ctx context.Context, listingID int32) ([]domain.ClothingRating, *domain.ClothingRatingStats, error) {
	ratings, err := s.ratingRepo.ListClothingRatings(ctx, listingID)
	if err != nil {
		return nil, nil, err
	}

	stats := &domain.ClothingRatingStats{}
	if len(ratings) == 0 {
		return ratings, stats, nil
	}

	var sum, quality, style, condition int64
	for _, r := range ratings {
		sum += int64(r.Rating)
		quality += int64(r.QualityRating)
		style += int64(r.StyleRating)
		condition += int64(r.ConditionRating)
	}
	n := float64(len(ratings))
	stats.AverageRating = round1(float64(sum) / n)
	stats.Quality = round1(float64(quality) / n)
	stats.Style = round1(float64(style) / n)
	stats.Condition = round1(float64(condition) / n)
	stats.TotalRatings = int32(len(ratings))
	return ratings, stats, nil
}

func (s *ratingService) RateUser(ctx context.Context, rating *domain.UserRating) error {
	if rating.Rating < 1 || rating.Rating > 5 {
		return ErrValidation
	}
	if rating.RatedUserID == "" {
		return ErrValidation
	}
	for _, dim := range []int32{rating.ReliabilityRating, rating.CommunicationRating, rating.CareRating} {
		if dim < 0 || dim > 5 {
			return ErrValidation
		}
	}
	return s.ratingRepo.CreateUserRating(ctx, rating)
}

func (s *ratingService) GetUserRatings(ctx context.Context, ratedUserID string) ([]domain.UserRating, *domain.UserRatingStats, error) {
	ratings, err := s.ratingRepo.ListUserRatings(ctx, ratedUserID)
	if err != nil {
		return nil, nil, err
	}

	stats := &domain.UserRatingStats{}
	if len(ratings) == 0 {
		return ratings, stats, nil
	}

	var sum, reliability, communication, care int64
	for _, r := range ratings {
		sum += int64(r.Rating)
		reliability += int64(r.ReliabilityRating)
		communication += int64(r.CommunicationRating)
		care += int64(r.CareRating)
	}
	n := float64(len(ratings))
	stats.AverageRating = round1(float64(sum) / n)
	stats.Reliability = round1(float64(reliability) / n)
	stats.Communication = round1(float64(communication) / n)
	stats.Care = round1(float64(care) / n)
	stats.TotalRatings = int32(len(ratings))
	return ratings, stats, nil
}

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

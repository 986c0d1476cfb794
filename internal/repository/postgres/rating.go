package postgres

import (
	"context"
	"database/sql"
	"time"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/repository"
)

type ratingRepository struct {
	db *sql.DB
}

func NewRatingRepository(db *sql.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) CreateClothingRating(ctx context.Context, rating *domain.ClothingRating) error {
	// No uniqueness per rater/target: duplicate submissions simply add
	// another row and shift the average.
	query := `INSERT INTO clothing_ratings (rater_id, listing_id, rating, quality_rating, style_rating, condition_rating, comment, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	rating.CreatedOn = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query,
		rating.RaterID, rating.ListingID, rating.Rating,
		rating.QualityRating, rating.StyleRating, rating.ConditionRating,
		rating.Comment, rating.CreatedOn,
	).Scan(&rating.ID)
}

func (r *ratingRepository) ListClothingRatings(ctx context.Context, listingID int32) ([]domain.ClothingRating, error) {
	query := `SELECT id, rater_id, listing_id, rating, quality_rating, style_rating, condition_rating, comment, created_on
	          FROM clothing_ratings WHERE listing_id = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []domain.ClothingRating
	for rows.Next() {
		var cr domain.ClothingRating
		if err := rows.Scan(&cr.ID, &cr.RaterID, &cr.ListingID, &cr.Rating,
			&cr.QualityRating, &cr.StyleRating, &cr.ConditionRating, &cr.Comment, &cr.CreatedOn); err != nil {
			return nil, err
		}
		ratings = append(ratings, cr)
	}
	return ratings, rows.Err()
}

func (r *ratingRepository) CreateUserRating(ctx context.Context, rating *domain.UserRating) error {
	query := `INSERT INTO user_ratings (rater_id, rated_user_id, rating, reliability_rating, communication_rating, care_rating, comment, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	rating.CreatedOn = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query,
		rating.RaterID, rating.RatedUserID, rating.Rating,
		rating.ReliabilityRating, rating.CommunicationRating, rating.CareRating,
		rating.Comment, rating.CreatedOn,
	).Scan(&rating.ID)
}

func (r *ratingRepository) ListUserRatings(ctx context.Context, ratedUserID string) ([]domain.UserRating, error) {
	query := `SELECT id, rater_id, rated_user_id, rating, reliability_rating, communication_rating, care_rating, comment, created_on
	          FROM user_ratings WHERE rated_user_id = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, ratedUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []domain.UserRating
	for rows.Next() {
		var ur domain.UserRating
		if err := rows.Scan(&ur.ID, &ur.RaterID, &ur.RatedUserID, &ur.Rating,
			&ur.ReliabilityRating, &ur.CommunicationRating, &ur.CareRating, &ur.Comment, &ur.CreatedOn); err != nil {
			return nil, err
		}
		ratings = append(ratings, ur)
	}
	return ratings, rows.Err()
}

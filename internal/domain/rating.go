package domain

import "time"

// ClothingRating targets a matching-engine listing by its integer id.
// The rater id is the hash-derived backend id of the rating account.
type ClothingRating struct {
	ID              int64     `json:"id"`
	RaterID         int32     `json:"user_id"`
	ListingID       int32     `json:"listing_id"`
	Rating          int32     `json:"rating"`
	QualityRating   int32     `json:"quality_rating"`
	StyleRating     int32     `json:"style_rating"`
	ConditionRating int32     `json:"condition_rating"`
	Comment         string    `json:"comment"`
	CreatedOn       time.Time `json:"created_on"`
}

// UserRating targets an account by its native UUID while the rater is
// identified by the hash-derived integer id. The asymmetry is inherited
// from the original clients and kept for interop.
type UserRating struct {
	ID                  int64     `json:"id"`
	RaterID             int32     `json:"rater_id"`
	RatedUserID         string    `json:"rated_user_id"`
	Rating              int32     `json:"rating"`
	ReliabilityRating   int32     `json:"reliability_rating"`
	CommunicationRating int32     `json:"communication_rating"`
	CareRating          int32     `json:"care_rating"`
	Comment             string    `json:"comment"`
	CreatedOn           time.Time `json:"created_on"`
}

// ClothingRatingStats is the aggregate for one listing. All averages are
// rounded to one decimal. A target with no ratings yields the zero value
// with TotalRatings == 0, which renders as "no ratings yet", never 0.0.
type ClothingRatingStats struct {
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int32   `json:"total_ratings"`
	Quality       float64 `json:"quality"`
	Style         float64 `json:"style"`
	Condition     float64 `json:"condition"`
}

type UserRatingStats struct {
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int32   `json:"total_ratings"`
	Reliability   float64 `json:"reliability"`
	Communication float64 `json:"communication"`
	Care          float64 `json:"care"`
}

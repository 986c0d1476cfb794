package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"handmeup-backend/internal/apiclient"
	"handmeup-backend/internal/domain"
)

const maxCommentLength = 500

var (
	ErrRatingIncomplete = errors.New("overall rating and all three dimension ratings must be set between 1 and 5")
	ErrCommentTooLong   = errors.New("comment exceeds 500 characters")
)

// RatingInput is one submission: overall plus exactly three dimension
// scores (quality/style/condition for items, reliability/communication/
// care for users), all required in [1,5].
type RatingInput struct {
	Overall    int32
	Dimensions [3]int32
	Comment    string
}

// Validate runs before any network call; an incomplete rating never
// reaches the backend.
func (in RatingInput) Validate() error {
	if in.Overall < 1 || in.Overall > 5 {
		return ErrRatingIncomplete
	}
	for _, d := range in.Dimensions {
		if d < 1 || d > 5 {
			return ErrRatingIncomplete
		}
	}
	if len(in.Comment) > maxCommentLength {
		return ErrCommentTooLong
	}
	return nil
}

// Ratings submits and reads ratings for one session. The rater is always
// the session's hash-derived engine id; a listing target keeps its native
// integer id while a user target keeps its native account identifier.
// That asymmetry is inherited from the original clients and preserved
// for interop, not a deliberate contract.
type Ratings struct {
	session *Session
}

func NewRatings(session *Session) *Ratings {
	return &Ratings{session: session}
}

// RateListing submits a rating against a matching-engine listing.
func (r *Ratings) RateListing(ctx context.Context, listingID int32, in RatingInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	return r.session.Client().RateClothing(ctx, apiclient.ClothingRatingParams{
		RaterID:         r.session.EngineID(),
		ListingID:       listingID,
		Rating:          in.Overall,
		QualityRating:   in.Dimensions[0],
		StyleRating:     in.Dimensions[1],
		ConditionRating: in.Dimensions[2],
		Comment:         strings.TrimSpace(in.Comment),
	})
}

// RateUser submits a rating against another account.
func (r *Ratings) RateUser(ctx context.Context, targetAccountID string, in RatingInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	return r.session.Client().RateUser(ctx, apiclient.UserRatingParams{
		RaterID:             r.session.EngineID(),
		RatedUserID:         targetAccountID,
		Rating:              in.Overall,
		ReliabilityRating:   in.Dimensions[0],
		CommunicationRating: in.Dimensions[1],
		CareRating:          in.Dimensions[2],
		Comment:             strings.TrimSpace(in.Comment),
	})
}

func (r *Ratings) ListingStats(ctx context.Context, listingID int32) (*domain.ClothingRatingStats, error) {
	return r.session.Client().GetClothingRatingStats(ctx, listingID)
}

func (r *Ratings) UserStats(ctx context.Context, accountID string) (*domain.UserRatingStats, error) {
	return r.session.Client().GetUserRatingStats(ctx, accountID)
}

// StarDisplay is a rating rendered as exactly five symbols.
type StarDisplay struct {
	Filled int
	Half   int
	Empty  int
}

// Stars renders a rating value: floor(r) filled, one half when the
// fraction reaches 0.5, the rest empty. Always five symbols total.
func Stars(rating float64) StarDisplay {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}

	filled := int(rating)
	half := 0
	if rating-float64(filled) >= 0.5 {
		half = 1
	}
	return StarDisplay{
		Filled: filled,
		Half:   half,
		Empty:  5 - filled - half,
	}
}

func (d StarDisplay) String() string {
	return strings.Repeat("★", d.Filled) + strings.Repeat("⯨", d.Half) + strings.Repeat("☆", d.Empty)
}

// FormatStats renders the aggregate line shown next to the stars. A
// target with zero ratings gets a distinct zero-state, never "0.0".
func FormatStats(average float64, total int32) string {
	if total == 0 {
		return "No ratings yet"
	}
	return fmt.Sprintf("%.1f (%d ratings)", average, total)
}

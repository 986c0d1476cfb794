package workflow

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/identity"
)

func TestRatingInputValidate(t *testing.T) {
	valid := RatingInput{Overall: 4, Dimensions: [3]int32{5, 3, 4}, Comment: "great fit"}
	assert.NoError(t, valid.Validate())

	t.Run("unset overall blocks regardless of dimensions", func(t *testing.T) {
		in := valid
		in.Overall = 0
		assert.ErrorIs(t, in.Validate(), ErrRatingIncomplete)
	})

	t.Run("every dimension must be set", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			in := valid
			in.Dimensions[i] = 0
			assert.ErrorIs(t, in.Validate(), ErrRatingIncomplete)
		}
	})

	t.Run("scores above five rejected", func(t *testing.T) {
		in := valid
		in.Overall = 6
		assert.ErrorIs(t, in.Validate(), ErrRatingIncomplete)
	})

	t.Run("comment capped at 500 chars", func(t *testing.T) {
		in := valid
		in.Comment = string(make([]byte, 501))
		assert.ErrorIs(t, in.Validate(), ErrCommentTooLong)
	})
}

func TestRateListingIdentity(t *testing.T) {
	var got map[string]any
	session := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ratings/clothing", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeTestJSON(w, http.StatusCreated, map[string]bool{"ok": true})
	}))

	ratings := NewRatings(session)
	err := ratings.RateListing(context.Background(), 42, RatingInput{Overall: 5, Dimensions: [3]int32{5, 5, 5}})
	require.NoError(t, err)

	// The rater travels as the hash-derived engine id, the listing as its
	// native integer id.
	assert.Equal(t, float64(identity.NonZeroBackendID("acct-1")), got["user_id"])
	assert.Equal(t, float64(42), got["listing_id"])
}

func TestRateUserIdentity(t *testing.T) {
	var got map[string]any
	session := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ratings/user", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeTestJSON(w, http.StatusCreated, map[string]bool{"ok": true})
	}))

	ratings := NewRatings(session)
	err := ratings.RateUser(context.Background(), "acct-2", RatingInput{Overall: 4, Dimensions: [3]int32{4, 4, 4}})
	require.NoError(t, err)

	// The target keeps its native account identifier while the rater is
	// still the derived integer.
	assert.Equal(t, "acct-2", got["rated_user_id"])
	assert.Equal(t, float64(identity.NonZeroBackendID("acct-1")), got["rater_id"])
}

func TestInvalidRatingNeverReachesBackend(t *testing.T) {
	session := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no network call expected")
	}))

	ratings := NewRatings(session)
	err := ratings.RateListing(context.Background(), 42, RatingInput{Overall: 0, Dimensions: [3]int32{5, 5, 5}})
	assert.ErrorIs(t, err, ErrRatingIncomplete)
}

func TestStars(t *testing.T) {
	cases := []struct {
		rating float64
		want   StarDisplay
	}{
		{3.5, StarDisplay{Filled: 3, Half: 1, Empty: 1}},
		{0, StarDisplay{Filled: 0, Half: 0, Empty: 5}},
		{5, StarDisplay{Filled: 5, Half: 0, Empty: 0}},
		{4.2, StarDisplay{Filled: 4, Half: 0, Empty: 1}},
		{4.7, StarDisplay{Filled: 4, Half: 1, Empty: 0}},
		{2.49, StarDisplay{Filled: 2, Half: 0, Empty: 3}},
	}
	for _, tc := range cases {
		got := Stars(tc.rating)
		assert.Equal(t, tc.want, got, "rating %v", tc.rating)
		assert.Equal(t, 5, got.Filled+got.Half+got.Empty, "rating %v must render five symbols", tc.rating)
	}
}

func TestFormatStats(t *testing.T) {
	assert.Equal(t, "No ratings yet", FormatStats(0, 0))
	assert.Equal(t, "4.5 (12 ratings)", FormatStats(4.5, 12))
}

func TestListingStatsZeroState(t *testing.T) {
	session := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(w, http.StatusOK, domain.ClothingRatingStats{})
	}))

	ratings := NewRatings(session)
	stats, err := ratings.ListingStats(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int32(0), stats.TotalRatings)
	assert.Equal(t, "No ratings yet", FormatStats(stats.AverageRating, stats.TotalRatings))
}

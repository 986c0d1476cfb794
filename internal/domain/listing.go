package domain

import "time"

type Visibility string

const (
	VisibilityPublic Visibility = "public"
	VisibilityCircle Visibility = "circle"
)

// ClothingItem is a row in the clothing table, the row-store side of the
// marketplace. Owner and uploader identity are account UUID strings.
type ClothingItem struct {
	ID               int64      `json:"id"`
	OwnerID          string     `json:"owner_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	PricePerDayCents int32      `json:"price_per_day_cents"`
	Visibility       Visibility `json:"visibility"`
	UploaderName     string     `json:"uploader_name"`
	ImageURL         string     `json:"image_url"`
	CreatedOn        time.Time  `json:"created_on"`
}

// Listing is an entry in the matching engine, the source behind
// GET /listings, keyed by small integer ids like BackendUser.
type Listing struct {
	ListingID   int32      `json:"listing_id"`
	OwnerID     int32      `json:"owner_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Privacy     Visibility `json:"privacy"`
	OwnerName   string     `json:"owner_name"`
}

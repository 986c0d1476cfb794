package domain

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusConfirmed RentalStatus = "confirmed"
	RentalStatusRejected  RentalStatus = "rejected"
	RentalStatusCompleted RentalStatus = "completed"
)

// Terminal reports whether the status admits no further transition.
func (s RentalStatus) Terminal() bool {
	return s == RentalStatusRejected || s == RentalStatusCompleted
}

// RentalRequest is the unit of the borrow workflow. Borrower and owner are
// account UUID strings; the listing id is the clothing row id carried as a
// string, matching the wire format the original store used.
type RentalRequest struct {
	RentalID   int64        `json:"rental_id"`
	BorrowerID string       `json:"borrower_id"`
	ListingID  string       `json:"listing_id"`
	OwnerID    string       `json:"owner_id"`
	StartDate  string       `json:"start_date"`
	EndDate    string       `json:"end_date"`
	Status     RentalStatus `json:"status"`
	Message    string       `json:"message"`
	CreatedAt  string       `json:"created_at"`
	UpdatedAt  string       `json:"updated_at"`

	// Populated for owner-facing listings of pending requests.
	BorrowerName     string `json:"borrower_name,omitempty"`
	ItemTitle        string `json:"item_title,omitempty"`
	PricePerDayCents int32  `json:"price_per_day_cents,omitempty"`
}

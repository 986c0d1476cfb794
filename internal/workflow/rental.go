package workflow

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"handmeup-backend/internal/apiclient"
	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/utils"
)

var (
	ErrDatesRequired = errors.New("start and end dates are required")
	ErrDateOrder     = errors.New("start date must be before end date")
)

// DecisionAction is the owner's verdict on a pending request.
type DecisionAction string

const (
	ActionConfirm DecisionAction = "confirmed"
	ActionReject  DecisionAction = "rejected"
)

// Rentals drives the request/confirm/reject lifecycle for one session.
// Every mutation is followed by a re-fetch; there are no optimistic
// local updates.
type Rentals struct {
	session *Session
}

func NewRentals(session *Session) *Rentals {
	return &Rentals{session: session}
}

// Request creates a pending rental request. Both dates must be present
// and ordered before any network call happens; a backend rejection is
// returned with its detail message verbatim.
func (r *Rentals) Request(ctx context.Context, itemID int64, startDate, endDate, message string) (*domain.RentalRequest, error) {
	if startDate == "" || endDate == "" {
		return nil, ErrDatesRequired
	}
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}
	if !start.Before(end) {
		return nil, ErrDateOrder
	}

	return r.session.Client().RequestRental(ctx, apiclient.RentalRequestParams{
		ListingID: strconv.FormatInt(itemID, 10),
		StartDate: startDate,
		EndDate:   endDate,
		Message:   message,
	})
}

// PendingForOwner lists requests awaiting this owner's decision. Empty
// is a valid result.
func (r *Rentals) PendingForOwner(ctx context.Context) ([]domain.RentalRequest, error) {
	return r.session.Client().ListPendingRentals(ctx, r.session.AccountID)
}

// Decide confirms or rejects a pending request, then re-fetches the
// pending list to reconcile. A non-success decision is recoverable: the
// error is returned alongside the refreshed list so the caller can keep
// its prior state and re-render from the reconciled data.
func (r *Rentals) Decide(ctx context.Context, rentalID int64, action DecisionAction, note string) (*domain.RentalRequest, []domain.RentalRequest, error) {
	rental, decideErr := r.session.Client().DecideRental(ctx, rentalID, apiclient.RentalDecisionParams{
		Status:  string(action),
		Message: note,
	})

	pending, fetchErr := r.PendingForOwner(ctx)
	if decideErr != nil {
		return nil, pending, decideErr
	}
	if fetchErr != nil {
		return rental, nil, fetchErr
	}
	return rental, pending, nil
}

// Mine lists every rental the session user participates in, as borrower
// or owner.
func (r *Rentals) Mine(ctx context.Context) ([]domain.RentalRequest, error) {
	return r.session.Client().ListMyRentals(ctx, r.session.AccountID)
}

package workflow

import (
	"context"
	"errors"
	"strings"
	"time"

	"handmeup-backend/internal/apiclient"
	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/utils"
)

const defaultProcessingDelay = 1500 * time.Millisecond

var (
	ErrRentalNotConfirmed = errors.New("only a confirmed rental can be paid")
	ErrIncompleteCard     = errors.New("payment details are incomplete")
)

// PaymentForm is what the payment modal collects. A failed submission
// leaves the form untouched so the user can retry with the entered data.
type PaymentForm struct {
	CardholderName string
	CardNumber     string // formatted in groups of 4
	ExpiryDate     string // MM/YY
	CVV            string
	Email          string
}

// Payments completes confirmed rentals for one session.
type Payments struct {
	session *Session
	delay   time.Duration
}

func NewPayments(session *Session) *Payments {
	return &Payments{session: session, delay: defaultProcessingDelay}
}

// SetProcessingDelay overrides the simulated processing latency.
func (p *Payments) SetProcessingDelay(d time.Duration) {
	p.delay = d
}

// Total computes the amount due in cents: chargeable days times the
// daily price, with the end date exclusive. Missing dates yield 0.
func Total(startDate, endDate string, pricePerDayCents int32) int64 {
	if startDate == "" || endDate == "" {
		return 0
	}
	total, err := utils.RentalTotalCents(startDate, endDate, pricePerDayCents)
	if err != nil {
		return 0
	}
	return total
}

// Submit validates the rental state and the form, simulates processing
// latency, then calls the payment endpoint. On failure the caller's form
// state is preserved; nothing here mutates it.
func (p *Payments) Submit(ctx context.Context, rental *domain.RentalRequest, form PaymentForm) (*apiclient.PaymentResult, error) {
	if rental.Status != domain.RentalStatusConfirmed {
		return nil, ErrRentalNotConfirmed
	}
	if err := ValidatePaymentForm(form); err != nil {
		return nil, err
	}

	select {
	case <-time.After(p.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return p.session.Client().CompletePayment(ctx, rental.RentalID, apiclient.PaymentParams{Method: "credit_card"})
}

// ValidatePaymentForm checks the card fields are fully entered.
func ValidatePaymentForm(form PaymentForm) error {
	if strings.TrimSpace(form.CardholderName) == "" {
		return ErrIncompleteCard
	}
	if len(digitsOnly(form.CardNumber)) != 16 {
		return ErrIncompleteCard
	}
	if len(form.ExpiryDate) != 5 || form.ExpiryDate[2] != '/' {
		return ErrIncompleteCard
	}
	if len(form.CVV) != 3 {
		return ErrIncompleteCard
	}
	return nil
}

// FormatCardNumber re-masks card input on every keystroke: strip
// non-digits, cap at 16 digits, re-insert a space after each group of 4.
// Applying it to its own output changes nothing.
func FormatCardNumber(input string) string {
	digits := digitsOnly(input)
	if len(digits) > 16 {
		digits = digits[:16]
	}

	var b strings.Builder
	for i, c := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// FormatExpiry masks expiry input as MM/YY, capped at 4 digits.
func FormatExpiry(input string) string {
	digits := digitsOnly(input)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}

// FormatCVV keeps at most 3 digits.
func FormatCVV(input string) string {
	digits := digitsOnly(input)
	if len(digits) > 3 {
		digits = digits[:3]
	}
	return digits
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, c := range s {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

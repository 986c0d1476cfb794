package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
)

const PaymentMethodCreditCard = "credit_card"

// Payment records a confirm-payment call against a confirmed rental.
// There is no gateway behind it; the row is the receipt.
type Payment struct {
	ID          int64         `json:"id"`
	RentalID    int64         `json:"rental_id"`
	AmountCents int64         `json:"amount_cents"`
	Method      string        `json:"method"`
	Status      PaymentStatus `json:"status"`
	CreatedOn   time.Time     `json:"created_on"`
}

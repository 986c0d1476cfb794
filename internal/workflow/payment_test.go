package workflow

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"handmeup-backend/internal/domain"
)

func TestFormatCardNumber(t *testing.T) {
	t.Run("groups digits by four", func(t *testing.T) {
		assert.Equal(t, "4242 4242 4242 4242", FormatCardNumber("4242424242424242"))
	})

	t.Run("strips non-digits", func(t *testing.T) {
		assert.Equal(t, "4242 4242", FormatCardNumber("4242-4242abc"))
	})

	t.Run("caps at sixteen digits", func(t *testing.T) {
		assert.Equal(t, "4242 4242 4242 4242", FormatCardNumber("42424242424242429999"))
	})

	t.Run("idempotent on its own output", func(t *testing.T) {
		once := FormatCardNumber("4242424242424242")
		assert.Equal(t, once, FormatCardNumber(once))
	})

	t.Run("partial input keeps partial groups", func(t *testing.T) {
		assert.Equal(t, "4242 42", FormatCardNumber("424242"))
	})
}

func TestFormatExpiry(t *testing.T) {
	assert.Equal(t, "12/25", FormatExpiry("1225"))
	assert.Equal(t, "12", FormatExpiry("12"))
	assert.Equal(t, "1", FormatExpiry("1"))
	assert.Equal(t, "12/25", FormatExpiry("12/25"))
	assert.Equal(t, "12/25", FormatExpiry("122599"))

	once := FormatExpiry("1225")
	assert.Equal(t, once, FormatExpiry(once))
}

func TestFormatCVV(t *testing.T) {
	assert.Equal(t, "123", FormatCVV("123"))
	assert.Equal(t, "123", FormatCVV("12345"))
	assert.Equal(t, "12", FormatCVV("1a2"))
}

func TestTotal(t *testing.T) {
	t.Run("exclusive end date", func(t *testing.T) {
		// Three chargeable days at $10/day.
		assert.Equal(t, int64(3000), Total("2024-01-01", "2024-01-04", 1000))
	})

	t.Run("two day rental", func(t *testing.T) {
		assert.Equal(t, int64(2*1500), Total("2024-03-01", "2024-03-03", 1500))
	})

	t.Run("missing dates yield zero", func(t *testing.T) {
		assert.Equal(t, int64(0), Total("", "2024-01-04", 1000))
		assert.Equal(t, int64(0), Total("2024-01-01", "", 1000))
		assert.Equal(t, int64(0), Total("", "", 1000))
	})

	t.Run("invalid dates yield zero", func(t *testing.T) {
		assert.Equal(t, int64(0), Total("not-a-date", "2024-01-04", 1000))
	})
}

func TestValidatePaymentForm(t *testing.T) {
	valid := PaymentForm{
		CardholderName: "Alice Smith",
		CardNumber:     "4242 4242 4242 4242",
		ExpiryDate:     "12/25",
		CVV:            "123",
		Email:          "alice@example.com",
	}
	assert.NoError(t, ValidatePaymentForm(valid))

	cases := []struct {
		name   string
		mutate func(*PaymentForm)
	}{
		{"blank cardholder", func(f *PaymentForm) { f.CardholderName = "  " }},
		{"short card number", func(f *PaymentForm) { f.CardNumber = "4242 4242" }},
		{"missing expiry separator", func(f *PaymentForm) { f.ExpiryDate = "1225" }},
		{"short cvv", func(f *PaymentForm) { f.CVV = "12" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := valid
			tc.mutate(&form)
			assert.ErrorIs(t, ValidatePaymentForm(form), ErrIncompleteCard)
		})
	}
}

func TestSubmitPayment(t *testing.T) {
	form := PaymentForm{
		CardholderName: "Alice Smith",
		CardNumber:     "4242 4242 4242 4242",
		ExpiryDate:     "12/25",
		CVV:            "123",
		Email:          "alice@example.com",
	}

	t.Run("rejects unconfirmed rental before any network call", func(t *testing.T) {
		session := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("no network call expected")
		}))
		payments := NewPayments(session)
		payments.SetProcessingDelay(0)

		rental := &domain.RentalRequest{RentalID: 7, Status: domain.RentalStatusPending}
		_, err := payments.Submit(context.Background(), rental, form)
		assert.ErrorIs(t, err, ErrRentalNotConfirmed)
	})

	t.Run("completes a confirmed rental", func(t *testing.T) {
		session := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/rentals/7/payment", r.URL.Path)
			writeTestJSON(w, http.StatusOK, map[string]any{
				"rental":  domain.RentalRequest{RentalID: 7, Status: domain.RentalStatusCompleted},
				"payment": domain.Payment{ID: 1, RentalID: 7, AmountCents: 3000},
			})
		}))
		payments := NewPayments(session)
		payments.SetProcessingDelay(0)

		rental := &domain.RentalRequest{RentalID: 7, Status: domain.RentalStatusConfirmed}
		result, err := payments.Submit(context.Background(), rental, form)
		require.NoError(t, err)
		assert.Equal(t, domain.RentalStatusCompleted, result.Rental.Status)
		assert.Equal(t, int64(3000), result.Payment.AmountCents)
	})

	t.Run("backend failure surfaces as error", func(t *testing.T) {
		session := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(w, http.StatusBadRequest, map[string]string{"detail": "Rental is not confirmed"})
		}))
		payments := NewPayments(session)
		payments.SetProcessingDelay(0)

		rental := &domain.RentalRequest{RentalID: 7, Status: domain.RentalStatusConfirmed}
		_, err := payments.Submit(context.Background(), rental, form)
		require.Error(t, err)
		assert.Equal(t, "Rental is not confirmed", err.Error())
	})
}

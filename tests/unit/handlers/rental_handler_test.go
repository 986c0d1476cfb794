package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "handmeup-backend/internal/api/http"
	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/service"
)

func authedRequest(t *testing.T, method, target, body, accountID string, vars map[string]string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = req.WithContext(httpapi.ContextWithAccountID(req.Context(), accountID))
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func TestRentalHandler_Request(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		rentalSvc := new(MockRentalService)
		handler := httpapi.NewRentalHandler(rentalSvc)

		rental := &domain.RentalRequest{RentalID: 9, BorrowerID: "acct-1", ListingID: "5", Status: domain.RentalStatusPending}
		rentalSvc.On("CreateRentalRequest", mock.Anything, "acct-1", "5", "2024-03-01", "2024-03-03", "weekend").
			Return(rental, nil)

		body := `{"listing_id":"5","start_date":"2024-03-01","end_date":"2024-03-03","message":"weekend"}`
		req := authedRequest(t, http.MethodPost, "/rentals", body, "acct-1", nil)
		rec := httptest.NewRecorder()

		handler.Request(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var got domain.RentalRequest
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, int64(9), got.RentalID)
		rentalSvc.AssertExpectations(t)
	})

	t.Run("ValidationErrorBecomes400", func(t *testing.T) {
		rentalSvc := new(MockRentalService)
		handler := httpapi.NewRentalHandler(rentalSvc)

		rentalSvc.On("CreateRentalRequest", mock.Anything, "acct-1", "5", "2024-03-03", "2024-03-01", "").
			Return(nil, service.ErrValidation)

		body := `{"listing_id":"5","start_date":"2024-03-03","end_date":"2024-03-01"}`
		req := authedRequest(t, http.MethodPost, "/rentals", body, "acct-1", nil)
		rec := httptest.NewRecorder()

		handler.Request(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var got map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Contains(t, got, "detail")
	})
}

func TestRentalHandler_Decide(t *testing.T) {
	t.Run("Confirm", func(t *testing.T) {
		rentalSvc := new(MockRentalService)
		handler := httpapi.NewRentalHandler(rentalSvc)

		confirmed := &domain.RentalRequest{RentalID: 9, OwnerID: "acct-1", Status: domain.RentalStatusConfirmed}
		rentalSvc.On("ConfirmRental", mock.Anything, "acct-1", int64(9)).Return(confirmed, nil)

		req := authedRequest(t, http.MethodPost, "/rentals/9/confirm", `{"status":"confirmed"}`, "acct-1",
			map[string]string{"rentalId": "9"})
		rec := httptest.NewRecorder()

		handler.Decide(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		rentalSvc.AssertExpectations(t)
	})

	t.Run("Reject", func(t *testing.T) {
		rentalSvc := new(MockRentalService)
		handler := httpapi.NewRentalHandler(rentalSvc)

		rejected := &domain.RentalRequest{RentalID: 9, OwnerID: "acct-1", Status: domain.RentalStatusRejected}
		rentalSvc.On("RejectRental", mock.Anything, "acct-1", int64(9)).Return(rejected, nil)

		req := authedRequest(t, http.MethodPost, "/rentals/9/confirm", `{"status":"rejected","message":"not this week"}`, "acct-1",
			map[string]string{"rentalId": "9"})
		rec := httptest.NewRecorder()

		handler.Decide(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		rentalSvc.AssertExpectations(t)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		rentalSvc := new(MockRentalService)
		handler := httpapi.NewRentalHandler(rentalSvc)

		req := authedRequest(t, http.MethodPost, "/rentals/9/confirm", `{"status":"maybe"}`, "acct-1",
			map[string]string{"rentalId": "9"})
		rec := httptest.NewRecorder()

		handler.Decide(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		rentalSvc.AssertNotCalled(t, "ConfirmRental")
		rentalSvc.AssertNotCalled(t, "RejectRental")
	})

	t.Run("NonOwnerBecomes403", func(t *testing.T) {
		rentalSvc := new(MockRentalService)
		handler := httpapi.NewRentalHandler(rentalSvc)

		rentalSvc.On("ConfirmRental", mock.Anything, "acct-2", int64(9)).Return(nil, service.ErrUnauthorized)

		req := authedRequest(t, http.MethodPost, "/rentals/9/confirm", `{"status":"confirmed"}`, "acct-2",
			map[string]string{"rentalId": "9"})
		rec := httptest.NewRecorder()

		handler.Decide(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("BadRentalID", func(t *testing.T) {
		rentalSvc := new(MockRentalService)
		handler := httpapi.NewRentalHandler(rentalSvc)

		req := authedRequest(t, http.MethodPost, "/rentals/abc/confirm", `{"status":"confirmed"}`, "acct-1",
			map[string]string{"rentalId": "abc"})
		rec := httptest.NewRecorder()

		handler.Decide(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRentalHandler_Payment(t *testing.T) {
	rentalSvc := new(MockRentalService)
	handler := httpapi.NewRentalHandler(rentalSvc)

	completed := &domain.RentalRequest{RentalID: 9, BorrowerID: "acct-1", Status: domain.RentalStatusCompleted}
	payment := &domain.Payment{ID: 3, RentalID: 9, AmountCents: 3000, Method: domain.PaymentMethodCreditCard}
	rentalSvc.On("CompletePayment", mock.Anything, "acct-1", int64(9), "credit_card").Return(completed, payment, nil)

	req := authedRequest(t, http.MethodPost, "/rentals/9/payment", `{"method":"credit_card"}`, "acct-1",
		map[string]string{"rentalId": "9"})
	rec := httptest.NewRecorder()

	handler.Payment(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Rental  *domain.RentalRequest `json:"rental"`
		Payment *domain.Payment       `json:"payment"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, domain.RentalStatusCompleted, got.Rental.Status)
	assert.Equal(t, int64(3000), got.Payment.AmountCents)
}

func TestRentalHandler_PendingForOwner(t *testing.T) {
	t.Run("OwnOnly", func(t *testing.T) {
		rentalSvc := new(MockRentalService)
		handler := httpapi.NewRentalHandler(rentalSvc)

		req := authedRequest(t, http.MethodGet, "/rentals/owner/acct-2/pending", "", "acct-1",
			map[string]string{"ownerId": "acct-2"})
		rec := httptest.NewRecorder()

		handler.PendingForOwner(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		rentalSvc.AssertNotCalled(t, "ListPendingRequests")
	})

	t.Run("EmptyListNotNull", func(t *testing.T) {
		rentalSvc := new(MockRentalService)
		handler := httpapi.NewRentalHandler(rentalSvc)

		rentalSvc.On("ListPendingRequests", mock.Anything, "acct-1").Return(nil, nil)

		req := authedRequest(t, http.MethodGet, "/rentals/owner/acct-1/pending", "", "acct-1",
			map[string]string{"ownerId": "acct-1"})
		rec := httptest.NewRecorder()

		handler.PendingForOwner(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})
}

package http

import (
	"net/http"
	"strconv"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/service"

	"github.com/gorilla/mux"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type rentalRequestBody struct {
	ListingID string `json:"listing_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Message   string `json:"message"`
}

type rentalDecisionBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type paymentBody struct {
	Method string `json:"method"`
}

type paymentResponse struct {
	Rental  *domain.RentalRequest `json:"rental"`
	Payment *domain.Payment       `json:"payment"`
}

func (h *RentalHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req rentalRequestBody
	if !decodeBody(w, r, &req) {
		return
	}

	rental, err := h.rentalSvc.CreateRentalRequest(r.Context(), AccountID(r.Context()), req.ListingID, req.StartDate, req.EndDate, req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

// Decide handles both outcomes of a pending request: the body carries
// either "confirmed" or "rejected".
func (h *RentalHandler) Decide(w http.ResponseWriter, r *http.Request) {
	rentalID, ok := pathInt64(w, r, "rentalId")
	if !ok {
		return
	}

	var req rentalDecisionBody
	if !decodeBody(w, r, &req) {
		return
	}

	var (
		rental *domain.RentalRequest
		err    error
	)
	switch req.Status {
	case string(domain.RentalStatusConfirmed):
		rental, err = h.rentalSvc.ConfirmRental(r.Context(), AccountID(r.Context()), rentalID)
	case string(domain.RentalStatusRejected):
		rental, err = h.rentalSvc.RejectRental(r.Context(), AccountID(r.Context()), rentalID)
	default:
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "status must be confirmed or rejected"})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Payment(w http.ResponseWriter, r *http.Request) {
	rentalID, ok := pathInt64(w, r, "rentalId")
	if !ok {
		return
	}

	var req paymentBody
	if !decodeBody(w, r, &req) {
		return
	}

	rental, payment, err := h.rentalSvc.CompletePayment(r.Context(), AccountID(r.Context()), rentalID, req.Method)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, paymentResponse{Rental: rental, Payment: payment})
}

func (h *RentalHandler) PendingForOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := mux.Vars(r)["ownerId"]
	if ownerID != AccountID(r.Context()) {
		writeError(w, service.ErrUnauthorized)
		return
	}

	rentals, err := h.rentalSvc.ListPendingRequests(r.Context(), ownerID)
	if err != nil {
		writeError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.RentalRequest{}
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID != AccountID(r.Context()) {
		writeError(w, service.ErrUnauthorized)
		return
	}

	rentals, err := h.rentalSvc.ListMyRentals(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.RentalRequest{}
	}
	writeJSON(w, http.StatusOK, rentals)
}

func pathInt64(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := mux.Vars(r)[name]
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "invalid " + name})
		return 0, false
	}
	return parsed, true
}

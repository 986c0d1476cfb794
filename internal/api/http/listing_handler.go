package http

import (
	"net/http"
	"strconv"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/service"

	"github.com/gorilla/mux"
)

type ListingHandler struct {
	listingSvc service.ListingService
}

func NewListingHandler(listingSvc service.ListingService) *ListingHandler {
	return &ListingHandler{listingSvc: listingSvc}
}

type createListingRequest struct {
	OwnerID     string `json:"owner_id"`
	OwnerName   string `json:"owner_name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Privacy     string `json:"privacy"`
}

func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Privacy == "" {
		req.Privacy = string(domain.VisibilityPublic)
	}

	listing, err := h.listingSvc.CreateListing(r.Context(), req.OwnerID, req.OwnerName, req.Title, req.Description, domain.Visibility(req.Privacy))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, listing)
}

func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "invalid listing id"})
		return
	}

	listing, err := h.listingSvc.GetListing(r.Context(), int32(id))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	viewer := r.URL.Query().Get("user_id")

	listings, err := h.listingSvc.ListListings(r.Context(), viewer)
	if err != nil {
		writeError(w, err)
		return
	}
	if listings == nil {
		listings = []domain.Listing{}
	}
	writeJSON(w, http.StatusOK, listings)
}

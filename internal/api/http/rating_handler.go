package http

import (
	"net/http"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/service"

	"github.com/gorilla/mux"
)

type RatingHandler struct {
	ratingSvc service.RatingService
}

func NewRatingHandler(ratingSvc service.RatingService) *RatingHandler {
	return &RatingHandler{ratingSvc: ratingSvc}
}

func (h *RatingHandler) RateClothing(w http.ResponseWriter, r *http.Request) {
	var rating domain.ClothingRating
	if !decodeBody(w, r, &rating) {
		return
	}

	if err := h.ratingSvc.RateClothing(r.Context(), &rating); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rating)
}

func (h *RatingHandler) RateUser(w http.ResponseWriter, r *http.Request) {
	var rating domain.UserRating
	if !decodeBody(w, r, &rating) {
		return
	}

	if err := h.ratingSvc.RateUser(r.Context(), &rating); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rating)
}

func (h *RatingHandler) ClothingRatings(w http.ResponseWriter, r *http.Request) {
	listingID, ok := pathInt32(w, r, "id")
	if !ok {
		return
	}

	ratings, _, err := h.ratingSvc.GetClothingRatings(r.Context(), listingID)
	if err != nil {
		writeError(w, err)
		return
	}
	if ratings == nil {
		ratings = []domain.ClothingRating{}
	}
	writeJSON(w, http.StatusOK, ratings)
}

func (h *RatingHandler) ClothingStats(w http.ResponseWriter, r *http.Request) {
	listingID, ok := pathInt32(w, r, "id")
	if !ok {
		return
	}

	_, stats, err := h.ratingSvc.GetClothingRatings(r.Context(), listingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *RatingHandler) UserRatings(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	ratings, _, err := h.ratingSvc.GetUserRatings(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if ratings == nil {
		ratings = []domain.UserRating{}
	}
	writeJSON(w, http.StatusOK, ratings)
}

func (h *RatingHandler) UserStats(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	_, stats, err := h.ratingSvc.GetUserRatings(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

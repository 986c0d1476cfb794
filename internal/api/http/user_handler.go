package http

import (
	"net/http"
	"strconv"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/repository"
	"handmeup-backend/internal/service"

	"github.com/gorilla/mux"
)

// UserHandler serves the matching-engine user surface. User ids here are
// the small derived integers, not account UUIDs, except for search which
// operates on profile rows keyed by UUID.
type UserHandler struct {
	backendUserRepo repository.BackendUserRepository
	profileSvc      service.ProfileService
}

func NewUserHandler(backendUserRepo repository.BackendUserRepository, profileSvc service.ProfileService) *UserHandler {
	return &UserHandler{
		backendUserRepo: backendUserRepo,
		profileSvc:      profileSvc,
	}
}

type createUserRequest struct {
	UserID int32  `json:"user_id"`
	Name   string `json:"name"`
	Circle string `json:"circle"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "name is required"})
		return
	}
	if req.Circle == "" {
		req.Circle = "community"
	}

	user := &domain.BackendUser{UserID: req.UserID, Name: req.Name, Circle: req.Circle}
	if err := h.backendUserRepo.Create(r.Context(), user); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "invalid user id"})
		return
	}

	user, err := h.backendUserRepo.GetByID(r.Context(), int32(id))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody{Detail: "User not found"})
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Search matches profile display names case-insensitively, excluding the
// caller. An empty query matches everyone else.
func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	callerID := mux.Vars(r)["id"]
	query := r.URL.Query().Get("query")

	results, err := h.profileSvc.SearchUsers(r.Context(), query, callerID)
	if err != nil {
		// The original returned an empty list on lookup failures.
		writeJSON(w, http.StatusOK, []domain.AccountSummary{})
		return
	}
	if results == nil {
		results = []domain.AccountSummary{}
	}
	writeJSON(w, http.StatusOK, results)
}

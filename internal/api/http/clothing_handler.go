package http

import (
	"net/http"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/service"
)

type ClothingHandler struct {
	clothingSvc service.ClothingService
	profileSvc  service.ProfileService
}

func NewClothingHandler(clothingSvc service.ClothingService, profileSvc service.ProfileService) *ClothingHandler {
	return &ClothingHandler{
		clothingSvc: clothingSvc,
		profileSvc:  profileSvc,
	}
}

type createClothingRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	PricePerDayCents int32  `json:"price_per_day_cents"`
	Visibility       string `json:"visibility"`
}

type createClothingResponse struct {
	Item      *domain.ClothingItem `json:"item"`
	UploadURL string               `json:"upload_url,omitempty"`
}

func (h *ClothingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createClothingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	callerID := AccountID(r.Context())
	uploaderName := ""
	if profile, err := h.profileSvc.GetProfile(r.Context(), callerID); err == nil {
		uploaderName = profile.DisplayName
	}

	item := &domain.ClothingItem{
		OwnerID:          callerID,
		Title:            req.Title,
		Description:      req.Description,
		PricePerDayCents: req.PricePerDayCents,
		Visibility:       domain.Visibility(req.Visibility),
		UploaderName:     uploaderName,
	}

	created, uploadURL, err := h.clothingSvc.CreateItem(r.Context(), item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, createClothingResponse{Item: created, UploadURL: uploadURL})
}

type confirmImageRequest struct {
	FileSize int64 `json:"file_size"`
}

func (h *ClothingHandler) ConfirmImage(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	var req confirmImageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.clothingSvc.ConfirmImageUpload(r.Context(), AccountID(r.Context()), itemID, req.FileSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ClothingHandler) Get(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	item, err := h.clothingSvc.GetItem(r.Context(), itemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ClothingHandler) Marketplace(w http.ResponseWriter, r *http.Request) {
	items, err := h.clothingSvc.ListMarketplace(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []domain.ClothingItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ClothingHandler) Mine(w http.ResponseWriter, r *http.Request) {
	items, err := h.clothingSvc.ListMyItems(r.Context(), AccountID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []domain.ClothingItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

package http

import (
	"net/http"

	"handmeup-backend/internal/service"
)

// ImageHandler exposes the presigned-URL workflow for item photos.
type ImageHandler struct {
	images service.ImageStorageService
}

func NewImageHandler(images service.ImageStorageService) *ImageHandler {
	return &ImageHandler{images: images}
}

type uploadURLRequest struct {
	ContentType string `json:"content_type"`
}

type presignedURLResponse struct {
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"`
}

// UploadURL hands the item owner a fresh presigned upload URL. Used when
// the URL from item creation expired before the client finished uploading.
func (h *ImageHandler) UploadURL(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	var req uploadURLRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ContentType == "" {
		req.ContentType = "image/jpeg"
	}

	url, expiresAt, err := h.images.GetUploadURL(r.Context(), AccountID(r.Context()), itemID, req.ContentType)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, presignedURLResponse{URL: url, ExpiresAt: expiresAt})
}

// DownloadURL returns a presigned download URL for an item photo.
func (h *ImageHandler) DownloadURL(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	url, expiresAt, err := h.images.GetDownloadURL(r.Context(), itemID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, presignedURLResponse{URL: url, ExpiresAt: expiresAt})
}

// Delete removes an item photo from storage and clears the stored URL.
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	if err := h.images.DeleteImage(r.Context(), AccountID(r.Context()), itemID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

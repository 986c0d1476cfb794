package http

import (
	"io"
	"net/http"
	"path"

	"handmeup-backend/internal/logger"
	"handmeup-backend/internal/storage"
)

// maxImageUploadBytes caps item photo uploads accepted through the mock
// presigned URLs.
const maxImageUploadBytes = 10 << 20

// imageContentTypes maps the key extensions the clothing upload flow
// issues to their MIME types. Keys outside this set are refused.
var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// ImageUploadHandler backs the presigned URLs handed out by the mock
// storage service: PUT stores the body under the key, GET streams it back.
type ImageUploadHandler struct {
	store *storage.MockStorageService
}

func NewImageUploadHandler(store *storage.MockStorageService) *ImageUploadHandler {
	return &ImageUploadHandler{store: store}
}

// HandleMockUpload accepts the upload a presigned URL points at. The
// declared content type must match the extension baked into the key, so a
// mislabeled upload cannot land under a key the download side would serve
// with the wrong type.
func (h *ImageUploadHandler) HandleMockUpload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "missing key parameter"})
		return
	}

	expected, ok := imageContentTypes[path.Ext(key)]
	if !ok || r.Header.Get("Content-Type") != expected {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "unsupported image type"})
		return
	}

	if r.ContentLength > maxImageUploadBytes {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{Detail: "image exceeds upload size limit"})
		return
	}

	body := http.MaxBytesReader(w, r.Body, maxImageUploadBytes)
	if err := h.store.SaveFile(key, body); err != nil {
		logger.Error("failed to store upload", "key", key, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Detail: "failed to store upload"})
		return
	}

	// Upload clients written against real object stores read an ETag off
	// the response.
	w.Header().Set("ETag", `"mock-etag"`)
	w.WriteHeader(http.StatusOK)
}

// HandleMockDownload serves a stored image back under the content type its
// key extension implies.
func (h *ImageUploadHandler) HandleMockDownload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "missing key parameter"})
		return
	}

	file, err := h.store.ReadFile(key)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody{Detail: "image not found"})
		return
	}
	defer file.Close()

	contentType := imageContentTypes[path.Ext(key)]
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")

	if _, err := io.Copy(w, file); err != nil {
		logger.Debug("download stream interrupted", "key", key, "error", err)
	}
}

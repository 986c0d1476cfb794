package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "handmeup-backend/internal/api/http"
	"handmeup-backend/internal/storage"
)

func newUploadHandler(t *testing.T) *httpapi.ImageUploadHandler {
	t.Helper()
	store, err := storage.NewMockStorageService("http://localhost:8080", t.TempDir())
	require.NoError(t, err)
	return httpapi.NewImageUploadHandler(store)
}

func TestImageUploadRoundTrip(t *testing.T) {
	handler := newUploadHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/upload/tok?key=clothing/5.png", strings.NewReader("png bytes"))
	req.Header.Set("Content-Type", "image/png")
	rec := httptest.NewRecorder()

	handler.HandleMockUpload(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("ETag"))

	dl := httptest.NewRequest(http.MethodGet, "/api/v1/download/abc?key=clothing/5.png", nil)
	rec = httptest.NewRecorder()

	handler.HandleMockDownload(rec, dl)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "png bytes", rec.Body.String())
}

func TestImageUploadRejectsMismatchedType(t *testing.T) {
	handler := newUploadHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/upload/tok?key=clothing/5.png", strings.NewReader("jpeg bytes"))
	req.Header.Set("Content-Type", "image/jpeg")
	rec := httptest.NewRecorder()

	handler.HandleMockUpload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImageUploadRejectsUnknownExtension(t *testing.T) {
	handler := newUploadHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/upload/tok?key=clothing/5.gif", strings.NewReader("gif bytes"))
	req.Header.Set("Content-Type", "image/gif")
	rec := httptest.NewRecorder()

	handler.HandleMockUpload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImageUploadRequiresKey(t *testing.T) {
	handler := newUploadHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/upload/tok", strings.NewReader("bytes"))
	req.Header.Set("Content-Type", "image/jpeg")
	rec := httptest.NewRecorder()

	handler.HandleMockUpload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImageDownloadMissingFile(t *testing.T) {
	handler := newUploadHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/download/abc?key=clothing/404.jpg", nil)
	rec := httptest.NewRecorder()

	handler.HandleMockDownload(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

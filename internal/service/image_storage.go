package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"handmeup-backend/internal/repository"
	"handmeup-backend/internal/storage"
)

const presignedURLExpiry = 15 * time.Minute

type imageStorageService struct {
	clothingRepo repository.ClothingRepository
	store        storage.StorageInterface
}

func NewImageStorageService(clothingRepo repository.ClothingRepository, store storage.StorageInterface) ImageStorageService {
	return &imageStorageService{
		clothingRepo: clothingRepo,
		store:        store,
	}
}

// GetUploadURL hands out a presigned upload URL for an item's photo.
// Only the item's owner may request one.
func (s *imageStorageService) GetUploadURL(ctx context.Context, ownerID string, itemID int64, contentType string) (string, int64, error) {
	item, err := s.clothingRepo.GetByID(ctx, itemID)
	if err != nil {
		return "", 0, ErrNotFound
	}
	if item.OwnerID != ownerID {
		return "", 0, ErrUnauthorized
	}

	key := imageKey(itemID, contentType)
	uploadURL, err := s.store.GeneratePresignedUploadURL(ctx, key, contentType, presignedURLExpiry)
	if err != nil {
		return "", 0, err
	}

	expiresAt := time.Now().Add(presignedURLExpiry).Unix()
	return uploadURL, expiresAt, nil
}

// ConfirmUpload verifies the file landed in storage and records its
// download URL on the item. The item row is never deleted when the
// upload went missing; the caller just gets an error and may retry.
func (s *imageStorageService) ConfirmUpload(ctx context.Context, ownerID string, itemID int64, fileSize int64) (string, error) {
	item, err := s.clothingRepo.GetByID(ctx, itemID)
	if err != nil {
		return "", ErrNotFound
	}
	if item.OwnerID != ownerID {
		return "", ErrUnauthorized
	}

	key := imageKey(itemID, "image/jpeg")
	exists, size, err := s.store.FileExists(ctx, key)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("uploaded file not found in storage")
	}
	if fileSize > 0 && size != fileSize {
		return "", fmt.Errorf("uploaded file size mismatch: expected %d, got %d", fileSize, size)
	}

	downloadURL, err := s.store.GeneratePresignedDownloadURL(ctx, key, presignedURLExpiry)
	if err != nil {
		return "", err
	}

	if err := s.clothingRepo.SetImageURL(ctx, itemID, downloadURL); err != nil {
		return "", err
	}
	return downloadURL, nil
}

func (s *imageStorageService) GetDownloadURL(ctx context.Context, itemID int64) (string, int64, error) {
	if _, err := s.clothingRepo.GetByID(ctx, itemID); err != nil {
		return "", 0, ErrNotFound
	}

	key := imageKey(itemID, "image/jpeg")
	downloadURL, err := s.store.GeneratePresignedDownloadURL(ctx, key, presignedURLExpiry)
	if err != nil {
		return "", 0, err
	}
	return downloadURL, time.Now().Add(presignedURLExpiry).Unix(), nil
}

func (s *imageStorageService) DeleteImage(ctx context.Context, ownerID string, itemID int64) error {
	item, err := s.clothingRepo.GetByID(ctx, itemID)
	if err != nil {
		return ErrNotFound
	}
	if item.OwnerID != ownerID {
		return ErrUnauthorized
	}

	key := imageKey(itemID, "image/jpeg")
	if err := s.store.DeleteFile(ctx, key); err != nil {
		return err
	}
	return s.clothingRepo.SetImageURL(ctx, itemID, "")
}

func imageKey(itemID int64, contentType string) string {
	ext := "jpg"
	if idx := strings.LastIndex(contentType, "/"); idx >= 0 && idx < len(contentType)-1 {
		switch contentType[idx+1:] {
		case "png":
			ext = "png"
		case "webp":
			ext = "webp"
		}
	}
	return fmt.Sprintf("clothing/%d.%s", itemID, ext)
}

package service

import (
	"context"
	"strings"
	"time"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/repository"
	"handmeup-backend/internal/storage"
)

type clothingService struct {
	clothingRepo repository.ClothingRepository
	store        storage.StorageInterface
}

func NewClothingService(clothingRepo repository.ClothingRepository, store storage.StorageInterface) ClothingService {
	return &clothingService{
		clothingRepo: clothingRepo,
		store:        store,
	}
}

// CreateItem inserts the row first, then requests an upload URL for its
// photo. The two steps are not atomic: a failed second step leaves the
// row in place without an image, matching how the row-store and object
// storage behave as separate systems.
func (s *clothingService) CreateItem(ctx context.Context, item *domain.ClothingItem) (*domain.ClothingItem, string, error) {
	if strings.TrimSpace(item.Title) == "" || item.OwnerID == "" {
		return nil, "", ErrValidation
	}
	if item.PricePerDayCents < 0 {
		return nil, "", ErrValidation
	}
	if item.Visibility == "" {
		item.Visibility = domain.VisibilityPublic
	}
	if item.Visibility != domain.VisibilityPublic && item.Visibility != domain.VisibilityCircle {
		return nil, "", ErrValidation
	}

	if err := s.clothingRepo.Create(ctx, item); err != nil {
		return nil, "", err
	}

	uploadURL, err := s.store.GeneratePresignedUploadURL(ctx, imageKey(item.ID, "image/jpeg"), "image/jpeg", presignedURLExpiry)
	if err != nil {
		// Row already committed. Surface the item without an upload URL.
		return item, "", nil
	}
	return item, uploadURL, nil
}

func (s *clothingService) ConfirmImageUpload(ctx context.Context, ownerID string, itemID int64, fileSize int64) (*domain.ClothingItem, error) {
	item, err := s.clothingRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, ErrNotFound
	}
	if item.OwnerID != ownerID {
		return nil, ErrUnauthorized
	}

	key := imageKey(itemID, "image/jpeg")
	exists, _, err := s.store.FileExists(ctx, key)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	downloadURL, err := s.store.GeneratePresignedDownloadURL(ctx, key, presignedURLExpiry)
	if err != nil {
		return nil, err
	}
	if err := s.clothingRepo.SetImageURL(ctx, itemID, downloadURL); err != nil {
		return nil, err
	}

	item.ImageURL = downloadURL
	return item, nil
}

func (s *clothingService) GetItem(ctx context.Context, id int64) (*domain.ClothingItem, error) {
	item, err := s.clothingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return item, nil
}

func (s *clothingService) ListMarketplace(ctx context.Context) ([]domain.ClothingItem, error) {
	return s.clothingRepo.ListPublic(ctx)
}

func (s *clothingService) ListMyItems(ctx context.Context, ownerID string) ([]domain.ClothingItem, error) {
	return s.clothingRepo.ListByOwner(ctx, ownerID)
}

// OrphanImageCutoff is how long an item may sit without a confirmed
// image before the cleanup job removes the stale storage object.
const OrphanImageCutoff = 48 * time.Hour

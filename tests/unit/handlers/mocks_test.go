package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"handmeup-backend/internal/domain"
)

type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) CreateRentalRequest(ctx context.Context, borrowerID, listingID, startDate, endDate, message string) (*domain.RentalRequest, error) {
	args := m.Called(ctx, borrowerID, listingID, startDate, endDate, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRequest), args.Error(1)
}

func (m *MockRentalService) ConfirmRental(ctx context.Context, ownerID string, rentalID int64) (*domain.RentalRequest, error) {
	args := m.Called(ctx, ownerID, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRequest), args.Error(1)
}

func (m *MockRentalService) RejectRental(ctx context.Context, ownerID string, rentalID int64) (*domain.RentalRequest, error) {
	args := m.Called(ctx, ownerID, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRequest), args.Error(1)
}

func (m *MockRentalService) CompletePayment(ctx context.Context, borrowerID string, rentalID int64, method string) (*domain.RentalRequest, *domain.Payment, error) {
	args := m.Called(ctx, borrowerID, rentalID, method)
	var rental *domain.RentalRequest
	var payment *domain.Payment
	if args.Get(0) != nil {
		rental = args.Get(0).(*domain.RentalRequest)
	}
	if args.Get(1) != nil {
		payment = args.Get(1).(*domain.Payment)
	}
	return rental, payment, args.Error(2)
}

func (m *MockRentalService) ListPendingRequests(ctx context.Context, ownerID string) ([]domain.RentalRequest, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalRequest), args.Error(1)
}

func (m *MockRentalService) ListMyRentals(ctx context.Context, userID string) ([]domain.RentalRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalRequest), args.Error(1)
}

type MockClothingService struct {
	mock.Mock
}

func (m *MockClothingService) CreateItem(ctx context.Context, item *domain.ClothingItem) (*domain.ClothingItem, string, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.ClothingItem), args.String(1), args.Error(2)
}

func (m *MockClothingService) ConfirmImageUpload(ctx context.Context, ownerID string, itemID int64, fileSize int64) (*domain.ClothingItem, error) {
	args := m.Called(ctx, ownerID, itemID, fileSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClothingItem), args.Error(1)
}

func (m *MockClothingService) GetItem(ctx context.Context, id int64) (*domain.ClothingItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClothingItem), args.Error(1)
}

func (m *MockClothingService) ListMarketplace(ctx context.Context) ([]domain.ClothingItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClothingItem), args.Error(1)
}

func (m *MockClothingService) ListMyItems(ctx context.Context, ownerID string) ([]domain.ClothingItem, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClothingItem), args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) SaveProfile(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileService) SearchUsers(ctx context.Context, query, callerID string) ([]domain.AccountSummary, error) {
	args := m.Called(ctx, query, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountSummary), args.Error(1)
}

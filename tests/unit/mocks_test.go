package unit

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"handmeup-backend/internal/domain"
)

// MockAccountRepo
type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) CreateAccount(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}
func (m *MockAccountRepo) GetAccountByID(ctx context.Context, id string) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) UpsertProfile(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}
func (m *MockAccountRepo) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockAccountRepo) SearchProfiles(ctx context.Context, query, excludeUserID string) ([]domain.Profile, error) {
	args := m.Called(ctx, query, excludeUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

// MockBackendUserRepo
type MockBackendUserRepo struct {
	mock.Mock
}

func (m *MockBackendUserRepo) Create(ctx context.Context, user *domain.BackendUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockBackendUserRepo) GetByID(ctx context.Context, id int32) (*domain.BackendUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BackendUser), args.Error(1)
}

// MockListingRepo
type MockListingRepo struct {
	mock.Mock
}

func (m *MockListingRepo) Create(ctx context.Context, listing *domain.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}
func (m *MockListingRepo) GetByID(ctx context.Context, id int32) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}
func (m *MockListingRepo) List(ctx context.Context, visibleTo int32) ([]domain.Listing, error) {
	args := m.Called(ctx, visibleTo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Listing), args.Error(1)
}

// MockClothingRepo
type MockClothingRepo struct {
	mock.Mock
}

func (m *MockClothingRepo) Create(ctx context.Context, item *domain.ClothingItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockClothingRepo) GetByID(ctx context.Context, id int64) (*domain.ClothingItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClothingItem), args.Error(1)
}
func (m *MockClothingRepo) ListPublic(ctx context.Context) ([]domain.ClothingItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClothingItem), args.Error(1)
}
func (m *MockClothingRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.ClothingItem, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClothingItem), args.Error(1)
}
func (m *MockClothingRepo) SetImageURL(ctx context.Context, id int64, imageURL string) error {
	args := m.Called(ctx, id, imageURL)
	return args.Error(0)
}

// MockConnectionRepo
type MockConnectionRepo struct {
	mock.Mock
}

func (m *MockConnectionRepo) Upsert(ctx context.Context, conn *domain.Connection) error {
	args := m.Called(ctx, conn)
	return args.Error(0)
}
func (m *MockConnectionRepo) GetPair(ctx context.Context, userID, connectedUserID string) (*domain.Connection, error) {
	args := m.Called(ctx, userID, connectedUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Connection), args.Error(1)
}
func (m *MockConnectionRepo) Accept(ctx context.Context, userID, connectedUserID string) error {
	args := m.Called(ctx, userID, connectedUserID)
	return args.Error(0)
}
func (m *MockConnectionRepo) Delete(ctx context.Context, userID, connectedUserID string) error {
	args := m.Called(ctx, userID, connectedUserID)
	return args.Error(0)
}
func (m *MockConnectionRepo) ListForUser(ctx context.Context, userID string) ([]domain.Connection, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Connection), args.Error(1)
}

// MockMessageRepo
type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
func (m *MockMessageRepo) ListBetween(ctx context.Context, userID, otherUserID int32) ([]domain.Message, error) {
	args := m.Called(ctx, userID, otherUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}
func (m *MockMessageRepo) ListConversations(ctx context.Context, userID int32) ([]domain.Conversation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Conversation), args.Error(1)
}
func (m *MockMessageRepo) MarkConversationRead(ctx context.Context, userID, otherUserID, readerID int32) error {
	args := m.Called(ctx, userID, otherUserID, readerID)
	return args.Error(0)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.RentalRequest) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int64) (*domain.RentalRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRequest), args.Error(1)
}
func (m *MockRentalRepo) UpdateStatus(ctx context.Context, id int64, status domain.RentalStatus, message string) error {
	args := m.Called(ctx, id, status, message)
	return args.Error(0)
}
func (m *MockRentalRepo) ListPendingByOwner(ctx context.Context, ownerID string) ([]domain.RentalRequest, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalRequest), args.Error(1)
}
func (m *MockRentalRepo) ListByParticipant(ctx context.Context, userID string) ([]domain.RentalRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalRequest), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByRentalID(ctx context.Context, rentalID int64) (*domain.Payment, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

// MockRatingRepo
type MockRatingRepo struct {
	mock.Mock
}

func (m *MockRatingRepo) CreateClothingRating(ctx context.Context, rating *domain.ClothingRating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}
func (m *MockRatingRepo) ListClothingRatings(ctx context.Context, listingID int32) ([]domain.ClothingRating, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClothingRating), args.Error(1)
}
func (m *MockRatingRepo) CreateUserRating(ctx context.Context, rating *domain.UserRating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}
func (m *MockRatingRepo) ListUserRatings(ctx context.Context, ratedUserID string) ([]domain.UserRating, error) {
	args := m.Called(ctx, ratedUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserRating), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRentalRequestNotification(ctx context.Context, ownerEmail, ownerName, borrowerName, itemTitle string) error {
	args := m.Called(ctx, ownerEmail, ownerName, borrowerName, itemTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalDecisionNotification(ctx context.Context, borrowerEmail, borrowerName, itemTitle string, confirmed bool) error {
	args := m.Called(ctx, borrowerEmail, borrowerName, itemTitle, confirmed)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentReceipt(ctx context.Context, borrowerEmail, borrowerName, itemTitle string, amountCents int64) error {
	args := m.Called(ctx, borrowerEmail, borrowerName, itemTitle, amountCents)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingRequestDigest(ctx context.Context, ownerEmail, ownerName string, pendingCount int) error {
	args := m.Called(ctx, ownerEmail, ownerName, pendingCount)
	return args.Error(0)
}

// MockStorage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, key, contentType, expiresIn)
	return args.String(0), args.Error(1)
}
func (m *MockStorage) GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, key, expiresIn)
	return args.String(0), args.Error(1)
}
func (m *MockStorage) FileExists(ctx context.Context, key string) (bool, int64, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}
func (m *MockStorage) DeleteFile(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
func (m *MockStorage) SaveFile(key string, reader io.Reader) error {
	args := m.Called(key, reader)
	return args.Error(0)
}
func (m *MockStorage) ReadFile(key string) (io.ReadCloser, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

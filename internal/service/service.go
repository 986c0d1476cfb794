package service

import (
	"context"
	"errors"

	"handmeup-backend/internal/domain"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
)

type AuthService interface {
	SignUp(ctx context.Context, email, password, displayName string) (*domain.Account, string, string, error) // account, access, refresh
	SignIn(ctx context.Context, email, password string) (*domain.Account, string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	SaveProfile(ctx context.Context, profile *domain.Profile) error
	SearchUsers(ctx context.Context, query, callerID string) ([]domain.AccountSummary, error)
}

type ListingService interface {
	CreateListing(ctx context.Context, callerID string, callerName string, title, description string, privacy domain.Visibility) (*domain.Listing, error)
	GetListing(ctx context.Context, id int32) (*domain.Listing, error)
	ListListings(ctx context.Context, callerID string) ([]domain.Listing, error)
}

type ClothingService interface {
	CreateItem(ctx context.Context, item *domain.ClothingItem) (*domain.ClothingItem, string, error) // item, uploadURL
	ConfirmImageUpload(ctx context.Context, ownerID string, itemID int64, fileSize int64) (*domain.ClothingItem, error)
	GetItem(ctx context.Context, id int64) (*domain.ClothingItem, error)
	ListMarketplace(ctx context.Context) ([]domain.ClothingItem, error)
	ListMyItems(ctx context.Context, ownerID string) ([]domain.ClothingItem, error)
}

type ConnectionService interface {
	RequestConnection(ctx context.Context, userID, connectedUserID string) error
	AcceptConnection(ctx context.Context, userID, connectedUserID string) error
	RemoveConnection(ctx context.Context, userID, connectedUserID string) error
	ListConnections(ctx context.Context, userID string) ([]domain.Connection, error)
}

type MessagingService interface {
	SendMessage(ctx context.Context, senderID, receiverID int32, senderName, content, messageType string) (*domain.Message, error)
	GetConversation(ctx context.Context, userID, otherUserID int32) ([]domain.Message, error)
	ListConversations(ctx context.Context, userID int32) ([]domain.Conversation, error)
	MarkConversationRead(ctx context.Context, userID, otherUserID, readerID int32) error
}

type RentalService interface {
	CreateRentalRequest(ctx context.Context, borrowerID, listingID, startDate, endDate, message string) (*domain.RentalRequest, error)
	ConfirmRental(ctx context.Context, ownerID string, rentalID int64) (*domain.RentalRequest, error)
	RejectRental(ctx context.Context, ownerID string, rentalID int64) (*domain.RentalRequest, error)
	CompletePayment(ctx context.Context, borrowerID string, rentalID int64, method string) (*domain.RentalRequest, *domain.Payment, error)
	ListPendingRequests(ctx context.Context, ownerID string) ([]domain.RentalRequest, error)
	ListMyRentals(ctx context.Context, userID string) ([]domain.RentalRequest, error)
}

type RatingService interface {
	RateClothing(ctx context.Context, rating *domain.ClothingRating) error
	GetClothingRatings(ctx context.Context, listingID int32) ([]domain.ClothingRating, *domain.ClothingRatingStats, error)
	RateUser(ctx context.Context, rating *domain.UserRating) error
	GetUserRatings(ctx context.Context, ratedUserID string) ([]domain.UserRating, *domain.UserRatingStats, error)
}

type ImageStorageService interface {
	GetUploadURL(ctx context.Context, ownerID string, itemID int64, contentType string) (string, int64, error) // uploadURL, expiresAt
	ConfirmUpload(ctx context.Context, ownerID string, itemID int64, fileSize int64) (string, error)           // returns download URL
	GetDownloadURL(ctx context.Context, itemID int64) (string, int64, error)
	DeleteImage(ctx context.Context, ownerID string, itemID int64) error
}

type EmailService interface {
	SendRentalRequestNotification(ctx context.Context, ownerEmail, ownerName, borrowerName, itemTitle string) error
	SendRentalDecisionNotification(ctx context.Context, borrowerEmail, borrowerName, itemTitle string, confirmed bool) error
	SendPaymentReceipt(ctx context.Context, borrowerEmail, borrowerName, itemTitle string, amountCents int64) error
	SendPendingRequestDigest(ctx context.Context, ownerEmail, ownerName string, pendingCount int) error
}

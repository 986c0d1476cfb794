package repository

import (
	"context"

	"handmeup-backend/internal/domain"
)

type AccountRepository interface {
	CreateAccount(ctx context.Context, account *domain.Account) error
	GetAccountByID(ctx context.Context, id string) (*domain.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error)

	// Profiles
	UpsertProfile(ctx context.Context, profile *domain.Profile) error
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	SearchProfiles(ctx context.Context, query, excludeUserID string) ([]domain.Profile, error)
}

type BackendUserRepository interface {
	Create(ctx context.Context, user *domain.BackendUser) error
	GetByID(ctx context.Context, id int32) (*domain.BackendUser, error)
}

type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	GetByID(ctx context.Context, id int32) (*domain.Listing, error)
	List(ctx context.Context, visibleTo int32) ([]domain.Listing, error)
}

type ClothingRepository interface {
	Create(ctx context.Context, item *domain.ClothingItem) error
	GetByID(ctx context.Context, id int64) (*domain.ClothingItem, error)
	ListPublic(ctx context.Context) ([]domain.ClothingItem, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.ClothingItem, error)
	SetImageURL(ctx context.Context, id int64, imageURL string) error
}

type ConnectionRepository interface {
	// Upsert creates the pending row if no row exists for the pair and is a
	// no-op otherwise, in either status.
	Upsert(ctx context.Context, conn *domain.Connection) error
	GetPair(ctx context.Context, userID, connectedUserID string) (*domain.Connection, error)
	Accept(ctx context.Context, userID, connectedUserID string) error
	Delete(ctx context.Context, userID, connectedUserID string) error
	ListForUser(ctx context.Context, userID string) ([]domain.Connection, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	// ListBetween returns the full thread in timestamp order.
	ListBetween(ctx context.Context, userID, otherUserID int32) ([]domain.Message, error)
	// ListConversations aggregates one row per counterparty with the last
	// message and the count of unread messages addressed to userID.
	ListConversations(ctx context.Context, userID int32) ([]domain.Conversation, error)
	MarkConversationRead(ctx context.Context, userID, otherUserID, readerID int32) error
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.RentalRequest) error
	GetByID(ctx context.Context, id int64) (*domain.RentalRequest, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RentalStatus, message string) error
	// ListPendingByOwner enriches each row with borrower display name, item
	// title and the item's daily price.
	ListPendingByOwner(ctx context.Context, ownerID string) ([]domain.RentalRequest, error)
	ListByParticipant(ctx context.Context, userID string) ([]domain.RentalRequest, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByRentalID(ctx context.Context, rentalID int64) (*domain.Payment, error)
}

type RatingRepository interface {
	CreateClothingRating(ctx context.Context, rating *domain.ClothingRating) error
	ListClothingRatings(ctx context.Context, listingID int32) ([]domain.ClothingRating, error)
	CreateUserRating(ctx context.Context, rating *domain.UserRating) error
	ListUserRatings(ctx context.Context, ratedUserID string) ([]domain.UserRating, error)
}

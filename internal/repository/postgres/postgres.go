package postgres

import (
	"database/sql"

	"handmeup-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.AccountRepository
	repository.BackendUserRepository
	repository.ListingRepository
	repository.ClothingRepository
	repository.ConnectionRepository
	repository.MessageRepository
	repository.RentalRepository
	repository.PaymentRepository
	repository.RatingRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		AccountRepository:     NewAccountRepository(db),
		BackendUserRepository: NewBackendUserRepository(db),
		ListingRepository:     NewListingRepository(db),
		ClothingRepository:    NewClothingRepository(db),
		ConnectionRepository:  NewConnectionRepository(db),
		MessageRepository:     NewMessageRepository(db),
		RentalRepository:      NewRentalRepository(db),
		PaymentRepository:     NewPaymentRepository(db),
		RatingRepository:      NewRatingRepository(db),
	}
}

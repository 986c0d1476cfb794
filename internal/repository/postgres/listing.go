package postgres

import (
	"context"
	"database/sql"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/repository"
)

type listingRepository struct {
	db *sql.DB
}

func NewListingRepository(db *sql.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO listings (owner_id, title, description, privacy) VALUES ($1, $2, $3, $4) RETURNING listing_id`
	return r.db.QueryRowContext(ctx, query, l.OwnerID, l.Title, l.Description, l.Privacy).Scan(&l.ListingID)
}

func (r *listingRepository) GetByID(ctx context.Context, id int32) (*domain.Listing, error) {
	l := &domain.Listing{}
	query := `SELECT l.listing_id, l.owner_id, l.title, l.description, l.privacy, COALESCE(u.name, '')
	          FROM listings l LEFT JOIN backend_users u ON u.user_id = l.owner_id
	          WHERE l.listing_id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&l.ListingID, &l.OwnerID, &l.Title, &l.Description, &l.Privacy, &l.OwnerName)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// List returns public listings plus, when visibleTo is nonzero, that user's
// own circle-scoped listings. Circle visibility between different users is
// resolved by the connection rows, which live on the account side; the
// engine only filters what it can see.
func (r *listingRepository) List(ctx context.Context, visibleTo int32) ([]domain.Listing, error) {
	query := `SELECT l.listing_id, l.owner_id, l.title, l.description, l.privacy, COALESCE(u.name, '')
	          FROM listings l LEFT JOIN backend_users u ON u.user_id = l.owner_id
	          WHERE l.privacy = $1 OR l.owner_id = $2
	          ORDER BY l.listing_id`
	rows, err := r.db.QueryContext(ctx, query, domain.VisibilityPublic, visibleTo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(&l.ListingID, &l.OwnerID, &l.Title, &l.Description, &l.Privacy, &l.OwnerName); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"
	"time"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.RentalRequest) error {
	query := `INSERT INTO rentals (borrower_id, listing_id, owner_id, start_date, end_date, status, message, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING rental_id`
	now := time.Now().UTC().Format(time.RFC3339)
	rt.CreatedAt = now
	rt.UpdatedAt = now
	return r.db.QueryRowContext(ctx, query,
		rt.BorrowerID, rt.ListingID, rt.OwnerID, rt.StartDate, rt.EndDate, rt.Status, rt.Message, rt.CreatedAt, rt.UpdatedAt,
	).Scan(&rt.RentalID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.RentalRequest, error) {
	rt := &domain.RentalRequest{}
	query := `SELECT rental_id, borrower_id, listing_id, owner_id, start_date, end_date, status, message, created_at, updated_at
	          FROM rentals WHERE rental_id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.RentalID, &rt.BorrowerID, &rt.ListingID, &rt.OwnerID,
		&rt.StartDate, &rt.EndDate, &rt.Status, &rt.Message, &rt.CreatedAt, &rt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, id int64, status domain.RentalStatus, message string) error {
	query := `UPDATE rentals SET status = $1, message = $2, updated_at = $3 WHERE rental_id = $4`
	res, err := r.db.ExecContext(ctx, query, status, message, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *rentalRepository) ListPendingByOwner(ctx context.Context, ownerID string) ([]domain.RentalRequest, error) {
	// Borrower name and item title are denormalized into the response so
	// the owner's pending list renders without extra lookups.
	query := `SELECT r.rental_id, r.borrower_id, r.listing_id, r.owner_id, r.start_date, r.end_date,
	                 r.status, r.message, r.created_at, r.updated_at,
	                 COALESCE(p.display_name, 'Unknown User'),
	                 COALESCE(c.title, 'Unknown Item'),
	                 COALESCE(c.price_per_day_cents, 0)
	          FROM rentals r
	          LEFT JOIN user_profiles p ON p.user_id = r.borrower_id
	          LEFT JOIN clothing c ON c.id = CAST(r.listing_id AS BIGINT)
	          WHERE r.owner_id = $1 AND r.status = $2
	          ORDER BY r.created_at`
	rows, err := r.db.QueryContext(ctx, query, ownerID, domain.RentalStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.RentalRequest
	for rows.Next() {
		var rt domain.RentalRequest
		if err := rows.Scan(
			&rt.RentalID, &rt.BorrowerID, &rt.ListingID, &rt.OwnerID, &rt.StartDate, &rt.EndDate,
			&rt.Status, &rt.Message, &rt.CreatedAt, &rt.UpdatedAt,
			&rt.BorrowerName, &rt.ItemTitle, &rt.PricePerDayCents,
		); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) ListByParticipant(ctx context.Context, userID string) ([]domain.RentalRequest, error) {
	query := `SELECT rental_id, borrower_id, listing_id, owner_id, start_date, end_date, status, message, created_at, updated_at
	          FROM rentals WHERE borrower_id = $1 OR owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.RentalRequest
	for rows.Next() {
		var rt domain.RentalRequest
		if err := rows.Scan(
			&rt.RentalID, &rt.BorrowerID, &rt.ListingID, &rt.OwnerID,
			&rt.StartDate, &rt.EndDate, &rt.Status, &rt.Message, &rt.CreatedAt, &rt.UpdatedAt,
		); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

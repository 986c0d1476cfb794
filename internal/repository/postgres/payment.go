package postgres

import (
	"context"
	"database/sql"
	"time"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (rental_id, amount_cents, method, status, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	p.CreatedOn = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query, p.RentalID, p.AmountCents, p.Method, p.Status, p.CreatedOn).Scan(&p.ID)
}

func (r *paymentRepository) GetByRentalID(ctx context.Context, rentalID int64) (*domain.Payment, error) {
	p := &domain.Payment{}
	query := `SELECT id, rental_id, amount_cents, method, status, created_on FROM payments WHERE rental_id = $1`
	err := r.db.QueryRowContext(ctx, query, rentalID).Scan(&p.ID, &p.RentalID, &p.AmountCents, &p.Method, &p.Status, &p.CreatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

package postgres

import (
	"context"
	"database/sql"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/repository"
)

type backendUserRepository struct {
	db *sql.DB
}

func NewBackendUserRepository(db *sql.DB) repository.BackendUserRepository {
	return &backendUserRepository{db: db}
}

func (r *backendUserRepository) Create(ctx context.Context, u *domain.BackendUser) error {
	// The id comes from the caller: it is hash-derived client side, so the
	// row has to land under exactly that id for later lookups to hit.
	query := `INSERT INTO backend_users (user_id, name, circle) VALUES ($1, $2, $3)
	          ON CONFLICT (user_id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, u.UserID, u.Name, u.Circle)
	return err
}

func (r *backendUserRepository) GetByID(ctx context.Context, id int32) (*domain.BackendUser, error) {
	u := &domain.BackendUser{}
	query := `SELECT user_id, name, circle FROM backend_users WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.UserID, &u.Name, &u.Circle)
	if err != nil {
		return nil, err
	}
	return u, nil
}

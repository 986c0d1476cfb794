package postgres

import (
	"context"
	"database/sql"
	"time"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/repository"
)

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) CreateAccount(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (id, email, display_name, password_hash, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	now := time.Now().UTC().Format(time.RFC3339)
	a.CreatedOn = now
	a.UpdatedOn = now
	_, err := r.db.ExecContext(ctx, query, a.ID, a.Email, a.DisplayName, a.PasswordHash, a.CreatedOn, a.UpdatedOn)
	return err
}

func (r *accountRepository) GetAccountByID(ctx context.Context, id string) (*domain.Account, error) {
	a := &domain.Account{}
	query := `SELECT id, email, display_name, password_hash, created_on, updated_on FROM accounts WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Email, &a.DisplayName, &a.PasswordHash, &a.CreatedOn, &a.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *accountRepository) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	a := &domain.Account{}
	query := `SELECT id, email, display_name, password_hash, created_on, updated_on FROM accounts WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&a.ID, &a.Email, &a.DisplayName, &a.PasswordHash, &a.CreatedOn, &a.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *accountRepository) UpsertProfile(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO user_profiles (user_id, display_name, bio, avatar_url, updated_on)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (user_id) DO UPDATE
	          SET display_name = EXCLUDED.display_name, bio = EXCLUDED.bio,
	              avatar_url = EXCLUDED.avatar_url, updated_on = EXCLUDED.updated_on`
	p.UpdatedOn = time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx, query, p.UserID, p.DisplayName, p.Bio, p.AvatarURL, p.UpdatedOn)
	return err
}

func (r *accountRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	p := &domain.Profile{}
	query := `SELECT user_id, display_name, bio, avatar_url, updated_on FROM user_profiles WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&p.UserID, &p.DisplayName, &p.Bio, &p.AvatarURL, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *accountRepository) SearchProfiles(ctx context.Context, query, excludeUserID string) ([]domain.Profile, error) {
	sqlQuery := `SELECT user_id, display_name, bio, avatar_url, updated_on
	             FROM user_profiles
	             WHERE display_name ILIKE '%' || $1 || '%' AND user_id <> $2
	             ORDER BY display_name`
	rows, err := r.db.QueryContext(ctx, sqlQuery, query, excludeUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.UserID, &p.DisplayName, &p.Bio, &p.AvatarURL, &p.UpdatedOn); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"
	"time"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/repository"
)

type clothingRepository struct {
	db *sql.DB
}

func NewClothingRepository(db *sql.DB) repository.ClothingRepository {
	return &clothingRepository{db: db}
}

func (r *clothingRepository) Create(ctx context.Context, item *domain.ClothingItem) error {
	query := `INSERT INTO clothing (owner_id, title, description, price_per_day_cents, visibility, uploader_name, image_url, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	item.CreatedOn = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query,
		item.OwnerID, item.Title, item.Description, item.PricePerDayCents,
		item.Visibility, item.UploaderName, item.ImageURL, item.CreatedOn,
	).Scan(&item.ID)
}

func (r *clothingRepository) GetByID(ctx context.Context, id int64) (*domain.ClothingItem, error) {
	item := &domain.ClothingItem{}
	query := `SELECT id, owner_id, title, description, price_per_day_cents, visibility, uploader_name, image_url, created_on
	          FROM clothing WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.OwnerID, &item.Title, &item.Description, &item.PricePerDayCents,
		&item.Visibility, &item.UploaderName, &item.ImageURL, &item.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *clothingRepository) ListPublic(ctx context.Context) ([]domain.ClothingItem, error) {
	query := `SELECT id, owner_id, title, description, price_per_day_cents, visibility, uploader_name, image_url, created_on
	          FROM clothing WHERE visibility = $1 ORDER BY created_on DESC`
	return r.list(ctx, query, domain.VisibilityPublic)
}

func (r *clothingRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.ClothingItem, error) {
	query := `SELECT id, owner_id, title, description, price_per_day_cents, visibility, uploader_name, image_url, created_on
	          FROM clothing WHERE owner_id = $1 ORDER BY created_on DESC`
	return r.list(ctx, query, ownerID)
}

func (r *clothingRepository) SetImageURL(ctx context.Context, id int64, imageURL string) error {
	query := `UPDATE clothing SET image_url = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, imageURL, id)
	return err
}

func (r *clothingRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.ClothingItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ClothingItem
	for rows.Next() {
		var item domain.ClothingItem
		if err := rows.Scan(
			&item.ID, &item.OwnerID, &item.Title, &item.Description, &item.PricePerDayCents,
			&item.Visibility, &item.UploaderName, &item.ImageURL, &item.CreatedOn,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

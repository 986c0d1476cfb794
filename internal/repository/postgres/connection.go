package postgres

import (
	"context"
	"database/sql"
	"time"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/repository"
)

type connectionRepository struct {
	db *sql.DB
}

func NewConnectionRepository(db *sql.DB) repository.ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) Upsert(ctx context.Context, conn *domain.Connection) error {
	// Re-sending a request while a row already exists, pending or accepted,
	// must not error and must not regress an accepted row to pending.
	query := `INSERT INTO connections (user_id, connected_user_id, status, created_on)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (user_id, connected_user_id) DO NOTHING`
	conn.CreatedOn = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, conn.UserID, conn.ConnectedUserID, conn.Status, conn.CreatedOn)
	return err
}

func (r *connectionRepository) GetPair(ctx context.Context, userID, connectedUserID string) (*domain.Connection, error) {
	conn := &domain.Connection{}
	// The row may have been written from either direction.
	query := `SELECT user_id, connected_user_id, status, created_on FROM connections
	          WHERE (user_id = $1 AND connected_user_id = $2) OR (user_id = $2 AND connected_user_id = $1)`
	err := r.db.QueryRowContext(ctx, query, userID, connectedUserID).Scan(
		&conn.UserID, &conn.ConnectedUserID, &conn.Status, &conn.CreatedOn)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func (r *connectionRepository) Accept(ctx context.Context, userID, connectedUserID string) error {
	query := `UPDATE connections SET status = $1
	          WHERE user_id = $2 AND connected_user_id = $3`
	res, err := r.db.ExecContext(ctx, query, domain.ConnectionStatusAccepted, userID, connectedUserID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *connectionRepository) Delete(ctx context.Context, userID, connectedUserID string) error {
	query := `DELETE FROM connections WHERE user_id = $1 AND connected_user_id = $2`
	_, err := r.db.ExecContext(ctx, query, userID, connectedUserID)
	return err
}

func (r *connectionRepository) ListForUser(ctx context.Context, userID string) ([]domain.Connection, error) {
	query := `SELECT user_id, connected_user_id, status, created_on FROM connections
	          WHERE user_id = $1 OR connected_user_id = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conns []domain.Connection
	for rows.Next() {
		var conn domain.Connection
		if err := rows.Scan(&conn.UserID, &conn.ConnectedUserID, &conn.Status, &conn.CreatedOn); err != nil {
			return nil, err
		}
		conns = append(conns, conn)
	}
	return conns, rows.Err()
}

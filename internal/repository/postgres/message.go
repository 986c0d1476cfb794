package postgres

import (
	"context"
	"database/sql"
	"time"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/repository"
)

type messageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	query := `INSERT INTO messages (sender_id, receiver_id, content, message_type, timestamp, is_read)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING message_id`
	msg.Timestamp = time.Now().UTC()
	msg.IsRead = false
	return r.db.QueryRowContext(ctx, query,
		msg.SenderID, msg.ReceiverID, msg.Content, msg.MessageType, msg.Timestamp, msg.IsRead,
	).Scan(&msg.MessageID)
}

func (r *messageRepository) ListBetween(ctx context.Context, userID, otherUserID int32) ([]domain.Message, error) {
	// Store order is the display order; clients do not re-sort.
	query := `SELECT message_id, sender_id, receiver_id, content, message_type, timestamp, is_read
	          FROM messages
	          WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
	          ORDER BY timestamp, message_id`
	rows, err := r.db.QueryContext(ctx, query, userID, otherUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.MessageID, &m.SenderID, &m.ReceiverID, &m.Content, &m.MessageType, &m.Timestamp, &m.IsRead); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (r *messageRepository) ListConversations(ctx context.Context, userID int32) ([]domain.Conversation, error) {
	// One row per counterparty: the latest message, plus the count of
	// unread messages that counterparty sent to userID.
	query := `SELECT DISTINCT ON (other_id)
	                 other_id, message_id, sender_id, receiver_id, content, message_type, timestamp, is_read,
	                 (SELECT COUNT(*) FROM messages u
	                  WHERE u.sender_id = m.other_id AND u.receiver_id = $1 AND u.is_read = false)
	          FROM (SELECT *, CASE WHEN sender_id = $1 THEN receiver_id ELSE sender_id END AS other_id
	                FROM messages
	                WHERE sender_id = $1 OR receiver_id = $1) m
	          ORDER BY other_id, timestamp DESC, message_id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var convs []domain.Conversation
	for rows.Next() {
		var c domain.Conversation
		var last domain.Message
		if err := rows.Scan(&c.OtherUserID,
			&last.MessageID, &last.SenderID, &last.ReceiverID, &last.Content,
			&last.MessageType, &last.Timestamp, &last.IsRead, &c.UnreadCount,
		); err != nil {
			return nil, err
		}
		c.LastMessage = &last
		convs = append(convs, c)
	}
	return convs, rows.Err()
}

func (r *messageRepository) MarkConversationRead(ctx context.Context, userID, otherUserID, readerID int32) error {
	// Only messages addressed to the reader flip; the reader's own
	// outgoing messages keep their state.
	query := `UPDATE messages SET is_read = true
	          WHERE receiver_id = $1
	            AND ((sender_id = $2 AND receiver_id = $3) OR (sender_id = $3 AND receiver_id = $2))
	            AND is_read = false`
	_, err := r.db.ExecContext(ctx, query, readerID, userID, otherUserID)
	return err
}

package workflow

import (
	"context"
	"errors"
	"strings"

	"handmeup-backend/internal/apiclient"
	"handmeup-backend/internal/domain"
)

var ErrEmptyMessage = errors.New("message content is empty")

// Conversations is the messaging workflow for one session.
type Conversations struct {
	session *Session
}

func NewConversations(session *Session) *Conversations {
	return &Conversations{session: session}
}

// List fetches all threads for the session user. An empty list is the
// valid "no conversations yet" state, not an error.
func (c *Conversations) List(ctx context.Context) ([]domain.Conversation, error) {
	return c.session.Client().ListConversations(ctx, c.session.EngineID())
}

// Thread fetches the messages with one counterpart in store order; the
// client never re-sorts. Opening the thread marks it read as a side
// effect; a failed mark-read never blocks message display.
func (c *Conversations) Thread(ctx context.Context, otherID int32) ([]domain.Message, error) {
	msgs, err := c.session.Client().ListMessages(ctx, c.session.EngineID(), otherID)
	if err != nil {
		return nil, err
	}

	// Fire and forget.
	go func() {
		_ = c.session.Client().MarkConversationRead(context.WithoutCancel(ctx), c.session.EngineID(), otherID)
	}()

	return msgs, nil
}

// Send posts one text message. Content must be non-empty after trimming;
// the check runs before any network call so a failed send leaves the
// compose state intact for retry.
func (c *Conversations) Send(ctx context.Context, receiverID int32, content string) (*domain.Message, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, ErrEmptyMessage
	}

	return c.session.Client().SendMessage(ctx, apiclient.SendMessageParams{
		SenderID:    c.session.EngineID(),
		ReceiverID:  receiverID,
		SenderName:  c.session.DisplayName,
		Content:     trimmed,
		MessageType: domain.MessageTypeText,
	})
}

// SearchAccounts finds counterparts to start a new conversation with.
// An empty query returns no results without touching the network.
func (c *Conversations) SearchAccounts(ctx context.Context, query string) ([]domain.AccountSummary, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.AccountSummary{}, nil
	}
	return c.session.Client().SearchAccounts(ctx, c.session.AccountID, query)
}

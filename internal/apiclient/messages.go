package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"handmeup-backend/internal/domain"
)

type SendMessageParams struct {
	SenderID    int32  `json:"sender_id"`
	ReceiverID  int32  `json:"receiver_id"`
	SenderName  string `json:"sender_name"`
	Content     string `json:"content"`
	MessageType string `json:"message_type"`
}

func (c *Client) SendMessage(ctx context.Context, params SendMessageParams) (*domain.Message, error) {
	var out domain.Message
	if err := c.do(ctx, http.MethodPost, "/messages", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListConversations(ctx context.Context, userID int32) ([]domain.Conversation, error) {
	var out []domain.Conversation
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/messages/%d/conversations", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListMessages(ctx context.Context, userID, otherID int32) ([]domain.Message, error) {
	var out []domain.Message
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/messages/%d/%d", userID, otherID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MarkConversationRead(ctx context.Context, userID, otherID int32) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/messages/%d/%d/read", userID, otherID), nil, nil)
}

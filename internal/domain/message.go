package domain

import "time"

const MessageTypeText = "text"

// Message is immutable once created. Read state flips as a side effect of
// the receiver opening the thread, not through a client-managed field.
type Message struct {
	MessageID    int64     `json:"message_id"`
	SenderID     int32     `json:"sender_id"`
	ReceiverID   int32     `json:"receiver_id"`
	Content      string    `json:"content"`
	MessageType  string    `json:"message_type"`
	Timestamp    time.Time `json:"timestamp"`
	IsRead       bool      `json:"is_read"`
	SenderName   string    `json:"sender_name,omitempty"`
	ReceiverName string    `json:"receiver_name,omitempty"`
}

// Conversation is the derived aggregate over all messages between two users.
// It is never stored; the backend computes it per request.
type Conversation struct {
	OtherUserID   int32    `json:"other_user_id"`
	OtherUserName string   `json:"other_user_name"`
	LastMessage   *Message `json:"last_message"`
	UnreadCount   int32    `json:"unread_count"`
}

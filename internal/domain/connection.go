package domain

import "time"

type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
)

// Connection is a directed relationship row. Only the single row written by
// the requester gates visibility and connect/accept UI state; symmetric
// acceptance is not enforced.
type Connection struct {
	UserID          string           `json:"user_id"`
	ConnectedUserID string           `json:"connected_user_id"`
	Status          ConnectionStatus `json:"status"`
	CreatedOn       time.Time        `json:"created_on"`
}

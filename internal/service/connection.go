package service

import (
	"context"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/repository"
)

type connectionService struct {
	connectionRepo repository.ConnectionRepository
	accountRepo    repository.AccountRepository
}

func NewConnectionService(connectionRepo repository.ConnectionRepository, accountRepo repository.AccountRepository) ConnectionService {
	return &connectionService{
		connectionRepo: connectionRepo,
		accountRepo:    accountRepo,
	}
}

func (s *connectionService) RequestConnection(ctx context.Context, userID, connectedUserID string) error {
	if userID == "" || connectedUserID == "" || userID == connectedUserID {
		return ErrValidation
	}
	if _, err := s.accountRepo.GetAccountByID(ctx, connectedUserID); err != nil {
		return ErrNotFound
	}

	conn := &domain.Connection{
		UserID:          userID,
		ConnectedUserID: connectedUserID,
		Status:          domain.ConnectionStatusPending,
	}
	return s.connectionRepo.Upsert(ctx, conn)
}

func (s *connectionService) AcceptConnection(ctx context.Context, userID, connectedUserID string) error {
	// Only the recipient of the request may accept it; the row was
	// written as (requester, recipient).
	if err := s.connectionRepo.Accept(ctx, connectedUserID, userID); err != nil {
		return ErrNotFound
	}
	return nil
}

func (s *connectionService) RemoveConnection(ctx context.Context, userID, connectedUserID string) error {
	if err := s.connectionRepo.Delete(ctx, userID, connectedUserID); err != nil {
		return err
	}
	return s.connectionRepo.Delete(ctx, connectedUserID, userID)
}

func (s *connectionService) ListConnections(ctx context.Context, userID string) ([]domain.Connection, error) {
	return s.connectionRepo.ListForUser(ctx, userID)
}

package service

import (
	"context"
	"fmt"
	"strings"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/repository"
)

type messagingService struct {
	messageRepo     repository.MessageRepository
	backendUserRepo repository.BackendUserRepository
}

func NewMessagingService(messageRepo repository.MessageRepository, backendUserRepo repository.BackendUserRepository) MessagingService {
	return &messagingService{
		messageRepo:     messageRepo,
		backendUserRepo: backendUserRepo,
	}
}

// SendMessage stores a message between two engine-side user ids. Either
// side may not have a user row yet when ids arrive from hash-derived
// identities, so missing participants are created as placeholders.
func (s *messagingService) SendMessage(ctx context.Context, senderID, receiverID int32, senderName, content, messageType string) (*domain.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrValidation
	}
	if senderID == receiverID {
		return nil, ErrValidation
	}
	if messageType == "" {
		messageType = domain.MessageTypeText
	}

	if err := s.ensureUser(ctx, senderID, senderName); err != nil {
		return nil, err
	}
	if err := s.ensureUser(ctx, receiverID, ""); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		SenderID:    senderID,
		ReceiverID:  receiverID,
		Content:     content,
		MessageType: messageType,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *messagingService) GetConversation(ctx context.Context, userID, otherUserID int32) ([]domain.Message, error) {
	if err := s.ensureUser(ctx, userID, ""); err != nil {
		return nil, err
	}
	if err := s.ensureUser(ctx, otherUserID, ""); err != nil {
		return nil, err
	}

	msgs, err := s.messageRepo.ListBetween(ctx, userID, otherUserID)
	if err != nil {
		return nil, err
	}

	names := map[int32]string{}
	for i := range msgs {
		msgs[i].SenderName = s.userName(ctx, names, msgs[i].SenderID)
		msgs[i].ReceiverName = s.userName(ctx, names, msgs[i].ReceiverID)
	}
	return msgs, nil
}

func (s *messagingService) ListConversations(ctx context.Context, userID int32) ([]domain.Conversation, error) {
	if err := s.ensureUser(ctx, userID, ""); err != nil {
		return nil, err
	}

	convs, err := s.messageRepo.ListConversations(ctx, userID)
	if err != nil {
		return nil, err
	}

	names := map[int32]string{}
	for i := range convs {
		convs[i].OtherUserName = s.userName(ctx, names, convs[i].OtherUserID)
		if last := convs[i].LastMessage; last != nil {
			last.SenderName = s.userName(ctx, names, last.SenderID)
			last.ReceiverName = s.userName(ctx, names, last.ReceiverID)
		}
	}
	return convs, nil
}

func (s *messagingService) MarkConversationRead(ctx context.Context, userID, otherUserID, readerID int32) error {
	return s.messageRepo.MarkConversationRead(ctx, userID, otherUserID, readerID)
}

func (s *messagingService) ensureUser(ctx context.Context, userID int32, name string) error {
	if _, err := s.backendUserRepo.GetByID(ctx, userID); err == nil {
		return nil
	}
	if name == "" {
		name = placeholderName(userID)
	}
	return s.backendUserRepo.Create(ctx, &domain.BackendUser{
		UserID: userID,
		Name:   name,
		Circle: "community",
	})
}

func (s *messagingService) userName(ctx context.Context, cache map[int32]string, userID int32) string {
	if name, ok := cache[userID]; ok {
		return name
	}
	name := placeholderName(userID)
	if user, err := s.backendUserRepo.GetByID(ctx, userID); err == nil {
		name = user.Name
	}
	cache[userID] = name
	return name
}

func placeholderName(userID int32) string {
	id := fmt.Sprintf("%d", userID)
	if len(id) > 8 {
		id = id[:8]
	}
	return "User_" + id
}

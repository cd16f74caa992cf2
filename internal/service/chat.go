package service

import (
	"context"

	"github.com/logwise-app/logwise/internal/domain"
	"github.com/logwise-app/logwise/internal/repo"
)

const chatHistoryLimit = 20

type ChatService struct {
	chatRepo repo.Chat
}

func NewChatService(cr repo.Chat) *ChatService {
	return &ChatService{chatRepo: cr}
}

func (s *ChatService) StoreMessage(ctx context.Context, sessionID, role, message string) (int, error) {
	return s.chatRepo.StoreMessage(ctx, &domain.ChatMessage{
		SessionID: sessionID,
		Role:      role,
		Message:   message,
	})
}

func (s *ChatService) GetHistory(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	messages, err := s.chatRepo.GetHistory(ctx, sessionID, chatHistoryLimit)
	if err != nil {
		return []domain.ChatMessage{}, err
	}
	return messages, nil
}

func (s *ChatService) UpdateMessage(ctx context.Context, id int, message string) error {
	return s.chatRepo.UpdateMessage(ctx, id, message)
}

func (s *ChatService) DeleteMessage(ctx context.Context, id int) error {
	return s.chatRepo.DeleteMessage(ctx, id)
}

package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/logwise-app/logwise/internal/domain"
	repomocks "github.com/logwise-app/logwise/internal/mocks/repository"
	"github.com/logwise-app/logwise/internal/repo/repoerrs"
	"github.com/logwise-app/logwise/internal/service"
)

func TestChatService_StoreMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockChat(ctrl)
	svc := service.NewChatService(mockRepo)

	ctx := context.Background()

	mockRepo.EXPECT().
		StoreMessage(ctx, &domain.ChatMessage{
			SessionID: "sess-1",
			Role:      domain.ChatRoleUser,
			Message:   "what happened here?",
		}).
		Return(7, nil)

	id, err := svc.StoreMessage(ctx, "sess-1", domain.ChatRoleUser, "what happened here?")

	require.NoError(t, err)
	assert.Equal(t, 7, id)
}

func TestChatService_GetHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockChat(ctrl)
	svc := service.NewChatService(mockRepo)

	ctx := context.Background()
	now := time.Now()

	history := []domain.ChatMessage{
		{ID: 1, SessionID: "sess-1", Role: domain.ChatRoleAssistant, Message: "stored", CreatedAt: now},
		{ID: 2, SessionID: "sess-1", Role: domain.ChatRoleUser, Message: "thanks", CreatedAt: now},
	}

	// The service always asks for the last 20 messages.
	mockRepo.EXPECT().
		GetHistory(ctx, "sess-1", 20).
		Return(history, nil)

	got, err := svc.GetHistory(ctx, "sess-1")

	require.NoError(t, err)
	assert.Equal(t, history, got)
}

func TestChatService_DeleteMessage_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockChat(ctrl)
	svc := service.NewChatService(mockRepo)

	ctx := context.Background()

	mockRepo.EXPECT().
		DeleteMessage(ctx, 404).
		Return(repoerrs.ErrNotFound)

	err := svc.DeleteMessage(ctx, 404)

	assert.ErrorIs(t, err, repoerrs.ErrNotFound)
}

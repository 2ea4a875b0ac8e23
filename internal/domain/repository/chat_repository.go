package repository

import (
	"context"

	"fetan/internal/domain/entity"
)

type ChatRepository interface {
	CreateConversation(ctx context.Context, conv *entity.Conversation) error
	GetConversationByID(ctx context.Context, id string) (*entity.Conversation, error)
	// FindByParticipants resolves the conversation for an unordered pair,
	// or NotFound.
	FindByParticipants(ctx context.Context, userA, userB string) (*entity.Conversation, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Conversation, error)

	// AppendMessage stores the message and refreshes the conversation's
	// last-message cache in the same write. incrementUnread marks an
	// inbound message for the counterpart.
	AppendMessage(ctx context.Context, message *entity.DirectMessage, incrementUnread bool) error
	ListMessages(ctx context.Context, conversationID string) ([]*entity.DirectMessage, error)
}

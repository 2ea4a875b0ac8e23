package repository

import (
	"context"
	"sort"

	"fetan/internal/domain/entity"
	"fetan/internal/domain/repository"
	"fetan/internal/infrastructure/localstore"
	apperrors "fetan/pkg/errors"
)

const (
	conversationsNamespace = "conversations"
	messagesNamespace      = "messages"
)

type localChatRepository struct {
	store *localstore.Store
}

func NewLocalChatRepository(store *localstore.Store) repository.ChatRepository {
	return &localChatRepository{store: store}
}

func (r *localChatRepository) CreateConversation(ctx context.Context, conv *entity.Conversation) error {
	var convos []*entity.Conversation
	return r.store.Mutate(conversationsNamespace, &convos, func() error {
		convos = append(convos, conv)
		return nil
	})
}

func (r *localChatRepository) GetConversationByID(ctx context.Context, id string) (*entity.Conversation, error) {
	var convos []*entity.Conversation
	if err := r.store.Get(conversationsNamespace, &convos); err != nil {
		return nil, err
	}
	for _, c := range convos {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, apperrors.NotFound("Conversation", nil)
}

func (r *localChatRepository) FindByParticipants(ctx context.Context, userA, userB string) (*entity.Conversation, error) {
	var convos []*entity.Conversation
	if err := r.store.Get(conversationsNamespace, &convos); err != nil {
		return nil, err
	}
	for _, c := range convos {
		if c.HasParticipant(userA) && c.HasParticipant(userB) {
			return c, nil
		}
	}
	return nil, apperrors.NotFound("Conversation", nil)
}

func (r *localChatRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	var convos []*entity.Conversation
	if err := r.store.Get(conversationsNamespace, &convos); err != nil {
		return nil, err
	}
	var out []*entity.Conversation
	for _, c := range convos {
		if c.HasParticipant(userID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *localChatRepository) AppendMessage(ctx context.Context, message *entity.DirectMessage, incrementUnread bool) error {
	var msgs []*entity.DirectMessage
	if err := r.store.Mutate(messagesNamespace, &msgs, func() error {
		msgs = append(msgs, message)
		return nil
	}); err != nil {
		return err
	}

	// Refresh the denormalized last-message cache.
	var convos []*entity.Conversation
	return r.store.Mutate(conversationsNamespace, &convos, func() error {
		for _, c := range convos {
			if c.ID == message.ConversationID {
				c.LastMessage = message.Content
				c.LastMessageAt = message.CreatedAt
				if incrementUnread {
					c.UnreadCount++
				}
				return nil
			}
		}
		return apperrors.NotFound("Conversation", nil)
	})
}

func (r *localChatRepository) ListMessages(ctx context.Context, conversationID string) ([]*entity.DirectMessage, error) {
	var msgs []*entity.DirectMessage
	if err := r.store.Get(messagesNamespace, &msgs); err != nil {
		return nil, err
	}
	var out []*entity.DirectMessage
	for _, m := range msgs {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, k int) bool {
		return out[i].CreatedAt.Before(out[k].CreatedAt)
	})
	return out, nil
}

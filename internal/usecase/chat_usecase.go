package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"fetan/internal/domain/entity"
	"fetan/internal/domain/repository"
	"fetan/internal/infrastructure/ratelimit"
	"fetan/internal/seed"
	apperrors "fetan/pkg/errors"
	"fetan/pkg/logger"
)

type ChatUseCase struct {
	chatRepo    repository.ChatRepository
	userRepo    repository.UserRepository
	rateLimiter *ratelimit.RateLimiter
	replySim    *ReplySimulator // nil on the remote strategy
}

func NewChatUseCase(chatRepo repository.ChatRepository, userRepo repository.UserRepository, rateLimiter *ratelimit.RateLimiter, replySim *ReplySimulator) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:    chatRepo,
		userRepo:    userRepo,
		rateLimiter: rateLimiter,
		replySim:    replySim,
	}
}

// ParticipantSummary is the counterpart's directory summary hydrated onto
// each conversation for list display.
type ParticipantSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Role   string `json:"role"`
}

type ConversationResponse struct {
	*entity.Conversation
	OtherUser *ParticipantSummary `json:"other_user,omitempty"`
}

// GetConversations returns the user's conversations, most recent first,
// each hydrated with the counterpart's summary.
func (uc *ChatUseCase) GetConversations(ctx context.Context, userID string) ([]*ConversationResponse, error) {
	convos, err := uc.chatRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(convos, func(i, k int) bool {
		return convos[i].LastMessageAt.After(convos[k].LastMessageAt)
	})

	out := make([]*ConversationResponse, 0, len(convos))
	for _, conv := range convos {
		resp := &ConversationResponse{Conversation: conv}
		if otherID := conv.OtherParticipant(userID); otherID != "" {
			if other := uc.lookupUser(ctx, otherID); other != nil {
				resp.OtherUser = &ParticipantSummary{
					ID:     other.ID,
					Name:   other.Name,
					Avatar: other.Avatar,
					Role:   other.Role,
				}
			}
		}
		out = append(out, resp)
	}
	return out, nil
}

func (uc *ChatUseCase) GetMessages(ctx context.Context, conversationID string) ([]*entity.DirectMessage, error) {
	if _, err := uc.chatRepo.GetConversationByID(ctx, conversationID); err != nil {
		return nil, err
	}
	return uc.chatRepo.ListMessages(ctx, conversationID)
}

// StartConversation resolves or creates the single conversation for an
// unordered pair of users. Repeated calls return the same id.
func (uc *ChatUseCase) StartConversation(ctx context.Context, currentUserID, targetUserID string) (string, error) {
	if currentUserID == targetUserID {
		return "", apperrors.BadRequest("You cannot start a conversation with yourself", nil)
	}

	existing, err := uc.chatRepo.FindByParticipants(ctx, currentUserID, targetUserID)
	if err == nil && existing != nil {
		return existing.ID, nil
	}
	if err != nil && !apperrors.Is(err, "NOT_FOUND") {
		return "", err
	}

	if allowed, wait := uc.rateLimiter.Allow(currentUserID, "start_conversation"); !allowed {
		logger.Warn("start conversation rate limited: user %s must wait %v", currentUserID, wait)
		return "", apperrors.TooManyRequests("Please wait before starting another conversation", wait)
	}

	now := time.Now()
	conv := &entity.Conversation{
		ID:            uuid.NewString(),
		Participants:  []string{currentUserID, targetUserID},
		LastMessageAt: now, // creation-time default for list ordering
		CreatedAt:     now,
	}
	if err := uc.chatRepo.CreateConversation(ctx, conv); err != nil {
		return "", err
	}
	return conv.ID, nil
}

// SendMessage appends to the conversation and, on the fallback strategy,
// queues a synthetic counterpart reply without delaying the sender.
func (uc *ChatUseCase) SendMessage(ctx context.Context, conversationID, senderID, content string) (*entity.DirectMessage, error) {
	if allowed, wait := uc.rateLimiter.Allow(senderID, "send_message"); !allowed {
		logger.Warn("send message rate limited: user %s must wait %v", senderID, wait)
		return nil, apperrors.TooManyRequests("Please wait before sending another message", wait)
	}

	conv, err := uc.chatRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(senderID) {
		return nil, apperrors.Forbidden("You are not a participant in this conversation", nil)
	}

	message := &entity.DirectMessage{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		CreatedAt:      time.Now(),
		Read:           false,
	}

	if err := uc.chatRepo.AppendMessage(ctx, message, false); err != nil {
		return nil, err
	}

	if uc.replySim != nil {
		uc.replySim.Schedule(conversationID, senderID)
	}

	return message, nil
}

// lookupUser resolves a directory entry, falling back to the seeded
// reference providers for ids that are not registered accounts.
func (uc *ChatUseCase) lookupUser(ctx context.Context, id string) *entity.User {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err == nil {
		return user
	}
	for _, provider := range seed.Providers() {
		if provider.ID == id {
			return provider
		}
	}
	return nil
}

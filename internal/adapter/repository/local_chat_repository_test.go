package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fetan/internal/domain/entity"
	apperrors "fetan/pkg/errors"
)

func seedConversation(t *testing.T, repo interface {
	CreateConversation(ctx context.Context, conv *entity.Conversation) error
}) *entity.Conversation {
	t.Helper()
	conv := &entity.Conversation{
		ID:            "c1",
		Participants:  []string{"u1", "p1"},
		LastMessageAt: time.Now(),
		CreatedAt:     time.Now(),
	}
	require.NoError(t, repo.CreateConversation(context.Background(), conv))
	return conv
}

func TestFindByParticipantsIsUnordered(t *testing.T) {
	repo := NewLocalChatRepository(newTestStore(t))
	ctx := context.Background()
	seedConversation(t, repo)

	found, err := repo.FindByParticipants(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.Equal(t, "c1", found.ID)

	reversed, err := repo.FindByParticipants(ctx, "p1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "c1", reversed.ID)

	_, err = repo.FindByParticipants(ctx, "u1", "p2")
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestAppendMessageRefreshesConversationCache(t *testing.T) {
	repo := NewLocalChatRepository(newTestStore(t))
	ctx := context.Background()
	seedConversation(t, repo)

	sent := time.Now().Add(time.Minute)
	msg := &entity.DirectMessage{
		ID:             "m1",
		ConversationID: "c1",
		SenderID:       "u1",
		Content:        "My sink is leaking",
		CreatedAt:      sent,
	}
	require.NoError(t, repo.AppendMessage(ctx, msg, false))

	conv, err := repo.GetConversationByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "My sink is leaking", conv.LastMessage)
	assert.True(t, conv.LastMessageAt.Equal(sent))
	assert.Equal(t, 0, conv.UnreadCount)

	reply := &entity.DirectMessage{
		ID:             "m2",
		ConversationID: "c1",
		SenderID:       "p1",
		Content:        "I can come by tomorrow afternoon.",
		CreatedAt:      sent.Add(time.Minute),
	}
	require.NoError(t, repo.AppendMessage(ctx, reply, true))

	conv, err = repo.GetConversationByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, reply.Content, conv.LastMessage)
	assert.Equal(t, 1, conv.UnreadCount)
}

func TestAppendMessageUnknownConversation(t *testing.T) {
	repo := NewLocalChatRepository(newTestStore(t))

	err := repo.AppendMessage(context.Background(), &entity.DirectMessage{
		ID:             "m1",
		ConversationID: "missing",
		SenderID:       "u1",
		Content:        "hello",
		CreatedAt:      time.Now(),
	}, false)
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestListMessagesOrderedByTime(t *testing.T) {
	repo := NewLocalChatRepository(newTestStore(t))
	ctx := context.Background()
	seedConversation(t, repo)

	base := time.Now()
	// Appended out of order on purpose.
	for _, m := range []*entity.DirectMessage{
		{ID: "m2", ConversationID: "c1", SenderID: "p1", Content: "second", CreatedAt: base.Add(2 * time.Second)},
		{ID: "m1", ConversationID: "c1", SenderID: "u1", Content: "first", CreatedAt: base.Add(1 * time.Second)},
		{ID: "m3", ConversationID: "c1", SenderID: "u1", Content: "third", CreatedAt: base.Add(3 * time.Second)},
	} {
		require.NoError(t, repo.AppendMessage(ctx, m, false))
	}

	msgs, err := repo.ListMessages(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "second", msgs[1].Content)
	assert.Equal(t, "third", msgs[2].Content)
}

func TestListByUserFiltersParticipants(t *testing.T) {
	repo := NewLocalChatRepository(newTestStore(t))
	ctx := context.Background()
	seedConversation(t, repo)
	require.NoError(t, repo.CreateConversation(ctx, &entity.Conversation{
		ID:           "c2",
		Participants: []string{"u2", "p2"},
		CreatedAt:    time.Now(),
	}))

	convos, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, convos, 1)
	assert.Equal(t, "c1", convos[0].ID)
}

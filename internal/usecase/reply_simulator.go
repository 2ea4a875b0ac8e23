package usecase

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"fetan/internal/domain/entity"
	"fetan/internal/domain/repository"
	"fetan/pkg/logger"
)

var replyPhrases = []string{
	"Thanks for reaching out! I'm available.",
	"Could you send me a photo of the issue?",
	"I can come by tomorrow afternoon.",
	"That sounds good to me.",
	"Hello! How can I help you today?",
}

// ReplySimulator injects a synthetic counterpart reply a short while after
// an outbound message, emulating a live chat partner on the fallback
// strategy. Pending replies are cancelled by Close, so none outlive the
// process.
type ReplySimulator struct {
	chatRepo repository.ChatRepository
	delay    time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewReplySimulator(chatRepo repository.ChatRepository, delay time.Duration) *ReplySimulator {
	ctx, cancel := context.WithCancel(context.Background())
	return &ReplySimulator{
		chatRepo: chatRepo,
		delay:    delay,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Schedule queues one reply from senderID's counterpart. Never blocks the
// caller.
func (s *ReplySimulator) Schedule(conversationID, senderID string) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		select {
		case <-s.ctx.Done():
			return
		case <-time.After(s.delay):
		}

		// Failures here must never reach the original sender's flow.
		conv, err := s.chatRepo.GetConversationByID(s.ctx, conversationID)
		if err != nil {
			logger.Warn("reply simulator: conversation %s lookup failed: %v", conversationID, err)
			return
		}

		counterpart := conv.OtherParticipant(senderID)
		if counterpart == "" {
			return
		}

		reply := &entity.DirectMessage{
			ID:             uuid.NewString(),
			ConversationID: conversationID,
			SenderID:       counterpart,
			Content:        replyPhrases[rand.Intn(len(replyPhrases))],
			CreatedAt:      time.Now(),
			Read:           false,
		}

		if err := s.chatRepo.AppendMessage(s.ctx, reply, true); err != nil {
			logger.Warn("reply simulator: append failed for %s: %v", conversationID, err)
		}
	}()
}

// Close cancels pending replies and waits for in-flight goroutines.
func (s *ReplySimulator) Close() {
	s.cancel()
	s.wg.Wait()
}

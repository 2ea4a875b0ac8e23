package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"fetan/internal/infrastructure/gemini"
	apperrors "fetan/pkg/errors"
)

// AssistantUseCase mediates the diagnostic chat with the conversational
// engine, keeping per-session history server-side.
type AssistantUseCase struct {
	client *gemini.Client // nil when no credential is configured

	mu       sync.Mutex
	sessions map[string][]gemini.Turn
}

func NewAssistantUseCase(client *gemini.Client) *AssistantUseCase {
	return &AssistantUseCase{
		client:   client,
		sessions: make(map[string][]gemini.Turn),
	}
}

// StartSession opens a diagnostic session. Callers must degrade gracefully
// when the engine is unconfigured.
func (uc *AssistantUseCase) StartSession(ctx context.Context) (string, error) {
	if uc.client == nil {
		return "", apperrors.UpstreamUnavailable("AI assistant is not configured", nil)
	}

	id := uuid.NewString()
	uc.mu.Lock()
	uc.sessions[id] = nil
	uc.mu.Unlock()
	return id, nil
}

func (uc *AssistantUseCase) SendMessage(ctx context.Context, sessionID, text string) (*gemini.Reply, error) {
	if uc.client == nil {
		return nil, apperrors.UpstreamUnavailable("AI assistant is not configured", nil)
	}

	uc.mu.Lock()
	history, ok := uc.sessions[sessionID]
	uc.mu.Unlock()
	if !ok {
		return nil, apperrors.NotFound("Session", nil)
	}

	reply, err := uc.client.SendMessage(ctx, history, text)
	if err != nil {
		return nil, apperrors.UpstreamUnavailable("AI assistant is unavailable", err)
	}

	uc.mu.Lock()
	uc.sessions[sessionID] = append(history,
		gemini.Turn{Role: "user", Text: text},
		gemini.Turn{Role: "model", Text: reply.Text},
	)
	uc.mu.Unlock()

	return reply, nil
}

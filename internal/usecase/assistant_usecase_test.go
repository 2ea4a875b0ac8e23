package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "fetan/pkg/errors"
)

func TestAssistantUnconfiguredDegradesGracefully(t *testing.T) {
	uc := NewAssistantUseCase(nil)
	ctx := context.Background()

	_, err := uc.StartSession(ctx)
	assert.True(t, apperrors.Is(err, "UPSTREAM_UNAVAILABLE"))

	_, err = uc.SendMessage(ctx, "any-session", "my sink leaks")
	assert.True(t, apperrors.Is(err, "UPSTREAM_UNAVAILABLE"))
}

package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReplyStructured(t *testing.T) {
	reply := ParseReply(`{"text":"Sounds like a worn washer. A plumber can sort that out quickly.","suggestion":"Plumbing"}`)
	assert.Equal(t, "Sounds like a worn washer. A plumber can sort that out quickly.", reply.Text)
	assert.Equal(t, "Plumbing", reply.Suggestion)
}

func TestParseReplyDropsUnknownSuggestion(t *testing.T) {
	reply := ParseReply(`{"text":"Hello!","suggestion":"Astrology"}`)
	assert.Equal(t, "Hello!", reply.Text)
	assert.Empty(t, reply.Suggestion)
}

func TestParseReplyFallsBackToRawText(t *testing.T) {
	raw := "I'm sorry, could you tell me more about the issue?"
	reply := ParseReply(raw)
	assert.Equal(t, raw, reply.Text)
	assert.Empty(t, reply.Suggestion)
}

func TestParseReplyEmptyTextFallsBack(t *testing.T) {
	raw := `{"suggestion":"Plumbing"}`
	reply := ParseReply(raw)
	assert.Equal(t, raw, reply.Text)
	assert.Empty(t, reply.Suggestion)
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(context.Background(), "")
	assert.Error(t, err)
}

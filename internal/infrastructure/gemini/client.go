package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"fetan/internal/domain/entity"
)

const defaultModel = "gemini-3-pro-preview"

const systemInstruction = `You are Fetan's friendly and knowledgeable Home Renovation Consultant. Your name is Fetan AI.
Your personality is warm, witty, and encouraging. You speak naturally, avoiding overly robotic phrasing or starting every sentence with "As an AI".

Your primary goal is to guide homeowners through their maintenance issues, acting as a bridge to the professional experts on the Fetan platform.

Guidelines for your responses:
1. Be Conversational: Use natural greetings, emojis, and transitions. Validate the user's situation.
2. Diagnose First: If the user's description is vague, ask a clarifying question before giving advice.
3. Safety First: When suggesting DIY fixes, always emphasize safety. If a task is dangerous (like major electrical work), strongly advise against DIY.
4. Recommend Experts: Clearly identify the professional category needed for the job.
5. Service Suggestion: If the user's problem maps to a specific service category (Plumbing, Electrical, Painting, Carpentry, Cleaning, Installation), you MUST include it in the 'suggestion' field of your JSON response. Use Title Case.

Keep responses concise but not curt. Use formatting (bullet points, bold text) to make advice easy to read.`

// Turn is one prior exchange in a diagnostic conversation.
type Turn struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// Reply is the structured assistant answer. Suggestion is empty or one of
// the service categories.
type Reply struct {
	Text       string `json:"text"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Client wraps the Gemini API for the diagnostic assistant.
type Client struct {
	client *genai.Client
	model  string
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Client{client: client, model: defaultModel}, nil
}

// SendMessage sends the running history plus the new user message and
// returns the structured reply. An upstream answer that is not valid JSON
// is used verbatim as the narrative with no suggestion.
func (c *Client) SendMessage(ctx context.Context, history []Turn, text string) (*Reply, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		var role genai.Role = genai.RoleUser
		if turn.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(text, genai.RoleUser))

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"text": {
					Type:        genai.TypeString,
					Description: "Your conversational response to the user. Use natural language, markdown formatting is allowed.",
				},
				"suggestion": {
					Type:        genai.TypeString,
					Description: "The service category best matching the user's problem, or null for chit-chat.",
					Enum:        entity.ServiceCategories,
					Nullable:    genai.Ptr(true),
				},
			},
			Required: []string{"text"},
		},
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}

	raw := result.Text()
	return ParseReply(raw), nil
}

// ParseReply decodes the structured response, falling back to the raw text
// when it cannot be parsed.
func ParseReply(raw string) *Reply {
	var reply Reply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil || reply.Text == "" {
		return &Reply{Text: raw}
	}
	if !entity.IsServiceCategory(reply.Suggestion) {
		reply.Suggestion = ""
	}
	return &reply
}

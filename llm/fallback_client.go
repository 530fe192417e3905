package llm

import (
	"context"
	"fmt"
)

const fallbackInvitation = "Tell me what you'd like help with, and I'll do my best to assist."

// FallbackClient is the deterministic offline responder. It never touches the
// network and never fails, which makes it the terminal recovery path for any
// backend error.
type FallbackClient struct{}

func NewFallbackClient() *FallbackClient {
	return &FallbackClient{}
}

func (c *FallbackClient) GetModel() string {
	return "offline"
}

func (c *FallbackClient) GenerateInference(_ context.Context, messages []Message, _ ...LLMOption) (string, error) {
	var lastUser *Message
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == RoleUser {
			lastUser = &messages[i]
			break
		}
	}

	if lastUser == nil {
		return fallbackInvitation, nil
	}

	return fmt.Sprintf(
		"I'm running in offline mode. Set OPENAI_API_KEY to connect to the OpenAI API. You said: %s",
		lastUser.Content,
	), nil
}

package agent

import (
	"context"

	"github.com/SaiNageswarS/chat-core/llm"
	"github.com/SaiNageswarS/chat-core/memory"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"
)

// Mode reports the provenance of a reply.
type Mode string

const (
	ModeOpenAI  Mode = "openai"  // reply came from a real backend
	ModeOffline Mode = "offline" // reply came from the local fallback
)

// Config holds the collaborators resolved once at construction.
type Config struct {
	Client       llm.ChatClient
	Fallback     llm.ChatClient
	SystemPrompt string
	Temperature  float64
	Mode         Mode
}

// ChatAgent is the conversation façade: it owns system-prompt injection and
// the error-to-fallback recovery policy.
type ChatAgent struct {
	config Config
}

func New(config Config) *ChatAgent {
	if config.Fallback == nil {
		config.Fallback = llm.NewFallbackClient()
	}

	return &ChatAgent{config: config}
}

// Mode reports the construction-time provenance of successful replies.
func (a *ChatAgent) Mode() Mode {
	return a.config.Mode
}

// Respond runs one conversation turn against the session. Backend failures
// are absorbed locally: the fallback responder supplies the reply and the
// turn reports offline. The assistant reply is appended only after the
// backend call has fully resolved.
func (a *ChatAgent) Respond(ctx context.Context, session *memory.Session, userMessage string) (string, Mode) {
	session.EnsureSystemPrompt(a.config.SystemPrompt)
	session.AddUserMessage(userMessage)

	mode := a.config.Mode
	reply, err := a.config.Client.GenerateInference(ctx, session.Messages,
		llm.WithTemperature(a.config.Temperature))
	if err != nil {
		logger.Error("Backend call failed, using offline responder",
			zap.String("sessionId", session.ID), zap.Error(err))

		mode = ModeOffline
		reply, _ = a.config.Fallback.GenerateInference(ctx, session.Messages)
	}

	session.AddAssistantMessage(reply)
	return reply, mode
}

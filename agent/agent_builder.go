package agent

import (
	"os"
	"strings"

	"github.com/SaiNageswarS/chat-core/appconfig"
	"github.com/SaiNageswarS/chat-core/llm"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"
)

// NewChatAgent resolves the active client from configuration. The choice is
// made once: a missing OPENAI_API_KEY pins the agent to the offline
// responder, more than one configured model enables multi-model synthesis,
// otherwise a single backend serves every turn.
func NewChatAgent(ccfgg *appconfig.AppConfig) *ChatAgent {
	config := Config{
		Fallback:     llm.NewFallbackClient(),
		SystemPrompt: ccfgg.SystemPromptText(),
		Temperature:  ccfgg.TemperatureValue(),
	}

	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		logger.Info("OPENAI_API_KEY is not set, running in offline mode")
		config.Client = config.Fallback
		config.Mode = ModeOffline
		return New(config)
	}

	models := ccfgg.Models()
	timeout := ccfgg.RequestTimeout()
	config.Mode = ModeOpenAI

	if len(models) > 1 {
		members := make([]llm.ModelClient, 0, len(models))
		for _, model := range models {
			members = append(members, llm.ModelClient{
				Name:   model,
				Client: llm.NewOpenAIClient(apiKey, model, timeout),
			})
		}

		synthesisModel := ccfgg.SynthesisModelName()
		config.Client = llm.NewMultiModelClient(members, llm.NewOpenAIClient(apiKey, synthesisModel, timeout))

		logger.Info("Multi-model mode enabled",
			zap.Strings("models", models), zap.String("synthesisModel", synthesisModel))
		return New(config)
	}

	config.Client = llm.NewOpenAIClient(apiKey, models[0], timeout)
	logger.Info("Single-model mode enabled", zap.String("model", models[0]))
	return New(config)
}

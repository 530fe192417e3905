package appconfig

import (
	"strconv"
	"strings"
	"time"

	"github.com/SaiNageswarS/go-api-boot/config"
)

const (
	defaultModel        = "gpt-4o-mini"
	defaultTemperature  = 0.7
	defaultTimeout      = 30 * time.Second
	defaultHistoryLimit = 16
	defaultHTTPAddr     = ":8080"

	// defaultSystemPrompt is the persona injected at the head of every session.
	defaultSystemPrompt = "You are a helpful, friendly AI assistant. " +
		"Answer clearly and concisely, and ask follow-up questions when helpful."
)

// AppConfig carries the chat options. Values stay raw strings so the same
// field can come from config.ini or environment; typed accessors apply
// parsing and defaults.
type AppConfig struct {
	config.BootConfig `ini:",extends"`

	OpenAIModel       string `env:"OPENAI-MODEL" ini:"openai_model"`
	OpenAIExtraModels string `env:"OPENAI-EXTRA-MODELS" ini:"openai_extra_models"`
	SynthesisModel    string `env:"OPENAI-SYNTHESIS-MODEL" ini:"openai_synthesis_model"`
	Temperature       string `env:"OPENAI-TEMPERATURE" ini:"openai_temperature"`
	TimeoutSeconds    string `env:"OPENAI-TIMEOUT" ini:"openai_timeout"`
	HistoryLimit      string `env:"CHAT-HISTORY-LIMIT" ini:"chat_history_limit"`
	SystemPrompt      string `env:"SYSTEM-PROMPT" ini:"system_prompt"`
	HTTPAddr          string `env:"HTTP-ADDR" ini:"http_addr"`
}

// Models returns the configured model identifiers in order, primary first.
// More than one model enables multi-model mode.
func (c *AppConfig) Models() []string {
	primary := strings.TrimSpace(c.OpenAIModel)
	if primary == "" {
		primary = defaultModel
	}

	models := []string{primary}
	for _, m := range strings.Split(c.OpenAIExtraModels, ",") {
		if m = strings.TrimSpace(m); m != "" {
			models = append(models, m)
		}
	}
	return models
}

// SynthesisModelName defaults to the first configured model.
func (c *AppConfig) SynthesisModelName() string {
	if m := strings.TrimSpace(c.SynthesisModel); m != "" {
		return m
	}
	return c.Models()[0]
}

func (c *AppConfig) TemperatureValue() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(c.Temperature), 64)
	if err != nil {
		return defaultTemperature
	}
	return v
}

func (c *AppConfig) RequestTimeout() time.Duration {
	v, err := strconv.Atoi(strings.TrimSpace(c.TimeoutSeconds))
	if err != nil || v <= 0 {
		return defaultTimeout
	}
	return time.Duration(v) * time.Second
}

// ChatHistoryLimit is the per-session message cap. 0 disables trimming.
func (c *AppConfig) ChatHistoryLimit() int {
	v, err := strconv.Atoi(strings.TrimSpace(c.HistoryLimit))
	if err != nil || v < 0 {
		return defaultHistoryLimit
	}
	return v
}

func (c *AppConfig) SystemPromptText() string {
	if p := strings.TrimSpace(c.SystemPrompt); p != "" {
		return p
	}
	return defaultSystemPrompt
}

func (c *AppConfig) HTTPAddress() string {
	if a := strings.TrimSpace(c.HTTPAddr); a != "" {
		return a
	}
	return defaultHTTPAddr
}

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

const defaultRequestTimeout = 30 * time.Second

type OpenAIClient struct {
	apiKey     string
	httpClient *http.Client
	url        string
	model      string
}

func NewOpenAIClient(apiKey, model string, timeout time.Duration) *OpenAIClient {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &OpenAIClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		url:        "https://api.openai.com/v1/chat/completions",
		model:      model,
	}
}

func (c *OpenAIClient) GetModel() string {
	return c.model
}

func (c *OpenAIClient) GenerateInference(ctx context.Context, messages []Message, opts ...LLMOption) (string, error) {
	settings := LLMSettings{
		model:       c.model,
		temperature: 0.7,
	}

	// Apply options
	for _, opt := range opts {
		opt(&settings)
	}

	request := openAIRequest{
		Model:       settings.model,
		Temperature: settings.temperature,
		MaxTokens:   settings.maxTokens,
		Messages:    make([]chatMessage, 0, len(messages)+1),
	}

	if settings.system != "" {
		request.Messages = append(request.Messages, chatMessage{Role: RoleSystem, Content: settings.system})
	}
	for _, m := range messages {
		request.Messages = append(request.Messages, chatMessage{Role: m.Role, Content: m.Content})
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", backendErrorf(err, "error marshaling request")
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", backendErrorf(err, "error creating request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", backendErrorf(err, "error making request to %s", settings.model)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", backendErrorf(err, "error reading response")
	}

	var response openAIResponse
	parseErr := json.Unmarshal(body, &response)

	if parseErr == nil && response.Error != nil {
		return "", backendErrorf(nil, "provider error from %s: %s", settings.model, response.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return "", backendErrorf(nil, "API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if parseErr != nil {
		return "", backendErrorf(parseErr, "error unmarshaling response")
	}

	if len(response.Choices) == 0 || response.Choices[0].Message.Content == "" {
		return "", backendErrorf(nil, "no completion in response from %s", settings.model)
	}

	return response.Choices[0].Message.Content, nil
}

// OpenAI API types. Session timestamps never cross the wire.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Messages    []chatMessage `json:"messages"`
}

type openAIResponse struct {
	Choices []openAIChoice `json:"choices"`
	Error   *openAIError   `json:"error,omitempty"`
}

type openAIChoice struct {
	Message chatMessage `json:"message"`
}

type openAIError struct {
	Message string `json:"message"`
}

package llm

import (
	"context"
	"strings"

	"github.com/SaiNageswarS/chat-core/prompts"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-collection-boot/async"
	"go.uber.org/zap"
)

// ModelClient pairs a member model's display name with its backend.
type ModelClient struct {
	Name   string
	Client ChatClient
}

// MultiModelClient asks every member model the same question concurrently and
// then runs one synthesis call that merges the raw answers into a single
// reply. Members must all succeed before synthesis runs.
type MultiModelClient struct {
	members   []ModelClient
	synthesis ChatClient
}

// NewMultiModelClient builds the orchestrator. A nil synthesis client
// defaults to the first member's backend.
func NewMultiModelClient(members []ModelClient, synthesis ChatClient) *MultiModelClient {
	if synthesis == nil && len(members) > 0 {
		synthesis = members[0].Client
	}

	return &MultiModelClient{members: members, synthesis: synthesis}
}

func (c *MultiModelClient) GetModel() string {
	return c.synthesis.GetModel()
}

func (c *MultiModelClient) GenerateInference(ctx context.Context, messages []Message, opts ...LLMOption) (string, error) {
	// 1. Fan the identical message list out to every member.
	//    async.AwaitAll joins results in task order, so candidate ordering
	//    follows configuration order regardless of completion order.
	tasks := make([]<-chan async.Result[string], 0, len(c.members))
	for _, member := range c.members {
		tasks = append(tasks, async.Go(func() (string, error) {
			return member.Client.GenerateInference(ctx, messages, opts...)
		}))
	}

	candidateTexts, err := async.AwaitAll(tasks...)
	if err != nil {
		logger.Error("member model failed, skipping synthesis", zap.Error(err))
		return "", backendErrorf(err, "multi-model fan-out failed")
	}

	// 2. One labeled candidate block per member, in configuration order.
	candidates := make([]prompts.ModelOutput, len(c.members))
	for i, member := range c.members {
		candidates[i] = prompts.ModelOutput{Model: member.Name, Text: candidateTexts[i]}
	}

	systemPrompt, userPrompt, err := prompts.RenderSynthesisPrompt(prompts.SynthesisPromptData{
		Transcript: renderTranscript(messages),
		Outputs:    candidates,
	})
	if err != nil {
		return "", backendErrorf(err, "error rendering synthesis prompt")
	}

	// 3. The synthesis call sees only these two messages, not the full
	//    original history.
	synthesisMessages := []Message{
		{Role: RoleSystem, Content: systemPrompt},
		{Role: RoleUser, Content: userPrompt},
	}

	return c.synthesis.GenerateInference(ctx, synthesisMessages, opts...)
}

// renderTranscript flattens the conversation into "Role: content" lines.
func renderTranscript(messages []Message) string {
	var b strings.Builder
	for i, m := range messages {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(capitalizeRole(m.Role))
		b.WriteString(": ")
		b.WriteString(m.Content)
	}
	return b.String()
}

func capitalizeRole(role string) string {
	if role == "" {
		return role
	}
	return strings.ToUpper(role[:1]) + role[1:]
}

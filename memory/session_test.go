package memory

import (
	"fmt"
	"testing"

	"github.com/SaiNageswarS/chat-core/llm"
	"github.com/stretchr/testify/assert"
)

func TestSession_Add(t *testing.T) {
	t.Run("AddUserMessage", func(t *testing.T) {
		session := NewSession("s1", 0)
		session.AddUserMessage("Hello")

		assert.Len(t, session.Messages, 1)
		assert.Equal(t, "user", session.Messages[0].Role)
		assert.Equal(t, "Hello", session.Messages[0].Content)
		assert.False(t, session.Messages[0].Timestamp.IsZero())
	})

	t.Run("AddAssistantMessage", func(t *testing.T) {
		session := NewSession("s1", 0)
		session.AddAssistantMessage("Hi there!")

		assert.Len(t, session.Messages, 1)
		assert.Equal(t, "assistant", session.Messages[0].Role)
		assert.Equal(t, "Hi there!", session.Messages[0].Content)
	})

	t.Run("order is chronological", func(t *testing.T) {
		session := NewSession("s1", 0)
		session.AddUserMessage("one")
		session.AddAssistantMessage("two")
		session.AddUserMessage("three")

		contents := []string{}
		for _, m := range session.Messages {
			contents = append(contents, m.Content)
		}
		assert.Equal(t, []string{"one", "two", "three"}, contents)
	})
}

func TestSession_EnsureSystemPrompt(t *testing.T) {
	t.Run("inserts on empty session", func(t *testing.T) {
		session := NewSession("s1", 0)
		session.EnsureSystemPrompt("persona")

		assert.Len(t, session.Messages, 1)
		assert.Equal(t, "system", session.Messages[0].Role)
		assert.Equal(t, "persona", session.Messages[0].Content)
	})

	t.Run("inserts at head of existing transcript", func(t *testing.T) {
		session := NewSession("s1", 0)
		session.AddUserMessage("Hello")
		session.EnsureSystemPrompt("persona")

		assert.Len(t, session.Messages, 2)
		assert.Equal(t, "system", session.Messages[0].Role)
		assert.Equal(t, "Hello", session.Messages[1].Content)
	})

	t.Run("never duplicates the system message", func(t *testing.T) {
		session := NewSession("s1", 0)
		session.EnsureSystemPrompt("persona")
		session.EnsureSystemPrompt("other persona")

		assert.Len(t, session.Messages, 1)
		assert.Equal(t, "persona", session.Messages[0].Content)
	})
}

func TestSession_Trim(t *testing.T) {
	mkMessages := func(roleContents ...string) []llm.Message {
		msgs := make([]llm.Message, 0, len(roleContents)/2)
		for i := 0; i+1 < len(roleContents); i += 2 {
			msgs = append(msgs, llm.Message{Role: roleContents[i], Content: roleContents[i+1]})
		}
		return msgs
	}

	tests := []struct {
		name        string
		maxMessages int
		input       []llm.Message
		expected    []string // contents, in order
	}{
		{
			name:        "zero limit disables trimming",
			maxMessages: 0,
			input:       mkMessages("user", "a", "assistant", "b", "user", "c"),
			expected:    []string{"a", "b", "c"},
		},
		{
			name:        "under the limit is untouched",
			maxMessages: 5,
			input:       mkMessages("user", "a", "assistant", "b"),
			expected:    []string{"a", "b"},
		},
		{
			name:        "oldest non-system messages drop first",
			maxMessages: 2,
			input:       mkMessages("user", "a", "assistant", "b", "user", "c"),
			expected:    []string{"b", "c"},
		},
		{
			name:        "system message is pinned and excluded from the count",
			maxMessages: 3,
			input:       mkMessages("system", "sys", "user", "a", "assistant", "b", "user", "c", "assistant", "d"),
			expected:    []string{"sys", "c", "d"},
		},
		{
			name:        "collapses to system only when nothing else fits",
			maxMessages: 1,
			input:       mkMessages("system", "sys", "user", "a", "assistant", "b"),
			expected:    []string{"sys"},
		},
		{
			name:        "single slot keeps only the newest message",
			maxMessages: 1,
			input:       mkMessages("user", "a", "assistant", "b"),
			expected:    []string{"b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := NewSession("s1", tt.maxMessages)
			for _, m := range tt.input {
				session.Add(m.Role, m.Content)
			}

			contents := []string{}
			for _, m := range session.Messages {
				contents = append(contents, m.Content)
			}
			assert.Equal(t, tt.expected, contents)
		})
	}
}

func TestSession_TrimInvariantAfterEveryAdd(t *testing.T) {
	// system + 5 turns at limit 3 keeps the system message and the last two
	// turns, with the invariant holding after every single insertion.
	session := NewSession("s1", 3)
	session.EnsureSystemPrompt("persona")

	for i := 1; i <= 5; i++ {
		role := "user"
		if i%2 == 0 {
			role = "assistant"
		}
		session.Add(role, fmt.Sprintf("turn-%d", i))

		assert.LessOrEqual(t, len(session.Messages), 3)
		assert.Equal(t, "system", session.Messages[0].Role)
	}

	contents := []string{}
	for _, m := range session.Messages {
		contents = append(contents, m.Content)
	}
	assert.Equal(t, []string{"persona", "turn-4", "turn-5"}, contents)
}

func TestSession_Clear(t *testing.T) {
	session := NewSession("s1", 0)
	session.EnsureSystemPrompt("persona")
	session.AddUserMessage("Hello")

	session.Clear()

	assert.Empty(t, session.Messages)
}

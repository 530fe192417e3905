package memory

import (
	"time"

	"github.com/SaiNageswarS/chat-core/llm"
)

// Session is one conversation's ordered transcript plus its trim limit.
// MaxMessages of 0 means unlimited. A session is never mutated by two
// requests concurrently; distinct sessions are independent.
type Session struct {
	ID          string        `json:"id"`
	MaxMessages int           `json:"max_messages"`
	Messages    []llm.Message `json:"messages"`
}

func NewSession(id string, maxMessages int) *Session {
	return &Session{
		ID:          id,
		MaxMessages: maxMessages,
		Messages:    []llm.Message{},
	}
}

// Add appends a message stamped with the current time and enforces the trim
// limit.
func (s *Session) Add(role, content string) {
	s.Messages = append(s.Messages, llm.Message{Role: role, Content: content, Timestamp: time.Now()})
	s.trim()
}

func (s *Session) AddUserMessage(content string) {
	s.Add(llm.RoleUser, content)
}

func (s *Session) AddAssistantMessage(content string) {
	s.Add(llm.RoleAssistant, content)
}

// EnsureSystemPrompt places a system message at index 0 unless one is
// already there. The session keeps at most one system message.
func (s *Session) EnsureSystemPrompt(content string) {
	if len(s.Messages) > 0 && s.Messages[0].Role == llm.RoleSystem {
		return
	}

	system := llm.Message{Role: llm.RoleSystem, Content: content, Timestamp: time.Now()}
	s.Messages = append([]llm.Message{system}, s.Messages...)
}

// Clear drops the whole transcript, including any system message.
func (s *Session) Clear() {
	s.Messages = []llm.Message{}
}

// trim truncates the transcript to MaxMessages. A leading system message is
// pinned at index 0 and excluded from the count; the oldest non-system
// messages are dropped first.
func (s *Session) trim() {
	if s.MaxMessages <= 0 || len(s.Messages) <= s.MaxMessages {
		return
	}

	rest := s.Messages
	var system []llm.Message
	if rest[0].Role == llm.RoleSystem {
		system = rest[:1]
		rest = rest[1:]
	}

	keep := s.MaxMessages - len(system)
	if keep <= 0 {
		s.Messages = append([]llm.Message{}, system...)
		return
	}

	if len(rest) > keep {
		rest = rest[len(rest)-keep:]
	}
	s.Messages = append(append([]llm.Message{}, system...), rest...)
}

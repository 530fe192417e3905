package memory

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Store is the process-wide session registry. It owns session creation and
// propagates the per-session message cap. Sessions live for the process
// lifetime; eviction is an extension point, not implemented here.
type Store struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	maxMessages int
}

func NewStore(maxMessages int) *Store {
	return &Store{
		sessions:    make(map[string]*Session),
		maxMessages: maxMessages,
	}
}

// GetOrCreate returns the session registered under sessionID, creating it on
// first reference. An empty id mints a fresh random identifier. Repeated
// calls with the same id return the same *Session, so callers share one
// instance. First writer wins on a racing id.
func (s *Store) GetOrCreate(sessionID string) *Session {
	if sessionID == "" {
		sessionID = strings.ReplaceAll(uuid.NewString(), "-", "")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[sessionID]; ok {
		return session
	}

	session := NewSession(sessionID, s.maxMessages)
	s.sessions[sessionID] = session
	return session
}

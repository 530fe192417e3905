package services

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/SaiNageswarS/chat-core/agent"
	"github.com/SaiNageswarS/chat-core/memory"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"
)

// ChatService is the thin HTTP plumbing over the store and the agent. It
// knows about forms and JSON; the conversation logic lives behind Respond.
type ChatService struct {
	store *memory.Store
	agent *agent.ChatAgent
}

func ProvideChatService(store *memory.Store, chatAgent *agent.ChatAgent) *ChatService {
	return &ChatService{store: store, agent: chatAgent}
}

func (s *ChatService) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/chat", s.Chat)
	mux.HandleFunc("/status", s.Status)
	mux.HandleFunc("/reset", s.Reset)
}

type chatResponse struct {
	SessionID string     `json:"session_id"`
	Reply     string     `json:"reply"`
	Mode      agent.Mode `json:"mode"`
}

func (s *ChatService) Chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	message := strings.TrimSpace(r.FormValue("message"))
	if message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	session := s.store.GetOrCreate(r.FormValue("session_id"))
	reply, mode := s.agent.Respond(r.Context(), session, message)

	writeJSON(w, chatResponse{SessionID: session.ID, Reply: reply, Mode: mode})
}

type statusResponse struct {
	Mode agent.Mode `json:"mode"`
}

func (s *ChatService) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, statusResponse{Mode: s.agent.Mode()})
}

type resetResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

func (s *ChatService) Reset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session := s.store.GetOrCreate(r.FormValue("session_id"))
	session.Clear()

	writeJSON(w, resetResponse{SessionID: session.ID, Message: "Session cleared."})
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}

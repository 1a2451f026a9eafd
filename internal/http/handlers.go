package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const maxChatBody = 64 << 10 // 64KB

// ChatRequest mirrors the chat GUI's message contract. History is accepted
// for compatibility with chat clients but never consulted: each message is
// classified on its own.
type ChatRequest struct {
	Message string          `json:"message"`
	History json.RawMessage `json:"history,omitempty"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	body := http.MaxBytesReader(w, r.Body, maxChatBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply := s.assistant.Handle(r.Context(), req.Message)

	slog.InfoContext(r.Context(), "Chat message handled",
		"message_len", len(req.Message),
		"reply_len", len(reply))

	writeJSON(w, http.StatusOK, ChatResponse{Reply: reply})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

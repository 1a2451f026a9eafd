// Package http exposes the assistant over a small JSON API. The chat
// endpoint is the boundary the GUI talks to; everything conversational
// happens behind it.
package http

import (
	"context"
	"net/http"
	"time"
)

// Chatter is the conversational core behind the API.
type Chatter interface {
	Handle(ctx context.Context, text string) string
}

type Server struct {
	http.Server
	assistant Chatter
}

func NewServer(addr string, assistant Chatter) *Server {
	s := &Server{assistant: assistant}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.Server = http.Server{
		Addr:           addr,
		Handler:        mux,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16, // 64KB
	}
	return s
}

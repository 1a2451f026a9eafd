package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type echoAssistant struct {
	lastMessage string
}

func (e *echoAssistant) Handle(ctx context.Context, text string) string {
	e.lastMessage = text
	return "reply to: " + text
}

func TestHandleChat(t *testing.T) {
	assistant := &echoAssistant{}
	srv := NewServer(":0", assistant)

	body := `{"message": "I spent $45 on groceries", "history": [["hi", "hello"]]}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body)
	}
	var resp ChatResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Reply != "reply to: I spent $45 on groceries" {
		t.Fatalf("unexpected reply %q", resp.Reply)
	}
	if assistant.lastMessage != "I spent $45 on groceries" {
		t.Fatalf("assistant got %q", assistant.lastMessage)
	}
}

func TestHandleChatRejectsBadInput(t *testing.T) {
	srv := NewServer(":0", &echoAssistant{})

	cases := []struct {
		name string
		body string
	}{
		{"invalid json", `{"message":`},
		{"empty message", `{"message": "  "}`},
		{"missing message", `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			srv.Handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status %d, body %s", rec.Code, rec.Body)
			}
		})
	}
}

func TestHandleChatMethodNotAllowed(t *testing.T) {
	srv := NewServer(":0", &echoAssistant{})
	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := NewServer(":0", &echoAssistant{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var health map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&health); err != nil {
		t.Fatal(err)
	}
	if health["status"] != "ok" {
		t.Fatalf("unexpected health payload %v", health)
	}
}

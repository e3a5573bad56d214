package chatbot_adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/domain"
)

func TestSendMessage(t *testing.T) {
	var gotPath, gotTrace, gotMessage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotTrace = r.Header.Get("X-Trace-ID")

		var req chatRequestDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		gotMessage = req.Message

		json.NewEncoder(w).Encode(chatResponseDTO{Response: "Try the winter coats section."})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-42")
	reply, err := client.SendMessage(ctx, "where are the coats?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Try the winter coats section." {
		t.Errorf("reply = %q", reply)
	}
	if gotPath != "/chat" {
		t.Errorf("path = %q, want /chat", gotPath)
	}
	if gotTrace != "trace-42" {
		t.Errorf("trace header = %q", gotTrace)
	}
	if gotMessage != "where are the coats?" {
		t.Errorf("forwarded message = %q", gotMessage)
	}
}

func TestSendMessageNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, _ := NewClient(server.URL, time.Second)
	_, err := client.SendMessage(context.Background(), "hi")
	if !errors.Is(err, domain.ErrChatbotUnavailable) {
		t.Fatalf("err = %v, want ErrChatbotUnavailable", err)
	}
}

func TestSendMessageErrorPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatResponseDTO{Error: "model overloaded"})
	}))
	defer server.Close()

	client, _ := NewClient(server.URL, time.Second)
	_, err := client.SendMessage(context.Background(), "hi")
	if !errors.Is(err, domain.ErrChatbotUnavailable) {
		t.Fatalf("err = %v, want ErrChatbotUnavailable", err)
	}
}

func TestSendMessageMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client, _ := NewClient(server.URL, time.Second)
	_, err := client.SendMessage(context.Background(), "hi")
	if !errors.Is(err, domain.ErrChatbotUnavailable) {
		t.Fatalf("err = %v, want ErrChatbotUnavailable", err)
	}
}

func TestSendMessageConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, _ := NewClient(server.URL, time.Second)
	_, err := client.SendMessage(context.Background(), "hi")
	if !errors.Is(err, domain.ErrChatbotUnavailable) {
		t.Fatalf("err = %v, want ErrChatbotUnavailable", err)
	}
}

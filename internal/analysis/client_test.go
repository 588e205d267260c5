package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// mockCompletions serves chat completions whose message content is reply.
type mockCompletions struct {
	mu       sync.Mutex
	status   int
	reply    string
	requests []completionRequest
}

type completionRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	Temperature    float64 `json:"temperature"`
	MaxTokens      int64   `json:"max_tokens"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
	LogitBias map[string]int `json:"logit_bias"`
}

func (m *mockCompletions) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	var req completionRequest
	json.Unmarshal(data, &req)

	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if m.status != 0 && m.status != http.StatusOK {
		w.WriteHeader(m.status)
		io.WriteString(w, `{"error":{"message":"boom","type":"server_error"}}`)
		return
	}

	content, _ := json.Marshal(m.reply)
	io.WriteString(w, `{"id":"chatcmpl-1","object":"chat.completion","created":1700000000,"model":"gpt-4o","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":`+string(content)+`}}]}`)
}

func newTestClient(t *testing.T, mock *mockCompletions) *Client {
	t.Helper()
	srv := httptest.NewServer(mock)
	t.Cleanup(srv.Close)
	return New(Config{APIKey: "sk-test", BaseURL: srv.URL})
}

func TestAnalyzeRequestShape(t *testing.T) {
	mock := &mockCompletions{reply: `{"summary":"S","key_points":["p1"],"details":[],"follow_up_suggestions":[]}`}
	client := newTestClient(t, mock)

	text := "Alice: Budget is $10k"
	got, err := client.Analyze(context.Background(), text, Financial)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got.Summary != "S" || len(got.KeyPoints) != 1 {
		t.Errorf("result = %+v", got)
	}

	if len(mock.requests) != 1 {
		t.Fatalf("requests = %d, want exactly 1", len(mock.requests))
	}
	req := mock.requests[0]
	if req.Model != DefaultModel {
		t.Errorf("model = %q", req.Model)
	}
	if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
		t.Fatalf("messages = %+v", req.Messages)
	}
	if !strings.Contains(req.Messages[0].Content, "only reply with JSON") {
		t.Errorf("system message = %q", req.Messages[0].Content)
	}
	user := req.Messages[1].Content
	if !strings.Contains(user, Financial.Prompt()) {
		t.Error("user message is missing the category prompt")
	}
	if !strings.Contains(user, text) {
		t.Error("user message is missing the transcript text")
	}
	if req.ResponseFormat.Type != "json_object" {
		t.Errorf("response_format.type = %q, want json_object", req.ResponseFormat.Type)
	}
	if req.Temperature != DefaultTemperature {
		t.Errorf("temperature = %v", req.Temperature)
	}
	if req.MaxTokens != DefaultAnalysisMaxTokens {
		t.Errorf("max_tokens = %d", req.MaxTokens)
	}
	if len(req.LogitBias) != 0 {
		t.Errorf("logit_bias = %v, want none", req.LogitBias)
	}
}

func TestAnalyzeEveryCategoryPrompt(t *testing.T) {
	mock := &mockCompletions{reply: `{"summary":"","key_points":[],"details":[],"follow_up_suggestions":[]}`}
	client := newTestClient(t, mock)

	for _, c := range Categories {
		if _, err := client.Analyze(context.Background(), "Bob: hi", c); err != nil {
			t.Fatalf("Analyze(%s): %v", c, err)
		}
	}
	for i, c := range Categories {
		if !strings.Contains(mock.requests[i].Messages[1].Content, c.Prompt()) {
			t.Errorf("request %d missing prompt for %s", i, c)
		}
	}
}

func TestAnalyzeMalformedReply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"prose", "I could not analyze this."},
		{"missing field", `{"summary":"S","key_points":[],"details":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, &mockCompletions{reply: tt.reply})

			_, err := client.Analyze(context.Background(), "x", Compliance)
			var me *MalformedResponseError
			if !errors.As(err, &me) {
				t.Fatalf("error = %v, want MalformedResponseError", err)
			}
			if me.Raw != tt.reply {
				t.Errorf("raw = %q, want %q", me.Raw, tt.reply)
			}
		})
	}
}

func TestAnalyzeProviderError(t *testing.T) {
	mock := &mockCompletions{status: http.StatusInternalServerError}
	client := newTestClient(t, mock)

	_, err := client.Analyze(context.Background(), "x", Financial)
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want ProviderError", err)
	}
	if pe.Status != http.StatusInternalServerError {
		t.Errorf("status = %d", pe.Status)
	}
	if len(mock.requests) != 1 {
		t.Errorf("requests = %d, want 1 (no retry)", len(mock.requests))
	}
}

func TestAnalyzeUnknownCategory(t *testing.T) {
	mock := &mockCompletions{}
	client := newTestClient(t, mock)

	if _, err := client.Analyze(context.Background(), "x", Category("marketing")); err == nil {
		t.Fatal("expected error")
	}
	if len(mock.requests) != 0 {
		t.Errorf("requests = %d, want 0", len(mock.requests))
	}
}

func TestDraftFollowUp(t *testing.T) {
	mock := &mockCompletions{reply: `{"subject":"Meeting Follow-up: Budget","body":"<p>Thanks</p>"}`}
	client := newTestClient(t, mock)

	got, err := client.DraftFollowUp(context.Background(), "Alice: Budget is $10k")
	if err != nil {
		t.Fatalf("DraftFollowUp: %v", err)
	}
	if got.Body != "<p>Thanks</p>" {
		t.Errorf("body = %q", got.Body)
	}

	req := mock.requests[0]
	if req.MaxTokens != DefaultEmailMaxTokens {
		t.Errorf("max_tokens = %d", req.MaxTokens)
	}
	if !strings.Contains(req.Messages[1].Content, "Alice: Budget is $10k") {
		t.Error("user message is missing the transcript text")
	}
	if req.ResponseFormat.Type != "json_object" {
		t.Errorf("response_format.type = %q", req.ResponseFormat.Type)
	}
}

func TestDraftFollowUpMalformed(t *testing.T) {
	client := newTestClient(t, &mockCompletions{reply: `{"subject":"only"}`})

	_, err := client.DraftFollowUp(context.Background(), "x")
	var me *MalformedResponseError
	if !errors.As(err, &me) || me.Kind != KindEmail {
		t.Fatalf("error = %v, want email MalformedResponseError", err)
	}
}

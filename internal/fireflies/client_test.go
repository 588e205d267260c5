package fireflies

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// startMockProvider serves a canned response and records the last request.
func startMockProvider(t *testing.T, status int, body string) (*httptest.Server, *capturedRequest) {
	t.Helper()

	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.auth = r.Header.Get("Authorization")
		captured.contentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &captured.body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

type capturedRequest struct {
	method      string
	auth        string
	contentType string
	body        Request
}

const twoTranscripts = `{"data":{"transcripts":[
	{"id":"a","title":"Kickoff","date":1700000000000,"sentences":[{"text":"Budget is $10k","speaker_name":"Alice"}]},
	{"id":"b","title":"Review","date":1700086400000.0,"sentences":[]}
]}}`

func TestFetchTranscripts(t *testing.T) {
	srv, captured := startMockProvider(t, http.StatusOK, twoTranscripts)

	client := New(srv.URL, 0)
	got, err := client.FetchTranscripts(context.Background(), "key-123", 10)
	if err != nil {
		t.Fatalf("FetchTranscripts: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d transcripts, want 2", len(got))
	}
	if got[0].ID != "a" || got[0].Title != "Kickoff" || got[0].Date != 1700000000000 {
		t.Errorf("got[0] = %+v", got[0])
	}
	if len(got[0].Sentences) != 1 || got[0].Sentences[0].SpeakerName != "Alice" || got[0].Sentences[0].Text != "Budget is $10k" {
		t.Errorf("got[0].Sentences = %+v", got[0].Sentences)
	}
	if got[1].ID != "b" || got[1].Date != 1700086400000 {
		t.Errorf("got[1] = %+v", got[1])
	}

	if captured.method != http.MethodPost {
		t.Errorf("method = %q, want POST", captured.method)
	}
	if captured.auth != "Bearer key-123" {
		t.Errorf("authorization = %q", captured.auth)
	}
	if captured.contentType != "application/json" {
		t.Errorf("content-type = %q", captured.contentType)
	}
	if captured.body.Variables.Limit != 10 {
		t.Errorf("limit = %d, want 10", captured.body.Variables.Limit)
	}
	if captured.body.Query != TranscriptsQuery {
		t.Error("query text was not sent verbatim")
	}
}

func TestFetchTranscriptsLimitBounds(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default", 0, DefaultLimit},
		{"negative", -3, DefaultLimit},
		{"in range", 25, 25},
		{"capped", 500, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, captured := startMockProvider(t, http.StatusOK, `{"data":{"transcripts":[]}}`)
			client := New(srv.URL, 0)
			if _, err := client.FetchTranscripts(context.Background(), "k", tt.limit); err != nil {
				t.Fatalf("FetchTranscripts: %v", err)
			}
			if captured.body.Variables.Limit != tt.want {
				t.Errorf("limit = %d, want %d", captured.body.Variables.Limit, tt.want)
			}
		})
	}
}

func TestFetchTranscriptsErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"errors":[{"message":"invalid key"}]}`},
		{"server error", http.StatusInternalServerError, `oops`},
		{"missing data", http.StatusOK, `{}`},
		{"null transcripts", http.StatusOK, `{"data":{"transcripts":null}}`},
		{"graphql errors", http.StatusOK, `{"data":null,"errors":[{"message":"rate limited"}]}`},
		{"not json", http.StatusOK, `<html>`},
		{"date out of range", http.StatusOK, `{"data":{"transcripts":[{"id":"a","title":"t","date":1e300,"sentences":[]}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := startMockProvider(t, tt.status, tt.body)
			client := New(srv.URL, 0)

			got, err := client.FetchTranscripts(context.Background(), "k", 10)
			if err == nil {
				t.Fatalf("expected error, got %d transcripts", len(got))
			}
			var pe *ProviderError
			if !errors.As(err, &pe) {
				t.Fatalf("error %T is not a ProviderError: %v", err, err)
			}
			if got != nil {
				t.Errorf("got = %v, want nil on error", got)
			}
		})
	}
}

func TestFetchTranscriptsStatusReported(t *testing.T) {
	srv, _ := startMockProvider(t, http.StatusForbidden, `{}`)
	client := New(srv.URL, 0)

	_, err := client.FetchTranscripts(context.Background(), "k", 10)
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v", err)
	}
	if pe.Status != http.StatusForbidden {
		t.Errorf("status = %d, want 403", pe.Status)
	}
}

func TestFetchTranscriptsRequiresKey(t *testing.T) {
	client := New("http://127.0.0.1:1", 0)
	_, err := client.FetchTranscripts(context.Background(), "  ", 10)
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want ProviderError", err)
	}
}

func TestFetchTranscriptsConnectFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := New(url, 0)
	_, err := client.FetchTranscripts(context.Background(), "k", 10)
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want ProviderError", err)
	}
	if pe.Status != 0 {
		t.Errorf("status = %d, want 0 for transport failure", pe.Status)
	}
}

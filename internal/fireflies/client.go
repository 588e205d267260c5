package fireflies

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jwulff/recap/internal/transcript"
)

// ProviderError reports a failed or malformed transcripts response.
type ProviderError struct {
	Status  int // HTTP status, 0 if the request never completed
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	var b strings.Builder
	b.WriteString("fireflies: ")
	if e.Status != 0 {
		fmt.Fprintf(&b, "status %d: ", e.Status)
	}
	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Client queries the Fireflies GraphQL API.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// New returns a client for endpoint. An empty endpoint uses DefaultEndpoint.
func New(endpoint string, timeout time.Duration) *Client {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchTranscripts issues one transcripts query and returns the records in
// response order.
func (c *Client) FetchTranscripts(ctx context.Context, apiKey string, limit int) ([]transcript.Transcript, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, &ProviderError{Message: "api key is required"}
	}

	body, err := json.Marshal(Request{
		Query:     TranscriptsQuery,
		Variables: Variables{Limit: ClampLimit(limit)},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ProviderError{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, &ProviderError{Status: resp.StatusCode, Message: "read body", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ProviderError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("API request failed with status code %d", resp.StatusCode),
		}
	}

	var env Response
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &ProviderError{Status: resp.StatusCode, Message: "decode response", Err: err}
	}
	if len(env.Errors) > 0 {
		msgs := make([]string, 0, len(env.Errors))
		for _, e := range env.Errors {
			msgs = append(msgs, e.Message)
		}
		return nil, &ProviderError{Status: resp.StatusCode, Message: strings.Join(msgs, "; ")}
	}
	if env.Data == nil || env.Data.Transcripts == nil {
		return nil, &ProviderError{Status: resp.StatusCode, Message: "response missing data.transcripts"}
	}

	records := *env.Data.Transcripts
	out := make([]transcript.Transcript, 0, len(records))
	for _, r := range records {
		t, err := r.Transcript()
		if err != nil {
			return nil, &ProviderError{Status: resp.StatusCode, Message: "decode transcript", Err: err}
		}
		out = append(out, t)
	}
	return out, nil
}

package analysis

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openaigo "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

const (
	DefaultBaseURL           = "https://api.openai.com/v1"
	DefaultModel             = "gpt-4o"
	DefaultTemperature       = 0.7
	DefaultAnalysisMaxTokens = 3000
	DefaultEmailMaxTokens    = 2000
	DefaultTimeout           = 120 * time.Second
)

// ProviderError reports a transport failure, non-success status, or error
// payload from the completion endpoint.
type ProviderError struct {
	Status int
	Err    error
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("llm provider: status %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("llm provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Config configures the completion client.
type Config struct {
	APIKey            string
	BaseURL           string
	Model             string
	Temperature       float64
	AnalysisMaxTokens int64
	EmailMaxTokens    int64
	Timeout           time.Duration
	HTTPClient        *http.Client
}

// Client issues chat completions in JSON-object mode.
type Client struct {
	api               openaigo.Client
	model             string
	temperature       float64
	analysisMaxTokens int64
	emailMaxTokens    int64
}

// New builds a Client. Zero fields fall back to the package defaults.
// SDK retries are disabled; every call is a single priced request.
func New(cfg Config) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	c := &Client{
		api: openaigo.NewClient(
			option.WithBaseURL(baseURL+"/"),
			option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
			option.WithHTTPClient(httpClient),
			option.WithMaxRetries(0),
			option.WithRequestTimeout(timeout),
		),
		model:             model,
		temperature:       cfg.Temperature,
		analysisMaxTokens: cfg.AnalysisMaxTokens,
		emailMaxTokens:    cfg.EmailMaxTokens,
	}
	if c.temperature == 0 {
		c.temperature = DefaultTemperature
	}
	if c.analysisMaxTokens <= 0 {
		c.analysisMaxTokens = DefaultAnalysisMaxTokens
	}
	if c.emailMaxTokens <= 0 {
		c.emailMaxTokens = DefaultEmailMaxTokens
	}
	return c
}

// Analyze summarizes transcriptText along category.
func (c *Client) Analyze(ctx context.Context, transcriptText string, category Category) (Result, error) {
	if !category.Valid() {
		return Result{}, fmt.Errorf("unknown category %q", category)
	}
	raw, err := c.complete(ctx, analysisSystemPrompt, AnalysisUserPrompt(category, transcriptText), c.analysisMaxTokens)
	if err != nil {
		return Result{}, err
	}
	return ParseResult(raw)
}

// DraftFollowUp drafts the client follow-up email for transcriptText.
func (c *Client) DraftFollowUp(ctx context.Context, transcriptText string) (FollowUpEmail, error) {
	raw, err := c.complete(ctx, emailSystemPrompt, EmailUserPrompt(transcriptText), c.emailMaxTokens)
	if err != nil {
		return FollowUpEmail{}, err
	}
	return ParseFollowUpEmail(raw)
}

func (c *Client) complete(ctx context.Context, system, user string, maxTokens int64) (string, error) {
	params := openaigo.ChatCompletionNewParams{
		Model: openaigo.ChatModel(c.model),
		Messages: []openaigo.ChatCompletionMessageParamUnion{
			openaigo.SystemMessage(system),
			openaigo.UserMessage(user),
		},
		Temperature: openaigo.Float(c.temperature),
		MaxTokens:   openaigo.Int(maxTokens),
		ResponseFormat: openaigo.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}

	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openaigo.Error
		if errors.As(err, &apiErr) {
			return "", &ProviderError{Status: apiErr.StatusCode, Err: err}
		}
		return "", &ProviderError{Err: err}
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", &ProviderError{Err: errors.New("llm returned empty choices")}
	}
	return resp.Choices[0].Message.Content, nil
}

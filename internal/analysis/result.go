// Package analysis asks the LLM service for category summaries and follow-up
// email drafts and validates the JSON replies.
package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Result is the parsed analysis reply.
type Result struct {
	Summary             string   `json:"summary"`
	KeyPoints           []string `json:"key_points"`
	Details             []Detail `json:"details"`
	FollowUpSuggestions []string `json:"follow_up_suggestions"`
}

// Detail is one topic entry of an analysis.
type Detail struct {
	Topic       string `json:"topic"`
	Description string `json:"description"`
	Relevance   string `json:"relevance"`
}

// FollowUpEmail is the drafted client email.
type FollowUpEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"` // HTML fragment
}

// Reply kinds carried by MalformedResponseError.
const (
	KindAnalysis = "analysis"
	KindEmail    = "follow-up email"
)

// MalformedResponseError reports a reply that does not match the expected JSON
// shape. Raw holds the reply text for display.
type MalformedResponseError struct {
	Kind string
	Raw  string
	Err  error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed %s response: %v", e.Kind, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// Pointer fields tell a missing or null key apart from an empty value.
type resultWire struct {
	Summary             *string   `json:"summary"`
	KeyPoints           *[]string `json:"key_points"`
	Details             *[]Detail `json:"details"`
	FollowUpSuggestions *[]string `json:"follow_up_suggestions"`
}

type emailWire struct {
	Subject *string `json:"subject"`
	Body    *string `json:"body"`
}

// ParseResult validates raw against the analysis schema.
func ParseResult(raw string) (Result, error) {
	var w resultWire
	if err := decodeObject(raw, &w); err != nil {
		return Result{}, &MalformedResponseError{Kind: KindAnalysis, Raw: raw, Err: err}
	}

	var missing []string
	if w.Summary == nil {
		missing = append(missing, "summary")
	}
	if w.KeyPoints == nil {
		missing = append(missing, "key_points")
	}
	if w.Details == nil {
		missing = append(missing, "details")
	}
	if w.FollowUpSuggestions == nil {
		missing = append(missing, "follow_up_suggestions")
	}
	if len(missing) > 0 {
		return Result{}, &MalformedResponseError{Kind: KindAnalysis, Raw: raw, Err: missingFields(missing)}
	}

	return Result{
		Summary:             *w.Summary,
		KeyPoints:           *w.KeyPoints,
		Details:             *w.Details,
		FollowUpSuggestions: *w.FollowUpSuggestions,
	}, nil
}

// ParseFollowUpEmail validates raw against the email schema.
func ParseFollowUpEmail(raw string) (FollowUpEmail, error) {
	var w emailWire
	if err := decodeObject(raw, &w); err != nil {
		return FollowUpEmail{}, &MalformedResponseError{Kind: KindEmail, Raw: raw, Err: err}
	}

	var missing []string
	if w.Subject == nil {
		missing = append(missing, "subject")
	}
	if w.Body == nil {
		missing = append(missing, "body")
	}
	if len(missing) > 0 {
		return FollowUpEmail{}, &MalformedResponseError{Kind: KindEmail, Raw: raw, Err: missingFields(missing)}
	}
	return FollowUpEmail{Subject: *w.Subject, Body: *w.Body}, nil
}

func decodeObject(raw string, v any) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return errors.New("empty reply")
	}
	if !strings.HasPrefix(raw, "{") {
		return errors.New("reply is not a JSON object")
	}
	return json.Unmarshal([]byte(raw), v)
}

func missingFields(names []string) error {
	return fmt.Errorf("missing required field(s): %s", strings.Join(names, ", "))
}

// Package fireflies provides the client and wire types for the Fireflies
// GraphQL transcripts query.
package fireflies

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/jwulff/recap/internal/transcript"
)

// DefaultEndpoint is the Fireflies GraphQL endpoint.
const DefaultEndpoint = "https://api.fireflies.ai/graphql"

const (
	DefaultLimit = 10
	MaxLimit     = 50
)

// TranscriptsQuery fetches the most recent transcripts with their sentences.
const TranscriptsQuery = `query Transcripts($limit: Int) {
  transcripts(limit: $limit) {
    id
    title
    date
    sentences {
      text
      speaker_name
    }
  }
}`

// Request is the GraphQL POST body.
type Request struct {
	Query     string    `json:"query"`
	Variables Variables `json:"variables"`
}

// Variables carries the query variables.
type Variables struct {
	Limit int `json:"limit"`
}

// Response is the GraphQL envelope. Data is a pointer so a missing envelope
// can be told apart from an empty one.
type Response struct {
	Data   *ResponseData  `json:"data"`
	Errors []GraphQLError `json:"errors,omitempty"`
}

// ResponseData holds the transcripts field. Transcripts is nil when the field
// is absent or null.
type ResponseData struct {
	Transcripts *[]TranscriptRecord `json:"transcripts"`
}

// GraphQLError is one entry of the errors array.
type GraphQLError struct {
	Message string `json:"message"`
}

// TranscriptRecord is a transcript as it appears on the wire.
type TranscriptRecord struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Date      json.Number      `json:"date"`
	Sentences []SentenceRecord `json:"sentences"`
}

// SentenceRecord is one sentence as it appears on the wire.
type SentenceRecord struct {
	Text        string `json:"text"`
	SpeakerName string `json:"speaker_name"`
}

// Transcript converts the wire record into the domain model.
func (r TranscriptRecord) Transcript() (transcript.Transcript, error) {
	date, err := parseMillis(r.Date)
	if err != nil {
		return transcript.Transcript{}, fmt.Errorf("transcript %s date: %w", r.ID, err)
	}
	t := transcript.Transcript{
		ID:        r.ID,
		Title:     r.Title,
		Date:      date,
		Sentences: make([]transcript.Utterance, 0, len(r.Sentences)),
	}
	for _, s := range r.Sentences {
		t.Sentences = append(t.Sentences, transcript.Utterance{
			Text:        s.Text,
			SpeakerName: s.SpeakerName,
		})
	}
	return t, nil
}

// parseMillis accepts integer or float millisecond timestamps.
func parseMillis(n json.Number) (int64, error) {
	if n == "" {
		return 0, nil
	}
	if v, err := n.Int64(); err == nil {
		return v, nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, errors.New("timestamp out of range: " + n.String())
	}
	return int64(f), nil
}

// ClampLimit applies the default and the provider's page cap.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Package transcript holds the meeting transcript model and the helpers that
// turn one into prompt text.
package transcript

import (
	"strings"
	"time"
)

// Utterance is one speaker turn.
type Utterance struct {
	Text        string `json:"text"`
	SpeakerName string `json:"speaker_name"`
}

// Transcript is a recorded meeting as returned by the provider.
type Transcript struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Date      int64       `json:"date"` // epoch milliseconds
	Sentences []Utterance `json:"sentences"`
}

// Format joins the utterances as "speaker: text" lines in input order.
func Format(t Transcript) string {
	lines := make([]string, 0, len(t.Sentences))
	for _, s := range t.Sentences {
		lines = append(lines, s.SpeakerName+": "+s.Text)
	}
	return strings.Join(lines, "\n")
}

// Speakers returns the distinct speaker names in order of first appearance.
func Speakers(t Transcript) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range t.Sentences {
		if seen[s.SpeakerName] {
			continue
		}
		seen[s.SpeakerName] = true
		out = append(out, s.SpeakerName)
	}
	return out
}

// DateLabel formats an epoch-millisecond timestamp as a UTC day.
func DateLabel(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("2006-01-02")
}

// Find returns the transcript with the given id.
func Find(list []Transcript, id string) (Transcript, bool) {
	for _, t := range list {
		if t.ID == id {
			return t, true
		}
	}
	return Transcript{}, false
}

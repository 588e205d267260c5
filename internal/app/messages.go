package app

import (
	"time"

	"github.com/jwulff/recap/internal/analysis"
	"github.com/jwulff/recap/internal/transcript"
)

// TranscriptsFetchedMsg carries a successful refresh.
type TranscriptsFetchedMsg struct {
	Transcripts []transcript.Transcript
}

// TranscriptsFetchErrorMsg is sent when a refresh fails.
type TranscriptsFetchErrorMsg struct {
	Err error
}

// AnalysisDoneMsg carries a completed analysis and email draft.
type AnalysisDoneMsg struct {
	Outcome Outcome
}

// AnalysisFailedMsg is sent when either the analysis or the draft fails.
type AnalysisFailedMsg struct {
	Category analysis.Category
	Err      error
}

// EmailSentMsg is sent after the relay accepts the report.
type EmailSentMsg struct {
	Recipient string
	At        time.Time
}

// EmailFailedMsg is sent when the report could not be emailed.
type EmailFailedMsg struct {
	Err error
}

// ClearTransientErrorMsg clears a transient error after a timeout.
type ClearTransientErrorMsg struct{}

package app

import (
	"context"
	"time"

	"github.com/jwulff/recap/internal/analysis"
	"github.com/jwulff/recap/internal/db"
	"github.com/jwulff/recap/internal/logger"
	"github.com/jwulff/recap/internal/transcript"
)

// TranscriptFetcher loads the most recent transcripts.
type TranscriptFetcher interface {
	FetchTranscripts(ctx context.Context, apiKey string, limit int) ([]transcript.Transcript, error)
}

// Analyzer produces category analyses and follow-up email drafts.
type Analyzer interface {
	Analyze(ctx context.Context, transcriptText string, category analysis.Category) (analysis.Result, error)
	DraftFollowUp(ctx context.Context, transcriptText string) (analysis.FollowUpEmail, error)
}

// Notifier emails a rendered report to one recipient.
type Notifier interface {
	Send(ctx context.Context, recipient, subject, html string) error
}

// ReportStore archives completed reports.
type ReportStore interface {
	SaveReport(r db.Report) (string, error)
	MarkEmailed(id, recipient string, at time.Time) error
}

// Deps wires the Model to its collaborators. Notifier and Reports may be nil.
type Deps struct {
	Fetcher  TranscriptFetcher
	Analyzer Analyzer
	Notifier Notifier
	Reports  ReportStore
	Log      logger.Logger

	TranscriptLimit int
	ModelName       string

	// Initial input values.
	APIKey    string
	Recipient string
	AutoEmail bool
}

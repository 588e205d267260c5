package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwulff/recap/internal/analysis"
	"github.com/jwulff/recap/internal/db"
	"github.com/jwulff/recap/internal/logger"
	"github.com/jwulff/recap/internal/report"
	"github.com/jwulff/recap/internal/transcript"
)

// Outcome is a displayed analysis with its rendered report.
type Outcome struct {
	Category   analysis.Category
	Transcript transcript.Transcript
	Result     analysis.Result
	Email      analysis.FollowUpEmail
	HTML       string
	Subject    string
	ReportID   string // empty when the archive is unavailable
	EmailedTo  string
}

// fetchCmd issues one transcripts query.
func fetchCmd(f TranscriptFetcher, apiKey string, limit int) tea.Cmd {
	return func() tea.Msg {
		list, err := f.FetchTranscripts(context.Background(), apiKey, limit)
		if err != nil {
			return TranscriptsFetchErrorMsg{Err: err}
		}
		return TranscriptsFetchedMsg{Transcripts: list}
	}
}

// analyzeCmd runs the analysis, then the email draft, renders the report and
// archives it. A failed analysis skips the draft.
func analyzeCmd(a Analyzer, store ReportStore, log logger.Logger, t transcript.Transcript, c analysis.Category) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		text := transcript.Format(t)

		result, err := a.Analyze(ctx, text, c)
		if err != nil {
			return AnalysisFailedMsg{Category: c, Err: err}
		}
		email, err := a.DraftFollowUp(ctx, text)
		if err != nil {
			return AnalysisFailedMsg{Category: c, Err: err}
		}

		html, err := report.Render(c, result, email.Body)
		if err != nil {
			return AnalysisFailedMsg{Category: c, Err: err}
		}

		o := Outcome{
			Category:   c,
			Transcript: t,
			Result:     result,
			Email:      email,
			HTML:       html,
			Subject:    report.Subject(c, t),
		}

		if store != nil {
			id, err := store.SaveReport(db.Report{
				TranscriptID:    t.ID,
				TranscriptTitle: t.Title,
				Category:        string(c),
				Subject:         o.Subject,
				Summary:         result.Summary,
				HTML:            html,
			})
			if err != nil {
				log.Warn(ctx, "archive report for %s: %v", t.ID, err)
			} else {
				o.ReportID = id
			}
		}
		return AnalysisDoneMsg{Outcome: o}
	}
}

// sendCmd emails the rendered report and records the send in the archive.
func sendCmd(n Notifier, store ReportStore, log logger.Logger, o Outcome, recipient string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := n.Send(ctx, recipient, o.Subject, o.HTML); err != nil {
			return EmailFailedMsg{Err: err}
		}
		at := time.Now()
		if store != nil && o.ReportID != "" {
			if err := store.MarkEmailed(o.ReportID, recipient, at); err != nil {
				log.Warn(ctx, "mark report %s emailed: %v", o.ReportID, err)
			}
		}
		return EmailSentMsg{Recipient: recipient, At: at}
	}
}

// clearTransientErrorCmd fires after a delay to clear transient errors.
func clearTransientErrorCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return ClearTransientErrorMsg{}
	})
}

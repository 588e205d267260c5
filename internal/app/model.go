package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwulff/recap/internal/analysis"
	"github.com/jwulff/recap/internal/fireflies"
	"github.com/jwulff/recap/internal/logger"
	"github.com/jwulff/recap/internal/mailer"
	"github.com/jwulff/recap/internal/ui"
)

// PanelFocus tracks which control has keyboard focus.
type PanelFocus int

const (
	FocusAPIKey PanelFocus = iota
	FocusRecipient
	FocusTranscripts
	FocusOutput
	focusCount
)

// OutputView selects what the right-hand panel shows.
type OutputView int

const (
	ViewTranscript OutputView = iota
	ViewReport
)

// Model is the root bubbletea model for the recap TUI.
type Model struct {
	deps Deps

	// Inputs
	apiKey    textinput.Model
	recipient textinput.Model
	autoEmail bool

	// Session
	session Session
	cursor  int

	// Output
	outcome      *Outcome
	outputView   OutputView
	outputScroll int

	// Busy state
	busy      bool
	busyLabel string
	spinner   spinner.Model

	// UI state
	focusedPanel PanelFocus
	width        int
	height       int

	// Errors
	errorMessage   string
	errorDetail    string
	errorTransient bool

	// Status
	statusText string
}

// New creates a Model with default state.
func New(deps Deps) Model {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.ModelName == "" {
		deps.ModelName = analysis.DefaultModel
	}

	key := textinput.New()
	key.Placeholder = "Fireflies API key"
	key.EchoMode = textinput.EchoPassword
	key.EchoCharacter = '•'
	key.Prompt = ""
	key.SetValue(deps.APIKey)

	rcpt := textinput.New()
	rcpt.Placeholder = "recipient@example.com"
	rcpt.Prompt = ""
	rcpt.SetValue(deps.Recipient)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.SpinnerStyle

	m := Model{
		deps:       deps,
		apiKey:     key,
		recipient:  rcpt,
		autoEmail:  deps.AutoEmail,
		spinner:    sp,
		statusText: "Press ctrl+r to refresh transcripts",
	}
	if strings.TrimSpace(deps.APIKey) == "" {
		m.focusedPanel = FocusAPIKey
		m.apiKey.Focus()
	} else {
		m.focusedPanel = FocusTranscripts
	}
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	if m.focusedPanel == FocusAPIKey {
		return textinput.Blink
	}
	return nil
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case TranscriptsFetchedMsg:
		m.busy = false
		m.session.Replace(msg.Transcripts)
		m.clampCursor()
		m.clearError()
		m.statusText = fmt.Sprintf("Transcripts refreshed successfully. %d loaded.", m.session.Len())
		m.deps.Log.Info(context.Background(), "fetched %d transcripts", m.session.Len())
		return m, nil

	case TranscriptsFetchErrorMsg:
		m.busy = false
		m.setError("Error refreshing transcripts: "+msg.Err.Error(), "", false)
		m.deps.Log.Error(context.Background(), "refresh transcripts: %v", msg.Err)
		return m, nil

	case AnalysisDoneMsg:
		m.busy = false
		o := msg.Outcome
		m.outcome = &o
		m.outputView = ViewReport
		m.outputScroll = 0
		m.clearError()
		m.statusText = o.Category.ButtonLabel() + " complete"
		m.deps.Log.Info(context.Background(), "analysis %s for %s done (report %s)", o.Category, o.Transcript.ID, o.ReportID)

		recipient := strings.TrimSpace(m.recipient.Value())
		if m.autoEmail && recipient != "" {
			return m.startSend(recipient)
		}
		return m, nil

	case AnalysisFailedMsg:
		m.busy = false
		m.outcome = nil
		m.outputView = ViewTranscript
		m.outputScroll = 0
		message, detail := describeError(msg.Err)
		m.setError("Failed to generate analysis or follow-up email: "+message, detail, false)
		m.deps.Log.Error(context.Background(), "analysis %s: %v", msg.Category, msg.Err)
		if detail != "" {
			m.deps.Log.Debug(context.Background(), "raw response: %s", detail)
		}
		return m, nil

	case EmailSentMsg:
		m.busy = false
		if m.outcome != nil {
			m.outcome.EmailedTo = msg.Recipient
		}
		m.statusText = "Email sent successfully to " + msg.Recipient
		m.deps.Log.Info(context.Background(), "emailed report to %s", msg.Recipient)
		return m, nil

	case EmailFailedMsg:
		m.busy = false
		m.setError("Error sending email: "+msg.Err.Error(), "", false)
		m.deps.Log.Error(context.Background(), "send email: %v", msg.Err)
		return m, nil

	case ClearTransientErrorMsg:
		if m.errorTransient {
			m.clearError()
		}
		return m, nil
	}

	cmd := m.updateFocusedInput(msg)
	return m, cmd
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyCtrlC:
		return m, tea.Quit
	case KeyTab:
		return m.setFocus((m.focusedPanel + 1) % focusCount)
	case KeyShiftTab:
		return m.setFocus((m.focusedPanel + focusCount - 1) % focusCount)
	case KeyCtrlRefresh:
		return m.startRefresh()
	}

	if m.inputFocused() {
		switch msg.String() {
		case KeyEnter:
			if m.focusedPanel == FocusAPIKey {
				next, _ := m.setFocus(FocusTranscripts)
				return next.(Model).startRefresh()
			}
			return m.setFocus(FocusTranscripts)
		case KeyEsc:
			return m.setFocus(FocusTranscripts)
		}
		cmd := m.updateFocusedInput(msg)
		return m, cmd
	}

	if idx, ok := categoryKeys[msg.String()]; ok {
		return m.startAnalysis(analysis.Categories[idx])
	}

	switch msg.String() {
	case KeyQuit, KeyQuitUpper:
		return m, tea.Quit

	case KeyRefresh:
		return m.startRefresh()

	case KeyJ, KeyDown:
		if m.focusedPanel == FocusOutput {
			m.outputScroll++
		} else if m.cursor < m.session.Len()-1 {
			m.cursor++
		}
		return m, nil

	case KeyK, KeyUp:
		if m.focusedPanel == FocusOutput {
			if m.outputScroll > 0 {
				m.outputScroll--
			}
		} else if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case KeyEnter:
		if m.focusedPanel == FocusTranscripts && m.cursor < m.session.Len() {
			id := m.session.Transcripts()[m.cursor].ID
			if m.session.Select(id) {
				m.outputView = ViewTranscript
				m.outputScroll = 0
			}
		}
		return m, nil

	case KeyAutoEmail:
		m.autoEmail = !m.autoEmail
		return m, nil

	case KeySendEmail:
		if m.busy {
			return m, nil
		}
		if m.outcome == nil {
			return m.transientError("Run an analysis before sending")
		}
		recipient := strings.TrimSpace(m.recipient.Value())
		if recipient == "" {
			return m.transientError("Enter a recipient email address first")
		}
		return m.startSend(recipient)

	case KeyToggleOutput:
		if m.outputView == ViewTranscript && m.outcome != nil {
			m.outputView = ViewReport
		} else {
			m.outputView = ViewTranscript
		}
		m.outputScroll = 0
		return m, nil
	}

	return m, nil
}

func (m Model) startRefresh() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	key := strings.TrimSpace(m.apiKey.Value())
	if key == "" {
		return m.transientError("Enter a Fireflies API key first")
	}
	m.busy = true
	m.busyLabel = "Refreshing transcripts..."
	return m, tea.Batch(fetchCmd(m.deps.Fetcher, key, m.deps.TranscriptLimit), m.spinner.Tick)
}

func (m Model) startAnalysis(c analysis.Category) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	t, ok := m.session.Selected()
	if !ok {
		return m.transientError("Select a transcript first")
	}
	m.busy = true
	m.busyLabel = fmt.Sprintf("Analyzing with %s: %s...", m.deps.ModelName, c.Label())
	m.clearError()
	return m, tea.Batch(analyzeCmd(m.deps.Analyzer, m.deps.Reports, m.deps.Log, t, c), m.spinner.Tick)
}

func (m Model) startSend(recipient string) (tea.Model, tea.Cmd) {
	if m.deps.Notifier == nil {
		m.setError("Error sending email: email is not configured (set SMTP_USERNAME and SMTP_PASSWORD)", "", false)
		return m, nil
	}
	m.busy = true
	m.busyLabel = "Sending email..."
	return m, tea.Batch(sendCmd(m.deps.Notifier, m.deps.Reports, m.deps.Log, *m.outcome, recipient), m.spinner.Tick)
}

func (m Model) setFocus(p PanelFocus) (tea.Model, tea.Cmd) {
	m.focusedPanel = p
	m.apiKey.Blur()
	m.recipient.Blur()
	var cmd tea.Cmd
	switch p {
	case FocusAPIKey:
		cmd = m.apiKey.Focus()
	case FocusRecipient:
		cmd = m.recipient.Focus()
	}
	return m, cmd
}

func (m Model) inputFocused() bool {
	return m.focusedPanel == FocusAPIKey || m.focusedPanel == FocusRecipient
}

func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focusedPanel {
	case FocusAPIKey:
		m.apiKey, cmd = m.apiKey.Update(msg)
	case FocusRecipient:
		m.recipient, cmd = m.recipient.Update(msg)
	}
	return cmd
}

func (m *Model) clampCursor() {
	if m.cursor >= m.session.Len() {
		m.cursor = max(0, m.session.Len()-1)
	}
}

func (m *Model) setError(message, detail string, transient bool) {
	m.errorMessage = message
	m.errorDetail = detail
	m.errorTransient = transient
}

func (m *Model) clearError() {
	m.setError("", "", false)
}

func (m Model) transientError(message string) (tea.Model, tea.Cmd) {
	m.setError(message, "", true)
	return m, clearTransientErrorCmd()
}

// describeError turns a pipeline error into a message and, for malformed
// replies, the raw reply text.
func describeError(err error) (string, string) {
	var malformed *analysis.MalformedResponseError
	if errors.As(err, &malformed) {
		return "Error decoding JSON: " + malformed.Error(), malformed.Raw
	}
	var llm *analysis.ProviderError
	if errors.As(err, &llm) {
		return "An error occurred while analyzing the transcript: " + llm.Error(), ""
	}
	var ff *fireflies.ProviderError
	if errors.As(err, &ff) {
		return ff.Error(), ""
	}
	var mail *mailer.EmailError
	if errors.As(err, &mail) {
		return mail.Error(), ""
	}
	return err.Error(), ""
}


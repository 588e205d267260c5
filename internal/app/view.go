package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jwulff/recap/internal/analysis"
	"github.com/jwulff/recap/internal/report"
	"github.com/jwulff/recap/internal/transcript"
	"github.com/jwulff/recap/internal/ui"
)

func (m Model) contentHeight() int {
	if m.height == 0 {
		return 20
	}
	// header(2) + inputs(3) + status(1) + dividers(2) + error(2) + footer(1)
	return max(5, m.height-11)
}

func (m Model) listPanelWidth() int {
	if m.width == 0 {
		return 30
	}
	return max(24, m.width*30/100)
}

func (m Model) outputPanelWidth() int {
	if m.width == 0 {
		return 60
	}
	return max(30, m.width-m.listPanelWidth()-1)
}

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	divider := ui.DividerStyle.Render(strings.Repeat("─", m.width))

	sections := []string{
		m.renderHeader(),
		m.renderInputs(),
		m.renderStatusBar(),
		divider,
		m.renderMainContent(),
		divider,
	}
	if m.errorMessage != "" {
		sections = append(sections, m.renderErrorBar())
	}
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := ui.TitleStyle.Render("RECAP")
	sub := ui.SubtitleStyle.Render(" Meeting transcript analysis")
	return title + sub + "\n"
}

func (m Model) renderInputs() string {
	label := func(p PanelFocus, s string) string {
		if m.focusedPanel == p {
			return ui.LabelActiveStyle.Render(s)
		}
		return ui.LabelStyle.Render(s)
	}

	box := "[ ]"
	if m.autoEmail {
		box = ui.CheckboxStyle.Render("[x]")
	}

	return strings.Join([]string{
		label(FocusAPIKey, "Fireflies API key: ") + m.apiKey.View(),
		label(FocusRecipient, "Recipient email:   ") + m.recipient.View(),
		box + " Automatically send email after analysis",
	}, "\n")
}

func (m Model) renderStatusBar() string {
	if m.busy {
		return m.spinner.View() + " " + ui.BusyStyle.Render(m.busyLabel)
	}
	if strings.HasPrefix(m.statusText, "Email sent") || strings.HasPrefix(m.statusText, "Transcripts refreshed") {
		return ui.SuccessStyle.Render(m.statusText)
	}
	return ui.StatusStyle.Render(m.statusText)
}

func (m Model) renderMainContent() string {
	listW := m.listPanelWidth()
	outW := m.outputPanelWidth()
	h := m.contentHeight()

	left := strings.Split(m.renderListPanel(listW, h), "\n")
	right := strings.Split(m.renderOutputPanel(outW, h), "\n")

	divider := ui.DividerStyle.Render("│")
	rows := make([]string, 0, h)
	for i := 0; i < h; i++ {
		l := strings.Repeat(" ", listW)
		if i < len(left) {
			l = left[i]
		}
		r := ""
		if i < len(right) {
			r = right[i]
		}
		rows = append(rows, l+divider+r)
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderListPanel(width, height int) string {
	title := fmt.Sprintf("TRANSCRIPTS (%d)", m.session.Len())
	var lines []string
	if m.focusedPanel == FocusTranscripts {
		lines = append(lines, ui.PanelTitleActiveStyle.Render(title))
	} else {
		lines = append(lines, ui.PanelTitleStyle.Render(title))
	}

	if m.session.Len() == 0 {
		lines = append(lines, ui.DimStyle.Render("  No transcripts loaded"))
	} else {
		list := m.session.Transcripts()
		start := 0
		if m.cursor >= height-1 {
			start = m.cursor - (height - 2)
		}
		for i := start; i < len(list); i++ {
			t := list[i]
			marker := "  "
			if t.ID == m.session.SelectedID() {
				marker = ui.PickedMarkerStyle.Render("● ")
			}
			text := truncateToWidth(t.Title+" "+transcript.DateLabel(t.Date), width-4)
			var line string
			if i == m.cursor && m.focusedPanel == FocusTranscripts {
				line = ui.SelectedStyle.Render("> ") + marker + ui.SelectedStyle.Render(text)
			} else {
				line = "  " + marker + text
			}
			lines = append(lines, line)
		}
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		lines[i] = padRight(l, width)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderOutputPanel(width, height int) string {
	var title string
	var body []string
	if m.outputView == ViewReport && m.outcome != nil {
		title = "REPORT: " + m.outcome.Category.ButtonLabel()
		body = m.reportLines(width - 2)
	} else {
		title = "TRANSCRIPT"
		body = m.transcriptLines(width - 2)
	}

	var lines []string
	if m.focusedPanel == FocusOutput {
		lines = append(lines, ui.PanelTitleActiveStyle.Render(title))
	} else {
		lines = append(lines, ui.PanelTitleStyle.Render(title))
	}

	visible := height - 1
	start := min(m.outputScroll, max(0, len(body)-visible))
	end := min(len(body), start+visible)
	for _, l := range body[start:end] {
		lines = append(lines, " "+l)
	}
	return strings.Join(lines, "\n")
}

func (m Model) transcriptLines(width int) []string {
	t, ok := m.session.Selected()
	if !ok {
		return []string{ui.DimStyle.Render("Select a transcript and press enter")}
	}

	lines := []string{
		ui.SectionStyle.Render(t.Title),
		ui.DimStyle.Render(transcript.DateLabel(t.Date) + "  " + strings.Join(transcript.Speakers(t), ", ")),
		"",
	}
	if len(t.Sentences) == 0 {
		return append(lines, ui.DimStyle.Render("(empty transcript)"))
	}
	for _, s := range t.Sentences {
		prefix := s.SpeakerName + ": "
		wrapped := wrapText(s.Text, max(10, width-lipgloss.Width(prefix)))
		lines = append(lines, ui.SpeakerStyle.Render(prefix)+wrapped[0])
		indent := strings.Repeat(" ", lipgloss.Width(prefix))
		for _, wl := range wrapped[1:] {
			lines = append(lines, indent+wl)
		}
	}
	return lines
}

func (m Model) reportLines(width int) []string {
	o := m.outcome
	var lines []string
	section := func(name string) {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, ui.SectionStyle.Render(name))
	}
	bullets := func(items []string) {
		for _, item := range items {
			wrapped := wrapText(item, max(10, width-2))
			lines = append(lines, "• "+wrapped[0])
			for _, wl := range wrapped[1:] {
				lines = append(lines, "  "+wl)
			}
		}
	}

	lines = append(lines, ui.DimStyle.Render(o.Subject))
	if o.EmailedTo != "" {
		lines = append(lines, ui.SuccessStyle.Render("Emailed to "+o.EmailedTo))
	}

	section("Summary")
	lines = append(lines, wrapText(o.Result.Summary, width)...)

	section("Key Points")
	bullets(o.Result.KeyPoints)

	section("Details")
	for _, d := range o.Result.Details {
		lines = append(lines, ui.SpeakerStyle.Render(d.Topic))
		lines = append(lines, wrapText(d.Description, width)...)
		lines = append(lines, ui.DimStyle.Render("Relevance: "+d.Relevance))
	}

	section("Follow-up Suggestions")
	bullets(o.Result.FollowUpSuggestions)

	section("Follow-up Email")
	lines = append(lines, "Subject: "+o.Email.Subject, "")
	lines = append(lines, wrapText(report.PlainText(o.Email.Body), width)...)

	return lines
}

func (m Model) renderErrorBar() string {
	bar := ui.ErrorStyle.Render("Error: ") + ui.ErrorTextStyle.Render(m.errorMessage)
	if m.errorDetail != "" {
		raw := strings.Join(strings.Fields(m.errorDetail), " ")
		bar += "\n" + ui.RawResponseStyle.Render(truncateToWidth("Raw response: "+raw, m.width))
	}
	return bar
}

func (m Model) renderFooter() string {
	key := func(k, desc string) string {
		return ui.FooterKeyStyle.Render(k) + ui.FooterDescStyle.Render(" "+desc)
	}

	parts := []string{key("Tab", "Focus")}
	if m.inputFocused() {
		parts = append(parts, key("Enter", "Done"), key("Esc", "List"))
	} else {
		parts = append(parts, key("r", "Refresh"), key("j/k", "Nav"), key("Enter", "Pick"))
		for i, c := range analysis.Categories {
			parts = append(parts, key(fmt.Sprint(i+1), c.ButtonLabel()))
		}
		parts = append(parts, key("e", "Auto-email"), key("s", "Send"), key("v", "View"), key("q", "Quit"))
	}
	return strings.Join(parts, "  ")
}

// Helpers

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func truncateToWidth(s string, width int) string {
	runes := []rune(s)
	if width <= 1 || len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		var current string
		for _, word := range strings.Fields(paragraph) {
			switch {
			case current == "":
				current = word
			case len(current)+1+len(word) <= width:
				current += " " + word
			default:
				lines = append(lines, current)
				current = word
			}
		}
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

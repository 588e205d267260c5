// Package report renders an analysis into the HTML email document and derives
// its subject line.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/jwulff/recap/internal/analysis"
	"github.com/jwulff/recap/internal/transcript"
)

var documentTmpl = template.Must(template.New("report").Parse(`<html>
<head>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; padding: 20px; }
.header { background-color: #007bff; color: white; padding: 20px; text-align: center; }
h1, h2 { margin: 0; }
h2 { color: #007bff; border-bottom: 2px solid #007bff; padding-bottom: 10px; }
.section { margin-bottom: 30px; }
ul { padding-left: 20px; }
.detail { background-color: #f8f9fa; border-left: 4px solid #007bff; padding: 15px; margin-bottom: 20px; }
.footer { text-align: center; margin-top: 40px; font-size: 0.9em; color: #666; }
.follow-up { margin-top: 40px; border-top: 2px solid #007bff; padding-top: 20px; }
</style>
</head>
<body>
<div class="header">
<h1>{{.Heading}}</h1>
</div>
<div class="section">
<h2>Summary</h2>
<p>{{.Result.Summary}}</p>
</div>
<div class="section">
<h2>Key Points</h2>
<ul>
{{- range .Result.KeyPoints}}
<li>{{.}}</li>
{{- end}}
</ul>
</div>
<div class="section">
<h2>Details</h2>
{{- range .Result.Details}}
<div class="detail">
<h3>{{.Topic}}</h3>
<p><strong>Description:</strong> {{.Description}}</p>
<p><strong>Relevance:</strong> {{.Relevance}}</p>
</div>
{{- end}}
</div>
<div class="section">
<h2>Follow-up Suggestions</h2>
<ul>
{{- range .Result.FollowUpSuggestions}}
<li>{{.}}</li>
{{- end}}
</ul>
</div>
<div class="follow-up">
<h2>Follow-up Email</h2>
{{.EmailBody}}
</div>
<div class="footer">
<p>This analysis was generated automatically. Please review for accuracy.</p>
</div>
</body>
</html>
`))

type documentData struct {
	Heading   string
	Result    analysis.Result
	EmailBody template.HTML
}

// Heading is the document title for a category, e.g. "Financial Analysis".
func Heading(c analysis.Category) string {
	return c.Label() + " Analysis"
}

// Render builds the HTML document. Analysis text is escaped; emailBody is an
// HTML fragment from the draft and is embedded as-is.
func Render(c analysis.Category, result analysis.Result, emailBody string) (string, error) {
	var buf bytes.Buffer
	err := documentTmpl.Execute(&buf, documentData{
		Heading:   Heading(c),
		Result:    result,
		EmailBody: template.HTML(emailBody),
	})
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}

// Subject derives the email subject from the category and transcript.
func Subject(c analysis.Category, t transcript.Transcript) string {
	return fmt.Sprintf("Meeting Analysis: %s - %s - %s - Speakers: %s",
		c.Label(),
		t.Title,
		transcript.DateLabel(t.Date),
		strings.Join(transcript.Speakers(t), ", "),
	)
}

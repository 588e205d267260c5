package analysis

import (
	"fmt"
	"strings"
)

// Category is one of the fixed analytical lenses applied to a transcript.
type Category string

const (
	Financial      Category = "financial"
	ActionItems    Category = "action_items"
	RiskAssessment Category = "risk_assessment"
	TaxInfo        Category = "tax_info"
	ClientConcerns Category = "client_concerns"
	Compliance     Category = "compliance"
)

// Categories lists every category in display order.
var Categories = []Category{
	Financial,
	ActionItems,
	RiskAssessment,
	TaxInfo,
	ClientConcerns,
	Compliance,
}

var prompts = map[Category]string{
	Financial:      "Analyze this meeting transcript and provide a JSON summary focusing on financial discussions, key figures, and monetary decisions. Include any mentioned budgets, costs, revenues, or financial projections.",
	ActionItems:    "Analyze this meeting transcript and provide a JSON summary of all action items, tasks, and deadlines discussed. Include who is responsible for each item and any mentioned due dates.",
	RiskAssessment: "Analyze this meeting transcript and provide a JSON summary of any discussed risks, potential issues, or areas of concern. Include any mitigation strategies or risk assessments mentioned.",
	TaxInfo:        "Analyze this meeting transcript and provide a JSON summary of all tax-related information discussed. Include any mentions of tax planning, changes in tax laws, or specific tax concerns of the client.",
	ClientConcerns: "Analyze this meeting transcript and provide a JSON summary of all client questions, concerns, or areas where the client expressed confusion or needed clarification.",
	Compliance:     "Analyze this meeting transcript and provide a JSON summary of all compliance and regulatory matters discussed. Include any mentions of legal requirements, industry standards, or regulatory changes.",
}

var buttonLabels = map[Category]string{
	Financial:      "Financial Analysis",
	ActionItems:    "Action Items",
	RiskAssessment: "Risk Assessment",
	TaxInfo:        "Tax Information",
	ClientConcerns: "Client Concerns",
	Compliance:     "Compliance Matters",
}

// ParseCategory maps an id such as "tax_info" to its Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.TrimSpace(strings.ToLower(s)))
	if _, ok := prompts[c]; !ok {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := prompts[c]
	return ok
}

// Prompt is the fixed instruction describing what the summary must emphasize.
func (c Category) Prompt() string { return prompts[c] }

// Label is the title-cased id, e.g. "Risk Assessment".
func (c Category) Label() string {
	words := strings.Split(string(c), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ButtonLabel is the name shown on the action trigger.
func (c Category) ButtonLabel() string {
	if l, ok := buttonLabels[c]; ok {
		return l
	}
	return c.Label()
}

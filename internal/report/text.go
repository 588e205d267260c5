package report

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelector lists elements that end a line of text.
const blockSelector = "p, div, li, h1, h2, h3, h4, h5, h6, tr"

// PlainText flattens an HTML document or fragment to readable text, one block
// element per line. Style and script contents are dropped.
func PlainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}
	doc.Find("style, script, head").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").PrependHtml("- ")
	doc.Find(blockSelector).AppendHtml("\n")

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

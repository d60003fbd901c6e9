package normalizer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// markupHints identify pasted page source rather than rendered text.
var markupHints = []string{"<html", "<body", "<table", "<div"}

// StripHTML reduces pasted HTML markup to its visible schedule text. Table
// rows become tab-joined lines so the tabular layout detector still fires;
// pages without tables fall back to the document's text content. Plain text
// input is returned unchanged, as is anything goquery cannot parse.
func StripHTML(raw string) string {
	if !looksLikeHTML(raw) {
		return raw
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return raw
	}
	doc.Find("script,style").Remove()

	rows := doc.Find("tr")
	if rows.Length() == 0 {
		if body := doc.Find("body"); body.Length() > 0 {
			return body.Text()
		}
		return doc.Text()
	}

	var b strings.Builder
	rows.Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		b.WriteString(strings.Join(cells, "\t"))
		b.WriteString("\n")
	})
	return b.String()
}

func looksLikeHTML(raw string) bool {
	lower := strings.ToLower(raw)
	for _, hint := range markupHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

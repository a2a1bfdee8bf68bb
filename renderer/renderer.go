// Package renderer turns report data into markdown documents, assembled
// from embedded text templates.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// RenderSummary renders the present valuation of the book.
func RenderSummary(s *Summary) string {
	partials := map[string]string{
		"summary_title":   "summary_title.md",
		"summary_metrics": "summary_metrics.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}

// RenderHistory renders the day-by-day net worth series.
func RenderHistory(h *History) string {
	return renderTemplate("history", "history.md", nil, h)
}

// RenderReturns renders a performance report with its projections.
func RenderReturns(r *Returns) string {
	partials := map[string]string{
		"returns_title":       "returns_title.md",
		"returns_metrics":     "returns_metrics.md",
		"returns_projections": "returns_projections.md",
	}
	return renderTemplate("returns", "returns.md", partials, r)
}

// RenderAccounts renders the account listing, grouped and ordered the
// way the book orders them.
func RenderAccounts(a *Accounts) string {
	return renderTemplate("accounts", "accounts.md", nil, a)
}

// renderTemplate renders a main template that depends on named partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

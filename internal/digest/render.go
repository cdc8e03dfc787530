// Package digest renders the ranked item list into the HTML and
// plain-text bodies of the daily email.
package digest

import (
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cafeconia/digest/internal/models"
)

// CTAURL is substituted for the {{cta_url}} placeholder.
const CTAURL = "https://www.notion.so/"

// Renderer turns a Digest into its HTML and plain-text forms.
// TemplatePath optionally points at a custom HTML template; when it is
// empty or unreadable the embedded default is used.
type Renderer struct {
	TemplatePath string

	// readFile is swapped in tests.
	readFile func(string) ([]byte, error)
	logger   logrus.FieldLogger
}

func NewRenderer(templatePath string, logger logrus.FieldLogger) *Renderer {
	return &Renderer{
		TemplatePath: templatePath,
		readFile:     os.ReadFile,
		logger:       logger,
	}
}

// Render produces both digest bodies. It cannot fail: a missing template
// degrades to the embedded default and empty item lists render as empty
// blocks.
func (r *Renderer) Render(d models.Digest) (htmlBody, textBody string) {
	htmlBody = r.loadTemplate()
	replacements := []struct{ token, value string }{
		{"{{fecha_larga}}", html.EscapeString(d.LongDate)},
		{"{{resumen_120_palabras}}", html.EscapeString(d.Summary)},
		{"{{prompts_html}}", renderPrompts(d.Prompts)},
		{"{{top10_html}}", renderItems(d.Items)},
		{"{{cta_url}}", CTAURL},
	}
	for _, sub := range replacements {
		htmlBody = strings.ReplaceAll(htmlBody, sub.token, sub.value)
	}
	return htmlBody, renderText(d)
}

func (r *Renderer) loadTemplate() string {
	if r.TemplatePath == "" {
		return defaultTemplate
	}
	data, err := r.readFile(r.TemplatePath)
	if err != nil {
		r.logger.WithField("path", r.TemplatePath).WithError(err).Warn("template not readable, using embedded default")
		return defaultTemplate
	}
	return string(data)
}

func renderPrompts(prompts []models.Prompt) string {
	var b strings.Builder
	for _, p := range prompts {
		fmt.Fprintf(&b, `
    <div style="margin-top:6px;color:#0B1220;">
      • <b>%s</b><br>%s<br>
      <code style="background:#F1F5F9;padding:4px 6px;border-radius:6px;display:inline-block;">%s</code>
    </div>`,
			html.EscapeString(p.Title), html.EscapeString(p.Body), html.EscapeString(p.Code))
	}
	return b.String()
}

func renderItems(items []models.RankedItem) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, `
  <table role="presentation" width="100%%" style="margin-top:12px;"><tr>
    <td width="48" align="center">
      <div style="background:#F1F5F9;border-radius:12px;padding:8px 0;font-weight:800;color:#0B1220;">#%d</div>
    </td>
    <td style="padding-left:12px;">
      <div style="font-size:16px;font-weight:700;color:#0B1220;">%s</div>
      <div style="color:#475569;margin-top:4px;">%s</div>
      <div style="margin-top:6px;">
        <a href="%s" style="color:#14B8A6;text-decoration:none;">Fuente</a> · %s
        <span style="background:#ECFEFF;color:#0B1220;padding:2px 8px;border-radius:10px;margin-left:6px;">%s</span>
      </div>
    </td>
  </tr></table>`,
			i+1,
			html.EscapeString(item.Title),
			html.EscapeString(item.Rationale),
			html.EscapeString(item.Link),
			html.EscapeString(item.Date),
			html.EscapeString(string(item.Category)))
	}
	return b.String()
}

func renderText(d models.Digest) string {
	lines := []string{
		fmt.Sprintf("Café con IA — Top 10 (%s)", d.LongDate),
		"",
		"Resumen:",
		d.Summary,
		"",
		"Prompts del día:",
	}
	for _, p := range d.Prompts {
		lines = append(lines, fmt.Sprintf("• %s: %s", p.Title, p.Body), p.Code)
	}
	lines = append(lines, "", "Top 10:")
	for i, item := range d.Items {
		lines = append(lines, fmt.Sprintf("#%d %s — %s (%s) [%s]", i+1, item.Title, item.Rationale, item.Date, item.Link))
	}
	return strings.Join(lines, "\n")
}

// NewDigest assembles the rendering context for one run.
func NewDigest(now time.Time, items []models.RankedItem) models.Digest {
	return models.Digest{
		LongDate: LongDate(now),
		Summary:  summary(items),
		Prompts:  models.DefaultPrompts(),
		Items:    items,
	}
}

// summary lists the top three titles.
func summary(items []models.RankedItem) string {
	titles := make([]string, 0, 3)
	for _, item := range items {
		if len(titles) == 3 {
			break
		}
		titles = append(titles, item.Title)
	}
	return fmt.Sprintf("Lo clave: %s.", strings.Join(titles, " · "))
}

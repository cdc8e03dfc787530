package digest

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cafeconia/digest/internal/models"
)

func testRenderer(templatePath string) *Renderer {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewRenderer(templatePath, logger)
}

func sampleDigest() models.Digest {
	items := []models.RankedItem{
		{
			Item:      models.Item{Title: "First story", Link: "https://a.com/1"},
			Category:  models.CategoryNews,
			Rationale: "Afecta roadmap y competitividad.",
			Date:      "2026-08-31",
			Score:     27,
		},
		{
			Item:      models.Item{Title: "Second story", Link: "https://a.com/2"},
			Category:  models.CategoryProductivity,
			Rationale: "Ahorra tiempo con mejores prácticas/prompts.",
			Date:      models.NoDate,
			Score:     2,
		},
	}
	return NewDigest(time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC), items)
}

func TestRenderSubstitutesAllPlaceholders(t *testing.T) {
	htmlBody, _ := testRenderer("").Render(sampleDigest())
	for _, token := range []string{"{{fecha_larga}}", "{{resumen_120_palabras}}", "{{prompts_html}}", "{{top10_html}}", "{{cta_url}}"} {
		if strings.Contains(htmlBody, token) {
			t.Fatalf("placeholder %s left in output", token)
		}
	}
	if !strings.Contains(htmlBody, "lunes, 31 de agosto de 2026") {
		t.Fatalf("long date missing from HTML")
	}
}

func TestRenderReplacesRepeatedPlaceholders(t *testing.T) {
	r := testRenderer("custom.html")
	r.readFile = func(string) ([]byte, error) {
		return []byte("<p>{{fecha_larga}}</p><p>{{fecha_larga}}</p>"), nil
	}
	htmlBody, _ := r.Render(sampleDigest())
	if strings.Contains(htmlBody, "{{fecha_larga}}") {
		t.Fatalf("second occurrence not replaced: %q", htmlBody)
	}
	if got := strings.Count(htmlBody, "lunes, 31 de agosto de 2026"); got != 2 {
		t.Fatalf("expected date twice, got %d", got)
	}
}

func TestRenderFallsBackToEmbeddedTemplate(t *testing.T) {
	r := testRenderer("/nonexistent/template.html")
	r.readFile = func(string) ([]byte, error) { return nil, errors.New("not found") }
	htmlBody, _ := r.Render(sampleDigest())
	if !strings.Contains(htmlBody, "Café con IA — Top 10") {
		t.Fatalf("embedded template not used")
	}
}

func TestRenderEmptyDigest(t *testing.T) {
	d := NewDigest(time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC), nil)
	htmlBody, textBody := testRenderer("").Render(d)
	if htmlBody == "" {
		t.Fatalf("expected HTML output for empty digest")
	}
	if d.Summary != "Lo clave: ." {
		t.Fatalf("unexpected empty summary %q", d.Summary)
	}
	if !strings.HasSuffix(textBody, "Top 10:") {
		t.Fatalf("expected empty Top 10 block, got tail %q", textBody[len(textBody)-20:])
	}
}

func TestRenderRoundTripOrder(t *testing.T) {
	d := sampleDigest()
	htmlBody, textBody := testRenderer("").Render(d)
	htmlPos, textPos := -1, -1
	for _, item := range d.Items {
		h := strings.Index(htmlBody, item.Title)
		x := strings.Index(textBody, item.Title)
		if h < 0 || x < 0 {
			t.Fatalf("title %q missing from output", item.Title)
		}
		if h < htmlPos || x < textPos {
			t.Fatalf("title %q out of order", item.Title)
		}
		htmlPos, textPos = h, x
	}
}

func TestRenderTextLayout(t *testing.T) {
	d := sampleDigest()
	_, textBody := testRenderer("").Render(d)
	lines := strings.Split(textBody, "\n")
	if lines[0] != "Café con IA — Top 10 (lunes, 31 de agosto de 2026)" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[2] != "Resumen:" || lines[5] != "Prompts del día:" {
		t.Fatalf("unexpected layout: %q / %q", lines[2], lines[5])
	}
	if lines[6] != "• Resumen 5x5: 5 datos + 5 implicaciones." {
		t.Fatalf("unexpected first prompt line %q", lines[6])
	}
	if lines[7] != "Resume en 5 datos y 5 implicaciones: {pega_texto}." {
		t.Fatalf("expected raw code line, got %q", lines[7])
	}
	want := "#1 First story — Afecta roadmap y competitividad. (2026-08-31) [https://a.com/1]"
	if lines[12] != want {
		t.Fatalf("unexpected item line %q, want %q", lines[12], want)
	}
}

func TestRenderEscapesHTMLInTitles(t *testing.T) {
	d := sampleDigest()
	d.Items[0].Title = `<script>alert("x")</script>`
	htmlBody, _ := testRenderer("").Render(d)
	if strings.Contains(htmlBody, "<script>") {
		t.Fatalf("item title not escaped")
	}
}

func TestSummaryTakesTopThree(t *testing.T) {
	items := []models.RankedItem{
		{Item: models.Item{Title: "A"}},
		{Item: models.Item{Title: "B"}},
		{Item: models.Item{Title: "C"}},
		{Item: models.Item{Title: "D"}},
	}
	if got := summary(items); got != "Lo clave: A · B · C." {
		t.Fatalf("summary = %q", got)
	}
	if got := summary(items[:1]); got != "Lo clave: A." {
		t.Fatalf("summary = %q", got)
	}
}

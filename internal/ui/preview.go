// Package ui renders a digest preview for the terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/cafeconia/digest/internal/models"
)

// Preview renders the digest the way the email lays it out, styled for a
// terminal. It is used by the preview command in place of delivery.
func Preview(d models.Digest) string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("☕ Café con IA — Top 10"))
	b.WriteString("\n")
	b.WriteString(DimStyle.Render(d.LongDate))
	b.WriteString("\n\n")

	b.WriteString(SectionStyle.Render("Resumen"))
	b.WriteString("\n" + d.Summary + "\n\n")

	b.WriteString(SectionStyle.Render("Prompts del día"))
	b.WriteString("\n")
	for _, p := range d.Prompts {
		fmt.Fprintf(&b, "• %s: %s\n", TitleStyle.Render(p.Title), p.Body)
		fmt.Fprintf(&b, "  %s\n", DimStyle.Render(p.Code))
	}
	b.WriteString("\n")

	b.WriteString(SectionStyle.Render("Top 10"))
	b.WriteString("\n")
	for i, item := range d.Items {
		fmt.Fprintf(&b, "%s %s %s\n", RankStyle.Render(fmt.Sprintf("#%d", i+1)), TitleStyle.Render(item.Title), TagStyle.Render(string(item.Category)))
		fmt.Fprintf(&b, "   %s\n", item.Rationale)
		fmt.Fprintf(&b, "   %s · %s\n", LinkStyle.Render(item.Link), DateStyle.Render(item.Date))
	}
	if len(d.Items) == 0 {
		b.WriteString(DimStyle.Render("(sin artículos hoy)"))
		b.WriteString("\n")
	}

	return b.String()
}

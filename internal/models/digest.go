package models

// Prompt is a static prompt suggestion shipped with every digest.
type Prompt struct {
	Title string
	Body  string
	Code  string
}

// Digest is the full rendering input for one run.
type Digest struct {
	LongDate string
	Summary  string
	Prompts  []Prompt
	Items    []RankedItem
}

// DefaultPrompts returns the fixed prompt set. It is configuration data,
// not derived from feed content.
func DefaultPrompts() []Prompt {
	return []Prompt{
		{
			Title: "Resumen 5x5",
			Body:  "5 datos + 5 implicaciones.",
			Code:  "Resume en 5 datos y 5 implicaciones: {pega_texto}.",
		},
		{
			Title: "Comparador rápido",
			Body:  "Compara 2 lanzamientos y su impacto.",
			Code:  "Compara {A} vs {B}: target, costo, riesgos, madurez, quick wins.",
		},
	}
}

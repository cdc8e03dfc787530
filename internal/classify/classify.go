// Package classify maps item text to a category, a rationale and a
// relevance score using fixed keyword vocabularies.
package classify

import (
	"regexp"

	"github.com/cafeconia/digest/internal/models"
)

var (
	vendors      = regexp.MustCompile(`(?i)openai|anthropic|google|deepmind|meta|microsoft|databricks|snowflake|nvidia`)
	launch       = regexp.MustCompile(`(?i)launch|nuevo|released|update|modelo|model|gpt|llama|gemini|mixtral|sonnet|haiku`)
	policy       = regexp.MustCompile(`(?i)policy|regulation|regulación|privacidad|copyright|seguridad|eu|uk|usa|canada`)
	marketing    = regexp.MustCompile(`(?i)marketing|seo|content|ads|social|creador`)
	productivity = regexp.MustCompile(`(?i)workflow|productividad|automatización|prompt|best practice|mejor práctica|playbook`)
	trustedLink  = regexp.MustCompile(`(?i)blog|docs|press|news|arxiv`)
)

// GenericRationale is returned when no keyword rule matches.
const GenericRationale = "Relevancia general IA."

// tagRules are evaluated top to bottom; first match wins. The ordering is
// intentionally different from rationaleRules and both are pinned by tests.
var tagRules = []struct {
	match    *regexp.Regexp
	category models.Category
}{
	{marketing, models.CategoryMarketing},
	{productivity, models.CategoryProductivity},
}

var rationaleRules = []struct {
	match     func(string) bool
	rationale string
}{
	{policy.MatchString, "Cambia marco regulatorio/riesgo."},
	{func(text string) bool {
		return vendors.MatchString(text) && launch.MatchString(text)
	}, "Afecta roadmap y competitividad."},
	{productivity.MatchString, "Ahorra tiempo con mejores prácticas/prompts."},
	{marketing.MatchString, "Impacta adquisición/contenido."},
}

// Tag returns the category for the given item text.
func Tag(text string) models.Category {
	for _, rule := range tagRules {
		if rule.match.MatchString(text) {
			return rule.category
		}
	}
	return models.CategoryNews
}

// Rationale returns a one-line explanation of why the item is relevant.
func Rationale(text string) string {
	for _, rule := range rationaleRules {
		if rule.match(text) {
			return rule.rationale
		}
	}
	return GenericRationale
}

// Score computes the multiplicative relevance heuristic over the item text
// and its link. Higher is more relevant; values are only compared within a
// single run.
func Score(text, link string) int {
	score := 1
	if vendors.MatchString(text) || policy.MatchString(text) {
		score *= 3
	}
	if launch.MatchString(text) {
		score *= 3
	}
	if trustedLink.MatchString(link) {
		score *= 3
	} else {
		score *= 2
	}
	return score
}

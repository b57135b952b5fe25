package classify

import (
	"regexp"
	"strings"
)

// DefaultCategory labels text that matches no rule.
const DefaultCategory = "general"

type rule struct {
	label   string
	pattern *regexp.Regexp
}

// Rules are evaluated in order and every match contributes its label.
// Keyword stems cover both accented and plain spellings (reuni matches
// reunión and reunion).
var rules = []rule{
	{"ventas", regexp.MustCompile(`cliente|prospecto|venta|cotizaci`)},
	{"reuniones", regexp.MustCompile(`reuni|minuta|acuerdo`)},
	{"proyectos", regexp.MustCompile(`proyecto|idea|lluvia|tarea`)},
	{"personas", regexp.MustCompile(`persona|perfil|biograf|familia`)},
}

// AutoCategories suggests category tags for free text. The result is never
// empty: text matching no rule gets the default label. Duplicates are
// removed preserving first-match order.
func AutoCategories(text string) []string {
	lowered := strings.ToLower(text)

	var labels []string
	seen := make(map[string]bool)
	for _, r := range rules {
		if r.pattern.MatchString(lowered) && !seen[r.label] {
			seen[r.label] = true
			labels = append(labels, r.label)
		}
	}

	if len(labels) == 0 {
		return []string{DefaultCategory}
	}
	return labels
}

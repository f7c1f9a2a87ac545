// Package scoring implements the keyword scoring engine: it turns a blob of row
// text into a weighted score, the matched terms per category, and the technology
// labels present, plus the role and contribution suggestions derived from them.
package scoring

import (
	"fmt"
	"strings"

	"github.com/consortium-kit/horizon-scout/config"
)

// Scorer computes keyword-match scores against an injected taxonomy.
type Scorer struct {
	taxonomy *config.Taxonomy
}

// NewScorer creates a new Scorer.
func NewScorer(taxonomy *config.Taxonomy) (*Scorer, error) {
	if taxonomy == nil {
		return nil, fmt.Errorf("taxonomy cannot be nil")
	}
	return &Scorer{taxonomy: taxonomy}, nil
}

// Score scans the text against every category and returns the weighted score,
// the matched terms per category ID, and the technology labels in category scan
// order. Blank input yields (0, empty map, empty list) with no error.
//
// Matching is case-insensitive substring matching: a term that is contained in
// another term (e.g., "zk" inside "zk-snark") counts separately when both literal
// strings occur in the text.
func (s *Scorer) Score(text string) (int, map[string][]string, []string) {
	matched := make(map[string][]string)
	technologies := make([]string, 0)

	if strings.TrimSpace(text) == "" {
		return 0, matched, technologies
	}

	lower := strings.ToLower(text)
	score := 0

	for _, cat := range s.taxonomy.Categories {
		var found []string
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				found = append(found, kw)
			}
		}
		if len(found) == 0 {
			continue
		}
		score += len(found) * cat.Weight
		matched[cat.ID] = found
		technologies = append(technologies, cat.Label)
	}

	return score, matched, technologies
}

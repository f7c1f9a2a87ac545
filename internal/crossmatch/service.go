// Package crossmatch scores spreadsheet matches against the loaded cluster
// project collection using an exact-code bonus plus shared-keyword overlap.
package crossmatch

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/consortium-kit/horizon-scout/config"
	"github.com/consortium-kit/horizon-scout/internal/clusters"
	"github.com/consortium-kit/horizon-scout/model"
)

const (
	codeMatchBonus    = 20
	keywordMatchScore = 2
	maxVisibleMatches = 10
)

// codePattern is the loose form used for extracting code references from row
// text. The parser's stricter pattern segments documents; here any hyphenated
// HORIZON token counts as a reference.
var codePattern = regexp.MustCompile(`HORIZON-[A-Z0-9-]+`)

// Matcher cross-references spreadsheet matches with cluster projects.
type Matcher struct {
	manager  *clusters.Manager
	keywords []string // all taxonomy terms, deduplicated across categories
}

// NewMatcher creates a Matcher over the given cluster collection and taxonomy.
func NewMatcher(manager *clusters.Manager, taxonomy *config.Taxonomy) (*Matcher, error) {
	if manager == nil {
		return nil, fmt.Errorf("cluster manager cannot be nil")
	}
	if taxonomy == nil {
		return nil, fmt.Errorf("taxonomy cannot be nil")
	}
	return &Matcher{manager: manager, keywords: taxonomy.AllKeywords()}, nil
}

// Match scores one spreadsheet match against every cluster project. Projects
// scoring zero are excluded; the rest are ranked score-descending (stable on
// ties) with only the top 10 visible.
func (m *Matcher) Match(match *model.ProjectMatch) model.CrossMatchResult {
	rowText := match.SearchableText()
	rowCodes := extractCodes(rowText)

	all := make([]model.ClusterMatch, 0)
	for _, doc := range m.manager.Documents() {
		for _, project := range doc.Projects {
			score, terms := m.scoreProject(rowText, rowCodes, project)
			if score == 0 {
				continue
			}
			all = append(all, model.ClusterMatch{
				Project:      project,
				Score:        score,
				MatchedTerms: terms,
			})
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Score > all[j].Score
	})

	visible := all
	if len(visible) > maxVisibleMatches {
		visible = visible[:maxVisibleMatches]
	}

	return model.CrossMatchResult{
		Match:          match,
		ClusterMatches: visible,
		TotalMatches:   len(all),
		HasMatches:     len(all) > 0,
	}
}

// MatchAll runs Match over a whole collection and aggregates summary statistics.
// An empty input yields a zero average rather than a division error.
func (m *Matcher) MatchAll(matches []model.ProjectMatch) model.BatchCrossMatchResult {
	results := make([]model.CrossMatchResult, 0, len(matches))
	projectsWithMatches := 0
	totalClusterMatches := 0

	for i := range matches {
		result := m.Match(&matches[i])
		results = append(results, result)

		if result.HasMatches {
			projectsWithMatches++
			totalClusterMatches += result.TotalMatches
		}
	}

	avg := 0.0
	if len(matches) > 0 {
		avg = float64(totalClusterMatches) / float64(len(matches))
	}

	return model.BatchCrossMatchResult{
		Results: results,
		Summary: model.BatchSummary{
			TotalProjects:        len(matches),
			ProjectsWithMatches:  projectsWithMatches,
			TotalClusterMatches:  totalClusterMatches,
			AvgMatchesPerProject: avg,
		},
	}
}

// scoreProject computes one pairwise score: a flat bonus for an exact code
// match, recorded first as a CODE: term, plus points per taxonomy keyword
// present in both texts.
func (m *Matcher) scoreProject(rowText string, rowCodes map[string]struct{}, project model.ClusterProject) (int, []string) {
	score := 0
	var terms []string

	if _, ok := rowCodes[strings.ToLower(project.Code)]; ok {
		score += codeMatchBonus
		terms = append(terms, "CODE:"+project.Code)
	}

	projectText := strings.ToLower(project.FullText)
	for _, kw := range m.keywords {
		if strings.Contains(rowText, kw) && strings.Contains(projectText, kw) {
			score += keywordMatchScore
			terms = append(terms, kw)
		}
	}

	return score, terms
}

// extractCodes pulls every HORIZON code reference out of the text, normalized
// to lowercase.
func extractCodes(text string) map[string]struct{} {
	codes := make(map[string]struct{})
	for _, code := range codePattern.FindAllString(strings.ToUpper(text), -1) {
		codes[strings.ToLower(code)] = struct{}{}
	}
	return codes
}

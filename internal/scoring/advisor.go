package scoring

import (
	"fmt"
	"strings"

	"github.com/consortium-kit/horizon-scout/config"
)

// Advisor maps scores and matched technologies to suggested organizational roles
// and contribution bullets.
type Advisor struct {
	thresholds config.Thresholds
}

// NewAdvisor creates a new Advisor.
func NewAdvisor(taxonomy *config.Taxonomy) (*Advisor, error) {
	if taxonomy == nil {
		return nil, fmt.Errorf("taxonomy cannot be nil")
	}
	return &Advisor{thresholds: taxonomy.Thresholds}, nil
}

// Roles suggests exactly two roles based on the score alone. Threshold lower
// bounds are inclusive.
func (a *Advisor) Roles(score int) []string {
	switch {
	case score >= a.thresholds.HighPriority:
		return []string{"Technical Coordinator", "WP Leader - Technology"}
	case score >= a.thresholds.MediumPriority:
		return []string{"WP Leader", "Task Leader"}
	default:
		return []string{"Task Leader", "Partner"}
	}
}

// Contributions suggests contribution bullets from the technologies present.
// The privacy bullets get more specific when the matched privacy terms mention
// zk or tee. IoT deliberately contributes nothing.
func (a *Advisor) Contributions(technologies []string, matched map[string][]string) []string {
	present := make(map[string]bool, len(technologies))
	for _, tech := range technologies {
		present[tech] = true
	}

	contributions := make([]string, 0)

	if present[config.LabelBlockchain] {
		contributions = append(contributions,
			"Blockchain infrastructure and smart contracts",
			"Decentralized trust mechanisms",
			"Immutable audit trails",
		)
	}

	if present[config.LabelPrivacy] {
		if anyTermContains(matched[config.CategoryPrivacy], "zk") {
			contributions = append(contributions, "Zero-knowledge proof implementation")
		}
		if anyTermContains(matched[config.CategoryPrivacy], "tee") {
			contributions = append(contributions, "Trusted Execution Environment integration")
		}
		contributions = append(contributions, "Privacy-preserving protocols")
	}

	if present[config.LabelDataGovernance] {
		contributions = append(contributions,
			"Data sovereignty frameworks",
			"Access control mechanisms",
			"Compliance and audit systems",
		)
	}

	if present[config.LabelAI] {
		contributions = append(contributions,
			"Federated learning infrastructure",
			"Privacy-preserving AI training",
		)
	}

	return contributions
}

func anyTermContains(terms []string, substr string) bool {
	for _, term := range terms {
		if strings.Contains(strings.ToLower(term), substr) {
			return true
		}
	}
	return false
}

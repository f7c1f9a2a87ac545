// Package config provides the keyword taxonomy configuration for project matching.
// It defines the five technology categories, their weighted keyword lists, and the
// score thresholds used for qualification and priority classification.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Category identifiers. The scan order of the categories is fixed and significant:
// it determines the order of the technologies list on every match.
const (
	CategoryBlockchain     = "blockchain"
	CategoryPrivacy        = "privacy"
	CategoryDataGovernance = "data_governance"
	CategoryAI             = "ai"
	CategoryIoT            = "iot"
)

// Human-readable technology labels, one per category.
const (
	LabelBlockchain     = "Blockchain/DLT"
	LabelPrivacy        = "Privacy-Preserving"
	LabelDataGovernance = "Data Governance"
	LabelAI             = "AI/ML"
	LabelIoT            = "IoT"
)

// Category is one technology domain: an ordered list of lowercase keyword terms
// (substring-matched against row text) and an integer weight applied per matched term.
type Category struct {
	ID       string   `json:"id"`       // One of the Category* constants
	Label    string   `json:"label"`    // Human-readable technology label (e.g., "Blockchain/DLT")
	Keywords []string `json:"keywords"` // Lowercase terms, matched as substrings
	Weight   int      `json:"weight"`   // Points per distinct matched term
}

// Thresholds holds the three score boundaries. All lower bounds are inclusive:
// a row qualifies at MinScore, priority is MEDIUM at MediumPriority and HIGH at
// HighPriority.
type Thresholds struct {
	MinScore       int `json:"min_score"`       // Minimum score for a row to qualify at all
	MediumPriority int `json:"medium_priority"` // Score at which priority becomes MEDIUM
	HighPriority   int `json:"high_priority"`   // Score at which priority becomes HIGH
}

// Priority levels derived from a match score.
const (
	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
	PriorityLow    = "LOW"
)

// Priority classifies a score against the configured thresholds.
func (t Thresholds) Priority(score int) string {
	switch {
	case score >= t.HighPriority:
		return PriorityHigh
	case score >= t.MediumPriority:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Taxonomy is the full scoring configuration: the five categories in scan order
// plus the score thresholds. It is built once at startup and passed explicitly to
// the scorer, advisor, and cross matcher.
type Taxonomy struct {
	Categories []Category `json:"categories"`
	Thresholds Thresholds `json:"thresholds"`
}

// DefaultTaxonomy returns the built-in taxonomy: keyword lists, weights, and
// thresholds for the five technology domains.
func DefaultTaxonomy() *Taxonomy {
	return &Taxonomy{
		Categories: []Category{
			{
				ID:    CategoryBlockchain,
				Label: LabelBlockchain,
				Keywords: []string{
					"blockchain", "distributed ledger", "dlt", "smart contract",
					"decentralized", "web3", "tokenization", "cryptocurrency",
					"consensus", "immutable", "hyperledger", "ethereum",
				},
				Weight: 3,
			},
			{
				ID:    CategoryPrivacy,
				Label: LabelPrivacy,
				Keywords: []string{
					"privacy", "zero knowledge", "zk", "zk-snark", "zk-stark",
					"confidential", "secure", "encryption", "tee", "trusted execution",
					"privacy-preserving", "differential privacy", "homomorphic", "mpc",
					"secure multi-party", "anonymization", "sgx", "trustzone",
				},
				Weight: 3,
			},
			{
				ID:    CategoryDataGovernance,
				Label: LabelDataGovernance,
				Keywords: []string{
					"data sharing", "data space", "data governance", "interoperability",
					"trust", "traceability", "provenance", "audit", "compliance",
					"data sovereignty", "gdpr", "data protection", "access control",
				},
				Weight: 2,
			},
			{
				ID:    CategoryAI,
				Label: LabelAI,
				Keywords: []string{
					"artificial intelligence", "machine learning", "deep learning",
					"neural network", "federated learning", "ai model", "training data",
				},
				Weight: 2,
			},
			{
				ID:    CategoryIoT,
				Label: LabelIoT,
				Keywords: []string{
					"iot", "internet of things", "sensors", "edge computing",
					"smart devices", "connected devices",
				},
				Weight: 2,
			},
		},
		Thresholds: Thresholds{
			MinScore:       3,
			MediumPriority: 6,
			HighPriority:   9,
		},
	}
}

// knownCategoryIDs is the closed set of category identifiers in scan order.
var knownCategoryIDs = []string{
	CategoryBlockchain,
	CategoryPrivacy,
	CategoryDataGovernance,
	CategoryAI,
	CategoryIoT,
}

// ApplyDefaults fills unset parts of the taxonomy from the built-in defaults.
func (t *Taxonomy) ApplyDefaults() {
	defaults := DefaultTaxonomy()

	if len(t.Categories) == 0 {
		t.Categories = defaults.Categories
	}
	if t.Thresholds.MinScore == 0 {
		t.Thresholds.MinScore = defaults.Thresholds.MinScore
	}
	if t.Thresholds.MediumPriority == 0 {
		t.Thresholds.MediumPriority = defaults.Thresholds.MediumPriority
	}
	if t.Thresholds.HighPriority == 0 {
		t.Thresholds.HighPriority = defaults.Thresholds.HighPriority
	}

	// Backfill labels and weights for categories that only override keywords.
	defaultByID := make(map[string]Category, len(defaults.Categories))
	for _, cat := range defaults.Categories {
		defaultByID[cat.ID] = cat
	}
	for i := range t.Categories {
		def, ok := defaultByID[t.Categories[i].ID]
		if !ok {
			continue
		}
		if t.Categories[i].Label == "" {
			t.Categories[i].Label = def.Label
		}
		if t.Categories[i].Weight == 0 {
			t.Categories[i].Weight = def.Weight
		}
		if len(t.Categories[i].Keywords) == 0 {
			t.Categories[i].Keywords = def.Keywords
		}
	}
}

// Validate checks the taxonomy for configuration conflicts and returns a list of
// human-readable conflict descriptions. An empty result means the taxonomy is valid.
func (t *Taxonomy) Validate() []string {
	var conflicts []string

	known := make(map[string]bool, len(knownCategoryIDs))
	for _, id := range knownCategoryIDs {
		known[id] = true
	}

	seen := make(map[string]bool)
	for _, cat := range t.Categories {
		if strings.TrimSpace(cat.ID) == "" {
			conflicts = append(conflicts, "Category ID cannot be empty or whitespace-only")
			continue
		}
		if !known[cat.ID] {
			conflicts = append(conflicts, "Unknown category ID '"+cat.ID+"'")
		}
		if seen[cat.ID] {
			conflicts = append(conflicts, "Duplicate category ID '"+cat.ID+"'")
		}
		seen[cat.ID] = true

		if cat.Weight <= 0 {
			conflicts = append(conflicts, "Category '"+cat.ID+"' must have a positive weight")
		}
		if len(cat.Keywords) == 0 {
			conflicts = append(conflicts, "Category '"+cat.ID+"' has no keywords")
		}
		for _, kw := range cat.Keywords {
			if strings.TrimSpace(kw) == "" {
				conflicts = append(conflicts, "Category '"+cat.ID+"' contains an empty keyword")
			}
		}
	}

	if t.Thresholds.MinScore <= 0 {
		conflicts = append(conflicts, "Minimum score threshold must be positive")
	}
	if t.Thresholds.MediumPriority < t.Thresholds.MinScore {
		conflicts = append(conflicts, "Medium priority threshold cannot be below the minimum score threshold")
	}
	if t.Thresholds.HighPriority < t.Thresholds.MediumPriority {
		conflicts = append(conflicts, "High priority threshold cannot be below the medium priority threshold")
	}

	return conflicts
}

// Category returns the category with the given ID, if present.
func (t *Taxonomy) Category(id string) (Category, bool) {
	for _, cat := range t.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// AllKeywords returns every keyword across all categories in scan order,
// deduplicated across categories.
func (t *Taxonomy) AllKeywords() []string {
	seen := make(map[string]struct{})
	keywords := make([]string, 0)
	for _, cat := range t.Categories {
		for _, kw := range cat.Keywords {
			if _, dup := seen[kw]; dup {
				continue
			}
			seen[kw] = struct{}{}
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// LoadTaxonomy reads a taxonomy override from a JSON file, applies defaults for
// anything left unset, and validates the result.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}

	var taxonomy Taxonomy
	if err := json.Unmarshal(data, &taxonomy); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file %s: %w", path, err)
	}

	taxonomy.ApplyDefaults()
	if conflicts := taxonomy.Validate(); len(conflicts) > 0 {
		return nil, fmt.Errorf("invalid taxonomy configuration: %s", strings.Join(conflicts, "; "))
	}

	return &taxonomy, nil
}

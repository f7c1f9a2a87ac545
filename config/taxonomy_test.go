package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTaxonomy(t *testing.T) {
	taxonomy := DefaultTaxonomy()

	require.Len(t, taxonomy.Categories, 5)

	// Scan order is significant for downstream consumers.
	expectedOrder := []string{
		CategoryBlockchain,
		CategoryPrivacy,
		CategoryDataGovernance,
		CategoryAI,
		CategoryIoT,
	}
	for i, cat := range taxonomy.Categories {
		assert.Equal(t, expectedOrder[i], cat.ID)
		assert.NotEmpty(t, cat.Keywords)
		assert.Positive(t, cat.Weight)
	}

	assert.Equal(t, 3, taxonomy.Thresholds.MinScore)
	assert.Equal(t, 6, taxonomy.Thresholds.MediumPriority)
	assert.Equal(t, 9, taxonomy.Thresholds.HighPriority)
	assert.Empty(t, taxonomy.Validate())
}

func TestThresholdsPriority(t *testing.T) {
	thresholds := DefaultTaxonomy().Thresholds

	tests := []struct {
		name     string
		score    int
		expected string
	}{
		{"below medium", 5, PriorityLow},
		{"at medium boundary", 6, PriorityMedium},
		{"between medium and high", 8, PriorityMedium},
		{"at high boundary", 9, PriorityHigh},
		{"above high", 42, PriorityHigh},
		{"zero", 0, PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, thresholds.Priority(tt.score))
		})
	}
}

func TestTaxonomyValidate(t *testing.T) {
	t.Run("unknown category ID", func(t *testing.T) {
		taxonomy := &Taxonomy{
			Categories: []Category{
				{ID: "quantum", Label: "Quantum", Keywords: []string{"qubit"}, Weight: 1},
			},
			Thresholds: DefaultTaxonomy().Thresholds,
		}

		conflicts := taxonomy.Validate()
		assert.Contains(t, conflicts, "Unknown category ID 'quantum'")
	})

	t.Run("duplicate category ID", func(t *testing.T) {
		taxonomy := DefaultTaxonomy()
		taxonomy.Categories = append(taxonomy.Categories, taxonomy.Categories[0])

		conflicts := taxonomy.Validate()
		assert.Contains(t, conflicts, "Duplicate category ID 'blockchain'")
	})

	t.Run("threshold ordering", func(t *testing.T) {
		taxonomy := DefaultTaxonomy()
		taxonomy.Thresholds.HighPriority = 5 // below medium (6)

		conflicts := taxonomy.Validate()
		assert.NotEmpty(t, conflicts)
	})

	t.Run("non-positive weight", func(t *testing.T) {
		taxonomy := DefaultTaxonomy()
		taxonomy.Categories[0].Weight = 0

		conflicts := taxonomy.Validate()
		assert.Contains(t, conflicts, "Category 'blockchain' must have a positive weight")
	})
}

func TestApplyDefaultsBackfillsPartialCategories(t *testing.T) {
	taxonomy := &Taxonomy{
		Categories: []Category{
			{ID: CategoryBlockchain, Keywords: []string{"blockchain", "ledger"}},
		},
	}
	taxonomy.ApplyDefaults()

	cat, ok := taxonomy.Category(CategoryBlockchain)
	require.True(t, ok)
	assert.Equal(t, LabelBlockchain, cat.Label)
	assert.Equal(t, 3, cat.Weight)
	assert.Equal(t, []string{"blockchain", "ledger"}, cat.Keywords)
	assert.Equal(t, 3, taxonomy.Thresholds.MinScore)
}

func TestAllKeywordsDeduplicates(t *testing.T) {
	taxonomy := DefaultTaxonomy()
	// Inject a term that already exists in the privacy category.
	taxonomy.Categories[4].Keywords = append(taxonomy.Categories[4].Keywords, "privacy")

	keywords := taxonomy.AllKeywords()

	count := 0
	for _, kw := range keywords {
		if kw == "privacy" {
			count++
		}
	}
	assert.Equal(t, 1, count, "keywords should be deduplicated across categories")
}

func TestLoadTaxonomy(t *testing.T) {
	t.Run("overrides merge with defaults", func(t *testing.T) {
		override := Taxonomy{
			Thresholds: Thresholds{MinScore: 5},
		}
		data, err := json.Marshal(override)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "taxonomy.json")
		require.NoError(t, os.WriteFile(path, data, 0o644))

		taxonomy, err := LoadTaxonomy(path)
		require.NoError(t, err)
		assert.Equal(t, 5, taxonomy.Thresholds.MinScore)
		assert.Equal(t, 9, taxonomy.Thresholds.HighPriority)
		assert.Len(t, taxonomy.Categories, 5)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTaxonomy(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := LoadTaxonomy(path)
		assert.Error(t, err)
	})
}

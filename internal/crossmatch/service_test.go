package crossmatch

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consortium-kit/horizon-scout/config"
	"github.com/consortium-kit/horizon-scout/internal/clusters"
	"github.com/consortium-kit/horizon-scout/model"
)

func loadedManager(t *testing.T, files map[string]string) *clusters.Manager {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	manager := clusters.NewManager(dir)
	require.NoError(t, manager.Load())
	return manager
}

func newMatch(fields map[string]string, order ...string) *model.ProjectMatch {
	data := make(model.ProjectRow, len(fields))
	for k, v := range fields {
		data[k] = v
	}
	return &model.ProjectMatch{
		RowIndex:    2,
		SheetName:   "Calls",
		FieldOrder:  order,
		ProjectData: data,
	}
}

func TestMatchExactCodeOnlyScoresTwenty(t *testing.T) {
	manager := loadedManager(t, map[string]string{
		"wp.txt": "HORIZON-CL4-2024-DIGITAL-01-01\nQuantum Routing\nAbout photonics.\n",
	})
	matcher, err := NewMatcher(manager, config.DefaultTaxonomy())
	require.NoError(t, err)

	// Row references the code but shares no taxonomy keywords with the project.
	match := newMatch(map[string]string{
		"Topic ID": "HORIZON-CL4-2024-DIGITAL-01-01",
	}, "Topic ID")

	result := matcher.Match(match)
	require.True(t, result.HasMatches)
	require.Len(t, result.ClusterMatches, 1)
	assert.Equal(t, 20, result.ClusterMatches[0].Score)
	assert.Equal(t, []string{"CODE:HORIZON-CL4-2024-DIGITAL-01-01"}, result.ClusterMatches[0].MatchedTerms)
}

func TestMatchSharedKeywordsScoreTwoEach(t *testing.T) {
	manager := loadedManager(t, map[string]string{
		"wp.txt": "HORIZON-CL4-2024-01\nLedger\nblockchain encryption privacy\n",
	})
	matcher, err := NewMatcher(manager, config.DefaultTaxonomy())
	require.NoError(t, err)

	// No code reference; three shared keywords.
	match := newMatch(map[string]string{
		"Description": "blockchain with encryption and privacy",
	}, "Description")

	result := matcher.Match(match)
	require.Len(t, result.ClusterMatches, 1)
	assert.Equal(t, 6, result.ClusterMatches[0].Score)
	assert.ElementsMatch(t, []string{"blockchain", "encryption", "privacy"},
		result.ClusterMatches[0].MatchedTerms)
}

func TestMatchCodePlusKeywords(t *testing.T) {
	manager := loadedManager(t, map[string]string{
		"wp.txt": "HORIZON-CL4-2024-01\nLedger\nblockchain platform\n",
	})
	matcher, err := NewMatcher(manager, config.DefaultTaxonomy())
	require.NoError(t, err)

	match := newMatch(map[string]string{
		"Topic ID":    "HORIZON-CL4-2024-01",
		"Description": "a blockchain pilot",
	}, "Topic ID", "Description")

	result := matcher.Match(match)
	require.Len(t, result.ClusterMatches, 1)
	assert.Equal(t, 22, result.ClusterMatches[0].Score)
	// Code entry is recorded first.
	assert.Equal(t, "CODE:HORIZON-CL4-2024-01", result.ClusterMatches[0].MatchedTerms[0])
	assert.Contains(t, result.ClusterMatches[0].MatchedTerms, "blockchain")
}

func TestMatchZeroScoreExcluded(t *testing.T) {
	manager := loadedManager(t, map[string]string{
		"wp.txt": "HORIZON-CL4-2024-01\nUnrelated\nabout marine biology\n",
	})
	matcher, err := NewMatcher(manager, config.DefaultTaxonomy())
	require.NoError(t, err)

	match := newMatch(map[string]string{"Description": "blockchain"}, "Description")

	result := matcher.Match(match)
	assert.False(t, result.HasMatches)
	assert.Empty(t, result.ClusterMatches)
	assert.Zero(t, result.TotalMatches)
}

func TestMatchTopTenTruncation(t *testing.T) {
	var doc string
	for i := 0; i < 15; i++ {
		doc += fmt.Sprintf("HORIZON-CL4-2024-%02d\nProject %d\nblockchain platform\n", i, i)
	}
	manager := loadedManager(t, map[string]string{"wp.txt": doc})
	matcher, err := NewMatcher(manager, config.DefaultTaxonomy())
	require.NoError(t, err)

	match := newMatch(map[string]string{"Description": "blockchain"}, "Description")

	result := matcher.Match(match)
	assert.Len(t, result.ClusterMatches, 10)
	assert.Equal(t, 15, result.TotalMatches)
	assert.True(t, result.HasMatches)

	// Equal scores: the visible list is a stable prefix in document order.
	assert.Equal(t, "Project 0", result.ClusterMatches[0].Project.Title)
	assert.Equal(t, "Project 9", result.ClusterMatches[9].Project.Title)
}

func TestMatchRankingPrefersCodeMatch(t *testing.T) {
	manager := loadedManager(t, map[string]string{
		"wp.txt": "HORIZON-CL4-2024-01\nKeyword Only\nblockchain platform\n" +
			"HORIZON-CL4-2024-02\nCode Target\nnothing shared here\n",
	})
	matcher, err := NewMatcher(manager, config.DefaultTaxonomy())
	require.NoError(t, err)

	match := newMatch(map[string]string{
		"Topic ID":    "HORIZON-CL4-2024-02",
		"Description": "blockchain pilot",
	}, "Topic ID", "Description")

	result := matcher.Match(match)
	require.Len(t, result.ClusterMatches, 2)
	assert.Equal(t, "Code Target", result.ClusterMatches[0].Project.Title)
	assert.Greater(t, result.ClusterMatches[0].Score, result.ClusterMatches[1].Score)
}

func TestMatchAllSummary(t *testing.T) {
	manager := loadedManager(t, map[string]string{
		"wp.txt": "HORIZON-CL4-2024-01\nLedger\nblockchain platform\n",
	})
	matcher, err := NewMatcher(manager, config.DefaultTaxonomy())
	require.NoError(t, err)

	matches := []model.ProjectMatch{
		*newMatch(map[string]string{"Description": "blockchain"}, "Description"),
		*newMatch(map[string]string{"Description": "marine biology"}, "Description"),
	}

	batch := matcher.MatchAll(matches)
	assert.Equal(t, 2, batch.Summary.TotalProjects)
	assert.Equal(t, 1, batch.Summary.ProjectsWithMatches)
	assert.Equal(t, 1, batch.Summary.TotalClusterMatches)
	assert.InDelta(t, 0.5, batch.Summary.AvgMatchesPerProject, 1e-9)
	assert.Len(t, batch.Results, 2)
}

func TestMatchAllEmptyInput(t *testing.T) {
	manager := loadedManager(t, map[string]string{
		"wp.txt": "HORIZON-CL4-2024-01\nLedger\nblockchain\n",
	})
	matcher, err := NewMatcher(manager, config.DefaultTaxonomy())
	require.NoError(t, err)

	batch := matcher.MatchAll(nil)
	assert.Zero(t, batch.Summary.TotalProjects)
	assert.Zero(t, batch.Summary.AvgMatchesPerProject, "empty batch must not divide by zero")
	assert.Empty(t, batch.Results)
}

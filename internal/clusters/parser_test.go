package clusters

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProjectsTwoConsecutiveRecords(t *testing.T) {
	content := "HORIZON-CL4-2024-DIGITAL-01-01\n" +
		"Secure Data Exchange\n" +
		"This project uses zero knowledge proofs.\n" +
		"HORIZON-CL4-2024-DIGITAL-01-02\n" +
		"Federated Platform\n" +
		"Edge computing for sensor networks.\n"

	projects := ParseProjects(content, "cluster4")
	require.Len(t, projects, 2)

	first := projects[0]
	assert.Equal(t, "HORIZON-CL4-2024-DIGITAL-01-01", first.Code)
	assert.Equal(t, "Secure Data Exchange", first.Title)
	assert.Contains(t, first.Description, "zero knowledge proofs")
	assert.NotContains(t, first.Description, "Federated Platform")
	assert.Equal(t, "cluster4", first.Cluster)

	second := projects[1]
	assert.Equal(t, "HORIZON-CL4-2024-DIGITAL-01-02", second.Code)
	assert.Equal(t, "Federated Platform", second.Title)
}

func TestParseProjectsNoCodesYieldsNothing(t *testing.T) {
	projects := ParseProjects("Just a plain document about funding policy.", "misc")
	assert.Empty(t, projects)

	assert.Empty(t, ParseProjects("", "misc"))
}

func TestParseProjectsCodeVariants(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"topic with double counter", "HORIZON-CL4-2024-DIGITAL-EMERGING-01-01"},
		{"short topic", "HORIZON-CL3-2025-04"},
		{"double year group", "HORIZON-MSCA-2024-2025-PF-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects := ParseProjects(tt.code+"\nSome Title\nSome description.", "wp")
			require.Len(t, projects, 1)
			assert.Equal(t, tt.code, projects[0].Code)
		})
	}
}

func TestParseProjectsTitleLengthCap(t *testing.T) {
	longTitle := strings.Repeat("x", 300)
	projects := ParseProjects("HORIZON-CL4-2024-01\n"+longTitle+"\ndesc", "wp")

	require.Len(t, projects, 1)
	assert.Len(t, projects[0].Title, 200)
}

func TestParseProjectsTitleCapKeepsRuneBoundary(t *testing.T) {
	longTitle := strings.Repeat("é", 250)
	projects := ParseProjects("HORIZON-CL4-2024-01\n"+longTitle+"\ndesc", "wp")

	require.Len(t, projects, 1)
	assert.True(t, utf8.ValidString(projects[0].Title))
	assert.Equal(t, strings.Repeat("é", 200), projects[0].Title)
}

func TestParseProjectsDescriptionLengthCap(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("HORIZON-CL4-2024-01\nTitle line\n")
	for i := 0; i < 100; i++ {
		sb.WriteString(strings.Repeat("word ", 10))
		sb.WriteString("\n")
	}

	projects := ParseProjects(sb.String(), "wp")
	require.Len(t, projects, 1)
	// Cap is checked before each append, so the description may exceed it by at
	// most one line.
	assert.Less(t, len(projects[0].Description), 2200)
}

func TestParseProjectsDescriptionStopsAtInlineCodeLine(t *testing.T) {
	// The second code is glued to a line the regex does not fully consume;
	// the defensive line re-check still stops the description.
	content := "HORIZON-CL4-2024-01\nTitle\nFirst line.\nHORIZON- partial marker\nNot included."
	projects := ParseProjects(content, "wp")

	require.Len(t, projects, 1)
	assert.Equal(t, "First line.", projects[0].Description)
}

func TestParseProjectsDuplicateCodesYieldDistinctRecords(t *testing.T) {
	content := "HORIZON-CL4-2024-01\nFirst mention\ndesc one\n" +
		"HORIZON-CL4-2024-01\nSecond mention\ndesc two\n"

	projects := ParseProjects(content, "wp")
	require.Len(t, projects, 2)
	assert.Equal(t, projects[0].Code, projects[1].Code)
	assert.Equal(t, "First mention", projects[0].Title)
	assert.Equal(t, "Second mention", projects[1].Title)
}

func TestParseProjectsFullTextComposition(t *testing.T) {
	projects := ParseProjects("HORIZON-CL4-2024-01\nTitle\nDescription body.", "wp")

	require.Len(t, projects, 1)
	assert.Equal(t, "HORIZON-CL4-2024-01\nTitle\nDescription body.", projects[0].FullText)
}

func TestParseProjectsBareCodeWithoutContent(t *testing.T) {
	projects := ParseProjects("HORIZON-CL4-2024-01", "wp")
	assert.Empty(t, projects)
}

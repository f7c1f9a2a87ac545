// Package model defines the data types shared across the analysis, cluster, and
// cross-matching components.
package model

import (
	"fmt"
	"strings"
)

// ProjectRow is a flexible map holding one spreadsheet row as field-name -> value.
// Field names come from the sheet's header row; no schema is required.
type ProjectRow map[string]interface{}

// StringValue returns the row value for a field rendered as a trimmed string.
// Missing or blank values yield "".
func (r ProjectRow) StringValue(field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// titleFields are probed in order when extracting a display title from row data.
var titleFields = []string{"Title", "title", "Project Title", "PROJECT_TITLE", "Call title"}

const maxTitleDisplayLength = 100

// ProjectMatch is one qualifying spreadsheet row: its score, the keyword evidence
// per category, and the advisor outputs. FieldOrder preserves the sheet's column
// order, which downstream consumers rely on when concatenating row values.
type ProjectMatch struct {
	RowIndex        int                 `json:"row_index"` // 1-based Excel row (data position + header offset)
	SheetName       string              `json:"sheet_name"`
	Score           int                 `json:"score"`
	MatchedKeywords map[string][]string `json:"matched_keywords"` // category ID -> matched terms, in scan order
	Technologies    []string            `json:"technologies"`     // labels in category scan order
	PotentialRoles  []string            `json:"potential_roles"`  // always exactly two entries
	Contributions   []string            `json:"contributions"`
	FieldOrder      []string            `json:"field_order"` // sheet column order
	ProjectData     ProjectRow          `json:"project_data"`
}

// Title probes the row data for a project title, truncated for display.
// Falls back to a positional placeholder when no title field is present.
func (m *ProjectMatch) Title() string {
	for _, field := range titleFields {
		if v := m.ProjectData.StringValue(field); v != "" {
			if runes := []rune(v); len(runes) > maxTitleDisplayLength {
				return string(runes[:maxTitleDisplayLength])
			}
			return v
		}
	}
	return fmt.Sprintf("Project at row %d", m.RowIndex)
}

// SearchableText concatenates all non-blank row values in field order, lowercased.
// This is the substrate both the scorer and the cross matcher operate on.
func (m *ProjectMatch) SearchableText() string {
	parts := make([]string, 0, len(m.FieldOrder))
	for _, field := range m.FieldOrder {
		if v := m.ProjectData.StringValue(field); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

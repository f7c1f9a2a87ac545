// Package export renders an analyzed match collection as CSV or JSON for
// download by the presentation layer.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/consortium-kit/horizon-scout/config"
	"github.com/consortium-kit/horizon-scout/internal/projectinfo"
	"github.com/consortium-kit/horizon-scout/model"
)

// csvHeader is the fixed column set of the CSV export.
var csvHeader = []string{
	"excel_row", "sheet_name", "score", "priority", "title", "call_id",
	"opening_date", "deadline", "budget", "partners", "coordinator",
	"type_of_action", "technologies", "potential_roles", "matched_keywords",
	"contributions", "url",
}

// ToCSV renders matches as UTF-8 CSV with the fixed header.
func ToCSV(matches []model.ProjectMatch, thresholds config.Thresholds) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range matches {
		match := &matches[i]
		info := projectinfo.Extract(match.ProjectData)

		title := info.Title
		if title == "" {
			title = match.Title()
		}

		record := []string{
			fmt.Sprintf("%d", match.RowIndex),
			match.SheetName,
			fmt.Sprintf("%d", match.Score),
			thresholds.Priority(match.Score),
			title,
			info.CallID,
			info.OpeningDate,
			info.Deadline,
			info.Budget,
			info.Partners,
			info.Coordinator,
			info.TypeOfAction,
			strings.Join(match.Technologies, ", "),
			strings.Join(match.PotentialRoles, ", "),
			stringifyKeywords(match.MatchedKeywords),
			strings.Join(match.Contributions, ", "),
			info.URL,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// stringifyKeywords renders the matched-keywords mapping as compact JSON, which
// keeps the cell parseable.
func stringifyKeywords(matched map[string][]string) string {
	data, err := json.Marshal(matched)
	if err != nil {
		return fmt.Sprintf("%v", matched)
	}
	return string(data)
}

// Record is one element of the JSON export: the full match structure plus the
// derived priority, title, and extracted call fields.
type Record struct {
	RowIndex        int                 `json:"row_index"`
	ExcelRow        int                 `json:"excel_row"`
	SheetName       string              `json:"sheet_name"`
	Score           int                 `json:"score"`
	Priority        string              `json:"priority"`
	Title           string              `json:"title"`
	MatchedKeywords map[string][]string `json:"matched_keywords"`
	Technologies    []string            `json:"technologies"`
	PotentialRoles  []string            `json:"potential_roles"`
	Contributions   []string            `json:"contributions"`
	ProjectData     model.ProjectRow    `json:"project_data"`
	DetailedInfo    projectinfo.Info    `json:"detailed_info"`
}

// ToJSON renders matches as a 2-space-indented JSON array of full records.
func ToJSON(matches []model.ProjectMatch, thresholds config.Thresholds) ([]byte, error) {
	records := make([]Record, 0, len(matches))

	for i := range matches {
		match := &matches[i]
		records = append(records, Record{
			RowIndex:        match.RowIndex,
			ExcelRow:        match.RowIndex,
			SheetName:       match.SheetName,
			Score:           match.Score,
			Priority:        thresholds.Priority(match.Score),
			Title:           match.Title(),
			MatchedKeywords: match.MatchedKeywords,
			Technologies:    match.Technologies,
			PotentialRoles:  match.PotentialRoles,
			Contributions:   match.Contributions,
			ProjectData:     match.ProjectData,
			DetailedInfo:    projectinfo.Extract(match.ProjectData),
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal matches: %w", err)
	}
	return data, nil
}

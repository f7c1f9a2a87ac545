// Package analyzer iterates every row of every sheet in an input workbook,
// scores each row against the taxonomy, and emits the qualifying rows as a
// single list of matches sorted by descending score.
package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/consortium-kit/horizon-scout/config"
	"github.com/consortium-kit/horizon-scout/internal/scoring"
	"github.com/consortium-kit/horizon-scout/model"
)

// headerRowOffset converts a 0-based data row position into the 1-based row
// number a spreadsheet application would display: +1 for 1-based numbering,
// +1 for the header row consumed during loading.
const headerRowOffset = 2

// Service runs the tabular analysis.
type Service struct {
	taxonomy *config.Taxonomy
	scorer   *scoring.Scorer
	advisor  *scoring.Advisor
}

// NewService creates an analyzer Service for the given taxonomy.
func NewService(taxonomy *config.Taxonomy) (*Service, error) {
	if taxonomy == nil {
		return nil, fmt.Errorf("taxonomy cannot be nil")
	}
	scorer, err := scoring.NewScorer(taxonomy)
	if err != nil {
		return nil, err
	}
	advisor, err := scoring.NewAdvisor(taxonomy)
	if err != nil {
		return nil, err
	}
	return &Service{taxonomy: taxonomy, scorer: scorer, advisor: advisor}, nil
}

// AnalyzeFile loads the workbook at path and analyzes it. A file that cannot be
// opened or parsed aborts the whole analysis with a wrapped ErrWorkbookLoad.
func (s *Service) AnalyzeFile(path string) ([]model.ProjectMatch, error) {
	wb, err := LoadWorkbook(path)
	if err != nil {
		return nil, err
	}
	return s.Analyze(wb), nil
}

// Analyze scores every row of every sheet and returns the qualifying matches
// sorted by score descending. The sort is stable: rows with equal scores keep
// their sheet-then-row encounter order.
func (s *Service) Analyze(wb *Workbook) []model.ProjectMatch {
	matches := make([]model.ProjectMatch, 0)

	for _, sheet := range wb.Sheets {
		matches = append(matches, s.analyzeSheet(sheet)...)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

func (s *Service) analyzeSheet(sheet Sheet) []model.ProjectMatch {
	var matches []model.ProjectMatch

	for i, row := range sheet.Rows {
		text := combineRowText(row)
		score, matched, technologies := s.scorer.Score(text)
		if score < s.taxonomy.Thresholds.MinScore {
			continue
		}

		matches = append(matches, model.ProjectMatch{
			RowIndex:        i + headerRowOffset,
			SheetName:       sheet.Name,
			Score:           score,
			MatchedKeywords: matched,
			Technologies:    technologies,
			PotentialRoles:  s.advisor.Roles(score),
			Contributions:   s.advisor.Contributions(technologies, matched),
			FieldOrder:      sheet.Columns,
			ProjectData:     rowData(sheet.Columns, row),
		})
	}

	return matches
}

// combineRowText joins all non-blank cells of a row with spaces, in column order.
func combineRowText(row []string) string {
	parts := make([]string, 0, len(row))
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			parts = append(parts, cell)
		}
	}
	return strings.Join(parts, " ")
}

// rowData maps a raw row onto its column names. Cells beyond the header width
// are dropped; missing trailing cells become empty values.
func rowData(columns []string, row []string) model.ProjectRow {
	data := make(model.ProjectRow, len(columns))
	for i, col := range columns {
		if i < len(row) {
			data[col] = row[i]
		} else {
			data[col] = ""
		}
	}
	return data
}

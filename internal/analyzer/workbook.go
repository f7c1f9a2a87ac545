package analyzer

import (
	"github.com/xuri/excelize/v2"

	apperrors "github.com/consortium-kit/horizon-scout/internal/errors"
)

// Sheet is one worksheet: a header row naming the columns and the data rows
// beneath it, both in native order. Rows may be shorter than the header when
// trailing cells are empty.
type Sheet struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Workbook is the in-memory representation of a multi-sheet input table. It
// decouples the analyzer from the file format so scoring is testable without
// spreadsheet fixtures.
type Workbook struct {
	Sheets []Sheet
}

// LoadWorkbook reads an .xlsx file into a Workbook. The first row of each sheet
// is treated as the header; sheets without a header row are skipped. Any failure
// to open or parse the file is fatal and wraps ErrWorkbookLoad.
func LoadWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewWorkbookLoadError(path, err)
	}
	defer f.Close()

	wb := &Workbook{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, apperrors.NewWorkbookLoadError(path, err)
		}
		if len(rows) == 0 {
			continue
		}
		wb.Sheets = append(wb.Sheets, Sheet{
			Name:    name,
			Columns: rows[0],
			Rows:    rows[1:],
		})
	}

	return wb, nil
}

package output

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/chansynth-go/pkg/chansynth/models"
)

// ReadXLSX reads a report written by WriteXLSX back into its models.
// Section names come back as displayed, i.e. with the header token already removed.
func ReadXLSX(path string) (*models.Report, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}
	report, err := ReadSheet(f, sheets[0])
	if err != nil {
		return nil, err
	}
	report.BookName = filepath.Base(path)
	return report, nil
}

// ReadSheet reads a report from the named sheet of an open workbook.
func ReadSheet(f *excelize.File, sheetName string) (*models.Report, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		Identity: models.ReportIdentity{
			Provider: valueAt(rows, ProviderRow, FirstDataCol),
			Year:     valueAt(rows, YearRow, FirstDataCol),
		},
	}

	headers := rowAt(rows, HeaderRow)
	if len(headers) < FirstDataCol-1+len(models.Regions) {
		return nil, fmt.Errorf("sheet %q: header row %d has %d columns, want at least %d",
			sheetName, HeaderRow, len(headers), FirstDataCol-1+len(models.Regions))
	}
	for i, r := range models.Regions {
		if got := headers[FirstDataCol-1+i]; got != r.ColumnName() {
			return nil, fmt.Errorf("sheet %q: region header %d is %q, want %q", sheetName, i+1, got, r.ColumnName())
		}
	}
	// Headers that display as empty are trimmed from the end of the row, so the
	// column count comes from the filter range and the data rows.
	lastCol := lastDataCol(f, sheetName, rows)
	sections := make(models.SectionCatalog, 0, lastCol-FirstDataCol+1-len(models.Regions))
	for col := FirstDataCol + len(models.Regions); col <= lastCol; col++ {
		sections = append(sections, valueAt(rows, HeaderRow, col))
	}

	m := models.NewMatrix(sections)
	width := len(models.Regions) + len(sections)
	for rowIdx := FirstDataRow - 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if len(row) == 0 || row[LabelCol-1] == "" {
			continue
		}
		flags := make([]bool, width)
		for i := range flags {
			flags[i] = parseFlag(valueAt(rows, rowIdx+1, FirstDataCol+i))
		}
		i := m.Ensure(row[LabelCol-1])
		m.Rows[i].Region = models.RegionVectorFromFlags(flags[:len(models.Regions)])
		copy(m.Rows[i].Sections, flags[len(models.Regions):])
	}
	report.Matrix = m

	areas, err := ExtractPrintAreas(f)
	if err == nil && len(areas[sheetName]) > 0 {
		area := areas[sheetName][0]
		report.PrintArea = &area
	}
	return report, nil
}

// lastDataCol returns the last matrix column of the sheet: the widest of the header
// row, the data rows and the autofilter range.
func lastDataCol(f *excelize.File, sheetName string, rows [][]string) int {
	last := len(rowAt(rows, HeaderRow))
	for i := FirstDataRow - 1; i < len(rows); i++ {
		if n := len(rows[i]); n > last {
			last = n
		}
	}
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm._FilterDatabase") {
			continue
		}
		sheet, areas := parsePrintAreaReference(dn.RefersTo)
		if sheet != sheetName {
			continue
		}
		for _, a := range areas {
			if a.C2 > last {
				last = a.C2
			}
		}
	}
	return last
}

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas.
func ExtractPrintAreas(f *excelize.File) (map[string][]models.PrintArea, error) {
	result := make(map[string][]models.PrintArea)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName == "" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result, nil
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
func parsePrintAreaReference(ref string) (string, []models.PrintArea) {
	var areas []models.PrintArea

	var sheetName string
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		sheet := strings.ReplaceAll(strings.Trim(part[:idx], "'"), "''", "'")
		if sheetName == "" {
			sheetName = sheet
		}
		if area := parseRangeToArea(part[idx+1:]); area != nil {
			areas = append(areas, *area)
		}
	}

	return sheetName, areas
}

// parseRangeToArea parses a range string like $A$1:$D$10 to PrintArea.
func parseRangeToArea(rangeStr string) *models.PrintArea {
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.PrintArea{R1: startRow, C1: startCol, R2: endRow, C2: endCol}
}

// parseFlag reads a membership cell: any non-zero integer is set.
func parseFlag(s string) bool {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return err == nil && i != 0
}

func rowAt(rows [][]string, row int) []string {
	if row-1 < 0 || row-1 >= len(rows) {
		return nil
	}
	return rows[row-1]
}

func valueAt(rows [][]string, row, col int) string {
	r := rowAt(rows, row)
	if col-1 < 0 || col-1 >= len(r) {
		return ""
	}
	return r[col-1]
}

package output

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/chansynth-go/pkg/chansynth/models"
)

// ErrIdentityRequired is returned when a report is rendered without provider or year.
var ErrIdentityRequired = errors.New("report identity requires provider and year")

// XLSXOptions configures report rendering.
type XLSXOptions struct {
	// SheetName is the name of the single report sheet.
	SheetName string
	// HighlightProvider is the provider whose title band gets HighlightColor.
	HighlightProvider string
	// HighlightColor is the fill of the highlighted title band (e.g. "#D60F8A").
	HighlightColor string
	// HeaderToken is removed from section headers for display.
	HeaderToken string
	// PrintArea sets the sheet print area to the written range.
	PrintArea bool
}

// DefaultXLSXOptions returns the standard report styling.
func DefaultXLSXOptions() XLSXOptions {
	return XLSXOptions{
		SheetName:         "Sheet1",
		HighlightProvider: "voo",
		HighlightColor:    "#D60F8A",
		HeaderToken:       "Chaînes",
		PrintArea:         true,
	}
}

type reportStyles struct {
	title    int
	provider int
	header   int
	label    int
}

// RenderXLSX renders the matrix into a new workbook. The caller owns the returned file.
func RenderXLSX(m *models.Matrix, id models.ReportIdentity, opts XLSXOptions) (*excelize.File, error) {
	if !id.Complete() {
		return nil, ErrIdentityRequired
	}
	if opts.SheetName == "" {
		opts.SheetName = DefaultXLSXOptions().SheetName
	}

	f := excelize.NewFile()
	if err := renderSheet(f, m, id, opts); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// WriteXLSX renders the matrix and saves it to path, replacing any existing file.
func WriteXLSX(path string, m *models.Matrix, id models.ReportIdentity, opts XLSXOptions) (*models.Report, error) {
	f, err := RenderXLSX(m, id, opts)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}

	report := &models.Report{
		BookName: filepath.Base(path),
		Identity: id,
		Matrix:   m,
	}
	if opts.PrintArea {
		area := printArea(m)
		report.PrintArea = &area
	}
	return report, nil
}

func renderSheet(f *excelize.File, m *models.Matrix, id models.ReportIdentity, opts XLSXOptions) error {
	sheet := opts.SheetName
	if def := f.GetSheetName(0); def != sheet {
		if err := f.SetSheetName(def, sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	styles, err := newStyles(f, id, opts)
	if err != nil {
		return err
	}

	schema := m.Schema()
	lastCol := FirstDataCol + len(schema.Columns) - 1

	if err := f.SetCellStyle(sheet, cell(LabelCol, ProviderRow), cell(LabelCol, YearRow), styles.title); err != nil {
		return err
	}
	if err := writeBand(f, sheet, ProviderRow, FirstDataCol, lastCol, id.Provider, styles.provider); err != nil {
		return fmt.Errorf("write provider band: %w", err)
	}
	if err := writeBand(f, sheet, YearRow, FirstDataCol, lastCol, id.Year, styles.title); err != nil {
		return fmt.Errorf("write year band: %w", err)
	}

	sectionCol := FirstDataCol + len(models.Regions)
	if err := writeBand(f, sheet, BandRow, FirstDataCol, sectionCol-1, LocationBand, styles.title); err != nil {
		return fmt.Errorf("write location band: %w", err)
	}
	if sectionCol <= lastCol {
		if err := writeBand(f, sheet, BandRow, sectionCol, lastCol, BouquetBand, styles.title); err != nil {
			return fmt.Errorf("write bouquet band: %w", err)
		}
	}

	if err := writeHeaders(f, sheet, schema, opts, styles.header); err != nil {
		return err
	}
	if err := writeRows(f, sheet, m, schema, styles.label); err != nil {
		return err
	}

	if err := f.AutoFilter(sheet, cell(FirstDataCol, HeaderRow)+":"+cell(lastCol, HeaderRow), nil); err != nil {
		return fmt.Errorf("set autofilter: %w", err)
	}
	if err := setWidths(f, sheet, m, schema, opts); err != nil {
		return err
	}

	if opts.PrintArea {
		area := printArea(m)
		if err := f.SetDefinedName(&excelize.DefinedName{
			Name:     "_xlnm.Print_Area",
			RefersTo: absRange(sheet, area.C1, area.R1, area.C2, area.R2),
			Scope:    sheet,
		}); err != nil {
			return fmt.Errorf("set print area: %w", err)
		}
	}
	return nil
}

func newStyles(f *excelize.File, id models.ReportIdentity, opts XLSXOptions) (reportStyles, error) {
	var s reportStyles
	var err error

	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	title := &excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: center,
	}
	if s.title, err = f.NewStyle(title); err != nil {
		return s, fmt.Errorf("create title style: %w", err)
	}

	provider := *title
	if opts.HighlightColor != "" && strings.EqualFold(id.Provider, opts.HighlightProvider) {
		provider.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{opts.HighlightColor}}
	}
	if s.provider, err = f.NewStyle(&provider); err != nil {
		return s, fmt.Errorf("create provider style: %w", err)
	}

	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: center,
	}); err != nil {
		return s, fmt.Errorf("create header style: %w", err)
	}

	if s.label, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
	}); err != nil {
		return s, fmt.Errorf("create label style: %w", err)
	}
	return s, nil
}

// writeBand writes value across columns c1..c2 of row, merging when the band spans
// more than one cell.
func writeBand(f *excelize.File, sheet string, row, c1, c2 int, value string, style int) error {
	start, end := cell(c1, row), cell(c2, row)
	if c2 > c1 {
		if err := f.MergeCell(sheet, start, end); err != nil {
			return err
		}
	}
	if err := f.SetCellValue(sheet, start, value); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, start, end, style)
}

func writeHeaders(f *excelize.File, sheet string, schema models.Schema, opts XLSXOptions, style int) error {
	for i, col := range schema.Columns {
		name := col.Name
		if col.Kind == models.SectionColumn {
			name = DisplayHeader(name, opts.HeaderToken)
		}
		ref := cell(FirstDataCol+i, HeaderRow)
		if err := f.SetCellValue(sheet, ref, name); err != nil {
			return fmt.Errorf("write header %q: %w", col.Name, err)
		}
		if err := f.SetCellStyle(sheet, ref, ref, style); err != nil {
			return err
		}
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, m *models.Matrix, schema models.Schema, labelStyle int) error {
	for r, row := range m.Rows {
		rowNum := FirstDataRow + r
		ref := cell(LabelCol, rowNum)
		if err := f.SetCellValue(sheet, ref, row.Label); err != nil {
			return fmt.Errorf("write row %q: %w", row.Label, err)
		}
		if err := f.SetCellStyle(sheet, ref, ref, labelStyle); err != nil {
			return err
		}

		values := make([]interface{}, len(schema.Columns))
		for i, col := range schema.Columns {
			values[i] = flagValue(row.Value(col))
		}
		if err := f.SetSheetRow(sheet, cell(FirstDataCol, rowNum), &values); err != nil {
			return fmt.Errorf("write row %q: %w", row.Label, err)
		}
	}
	return nil
}

func setWidths(f *excelize.File, sheet string, m *models.Matrix, schema models.Schema, opts XLSXOptions) error {
	for i, col := range schema.Columns {
		name := col.Name
		if col.Kind == models.SectionColumn {
			name = DisplayHeader(name, opts.HeaderToken)
		}
		c := colName(FirstDataCol + i)
		// Cell values are always the single digit 1 or 0.
		if err := f.SetColWidth(sheet, c, c, ColumnWidth("0", name)); err != nil {
			return fmt.Errorf("set width of %q: %w", col.Name, err)
		}
	}

	labels := make([]string, 0, len(m.Rows)+1)
	labels = append(labels, LabelHeader)
	for _, row := range m.Rows {
		labels = append(labels, row.Label)
	}
	c := colName(LabelCol)
	return f.SetColWidth(sheet, c, c, ColumnWidth(labels...))
}

func printArea(m *models.Matrix) models.PrintArea {
	lastRow := HeaderRow
	if n := m.Len(); n > 0 {
		lastRow = FirstDataRow + n - 1
	}
	return models.PrintArea{
		R1: ProviderRow,
		C1: LabelCol,
		R2: lastRow,
		C2: FirstDataCol + len(m.Schema().Columns) - 1,
	}
}

func flagValue(on bool) int {
	if on {
		return 1
	}
	return 0
}

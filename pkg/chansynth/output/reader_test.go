package output

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/chansynth-go/pkg/chansynth/models"
	"github.com/ukaji3/chansynth-go/pkg/chansynth/parser"
)

func TestReadXLSXRoundTrip(t *testing.T) {
	id := models.ReportIdentity{Provider: "Voo", Year: "2024"}
	m := scenarioMatrix()

	path := filepath.Join(t.TempDir(), "Voo_Channels_2024c.xlsx")
	written, err := WriteXLSX(path, m, id, DefaultXLSXOptions())
	require.NoError(t, err)

	report, err := ReadXLSX(path)
	require.NoError(t, err)
	assert.Equal(t, "Voo_Channels_2024c.xlsx", report.BookName)
	assert.Equal(t, id, report.Identity)
	assert.Equal(t, m.Sections, report.Matrix.Sections)
	assert.Equal(t, m.Rows, report.Matrix.Rows)
	require.NotNil(t, report.PrintArea)
	assert.Equal(t, *written.PrintArea, *report.PrintArea)
}

func TestReadXLSXKeepsTrailingEmptyHeader(t *testing.T) {
	id := models.ReportIdentity{Provider: "Voo", Year: "2024"}
	cat := models.SectionCatalog{"News", "Chaînes"}

	tests := []struct {
		name   string
		assocs []models.Association
	}{
		{"with rows", []models.Association{{Section: "Chaînes", Text: "La Une W"}}},
		{"without rows", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := parser.BuildMatrix(tt.assocs, cat)
			path := filepath.Join(t.TempDir(), "report.xlsx")
			_, err := WriteXLSX(path, m, id, DefaultXLSXOptions())
			require.NoError(t, err)

			report, err := ReadXLSX(path)
			require.NoError(t, err)
			assert.Equal(t, models.SectionCatalog{"News", ""}, report.Matrix.Sections)
			require.Equal(t, m.Len(), report.Matrix.Len())
			for i, row := range m.Rows {
				assert.Equal(t, row.Sections, report.Matrix.Rows[i].Sections, row.Label)
			}
		})
	}
}

func TestReadSheetRejectsForeignLayout(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "Header1")
	f.SetCellValue("Sheet1", "B6", "Something")

	_, err := ReadSheet(f, "Sheet1")
	assert.Error(t, err)
}

func TestReadXLSXMissing(t *testing.T) {
	_, err := ReadXLSX(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}

func TestParsePrintAreaReference(t *testing.T) {
	tests := []struct {
		ref   string
		sheet string
		areas []models.PrintArea
	}{
		{"Sheet1!$A$1:$G$8", "Sheet1", []models.PrintArea{{R1: 1, C1: 1, R2: 8, C2: 7}}},
		{"'My Sheet'!$B$2:$C$3", "My Sheet", []models.PrintArea{{R1: 2, C1: 2, R2: 3, C2: 3}}},
		{"'It''s'!$A$1:$B$2,'It''s'!$D$1:$E$2", "It's", []models.PrintArea{
			{R1: 1, C1: 1, R2: 2, C2: 2},
			{R1: 1, C1: 4, R2: 2, C2: 5},
		}},
		{"$A$1:$B$2", "", nil},
	}

	for _, tt := range tests {
		sheet, areas := parsePrintAreaReference(tt.ref)
		assert.Equal(t, tt.sheet, sheet, tt.ref)
		assert.Equal(t, tt.areas, areas, tt.ref)
	}
}

func TestParseFlag(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"1", true},
		{"0", false},
		{" 1 ", true},
		{"", false},
		{"yes", false},
	}

	for _, tt := range tests {
		if got := parseFlag(tt.input); got != tt.expected {
			t.Errorf("parseFlag(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

// Package output writes and reads channel lineup reports.
package output

import (
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// Fixed report layout (1-based rows and columns).
const (
	ProviderRow  = 1
	YearRow      = 2
	BandRow      = 3
	HeaderRow    = 6
	FirstDataRow = 7

	LabelCol     = 1
	FirstDataCol = 2

	// WidthPadding is added to the longest value of every column.
	WidthPadding = 2

	LocationBand = "LOCATION"
	BouquetBand  = "BOUQUET"
	// LabelHeader is the minimum width reference of the channel column.
	LabelHeader = "Channels"
)

// DisplayHeader returns the header text shown for a column: every occurrence of
// token removed and the result trimmed. The column identity is not changed.
func DisplayHeader(name, token string) string {
	if token == "" {
		return strings.TrimSpace(name)
	}
	return strings.TrimSpace(strings.ReplaceAll(name, token, ""))
}

// ColumnWidth returns the width of a column whose longest text has the given content.
func ColumnWidth(values ...string) float64 {
	longest := 0
	for _, v := range values {
		if n := utf8.RuneCountInString(v); n > longest {
			longest = n
		}
	}
	return float64(longest + WidthPadding)
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func colName(col int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return name
}

func absRange(sheet string, c1, r1, c2, r2 int) string {
	start, _ := excelize.CoordinatesToCellName(c1, r1, true)
	end, _ := excelize.CoordinatesToCellName(c2, r2, true)
	return quoteSheet(sheet) + "!" + start + ":" + end
}

func quoteSheet(sheet string) string {
	if strings.ContainsAny(sheet, " '!-") {
		return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	}
	return sheet
}

package main

import (
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/ukaji3/chansynth-go/pkg/chansynth"
	"github.com/ukaji3/chansynth-go/pkg/chansynth/models"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment, colorize bool) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if colorize {
		tw.Style().Color.Header = text.Colors{text.Bold, text.FgCyan}
	}

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func renderBatchSummary(result *chansynth.BatchResult, colorize bool) string {
	rows := make([][]string, 0, len(result.Outcomes))
	for _, o := range result.Outcomes {
		channels := ""
		if o.Report != nil && o.Report.Matrix != nil {
			channels = strconv.Itoa(o.Report.Matrix.Len())
		}
		rows = append(rows, []string{o.Pair.Name, string(o.Status), channels, o.Message()})
	}
	return renderTable(
		[]string{"Document", "Status", "Channels", "Detail"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
		colorize,
	)
}

func renderMatrix(m *models.Matrix, colorize bool) string {
	schema := m.Schema()
	headers := make([]string, 0, len(schema.Columns)+1)
	aligns := make([]columnAlignment, 0, len(schema.Columns)+1)
	headers = append(headers, "Channel")
	aligns = append(aligns, alignRight)
	for _, col := range schema.Columns {
		headers = append(headers, col.Name)
		aligns = append(aligns, alignRight)
	}

	rows := make([][]string, 0, m.Len())
	for _, row := range m.Rows {
		r := make([]string, 0, len(headers))
		r = append(r, row.Label)
		for _, col := range schema.Columns {
			if row.Value(col) {
				r = append(r, "1")
			} else {
				r = append(r, "0")
			}
		}
		rows = append(rows, r)
	}
	return renderTable(headers, rows, aligns, colorize)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

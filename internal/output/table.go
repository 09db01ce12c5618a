package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableFormatter renders a sheet as an aligned text table
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// Format writes the sheet as a table
func (f *TableFormatter) Format(s Sheet) error {
	tw := tablewriter.NewWriter(f.writer)
	tw.SetHeader(s.Columns)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, row := range s.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = formatValue(v)
		}
		tw.Append(cells)
	}
	tw.Render()
	return nil
}

package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// Format writes the sheet as CSV, header first
func (c *CSVFormatter) Format(s Sheet) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(s.Columns); err != nil {
		return err
	}
	for _, row := range s.Rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = csvCell(v)
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

// csvCell guards string cells against formula injection in spreadsheet
// applications by quoting a leading formula character.
func csvCell(v any) string {
	s, ok := v.(string)
	if !ok {
		return formatValue(v)
	}
	if len(s) > 0 {
		switch s[0] {
		case '=', '+', '-', '@', '\t', '\r', '\n', '|':
			return "'" + strings.ReplaceAll(s, "'", "''")
		}
	}
	return s
}

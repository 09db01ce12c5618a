// Package output renders query results for the command line.
//
// Every result (table rows, grouped totals, box summaries, facets) is first
// flattened into a Sheet, then written by one of the formatters:
//   - table: aligned text table
//   - csv:   comma-separated values with a header row
//   - json:  JSON Lines, one object per row
//
// Example usage:
//
//	f, err := output.New("csv", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := f.Format(output.FromProjection(result.Table)); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"fmt"
	"io"
)

// Sheet is a header plus rows of values aligned with it.
type Sheet struct {
	Columns []string
	Rows    [][]any
}

// Formatter writes a sheet in one specific format.
type Formatter interface {
	// Format writes the sheet in the formatter's specific format
	Format(s Sheet) error
}

// New returns the formatter registered under name.
func New(name string, w io.Writer) (Formatter, error) {
	switch name {
	case "table":
		return NewTableFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "json", "jsonl":
		return NewJSONFormatter(w), nil
	}
	return nil, fmt.Errorf("unknown output format %q: must be one of [table csv json]", name)
}

// formatValue converts a value to its display string
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float32, float64:
		return fmt.Sprintf("%g", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

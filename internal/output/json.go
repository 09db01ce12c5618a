package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// JSONFormatter outputs one JSON object per row (JSON Lines)
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// Format writes each row as an object keyed by column name. Keys follow
// the sheet's column order.
func (j *JSONFormatter) Format(s Sheet) error {
	keys := make([][]byte, len(s.Columns))
	for k, col := range s.Columns {
		b, err := json.Marshal(col)
		if err != nil {
			return fmt.Errorf("failed to encode column %q: %w", col, err)
		}
		keys[k] = b
	}

	bw := bufio.NewWriter(j.writer)
	for i, row := range s.Rows {
		bw.WriteByte('{')
		for k := range keys {
			if k > 0 {
				bw.WriteByte(',')
			}
			val, err := json.Marshal(row[k])
			if err != nil {
				return fmt.Errorf("failed to encode row %d: %w", i, err)
			}
			bw.Write(keys[k])
			bw.WriteByte(':')
			bw.Write(val)
		}
		bw.WriteString("}\n")
	}
	return bw.Flush()
}

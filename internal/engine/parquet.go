package engine

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/segmentio/parquet-go"
)

// parquetRow is the on-disk layout of a parquet dataset. Optional numeric
// columns decode as nil when the value is missing.
type parquetRow struct {
	Name        string   `parquet:"Name"`
	Platform    string   `parquet:"Platform"`
	Year        *float64 `parquet:"Year"`
	Genre       string   `parquet:"Genre"`
	Publisher   string   `parquet:"Publisher"`
	GlobalSales *float64 `parquet:"Global_Sales"`
}

// LoadParquet decodes a parquet dataset with the same columns as the CSV file.
func LoadParquet(r io.ReaderAt, size int64) (*Table, LoadStats, error) {
	f, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("open parquet: %w", err)
	}
	for _, name := range requiredColumns {
		if _, ok := f.Schema().Lookup(name); !ok {
			return nil, LoadStats{}, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	reader := parquet.NewReader(f)
	defer reader.Close()

	b := newTableBuilder(int(f.NumRows()))
	var stats LoadStats
	for {
		var row parquetRow
		if err := reader.Read(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, LoadStats{}, fmt.Errorf("read parquet row: %w", err)
		}
		if row.Year == nil || row.GlobalSales == nil || math.IsNaN(*row.GlobalSales) {
			stats.Skipped++
			continue
		}
		b.add(row.Name, row.Platform, row.Genre, row.Publisher, int32(*row.Year), *row.GlobalSales)
	}

	t := b.build()
	stats.Rows = t.Len()
	return t, stats, nil
}

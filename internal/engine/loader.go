package engine

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	arrowcsv "github.com/apache/arrow-go/v18/arrow/csv"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/zeebo/xxh3"
)

var (
	ErrMissingColumn     = errors.New("missing required column")
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// csvChunkRows is the number of rows decoded per arrow record batch.
const csvChunkRows = 4096

// requiredColumns are read from the header; any other column is ignored.
var requiredColumns = []string{"Name", "Platform", "Year", "Genre", "Publisher", "Global_Sales"}

// Year is read as a float so files that store "2006.0" load too.
var columnTypes = map[string]arrow.DataType{
	"Name":         arrow.BinaryTypes.String,
	"Platform":     arrow.BinaryTypes.String,
	"Year":         arrow.PrimitiveTypes.Float64,
	"Genre":        arrow.BinaryTypes.String,
	"Publisher":    arrow.BinaryTypes.String,
	"Global_Sales": arrow.PrimitiveTypes.Float64,
}

// LoadStats describes one load.
type LoadStats struct {
	Rows     int
	Skipped  int
	Duration time.Duration
}

// Load reads the dataset at path. The format follows the file extension:
// .csv or .parquet. The returned table carries the xxh3 fingerprint of the
// file contents.
func Load(path string) (*Table, LoadStats, error) {
	start := time.Now()
	slog.Info("Loading dataset", "path", path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("read dataset: %w", err)
	}

	var (
		t     *Table
		stats LoadStats
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		t, stats, err = LoadCSV(bytes.NewReader(content))
	case ".parquet":
		t, stats, err = LoadParquet(bytes.NewReader(content), int64(len(content)))
	default:
		return nil, LoadStats{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("load %s: %w", path, err)
	}

	t.Fingerprint = xxh3.Hash(content)
	stats.Duration = time.Since(start)
	slog.Info("Load complete",
		"rows", stats.Rows,
		"skipped", stats.Skipped,
		"duration", stats.Duration,
		"fingerprint", fmt.Sprintf("%016x", t.Fingerprint))
	return t, stats, nil
}

// LoadCSV decodes a comma separated dataset with a header row. Rows whose
// Year or Global_Sales is missing ("N/A" or empty) are skipped.
func LoadCSV(r io.Reader) (*Table, LoadStats, error) {
	br := bufio.NewReader(r)
	header, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, LoadStats{}, fmt.Errorf("read header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, LoadStats{}, err
	}

	rdr := arrowcsv.NewInferringReader(io.MultiReader(strings.NewReader(header), br),
		arrowcsv.WithAllocator(memory.NewGoAllocator()),
		arrowcsv.WithHeader(true),
		arrowcsv.WithChunk(csvChunkRows),
		arrowcsv.WithIncludeColumns(requiredColumns),
		arrowcsv.WithColumnTypes(columnTypes),
		arrowcsv.WithNullReader(false, "N/A", "NaN", ""),
	)
	defer rdr.Release()

	b := newTableBuilder(0)
	var stats LoadStats
	for rdr.Next() {
		rec := rdr.Record()
		cols, err := bindColumns(rec)
		if err != nil {
			return nil, LoadStats{}, err
		}
		for i := 0; i < int(rec.NumRows()); i++ {
			if cols.year.IsNull(i) || cols.sales.IsNull(i) || math.IsNaN(cols.sales.Value(i)) {
				stats.Skipped++
				continue
			}
			b.add(
				cols.name.Value(i),
				cols.platform.Value(i),
				cols.genre.Value(i),
				cols.publisher.Value(i),
				int32(cols.year.Value(i)),
				cols.sales.Value(i),
			)
		}
	}
	if err := rdr.Err(); err != nil {
		return nil, LoadStats{}, fmt.Errorf("decode csv: %w", err)
	}

	t := b.build()
	stats.Rows = t.Len()
	return t, stats, nil
}

func checkHeader(line string) error {
	fields, err := csv.NewReader(strings.NewReader(line)).Read()
	if err != nil {
		return fmt.Errorf("parse header: %w", err)
	}
	present := make(map[string]bool, len(fields))
	for _, f := range fields {
		present[strings.TrimSpace(f)] = true
	}
	for _, name := range requiredColumns {
		if !present[name] {
			return fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return nil
}

type csvColumns struct {
	name, platform, genre, publisher *array.String
	year, sales                      *array.Float64
}

func bindColumns(rec arrow.Record) (csvColumns, error) {
	var cols csvColumns
	targets := map[string]any{
		"Name":         &cols.name,
		"Platform":     &cols.platform,
		"Genre":        &cols.genre,
		"Publisher":    &cols.publisher,
		"Year":         &cols.year,
		"Global_Sales": &cols.sales,
	}
	for _, name := range requiredColumns {
		idx := rec.Schema().FieldIndices(name)
		if len(idx) == 0 {
			return cols, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		col := rec.Column(idx[0])
		switch dst := targets[name].(type) {
		case **array.String:
			s, ok := col.(*array.String)
			if !ok {
				return cols, fmt.Errorf("column %s: expected string, got %s", name, col.DataType())
			}
			*dst = s
		case **array.Float64:
			f, ok := col.(*array.Float64)
			if !ok {
				return cols, fmt.Errorf("column %s: expected float64, got %s", name, col.DataType())
			}
			*dst = f
		}
	}
	return cols, nil
}

package output

import (
	"strings"

	"vgdash/internal/models"
)

// FromProjection wraps table rows.
func FromProjection(p models.Projection) Sheet {
	return Sheet{Columns: p.Columns, Rows: p.Rows}
}

// FromTotals lays out grouped totals, one row per group.
func FromTotals(by string, totals []models.GroupTotal) Sheet {
	s := Sheet{Columns: []string{by, "Global_Sales", "Records"}}
	for _, g := range totals {
		s.Rows = append(s.Rows, []any{g.Key, g.Sales, g.Records})
	}
	return s
}

// FromBoxes lays out box summaries, one row per box. The colour column is
// only present when the boxes are split.
func FromBoxes(by, colorBy string, boxes []models.BoxSummary) Sheet {
	cols := []string{by}
	if colorBy != "" {
		cols = append(cols, colorBy)
	}
	s := Sheet{Columns: append(cols, "Count", "Min", "Q1", "Median", "Q3", "Max", "Outliers")}
	for _, b := range boxes {
		row := []any{b.Key}
		if colorBy != "" {
			row = append(row, b.Color)
		}
		row = append(row, b.Count, b.Min, b.Q1, b.Median, b.Q3, b.Max, len(b.Outliers))
		s.Rows = append(s.Rows, row)
	}
	return s
}

// FromFacets lists every selectable value with its dimension.
func FromFacets(f models.Facets) Sheet {
	s := Sheet{Columns: []string{"Dimension", "Values"}}
	s.Rows = [][]any{
		{"platform", strings.Join(f.Platforms, ", ")},
		{"genre", strings.Join(f.Genres, ", ")},
		{"publisher_count", len(f.Publishers)},
		{"year_min", f.YearMin},
		{"year_max", f.YearMax},
	}
	return s
}

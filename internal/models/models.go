package models

// Dashboard is the combined answer to one dashboard query: the table rows and
// both chart series computed from the same filtered view.
type Dashboard struct {
	Table        Projection   `json:"table"`
	Totals       []GroupTotal `json:"totals"`
	Distribution []BoxSummary `json:"distribution"`
}

// Projection is a column subset of the filtered view, in display order.
type Projection struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Records turns the projection into one map per row, keyed by column name.
func (p Projection) Records() []map[string]any {
	out := make([]map[string]any, 0, len(p.Rows))
	for _, row := range p.Rows {
		rec := make(map[string]any, len(p.Columns))
		for i, col := range p.Columns {
			rec[col] = row[i]
		}
		out = append(out, rec)
	}
	return out
}

// GroupTotal is one bar of the grouped histogram.
type GroupTotal struct {
	Key     string  `json:"key"`
	Sales   float64 `json:"global_sales"`
	Records int     `json:"records"`
}

// BoxSummary is one box of the box plot.
type BoxSummary struct {
	Key          string     `json:"key"`
	Color        string     `json:"color,omitempty"`
	Count        int        `json:"count"`
	Min          float64    `json:"min"`
	Q1           float64    `json:"q1"`
	Median       float64    `json:"median"`
	Q3           float64    `json:"q3"`
	Max          float64    `json:"max"`
	LowerFence   float64    `json:"lower_fence"`
	UpperFence   float64    `json:"upper_fence"`
	LowerWhisker float64    `json:"lower_whisker"`
	UpperWhisker float64    `json:"upper_whisker"`
	Outliers     []float64  `json:"outliers"`
	Points       []BoxPoint `json:"points"`
}

// BoxPoint is a single record behind a box, with tooltip data.
type BoxPoint struct {
	Name    string  `json:"name"`
	Hover   string  `json:"hover"`
	Value   float64 `json:"value"`
	Outlier bool    `json:"outlier,omitempty"`
}

// Facets lists the values a caller can select from.
type Facets struct {
	Platforms  []string `json:"platforms"`
	Genres     []string `json:"genres"`
	Publishers []string `json:"publishers"`
	YearMin    int      `json:"year_min"`
	YearMax    int      `json:"year_max"`
}

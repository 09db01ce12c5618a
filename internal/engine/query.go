package engine

import (
	"errors"
	"fmt"
	"sort"

	"vgdash/internal/models"
)

var ErrUnknownPreset = errors.New("unknown preset")

// Request is everything one dashboard interaction asks for. The same filtered
// view feeds the table and both charts.
type Request struct {
	Criteria Criteria

	Columns []Column
	BySales bool

	GroupBy Dimension
	Box     DistributionOptions
}

// Query runs the request against the table.
func Query(t *Table, req Request) models.Dashboard {
	view := Filter(t, req.Criteria)
	return models.Dashboard{
		Table:        ProjectAndSort(view, req.Columns, req.BySales),
		Totals:       GroupedSum(view, req.GroupBy),
		Distribution: Distribution(view, req.Box),
	}
}

// Preset reproduces one dashboard variant: which columns the table shows,
// whether it is sorted, and which dimensions drive the two charts.
type Preset struct {
	Name    string
	Columns []Column
	BySales bool
	GroupBy Dimension
	Box     DistributionOptions
}

var presets = map[string]Preset{
	// Multi-select platforms and genres, totals and boxes by platform.
	"explorer": {
		Name:    "explorer",
		Columns: []Column{ColYear, ColPlatform, ColGenre, ColName, ColSales},
		GroupBy: Platform,
		Box:     DistributionOptions{GroupBy: Platform, HoverBy: Genre},
	},
	// One platform, totals by genre.
	"genre": {
		Name:    "genre",
		Columns: AllColumns,
		BySales: true,
		GroupBy: Genre,
	},
	// One platform, totals by year, boxes by year split by genre.
	"yearly": {
		Name:    "yearly",
		Columns: []Column{ColName, ColYear, ColGenre, ColPublisher, ColSales},
		BySales: true,
		GroupBy: Year,
		Box:     DistributionOptions{GroupBy: Year, ColorBy: Genre, HoverBy: Publisher},
	},
}

// LookupPreset returns the named preset.
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// PresetNames lists the available presets in alphabetical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Request builds a request from the preset's layout and the given criteria.
func (p Preset) Request(c Criteria) Request {
	cols := make([]Column, len(p.Columns))
	copy(cols, p.Columns)
	return Request{
		Criteria: c,
		Columns:  cols,
		BySales:  p.BySales,
		GroupBy:  p.GroupBy,
		Box:      p.Box,
	}
}

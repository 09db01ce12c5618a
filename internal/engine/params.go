package engine

import (
	"fmt"
	"strings"
)

// Params is the raw, caller-facing form of a dashboard query: the API fills
// it from the URL or a JSON body, the CLI from flags. A nil selection means
// "not given" and selects every value; an empty one selects nothing.
type Params struct {
	Preset    string     `json:"preset"`
	StartDate string     `json:"start_date"`
	EndDate   string     `json:"end_date"`
	Platforms *Selection `json:"platforms"`
	Genres    *Selection `json:"genres"`
	GroupBy   string     `json:"group_by"`
	ColorBy   string     `json:"color_by"`
	HoverBy   string     `json:"hover_by"`
	Columns   Selection  `json:"columns"`
	Sort      string     `json:"sort"`
}

// Request resolves the parameters against the table. The preset, when given,
// supplies the layout and explicit parameters override it; without one the
// table is sorted by sales and both charts group by platform. Missing year
// bounds default to the table's range. group_by drives both charts.
func (p Params) Request(t *Table) (Request, error) {
	req := Request{
		Columns: AllColumns,
		BySales: true,
		GroupBy: Platform,
		Box:     DistributionOptions{GroupBy: Platform},
	}
	if p.Preset != "" {
		preset, err := LookupPreset(p.Preset)
		if err != nil {
			return req, err
		}
		req = preset.Request(Criteria{})
	}

	c, err := p.criteria(t)
	if err != nil {
		return req, err
	}
	req.Criteria = c

	if p.GroupBy != "" {
		d, err := ParseDimension(p.GroupBy)
		if err != nil {
			return req, err
		}
		req.GroupBy = d
		req.Box.GroupBy = d
	}
	if p.ColorBy != "" {
		d, err := ParseDimension(p.ColorBy)
		if err != nil {
			return req, err
		}
		req.Box.ColorBy = d
	}
	if p.HoverBy != "" {
		d, err := ParseDimension(p.HoverBy)
		if err != nil {
			return req, err
		}
		req.Box.HoverBy = d
	}
	if len(p.Columns) > 0 {
		cols, err := ParseColumns(strings.Join(p.Columns, ","))
		if err != nil {
			return req, err
		}
		req.Columns = cols
	}
	switch strings.ToLower(p.Sort) {
	case "":
	case "sales":
		req.BySales = true
	case "none":
		req.BySales = false
	default:
		return req, fmt.Errorf("invalid sort %q: must be one of [sales none]", p.Sort)
	}
	return req, nil
}

func (p Params) criteria(t *Table) (Criteria, error) {
	lo, hi := t.YearBounds()
	c := Criteria{YearMin: lo, YearMax: hi}

	if p.StartDate != "" {
		y, err := ParseYear(p.StartDate)
		if err != nil {
			return c, err
		}
		c.YearMin = y
	}
	if p.EndDate != "" {
		y, err := ParseYear(p.EndDate)
		if err != nil {
			return c, err
		}
		c.YearMax = y
	}

	c.Platforms = append(Selection(nil), t.PlatformDict...)
	if p.Platforms != nil {
		c.Platforms = *p.Platforms
	}
	c.Genres = append(Selection(nil), t.GenreDict...)
	if p.Genres != nil {
		c.Genres = *p.Genres
	}
	return c, nil
}

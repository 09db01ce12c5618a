package engine

import (
	"vgdash/internal/models"
)

type aggStats struct {
	Sales float64
	Count int
}

// GroupedSum sums global sales per value of dimension by. Groups without
// records are omitted, and the remaining groups come out in ascending key
// order (numeric for years). The totals add up to the view's total sales.
func GroupedSum(v View, by Dimension) []models.GroupTotal {
	out := make([]models.GroupTotal, 0)
	t := v.table
	if v.Len() == 0 || by == NoDimension {
		return out
	}

	// Array indexed by dense code instead of a map.
	acc := make([]aggStats, t.cardinality(by))
	for _, i := range v.rows {
		c := t.code(by, i)
		acc[c].Sales += t.Sales[i]
		acc[c].Count++
	}

	for _, c := range t.codeOrder(by) {
		if acc[c].Count == 0 {
			continue
		}
		out = append(out, models.GroupTotal{
			Key:     t.label(by, c),
			Sales:   acc[c].Sales,
			Records: acc[c].Count,
		})
	}
	return out
}

// DistributionOptions selects the axes of a box plot.
type DistributionOptions struct {
	// GroupBy is the box axis.
	GroupBy Dimension
	// ColorBy optionally splits every group into one box per value.
	ColorBy Dimension
	// HoverBy is attached to every point next to the record name. When empty
	// it defaults to genre, or platform when grouping by genre.
	HoverBy Dimension
}

func (o DistributionOptions) hover() Dimension {
	if o.HoverBy != NoDimension {
		return o.HoverBy
	}
	if o.GroupBy == Genre || o.ColorBy == Genre {
		return Platform
	}
	return Genre
}

// Distribution computes one box summary per group (and per colour within a
// group when ColorBy is set). Each box lists its points in view order with
// their hover metadata; points beyond the 1.5*IQR fences are flagged as
// outliers. A group of a single record has every statistic equal to that
// record's value and no outliers.
func Distribution(v View, opts DistributionOptions) []models.BoxSummary {
	out := make([]models.BoxSummary, 0)
	t := v.table
	if v.Len() == 0 || opts.GroupBy == NoDimension {
		return out
	}

	colors := 1
	if opts.ColorBy != NoDimension {
		colors = t.cardinality(opts.ColorBy)
	}
	// Flattened [group][color] -> group*colors + color
	buckets := make([][]int, t.cardinality(opts.GroupBy)*colors)
	for _, i := range v.rows {
		idx := t.code(opts.GroupBy, i) * colors
		if opts.ColorBy != NoDimension {
			idx += t.code(opts.ColorBy, i)
		}
		buckets[idx] = append(buckets[idx], i)
	}

	colorOrder := []int{0}
	if opts.ColorBy != NoDimension {
		colorOrder = t.codeOrder(opts.ColorBy)
	}
	hover := opts.hover()

	for _, g := range t.codeOrder(opts.GroupBy) {
		for _, c := range colorOrder {
			rows := buckets[g*colors+c]
			if len(rows) == 0 {
				continue
			}
			box := summarizeBox(t, rows, hover)
			box.Key = t.label(opts.GroupBy, g)
			if opts.ColorBy != NoDimension {
				box.Color = t.label(opts.ColorBy, c)
			}
			out = append(out, box)
		}
	}
	return out
}

func summarizeBox(t *Table, rows []int, hover Dimension) models.BoxSummary {
	values := make([]float64, len(rows))
	for k, i := range rows {
		values[k] = t.Sales[i]
	}
	f := summarize(values)

	box := models.BoxSummary{
		Count:        len(rows),
		Min:          f.Min,
		Q1:           f.Q1,
		Median:       f.Median,
		Q3:           f.Q3,
		Max:          f.Max,
		LowerFence:   f.LowerFence,
		UpperFence:   f.UpperFence,
		LowerWhisker: f.Max,
		UpperWhisker: f.Min,
		Outliers:     make([]float64, 0),
		Points:       make([]models.BoxPoint, 0, len(rows)),
	}
	for _, i := range rows {
		v := t.Sales[i]
		outlier := f.isOutlier(v)
		if outlier {
			box.Outliers = append(box.Outliers, v)
		} else {
			box.LowerWhisker = min(box.LowerWhisker, v)
			box.UpperWhisker = max(box.UpperWhisker, v)
		}
		box.Points = append(box.Points, models.BoxPoint{
			Name:    t.Names[i],
			Hover:   t.label(hover, t.code(hover, i)),
			Value:   v,
			Outlier: outlier,
		})
	}
	return box
}

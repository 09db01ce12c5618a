package engine

// Criteria is the conjunction of predicates for one query. Years are inclusive.
// An empty Platforms or Genres selection matches nothing, and a reversed year
// range matches nothing.
type Criteria struct {
	YearMin   int
	YearMax   int
	Platforms Selection
	Genres    Selection
}

// View is an ordered subsequence of a Table: the row indices that passed a
// filter, in table order. A View owns its index slice and never shares it.
type View struct {
	table *Table
	rows  []int
}

// All returns a view over every row of the table.
func (t *Table) All() View {
	rows := make([]int, t.Len())
	for i := range rows {
		rows[i] = i
	}
	return View{table: t, rows: rows}
}

// Filter applies the criteria to the whole table.
func Filter(t *Table, c Criteria) View {
	return t.All().Filter(c)
}

// Len returns the number of rows in the view.
func (v View) Len() int { return len(v.rows) }

// Rows returns a copy of the table row indices in the view.
func (v View) Rows() []int {
	out := make([]int, len(v.rows))
	copy(out, v.rows)
	return out
}

// Records materializes every row of the view.
func (v View) Records() []Record {
	out := make([]Record, len(v.rows))
	for k, i := range v.rows {
		out[k] = v.table.Record(i)
	}
	return out
}

// Filter narrows the view further. Filtering twice with the same criteria is
// the same as filtering once.
func (v View) Filter(c Criteria) View {
	out := View{table: v.table, rows: make([]int, 0)}
	if c.YearMin > c.YearMax || len(c.Platforms) == 0 || len(c.Genres) == 0 {
		return out
	}

	t := v.table
	// Membership as flat lookup tables over dictionary IDs.
	platformOK := allowed(t.PlatformDict, c.Platforms)
	genreOK := allowed(t.GenreDict, c.Genres)
	lo, hi := int64(c.YearMin), int64(c.YearMax)

	for _, i := range v.rows {
		y := int64(t.Years[i])
		if y < lo || y > hi {
			continue
		}
		if !platformOK[t.PlatformIDs[i]] || !genreOK[t.GenreIDs[i]] {
			continue
		}
		out.rows = append(out.rows, i)
	}
	return out
}

func allowed(dict []string, sel Selection) []bool {
	want := make(map[string]struct{}, len(sel))
	for _, s := range sel {
		want[s] = struct{}{}
	}
	ok := make([]bool, len(dict))
	for id, s := range dict {
		_, ok[id] = want[s]
	}
	return ok
}

package engine

import (
	"sort"

	"vgdash/internal/models"
)

// ProjectAndSort selects the given columns from every row of the view. With
// bySales set the rows are ordered by global sales, highest first; rows with
// equal sales keep their table order. The view itself is left untouched.
func ProjectAndSort(v View, columns []Column, bySales bool) models.Projection {
	if len(columns) == 0 {
		columns = AllColumns
	}
	t := v.table

	rows := v.Rows()
	if bySales {
		sort.SliceStable(rows, func(a, b int) bool { return t.Sales[rows[a]] > t.Sales[rows[b]] })
	}

	p := models.Projection{
		Columns: make([]string, len(columns)),
		Rows:    make([][]any, 0, len(rows)),
	}
	for k, c := range columns {
		p.Columns[k] = string(c)
	}
	for _, i := range rows {
		row := make([]any, len(columns))
		for k, c := range columns {
			row[k] = c.value(t, i)
		}
		p.Rows = append(p.Rows, row)
	}
	return p
}

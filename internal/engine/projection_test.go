package engine

import (
	"reflect"
	"testing"
)

func TestProjectAndSortStable(t *testing.T) {
	tbl := salesTable()
	v := Filter(tbl, everything(tbl))

	p := ProjectAndSort(v, []Column{ColName, ColSales}, true)

	// B, C and E share 2.0 and must keep table order.
	var names []string
	for _, row := range p.Rows {
		names = append(names, row[0].(string))
	}
	want := []string{"F", "B", "C", "E", "A", "D", "G"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("order = %v, want %v", names, want)
	}
}

func TestProjectAndSortUnsortedKeepsViewOrder(t *testing.T) {
	tbl := salesTable()
	v := Filter(tbl, everything(tbl))

	p := ProjectAndSort(v, []Column{ColName}, false)
	if len(p.Rows) != 7 || p.Rows[0][0] != "A" || p.Rows[6][0] != "G" {
		t.Errorf("rows = %v", p.Rows)
	}
}

func TestProjectAndSortColumns(t *testing.T) {
	tbl := scenarioTable()
	v := Filter(tbl, everything(tbl))

	p := ProjectAndSort(v, []Column{ColName, ColYear, ColGenre, ColPublisher, ColSales}, true)

	if !reflect.DeepEqual(p.Columns, []string{"Name", "Year", "Genre", "Publisher", "Global_Sales"}) {
		t.Fatalf("columns = %v", p.Columns)
	}
	want := []any{"Wii Sports", 2008, "Sports", "Nintendo", 10.0}
	if !reflect.DeepEqual(p.Rows[0], want) {
		t.Errorf("row 0 = %v, want %v", p.Rows[0], want)
	}

	rec := p.Records()[2]
	if rec["Name"] != "FIFA 08" || rec["Global_Sales"] != 3.0 {
		t.Errorf("record 2 = %v", rec)
	}
}

func TestProjectAndSortDefaultsToAllColumns(t *testing.T) {
	tbl := scenarioTable()
	p := ProjectAndSort(tbl.All(), nil, false)

	if len(p.Columns) != len(AllColumns) {
		t.Errorf("Expected %d columns, got %d", len(AllColumns), len(p.Columns))
	}
}

func TestProjectAndSortDoesNotReorderView(t *testing.T) {
	tbl := salesTable()
	v := Filter(tbl, everything(tbl))
	before := v.Rows()

	ProjectAndSort(v, nil, true)

	if !reflect.DeepEqual(before, v.Rows()) {
		t.Errorf("view changed: %v -> %v", before, v.Rows())
	}
}

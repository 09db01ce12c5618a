package output

import (
	"bytes"
	"strings"
	"testing"

	"vgdash/internal/models"
)

func sampleSheet() Sheet {
	return Sheet{
		Columns: []string{"Name", "Year", "Global_Sales"},
		Rows: [][]any{
			{"Wii Sports", 2006, 82.74},
			{"=cmd", 2008, 1.5},
		},
	}
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCSVFormatter(&buf).Format(sampleSheet()); err != nil {
		t.Fatalf("Format: %v", err)
	}

	want := "Name,Year,Global_Sales\nWii Sports,2006,82.74\n'=cmd,2008,1.5\n"
	if buf.String() != want {
		t.Errorf("csv = %q, want %q", buf.String(), want)
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(&buf).Format(sampleSheet()); err != nil {
		t.Fatalf("Format: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != `{"Name":"Wii Sports","Year":2006,"Global_Sales":82.74}` {
		t.Errorf("line 0 = %s", lines[0])
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableFormatter(&buf).Format(sampleSheet()); err != nil {
		t.Fatalf("Format: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Global_Sales", "Wii Sports", "82.74"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestNew(t *testing.T) {
	for _, name := range []string{"table", "csv", "json", "jsonl"} {
		if _, err := New(name, &bytes.Buffer{}); err != nil {
			t.Errorf("New(%q): %v", name, err)
		}
	}
	if _, err := New("xml", &bytes.Buffer{}); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestFromBoxes(t *testing.T) {
	boxes := []models.BoxSummary{{Key: "2008", Color: "Sports", Count: 2, Min: 1, Q1: 1.25, Median: 1.5, Q3: 1.75, Max: 2}}

	s := FromBoxes("year", "genre", boxes)
	if len(s.Columns) != 9 || s.Columns[1] != "genre" {
		t.Errorf("columns = %v", s.Columns)
	}
	if s.Rows[0][1] != "Sports" || s.Rows[0][8] != 0 {
		t.Errorf("row = %v", s.Rows[0])
	}

	plain := FromBoxes("platform", "", boxes)
	if len(plain.Columns) != 8 {
		t.Errorf("columns = %v", plain.Columns)
	}
}

func TestFromTotals(t *testing.T) {
	s := FromTotals("platform", []models.GroupTotal{{Key: "Wii", Sales: 15, Records: 2}})
	if len(s.Rows) != 1 || s.Rows[0][0] != "Wii" || s.Rows[0][1] != 15.0 {
		t.Errorf("sheet = %+v", s)
	}
}

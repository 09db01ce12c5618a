package engine

import (
	"reflect"
	"testing"

	"github.com/goccy/go-json"
)

func TestFilterScenario(t *testing.T) {
	tbl := scenarioTable()
	v := Filter(tbl, Criteria{
		YearMin:   2008,
		YearMax:   2009,
		Platforms: Select("Wii"),
		Genres:    Select("Sports", "Racing"),
	})

	if got := v.Rows(); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Fatalf("rows = %v, want [0 1]", got)
	}
	totals := GroupedSum(v, Platform)
	if len(totals) != 1 || totals[0].Key != "Wii" || totals[0].Sales != 15.0 {
		t.Errorf("totals = %+v, want [{Wii 15}]", totals)
	}
}

func TestFilterPermissiveEmpty(t *testing.T) {
	tbl := salesTable()
	all := everything(tbl)

	tests := []struct {
		name     string
		criteria Criteria
	}{
		{"reversed years", Criteria{YearMin: 2010, YearMax: 2000, Platforms: all.Platforms, Genres: all.Genres}},
		{"no platforms", Criteria{YearMin: 2000, YearMax: 2020, Platforms: Select(), Genres: all.Genres}},
		{"no genres", Criteria{YearMin: 2000, YearMax: 2020, Platforms: all.Platforms, Genres: nil}},
		{"unknown platform", Criteria{YearMin: 2000, YearMax: 2020, Platforms: Select("Dreamcast"), Genres: all.Genres}},
		{"years before domain", Criteria{YearMin: -5, YearMax: 1900, Platforms: all.Platforms, Genres: all.Genres}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Filter(tbl, tt.criteria)
			if v.Len() != 0 {
				t.Errorf("Expected empty view, got %d rows", v.Len())
			}
			if got := GroupedSum(v, Platform); len(got) != 0 {
				t.Errorf("GroupedSum = %v, want empty", got)
			}
			if got := Distribution(v, DistributionOptions{GroupBy: Platform}); len(got) != 0 {
				t.Errorf("Distribution = %v, want empty", got)
			}
		})
	}
}

func TestFilterWideYearRangeMatchesEverything(t *testing.T) {
	tbl := salesTable()
	c := everything(tbl)
	c.YearMin, c.YearMax = -1<<31, 1<<31-1

	if v := Filter(tbl, c); v.Len() != tbl.Len() {
		t.Errorf("Expected %d rows, got %d", tbl.Len(), v.Len())
	}
}

func TestFilterIdempotent(t *testing.T) {
	tbl := salesTable()
	criteria := []Criteria{
		everything(tbl),
		{YearMin: 2009, YearMax: 2010, Platforms: Select("Wii", "DS"), Genres: Select("Sports", "Racing")},
		{YearMin: 2008, YearMax: 2008, Platforms: Select("PS2"), Genres: Select("Racing")},
	}
	for _, c := range criteria {
		once := Filter(tbl, c)
		twice := once.Filter(c)
		if !reflect.DeepEqual(once.Rows(), twice.Rows()) {
			t.Errorf("criteria %+v: once %v, twice %v", c, once.Rows(), twice.Rows())
		}
	}
}

func TestFilterPreservesTableOrder(t *testing.T) {
	tbl := salesTable()
	c := everything(tbl)
	c.Platforms = Select("Wii", "PS2")

	want := []int{0, 1, 2, 4, 5}
	if got := Filter(tbl, c).Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}
}

func TestScalarSelectionMatchesOneElementSet(t *testing.T) {
	tbl := scenarioTable()

	var scalar, list struct {
		Platforms Selection `json:"platforms"`
	}
	if err := json.Unmarshal([]byte(`{"platforms":"Wii"}`), &scalar); err != nil {
		t.Fatalf("unmarshal scalar: %v", err)
	}
	if err := json.Unmarshal([]byte(`{"platforms":["Wii"]}`), &list); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}

	base := Criteria{YearMin: 2000, YearMax: 2020, Genres: Select("Sports", "Racing")}
	a, b := base, base
	a.Platforms = scalar.Platforms
	b.Platforms = list.Platforms

	va, vb := Filter(tbl, a), Filter(tbl, b)
	if !reflect.DeepEqual(va.Rows(), vb.Rows()) {
		t.Errorf("scalar rows %v != list rows %v", va.Rows(), vb.Rows())
	}
	if va.Len() != 2 {
		t.Errorf("Expected 2 Wii rows, got %d", va.Len())
	}
}

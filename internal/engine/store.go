package engine

import (
	"sort"
	"strconv"

	"vgdash/internal/models"
)

// Table holds the sales dataset in Struct-of-Arrays format.
// It is built once by a loader and never mutated afterwards, so any number of
// queries may read it concurrently without locking.
type Table struct {
	// Data Columns (Flat Arrays)
	Names []string
	Years []int32
	Sales []float64

	// Dictionary Encoded IDs (0..N)
	PlatformIDs  []int32
	GenreIDs     []int32
	PublisherIDs []int32

	// Dictionaries (ID -> String)
	PlatformDict  []string
	GenreDict     []string
	PublisherDict []string

	// Fingerprint identifies the source bytes (xxh3). Zero for tables built in memory.
	Fingerprint uint64

	minYear int32
	maxYear int32
}

// Record is one row of the table, materialized.
type Record struct {
	Name      string
	Platform  string
	Genre     string
	Publisher string
	Year      int
	Sales     float64
}

// NewTable builds a table from records, preserving their order.
func NewTable(records []Record) *Table {
	b := newTableBuilder(len(records))
	for _, r := range records {
		b.add(r.Name, r.Platform, r.Genre, r.Publisher, int32(r.Year), r.Sales)
	}
	return b.build()
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Sales) }

// Record materializes row i.
func (t *Table) Record(i int) Record {
	return Record{
		Name:      t.Names[i],
		Platform:  t.PlatformDict[t.PlatformIDs[i]],
		Genre:     t.GenreDict[t.GenreIDs[i]],
		Publisher: t.PublisherDict[t.PublisherIDs[i]],
		Year:      int(t.Years[i]),
		Sales:     t.Sales[i],
	}
}

// YearBounds returns the smallest and largest year in the table.
// Both are zero for an empty table.
func (t *Table) YearBounds() (int, int) {
	return int(t.minYear), int(t.maxYear)
}

// Facets returns the selectable values of every categorical dimension.
func (t *Table) Facets() models.Facets {
	return models.Facets{
		Platforms:  sortedCopy(t.PlatformDict),
		Genres:     sortedCopy(t.GenreDict),
		Publishers: sortedCopy(t.PublisherDict),
		YearMin:    int(t.minYear),
		YearMax:    int(t.maxYear),
	}
}

// cardinality is the size of the dense code space of a dimension.
func (t *Table) cardinality(d Dimension) int {
	switch d {
	case Platform:
		return len(t.PlatformDict)
	case Genre:
		return len(t.GenreDict)
	case Publisher:
		return len(t.PublisherDict)
	case Year:
		if t.Len() == 0 {
			return 0
		}
		return int(t.maxYear-t.minYear) + 1
	}
	return 0
}

// code maps row i to its dense code in dimension d. Years are offset by the
// smallest year so codes can index flat arrays.
func (t *Table) code(d Dimension, i int) int {
	switch d {
	case Platform:
		return int(t.PlatformIDs[i])
	case Genre:
		return int(t.GenreIDs[i])
	case Publisher:
		return int(t.PublisherIDs[i])
	case Year:
		return int(t.Years[i] - t.minYear)
	}
	return 0
}

func (t *Table) label(d Dimension, code int) string {
	switch d {
	case Platform:
		return t.PlatformDict[code]
	case Genre:
		return t.GenreDict[code]
	case Publisher:
		return t.PublisherDict[code]
	case Year:
		return strconv.Itoa(int(t.minYear) + code)
	}
	return ""
}

// codeOrder returns the codes of d sorted by ascending label: numeric for
// years, lexicographic otherwise.
func (t *Table) codeOrder(d Dimension) []int {
	n := t.cardinality(d)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if d != Year {
		sort.Slice(order, func(i, j int) bool { return t.label(d, order[i]) < t.label(d, order[j]) })
	}
	return order
}

func sortedCopy(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}

// tableBuilder accumulates rows and dictionary-encodes the categorical columns.
type tableBuilder struct {
	t     *Table
	pMap  map[string]int32
	gMap  map[string]int32
	pbMap map[string]int32
}

func newTableBuilder(capacity int) *tableBuilder {
	return &tableBuilder{
		t: &Table{
			Names:        make([]string, 0, capacity),
			Years:        make([]int32, 0, capacity),
			Sales:        make([]float64, 0, capacity),
			PlatformIDs:  make([]int32, 0, capacity),
			GenreIDs:     make([]int32, 0, capacity),
			PublisherIDs: make([]int32, 0, capacity),
		},
		pMap:  make(map[string]int32),
		gMap:  make(map[string]int32),
		pbMap: make(map[string]int32),
	}
}

func intern(m map[string]int32, dict *[]string, s string) int32 {
	if id, ok := m[s]; ok {
		return id
	}
	id := int32(len(*dict))
	*dict = append(*dict, s)
	m[s] = id
	return id
}

func (b *tableBuilder) add(name, platform, genre, publisher string, year int32, sales float64) {
	t := b.t
	if t.Len() == 0 || year < t.minYear {
		t.minYear = year
	}
	if t.Len() == 0 || year > t.maxYear {
		t.maxYear = year
	}
	t.Names = append(t.Names, name)
	t.Years = append(t.Years, year)
	t.Sales = append(t.Sales, sales)
	t.PlatformIDs = append(t.PlatformIDs, intern(b.pMap, &t.PlatformDict, platform))
	t.GenreIDs = append(t.GenreIDs, intern(b.gMap, &t.GenreDict, genre))
	t.PublisherIDs = append(t.PublisherIDs, intern(b.pbMap, &t.PublisherDict, publisher))
}

func (b *tableBuilder) build() *Table {
	return b.t
}

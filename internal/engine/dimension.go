package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownDimension = errors.New("unknown dimension")
	ErrUnknownColumn    = errors.New("unknown column")
)

// Dimension is a categorical axis records can be grouped by.
type Dimension string

const (
	NoDimension Dimension = ""
	Platform    Dimension = "platform"
	Genre       Dimension = "genre"
	Publisher   Dimension = "publisher"
	Year        Dimension = "year"
)

// ParseDimension accepts a dimension name in any case. The empty string
// yields NoDimension.
func ParseDimension(s string) (Dimension, error) {
	switch d := Dimension(strings.ToLower(strings.TrimSpace(s))); d {
	case NoDimension, Platform, Genre, Publisher, Year:
		return d, nil
	}
	return NoDimension, fmt.Errorf("%w: %q", ErrUnknownDimension, s)
}

// Column names the dataset columns using the header spelling of the source file.
type Column string

const (
	ColName      Column = "Name"
	ColPlatform  Column = "Platform"
	ColYear      Column = "Year"
	ColGenre     Column = "Genre"
	ColPublisher Column = "Publisher"
	ColSales     Column = "Global_Sales"
)

// AllColumns is the full projection in file order.
var AllColumns = []Column{ColName, ColPlatform, ColYear, ColGenre, ColPublisher, ColSales}

// ParseColumns parses a comma separated column list. Matching is case-insensitive.
func ParseColumns(s string) ([]Column, error) {
	var cols []Column
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		col, ok := lookupColumn(part)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, part)
		}
		cols = append(cols, col)
	}
	return cols, nil
}

func lookupColumn(s string) (Column, bool) {
	for _, c := range AllColumns {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

func (c Column) value(t *Table, i int) any {
	switch c {
	case ColName:
		return t.Names[i]
	case ColPlatform:
		return t.PlatformDict[t.PlatformIDs[i]]
	case ColYear:
		return int(t.Years[i])
	case ColGenre:
		return t.GenreDict[t.GenreIDs[i]]
	case ColPublisher:
		return t.PublisherDict[t.PublisherIDs[i]]
	case ColSales:
		return t.Sales[i]
	}
	return nil
}

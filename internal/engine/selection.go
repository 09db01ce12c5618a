package engine

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Selection is a normalized set of categorical values, kept in first-seen order.
//
// Every consumer builds its criteria through Selection so that a single value
// and a one-element list select exactly the same rows.
type Selection []string

// Select normalizes the given values: blanks and duplicates are dropped.
func Select(values ...string) Selection {
	seen := make(map[string]struct{}, len(values))
	out := make(Selection, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// ParseSelection normalizes query-string values. Each value may itself be a
// comma separated list.
func ParseSelection(values []string) Selection {
	var parts []string
	for _, v := range values {
		parts = append(parts, strings.Split(v, ",")...)
	}
	return Select(parts...)
}

// UnmarshalJSON accepts either a single string or an array of strings.
func (s *Selection) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = nil
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var one string
		if err := json.Unmarshal(b, &one); err != nil {
			return err
		}
		*s = Select(one)
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("selection must be a string or a list of strings: %w", err)
	}
	*s = Select(many...)
	return nil
}

// ParseYear extracts the year from "YYYY" or an ISO date such as
// "2008-01-01" or "2008-01-01T00:00:00".
func ParseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	digits := s
	if i := strings.IndexAny(s, "-T "); i > 0 {
		digits = s[:i]
	}
	y, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return y, nil
}

package engine

import "testing"

func TestQuantileLinear(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	tests := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{0.75, 3.25},
		{1, 4},
	}
	for _, tt := range tests {
		if got := quantile(sorted, tt.q); got != tt.want {
			t.Errorf("quantile(%v) = %v, want %v", tt.q, got, tt.want)
		}
	}
	if got := quantile(nil, 0.5); got != 0 {
		t.Errorf("quantile(nil) = %v, want 0", got)
	}
}

func TestSummarizeDoesNotSortInput(t *testing.T) {
	values := []float64{3, 1, 2}
	f := summarize(values)

	if f.Min != 1 || f.Median != 2 || f.Max != 3 {
		t.Errorf("summary = %+v", f)
	}
	if values[0] != 3 {
		t.Errorf("input was reordered: %v", values)
	}
}

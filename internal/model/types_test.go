package model

import "testing"

func TestHistogramLookupAndTotal(t *testing.T) {
	h := Histogram{
		{Occurrences: 0, Words: 1},
		{Occurrences: 1, Words: 2},
		{Occurrences: 2, Words: 1},
	}
	if got := h.Total(); got != 4 {
		t.Fatalf("expected total 4, got %d", got)
	}
	if got := h.Lookup(1); got != 2 {
		t.Fatalf("expected 2 words for bucket 1, got %d", got)
	}
	if got := h.Lookup(5); got != 0 {
		t.Fatalf("expected 0 for absent bucket, got %d", got)
	}
	if got := h.MaxOccurrences(); got != 2 {
		t.Fatalf("expected max occurrences 2, got %d", got)
	}
	if got := (Histogram{}).MaxOccurrences(); got != -1 {
		t.Fatalf("expected -1 for empty histogram, got %d", got)
	}
}

func TestDistributionsEmpty(t *testing.T) {
	if !(Distributions{}).Empty() {
		t.Fatalf("expected nil distributions to be empty")
	}
	d := Distributions{{Letter: "a"}, {Letter: "b"}}
	if !d.Empty() {
		t.Fatalf("expected distributions with empty histograms to be empty")
	}
	d[1].Histogram = Histogram{{Occurrences: 0, Words: 1}}
	if d.Empty() {
		t.Fatalf("expected distributions with data to be non-empty")
	}
}

// Package model defines shared data structures.
package model

import "time"

// DefaultMaxOccurrences is the highest occurrence count emitted as a report column.
// Buckets above it are dropped from exported rows.
const DefaultMaxOccurrences = 6

// MaxOccurrencesLimit bounds the configurable occurrence ceiling.
const MaxOccurrencesLimit = 64

// Bucket is one histogram entry: Words words contain the letter exactly Occurrences times.
type Bucket struct {
	Occurrences int
	Words       int
}

// Histogram is a per-letter occurrence histogram sorted by Occurrences ascending.
type Histogram []Bucket

// Total returns the number of words accounted for by the histogram.
func (h Histogram) Total() int {
	total := 0
	for _, b := range h {
		total += b.Words
	}
	return total
}

// Lookup returns the word count for an occurrence bucket, or 0 when absent.
func (h Histogram) Lookup(occurrences int) int {
	for _, b := range h {
		if b.Occurrences == occurrences {
			return b.Words
		}
	}
	return 0
}

// MaxOccurrences returns the largest occurrence count present, or -1 for an empty histogram.
func (h Histogram) MaxOccurrences() int {
	if len(h) == 0 {
		return -1
	}
	return h[len(h)-1].Occurrences
}

// LetterDistribution pairs a letter with its histogram.
type LetterDistribution struct {
	Letter    string
	Histogram Histogram
}

// Distributions holds one LetterDistribution per processed letter in alphabet order.
type Distributions []LetterDistribution

// Empty reports whether there is nothing to export.
func (d Distributions) Empty() bool {
	for _, ld := range d {
		if len(ld.Histogram) > 0 {
			return false
		}
	}
	return true
}

// ReportRow is a letter with dense word counts for buckets 0..N.
type ReportRow struct {
	Letter string
	Counts []int
}

// ReportConfig defines where the report reads from and writes to.
type ReportConfig struct {
	Input          string
	Column         string
	Delimiter      rune
	Output         string
	Format         string
	MaxOccurrences int
	Record         bool
}

// RunSummary describes a recorded report run.
type RunSummary struct {
	RunID     int64
	CreatedAt time.Time
	Input     string
	Column    string
	Words     int
	Output    string
	Format    string
	Outcome   string
}

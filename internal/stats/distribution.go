// Package stats contains letter distribution calculations and reporting.
package stats

import (
	"sort"
	"strings"

	"github.com/verte-zerg/letterdist/internal/model"
)

// Alphabet is the fixed set of letters, in report row order.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// Occurrences counts how many times letter appears in word. Matching is exact and case sensitive.
func Occurrences(letter rune, word string) int {
	return strings.Count(word, string(letter))
}

// LetterHistogram tallies how many words contain letter 0, 1, 2, ... times.
// An empty word list yields an empty histogram.
func LetterHistogram(letter rune, words []string) model.Histogram {
	if len(words) == 0 {
		return model.Histogram{}
	}
	tally := map[int]int{}
	for _, word := range words {
		tally[Occurrences(letter, word)]++
	}
	hist := make(model.Histogram, 0, len(tally))
	for occ, n := range tally {
		hist = append(hist, model.Bucket{Occurrences: occ, Words: n})
	}
	sort.Slice(hist, func(i, j int) bool {
		return hist[i].Occurrences < hist[j].Occurrences
	})
	return hist
}

// BuildDistributions builds a histogram for every letter of Alphabet.
// No letters are processed for an empty word list.
func BuildDistributions(words []string) model.Distributions {
	if len(words) == 0 {
		return model.Distributions{}
	}
	dists := make(model.Distributions, 0, len(Alphabet))
	for _, letter := range Alphabet {
		dists = append(dists, model.LetterDistribution{
			Letter:    string(letter),
			Histogram: LetterHistogram(letter, words),
		})
	}
	return dists
}

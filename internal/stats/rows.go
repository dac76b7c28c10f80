package stats

import (
	"strconv"

	"github.com/verte-zerg/letterdist/internal/model"
)

// Header returns the report header: character, count0 .. countN.
func Header(maxOccurrences int) []string {
	header := make([]string, 0, maxOccurrences+2)
	header = append(header, "character")
	for n := 0; n <= maxOccurrences; n++ {
		header = append(header, "count"+strconv.Itoa(n))
	}
	return header
}

// ReportRows converts distributions into dense rows with buckets 0..maxOccurrences.
// Occurrence counts above maxOccurrences are dropped.
func ReportRows(dists model.Distributions, maxOccurrences int) []model.ReportRow {
	if maxOccurrences < 0 {
		maxOccurrences = 0
	}
	rows := make([]model.ReportRow, 0, len(dists))
	for _, ld := range dists {
		counts := make([]int, maxOccurrences+1)
		for _, b := range ld.Histogram {
			if b.Occurrences < 0 || b.Occurrences > maxOccurrences {
				continue
			}
			counts[b.Occurrences] = b.Words
		}
		rows = append(rows, model.ReportRow{Letter: ld.Letter, Counts: counts})
	}
	return rows
}

// Records renders rows as string cells, header first.
func Records(rows []model.ReportRow, maxOccurrences int) [][]string {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, Header(maxOccurrences))
	for _, row := range rows {
		record := make([]string, 0, len(row.Counts)+1)
		record = append(record, row.Letter)
		for _, c := range row.Counts {
			record = append(record, strconv.Itoa(c))
		}
		records = append(records, record)
	}
	return records
}

package stats

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/letterdist/internal/model"
)

const sparkChars = " .:-=+*#%@"

var headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// Dropped returns the number of words whose occurrence count exceeds maxOccurrences.
func Dropped(h model.Histogram, maxOccurrences int) int {
	dropped := 0
	for _, b := range h {
		if b.Occurrences > maxOccurrences {
			dropped += b.Words
		}
	}
	return dropped
}

// RenderSummary prints word and letter totals for the distributions.
func RenderSummary(w io.Writer, dists model.Distributions, words, maxOccurrences int) error {
	if dists.Empty() {
		_, err := fmt.Fprintln(w, "No words found.")
		return err
	}
	present := 0
	dropped := 0
	for _, ld := range dists {
		if ld.Histogram.Lookup(0) < ld.Histogram.Total() {
			present++
		}
		dropped += Dropped(ld.Histogram, maxOccurrences)
	}
	if _, err := fmt.Fprintf(w, "Words: %d\n", words); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Letters used: %d/%d\n", present, len(dists)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Dropped above count%d: %d\n", maxOccurrences, dropped); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderLetterTable prints the report rows with a sparkline of each full histogram.
func RenderLetterTable(w io.Writer, dists model.Distributions, maxOccurrences int, useColor bool) error {
	if dists.Empty() {
		_, err := fmt.Fprintln(w, "No letter stats found.")
		return err
	}
	rows := ReportRows(dists, maxOccurrences)
	headers := append(Header(maxOccurrences), "dropped", "shape")
	tableRows := make([][]string, 0, len(rows))
	rightAlign := map[int]bool{}
	for i := 1; i <= maxOccurrences+2; i++ {
		rightAlign[i] = true
	}
	for i, row := range rows {
		cells := make([]string, 0, len(headers))
		cells = append(cells, row.Letter)
		for _, c := range row.Counts {
			cells = append(cells, strconv.Itoa(c))
		}
		hist := dists[i].Histogram
		cells = append(cells, strconv.Itoa(Dropped(hist, maxOccurrences)), Sparkline(denseValues(hist)))
		tableRows = append(tableRows, cells)
	}

	lines := formatTable(headers, tableRows, rightAlign)
	for i, line := range lines {
		if i == 0 && useColor {
			line = headerStyle.Render(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func denseValues(h model.Histogram) []float64 {
	maxOcc := h.MaxOccurrences()
	if maxOcc < 0 {
		return nil
	}
	values := make([]float64, maxOcc+1)
	for _, b := range h {
		values[b.Occurrences] = float64(b.Words)
	}
	return values
}

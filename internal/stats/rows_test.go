package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/letterdist/internal/model"
)

func TestHeader(t *testing.T) {
	got := strings.Join(Header(model.DefaultMaxOccurrences), ",")
	if got != "character,count0,count1,count2,count3,count4,count5,count6" {
		t.Fatalf("unexpected header: %s", got)
	}
}

func TestReportRowsExample(t *testing.T) {
	dists := BuildDistributions([]string{"hello", "bye", "healthy", "hope"})
	rows := ReportRows(dists, model.DefaultMaxOccurrences)
	if len(rows) != 26 {
		t.Fatalf("expected 26 rows, got %d", len(rows))
	}
	records := Records(rows, model.DefaultMaxOccurrences)
	h := strings.Join(records[1+int('h'-'a')], ",")
	if h != "h,1,2,1,0,0,0,0" {
		t.Fatalf("unexpected h row: %s", h)
	}
	q := strings.Join(records[1+int('q'-'a')], ",")
	if q != "q,4,0,0,0,0,0,0" {
		t.Fatalf("unexpected q row: %s", q)
	}
}

func TestReportRowsDropsAboveCeiling(t *testing.T) {
	dists := BuildDistributions([]string{"aaaaaaa"})
	rows := ReportRows(dists, model.DefaultMaxOccurrences)
	for _, c := range rows[0].Counts {
		if c != 0 {
			t.Fatalf("expected all-zero row for a, got %v", rows[0].Counts)
		}
	}
	if got := Dropped(dists[0].Histogram, model.DefaultMaxOccurrences); got != 1 {
		t.Fatalf("expected 1 dropped word, got %d", got)
	}
}

func TestReportRowsCustomCeiling(t *testing.T) {
	dists := BuildDistributions([]string{"aaaaaaa"})
	rows := ReportRows(dists, 7)
	if len(rows[0].Counts) != 8 || rows[0].Counts[7] != 1 {
		t.Fatalf("expected bucket 7 to hold 1 word, got %v", rows[0].Counts)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
	if got := Sparkline([]float64{2, 2, 2}); got != "+++" {
		t.Fatalf("expected flat sparkline, got %q", got)
	}
	if got := Sparkline([]float64{0, 9}); got != " @" {
		t.Fatalf("expected min/max sparkline, got %q", got)
	}
}

func TestRenderLetterTable(t *testing.T) {
	var buf bytes.Buffer
	dists := BuildDistributions([]string{"hello", "bye", "healthy", "hope"})
	if err := RenderLetterTable(&buf, dists, model.DefaultMaxOccurrences, false); err != nil {
		t.Fatalf("RenderLetterTable failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 27 {
		t.Fatalf("expected 27 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "character") || !strings.Contains(lines[0], "dropped") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "a ") {
		t.Fatalf("expected first row for a, got %q", lines[1])
	}
}

func TestRenderLetterTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderLetterTable(&buf, nil, model.DefaultMaxOccurrences, false); err != nil {
		t.Fatalf("RenderLetterTable failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No letter stats found.") {
		t.Fatalf("expected empty notice, got %q", buf.String())
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	words := []string{"aaaaaaa", "bee"}
	if err := RenderSummary(&buf, BuildDistributions(words), len(words), model.DefaultMaxOccurrences); err != nil {
		t.Fatalf("RenderSummary failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Words: 2", "Letters used: 3/26", "Dropped above count6: 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q: %s", want, out)
		}
	}
}

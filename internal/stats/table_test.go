package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"character", "count0", "count1"}
	rows := [][]string{
		{"h", "1", "2"},
		{"e", "120", "3"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "character count0 count1" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "h              1      2" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "e            120      3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestDisplayWidthWideRunes(t *testing.T) {
	if got := displayWidth("日本"); got != 4 {
		t.Fatalf("expected width 4 for wide runes, got %d", got)
	}
	if got := displayWidth("abc"); got != 3 {
		t.Fatalf("expected width 3, got %d", got)
	}
}

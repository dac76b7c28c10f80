package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/letterdist/internal/wordlist"
)

func writeTestInput(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "english_words.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootWritesReport(t *testing.T) {
	dir := t.TempDir()
	input := writeTestInput(t, dir, "english_words\nhello\nbye\nhealthy\nhope\n")
	output := filepath.Join(dir, "results.csv")

	if _, err := executeRoot(t,
		"--config", filepath.Join(dir, "none.toml"),
		"--input", input,
		"--output", output,
		"--log-level", "error",
	); err != nil {
		t.Fatalf("execute: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "\nh,1,2,1,0,0,0,0\n") {
		t.Fatalf("unexpected report:\n%s", data)
	}
}

func TestRootConfigFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "words.tsv")
	if err := os.WriteFile(input, []byte("id\tword\n1\taaaaaaa\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	output := filepath.Join(dir, "out.csv")
	cfgPath := filepath.Join(dir, "config.toml")
	cfg := "[report]\ninput = " + quote(input) + "\ncolumn = \"word\"\ndelimiter = \"\\\\t\"\noutput = " + quote(output) + "\nmax-count = 7\n\n[log]\nlevel = \"error\"\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := executeRoot(t, "--config", cfgPath); err != nil {
		t.Fatalf("execute: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	lines := strings.Split(string(data), "\n")
	if !strings.HasSuffix(lines[0], ",count7") {
		t.Fatalf("expected header up to count7, got %q", lines[0])
	}
	if lines[1] != "a,0,0,0,0,0,0,0,1" {
		t.Fatalf("unexpected a row: %q", lines[1])
	}
}

func TestRootMissingColumn(t *testing.T) {
	dir := t.TempDir()
	input := writeTestInput(t, dir, "words\nhello\n")
	output := filepath.Join(dir, "results.csv")

	_, err := executeRoot(t,
		"--config", filepath.Join(dir, "none.toml"),
		"--input", input,
		"--output", output,
	)
	if !errors.Is(err, wordlist.ErrSchema) {
		t.Fatalf("expected schema error, got %v", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Fatalf("expected no report file, stat err: %v", statErr)
	}
}

func TestShowPrintsTable(t *testing.T) {
	dir := t.TempDir()
	input := writeTestInput(t, dir, "english_words\nhello\nbye\n")

	out, err := executeRoot(t, "show", "--config", filepath.Join(dir, "none.toml"), "--input", input)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"Words: 2", "character", "count6", "dropped"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestHistoryRecordsRuns(t *testing.T) {
	dir := t.TempDir()
	input := writeTestInput(t, dir, "english_words\nhello\n")
	cfgPath := filepath.Join(dir, "config.toml")
	cfg := "[history]\ndb = " + quote(filepath.Join(dir, "history.db")) + "\n[log]\nlevel = \"error\"\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := executeRoot(t, "--config", cfgPath, "--input", input, "--output", filepath.Join(dir, "results.csv"), "--record"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	out, err := executeRoot(t, "history", "--config", cfgPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, input) || !strings.Contains(out, "written") {
		t.Fatalf("unexpected history output:\n%s", out)
	}
	out, err = executeRoot(t, "history", "--config", cfgPath, "--id", "1")
	if err != nil {
		t.Fatalf("history --id: %v", err)
	}
	if !strings.Contains(out, "Run 1:") || !strings.Contains(out, "Words: 1") {
		t.Fatalf("unexpected run output:\n%s", out)
	}
}

func TestParseDelimiter(t *testing.T) {
	cases := map[string]rune{",": ',', ";": ';', `\t`: '\t', "tab": '\t', "|": '|'}
	for in, want := range cases {
		got, err := parseDelimiter(in)
		if err != nil {
			t.Fatalf("parseDelimiter(%q) failed: %v", in, err)
		}
		if got != want {
			t.Fatalf("parseDelimiter(%q) = %q, expected %q", in, got, want)
		}
	}
	for _, bad := range []string{"", ",,", `"`, "\n"} {
		if _, err := parseDelimiter(bad); err == nil {
			t.Fatalf("expected error for delimiter %q", bad)
		}
	}
}

func TestSetupLogger(t *testing.T) {
	if _, err := setupLogger("warn"); err != nil {
		t.Fatalf("setupLogger failed: %v", err)
	}
	if _, err := setupLogger("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func quote(s string) string {
	return "'" + s + "'"
}

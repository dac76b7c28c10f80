// Package export writes letter distribution reports to disk.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/verte-zerg/letterdist/internal/model"
	"github.com/verte-zerg/letterdist/internal/stats"
)

// DefaultPath is the report file written to the working directory.
const DefaultPath = "results.csv"

// Outcome describes what an export did.
type Outcome int

const (
	// Written means the report file was created or replaced.
	Written Outcome = iota
	// Skipped means there was no data and nothing was written.
	Skipped
	// Failed means the destination could not be written.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Written:
		return "written"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Format selects the report encoding.
type Format string

// Supported report formats.
const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatYAML     Format = "yaml"
)

// ParseFormat validates a format name. Empty selects CSV.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (available: csv, markdown, yaml)", name)
	}
}

// Exporter writes distributions as a fixed-column report.
type Exporter struct {
	Path           string
	Format         Format
	MaxOccurrences int
	Logger         *slog.Logger
}

// Export writes the report and logs the result. Failures are logged and reported
// through the returned Outcome rather than as errors.
func (e *Exporter) Export(dists model.Distributions) Outcome {
	logger := e.logger()
	if dists.Empty() {
		logger.Warn("data missing or incomplete - nothing exported")
		return Skipped
	}

	path := e.Path
	if path == "" {
		path = DefaultPath
	}
	rows := stats.ReportRows(dists, e.MaxOccurrences)
	if err := writeAtomic(path, func(w io.Writer) error {
		return Encode(w, e.Format, rows, e.MaxOccurrences)
	}); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			logger.Error("unable to create export file", "path", path, "err", err)
		} else {
			logger.Error("export failed", "path", path, "err", err)
		}
		return Failed
	}
	logger.Info("export complete", "path", path, "rows", len(rows), "format", string(e.formatOrDefault()))
	return Written
}

func (e *Exporter) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

func (e *Exporter) formatOrDefault() Format {
	if e.Format == "" {
		return FormatCSV
	}
	return e.Format
}

// Encode writes rows in the given format.
func Encode(w io.Writer, format Format, rows []model.ReportRow, maxOccurrences int) error {
	switch format {
	case "", FormatCSV:
		return encodeCSV(w, rows, maxOccurrences)
	case FormatMarkdown:
		return encodeMarkdown(w, rows, maxOccurrences)
	case FormatYAML:
		return encodeYAML(w, rows, maxOccurrences)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// writeAtomic writes to a temp file next to path and renames it into place,
// so a failed export never leaves a partial report at path.
func writeAtomic(path string, encode func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".letterdist-*.tmp")
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			// Directory is not writable; an existing report may still be.
			return writeInPlace(path, encode)
		}
		return fmt.Errorf("failed to create temp report: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	if err := encode(writer); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	if err := tmpFile.Chmod(0o644); err != nil {
		return fmt.Errorf("failed to set report permissions: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close report: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func writeInPlace(path string, encode func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	writer := bufio.NewWriter(file)
	if err := encode(writer); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := writer.Flush(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to flush report: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close report: %w", err)
	}
	return nil
}

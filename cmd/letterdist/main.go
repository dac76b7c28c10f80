// Package main provides the CLI entrypoint for letterdist.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/letterdist/internal/browse"
	"github.com/verte-zerg/letterdist/internal/config"
	"github.com/verte-zerg/letterdist/internal/model"
	"github.com/verte-zerg/letterdist/internal/report"
	"github.com/verte-zerg/letterdist/internal/stats"
	"github.com/verte-zerg/letterdist/internal/store"
)

const (
	defaultLogLevel     = "info"
	defaultHistoryLimit = 20
)

var (
	reportInput     string
	reportColumn    string
	reportDelimiter string
	reportMaxCount  int
	reportOutput    string
	reportFormat    string
	reportRecord    bool
	logLevel        string
	configPath      string

	historyLimit int
	historyID    int64
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "letterdist",
		Short:         "Per-letter occurrence histograms for a word list",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runReportCmd,
	}

	defaults := report.DefaultConfig()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&reportInput, "input", defaults.Input, "delimited word list file")
	pf.StringVar(&reportColumn, "column", defaults.Column, "column holding the words")
	pf.StringVar(&reportDelimiter, "delimiter", string(defaults.Delimiter), "field delimiter of the input file")
	pf.IntVar(&reportMaxCount, "max-count", defaults.MaxOccurrences, "highest occurrence count exported as a column")
	pf.StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&configPath, "config", "", "config file (default: "+config.DefaultConfigPath()+")")

	rootCmd.Flags().StringVar(&reportOutput, "output", defaults.Output, "report file")
	rootCmd.Flags().StringVar(&reportFormat, "format", defaults.Format, "report format (csv, markdown, yaml)")
	rootCmd.Flags().BoolVar(&reportRecord, "record", false, "record the run in the history database")

	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// settings is the resolved configuration shared by all commands.
type settings struct {
	report   model.ReportConfig
	dbPath   string
	logLevel string
}

func resolveSettings(cmd *cobra.Command) (settings, error) {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "input", &reportInput, fileCfg.Report.Input)
	applyStringConfig(cmd, "column", &reportColumn, fileCfg.Report.Column)
	applyStringConfig(cmd, "delimiter", &reportDelimiter, fileCfg.Report.Delimiter)
	applyIntConfig(cmd, "max-count", &reportMaxCount, fileCfg.Report.MaxCount)
	applyStringConfig(cmd, "output", &reportOutput, fileCfg.Report.Output)
	applyStringConfig(cmd, "format", &reportFormat, fileCfg.Report.Format)
	applyBoolConfig(cmd, "record", &reportRecord, fileCfg.History.Record)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)

	delim, err := parseDelimiter(reportDelimiter)
	if err != nil {
		return settings{}, err
	}
	cfg := model.ReportConfig{
		Input:          reportInput,
		Column:         reportColumn,
		Delimiter:      delim,
		Output:         reportOutput,
		Format:         reportFormat,
		MaxOccurrences: reportMaxCount,
		Record:         reportRecord,
	}
	if err := report.Validate(cfg); err != nil {
		return settings{}, err
	}

	dbPath := config.DefaultDBPath()
	if fileCfg.History.DB != nil && *fileCfg.History.DB != "" {
		dbPath = *fileCfg.History.DB
	}
	return settings{report: cfg, dbPath: dbPath, logLevel: logLevel}, nil
}

func runReportCmd(cmd *cobra.Command, _ []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	logger, err := setupLogger(s.logLevel)
	if err != nil {
		return err
	}

	opts := report.Options{Config: s.report}
	if s.report.Record {
		st, err := store.Open(s.dbPath)
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
		opts.Recorder = st
	}

	if _, err := report.Generate(context.Background(), opts, logger); err != nil {
		return err
	}
	return nil
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the letter distribution table",
		Args:  cobra.NoArgs,
		RunE:  runShowCmd,
	}
}

func runShowCmd(cmd *cobra.Command, _ []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	words, dists, err := report.Load(s.report)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err := stats.RenderSummary(out, dists, len(words), s.report.MaxOccurrences); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderLetterTable(out, dists, s.report.MaxOccurrences, isTerminal(out)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse letter distributions interactively",
		Args:  cobra.NoArgs,
		RunE:  runBrowseCmd,
	}
}

func runBrowseCmd(cmd *cobra.Command, _ []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	words, dists, err := report.Load(s.report)
	if err != nil {
		return err
	}
	m := browse.NewModel(s.report.Input, len(words), dists, s.report.MaxOccurrences)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLimit, "limit", defaultHistoryLimit, "number of runs to list (0 for all)")
	cmd.Flags().Int64Var(&historyID, "id", 0, "show the table of a recorded run")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	st, err := store.Open(s.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := context.Background()
	out := cmd.OutOrStdout()
	if historyID > 0 {
		run, err := st.GetRun(ctx, historyID)
		if err != nil {
			return err
		}
		dists, err := st.GetRunDistributions(ctx, historyID)
		if err != nil {
			return fmt.Errorf("failed to load run %d: %w", historyID, err)
		}
		if _, err := fmt.Fprintf(out, "Run %d: %s [%s] at %s\n", run.RunID, run.Input, run.Column, run.CreatedAt.Local().Format("2006-01-02 15:04:05")); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := stats.RenderSummary(out, dists, run.Words, s.report.MaxOccurrences); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return stats.RenderLetterTable(out, dists, s.report.MaxOccurrences, isTerminal(out))
	}

	runs, err := st.ListRuns(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		logErrln("No runs recorded. Record one with: letterdist --record")
		return nil
	}
	for _, run := range runs {
		if _, err := fmt.Fprintf(out, "%d\t%s\t%s\t%s\t%d words\t%s -> %s\n",
			run.RunID,
			run.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			run.Input,
			run.Column,
			run.Words,
			run.Outcome,
			run.Output,
		); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	defaults := report.DefaultConfig()
	return fmt.Sprintf(`# letterdist configuration
# Uncomment a value to enable it. CLI flags override config values.

[report]
# input = %q       # Delimited word list file
# column = %q           # Column holding the words
# output = %q             # Report file
# format = %q                     # csv, markdown or yaml
# delimiter = %q                  # Input field delimiter
# max-count = %d                     # Highest occurrence count exported as a column

[history]
# record = false                    # Record every run in the history database
# db = %q

[log]
# level = %q                     # debug, info, warn or error
`,
		defaults.Input,
		defaults.Column,
		defaults.Output,
		defaults.Format,
		string(defaults.Delimiter),
		defaults.MaxOccurrences,
		config.DefaultDBPath(),
		defaultLogLevel,
	)
}

func setupLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler), nil
}

func parseDelimiter(value string) (rune, error) {
	if value == `\t` || value == "tab" {
		return '\t', nil
	}
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("--delimiter must be a single character")
	}
	r, _ := utf8.DecodeRuneInString(value)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("--delimiter %q is not allowed", value)
	}
	return r, nil
}

func isTerminal(w any) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag == nil || flag.Changed {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag == nil || flag.Changed {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag == nil || flag.Changed {
		return
	}
	*target = *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

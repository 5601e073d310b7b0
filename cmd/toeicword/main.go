// Package main provides the CLI entrypoint for toeicword.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/notedthegoat/toeicword-practice-app/internal/config"
	"github.com/notedthegoat/toeicword-practice-app/internal/generator"
	"github.com/notedthegoat/toeicword-practice-app/internal/model"
	"github.com/notedthegoat/toeicword-practice-app/internal/quiz"
	"github.com/notedthegoat/toeicword-practice-app/internal/stats"
	"github.com/notedthegoat/toeicword-practice-app/internal/store"
	"github.com/notedthegoat/toeicword-practice-app/internal/tui"
	"github.com/notedthegoat/toeicword-practice-app/internal/wordlist"
)

const (
	defaultDays = 30
	maxDays     = 365
)

var (
	practiceWordsFile string
	practiceDays      int
	practiceSeed      int64
	practiceLogFile   string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "toeicword",
		Short:         "TOEIC vocabulary drill",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.PersistentFlags().StringVar(&practiceWordsFile, "words-file", "", "word list file (.json, .toml or tab-separated); bundled list when empty")
	rootCmd.Flags().IntVar(&practiceDays, "days", defaultDays, "number of days offered in the day list")
	rootCmd.Flags().Int64Var(&practiceSeed, "seed", 0, "random seed (0 uses the current time)")
	rootCmd.Flags().StringVar(&practiceLogFile, "log-file", "", "write debug logs to this file while the TUI runs")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDaysCmd())
	rootCmd.AddCommand(newWordlistCmd())

	return rootCmd
}

func loadPracticeConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "words-file", &practiceWordsFile, fileCfg.Practice.WordsFile)
	applyIntConfig(cmd, "days", &practiceDays, fileCfg.Practice.Days)
	applyInt64Config(cmd, "seed", &practiceSeed, fileCfg.Practice.Seed)
	applyStringConfig(cmd, "log-file", &practiceLogFile, fileCfg.Practice.LogFile)

	cfg := model.Config{
		WordsFile: practiceWordsFile,
		Days:      practiceDays,
		Seed:      practiceSeed,
		LogFile:   practiceLogFile,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPracticeConfig(cmd)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("toeicword needs an interactive terminal")
	}

	pool, loadErr := wordlist.LoadPool(cfg.WordsFile)
	if loadErr != nil {
		logErrf("failed to load word list: %v\n", loadErr)
	}

	gen := generator.New()
	if cfg.Seed != 0 {
		gen = generator.NewSeeded(cfg.Seed)
	}

	var history tui.History
	st, err := store.Open(config.HistoryDSN())
	if err != nil {
		logErrf("failed to open history db: %v\n", err)
	} else {
		history = st
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close history db: %v\n", cerr)
			}
		}()
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctrl := quiz.New(pool, gen)
	app := tui.NewModel(ctrl, history, cfg.Days, loadErr)
	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// setupLogging routes the standard logger to path, or discards it so nothing
// is written over the alternate screen.
func setupLogging(path string) (func(), error) {
	prev := log.Writer()
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(prev) }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "toeicword")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return func() {
		log.SetOutput(prev)
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}, nil
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
	path := config.DefaultConfigPath()
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
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newDaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List days in the word list",
		Args:  cobra.NoArgs,
		RunE:  runDaysCmd,
	}
}

func runDaysCmd(cmd *cobra.Command, _ []string) error {
	pool, err := loadWordList(cmd)
	if err != nil {
		return err
	}
	width := 0
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}
	for _, line := range daysTable(pool, width) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// daysTable lists every day with its entry count and sample words. width > 0
// truncates the sample column to fit the terminal.
func daysTable(pool []model.WordEntry, width int) []string {
	days := wordlist.Days(pool)
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		var words []string
		for _, e := range wordlist.FilterByDay(pool, d.Day) {
			words = append(words, e.Word)
		}
		rows = append(rows, []string{d.Day, strconv.Itoa(d.Count), strings.Join(words, ", ")})
	}
	lines := stats.FormatTable([]string{"Day", "Words", "Sample"}, rows, map[int]bool{1: true})
	if width > 0 {
		for i, line := range lines {
			lines[i] = truncateLine(line, width)
		}
	}
	return lines
}

func truncateLine(line string, width int) string {
	return runewidth.Truncate(line, width, "…")
}

func newWordlistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wordlist <path>",
		Short: "Export the active word list (.json, .toml or tab-separated)",
		Args:  cobra.ExactArgs(1),
		RunE:  runWordlistCmd,
	}
}

func runWordlistCmd(cmd *cobra.Command, args []string) error {
	pool, err := loadWordList(cmd)
	if err != nil {
		return err
	}
	outPath := args[0]
	if err := wordlist.Write(outPath, pool); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	logErrf("Wrote %d entries to %s\n", len(pool), outPath)
	return nil
}

func loadWordList(cmd *cobra.Command) ([]model.WordEntry, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "words-file", &practiceWordsFile, fileCfg.Practice.WordsFile)
	pool, err := wordlist.LoadPool(practiceWordsFile)
	if err != nil {
		return nil, wordListLoadError(practiceWordsFile, err)
	}
	return pool, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# toeicword configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# words-file = ""         # Word list (.json, .toml or tab-separated); bundled list when empty
# days = %d               # Number of days offered in the day list
# seed = 0                # Random seed (0 uses the current time)
# log-file = %q
`,
		defaultDays,
		config.DefaultLogPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Days <= 0 || cfg.Days > maxDays {
		return fmt.Errorf("--days must be between 1 and %d", maxDays)
	}
	return nil
}

func wordListLoadError(path string, err error) error {
	if path == "" {
		path = "(bundled)"
	}
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("word list: %s", path),
		"Expected a JSON array of {day, word, meaning}, a TOML file with [[words]] tables,",
		"or tab-separated day/word/meaning lines.",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

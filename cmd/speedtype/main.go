// Package main provides the CLI entrypoint for speedtype.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/speedtype/internal/config"
	"github.com/verte-zerg/speedtype/internal/engine"
	"github.com/verte-zerg/speedtype/internal/model"
	"github.com/verte-zerg/speedtype/internal/stats"
	"github.com/verte-zerg/speedtype/internal/textsource"
	"github.com/verte-zerg/speedtype/internal/tui"
)

const (
	defaultStrict   = true
	defaultSource   = model.SourceParagraphs
	defaultWords    = 25
	defaultCaps     = 0.0
	defaultPunct    = 0.0
	defaultPunctSet = ".,!?;:"
)

var (
	practiceStrict   bool
	practiceSource   string
	practicePassages string
	practiceWords    int
	practiceCaps     float64
	practicePunct    float64
	practicePunctSet string
	practiceSeed     int64
	practiceLogFile  string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "speedtype",
		Short:         "Terminal typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	addSourceFlags(rootCmd)
	rootCmd.Flags().BoolVar(&practiceStrict, "strict", defaultStrict, "block deleting an incorrectly typed character")
	rootCmd.Flags().StringVar(&practiceLogFile, "log-file", "", "write debug logs to this file")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newPassagesCmd())

	return rootCmd
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&practiceSource, "source", defaultSource, "text source: paragraphs or words")
	cmd.Flags().StringVar(&practicePassages, "passages", "", "file with one passage per line")
	cmd.Flags().IntVar(&practiceWords, "words", defaultWords, "words per text (words source)")
	cmd.Flags().Float64Var(&practiceCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	cmd.Flags().Float64Var(&practicePunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	cmd.Flags().StringVar(&practicePunctSet, "punct-set", defaultPunctSet, "punctuation set")
	cmd.Flags().Int64Var(&practiceSeed, "seed", 0, "random seed (0 uses the current time)")
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPracticeConfig(cmd)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("speedtype needs an interactive terminal")
	}

	source, err := buildSource(cfg)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(practiceLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	eng, err := engine.New(source, cfg.Strict, engine.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	m := tui.NewModel(eng)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if results := m.Results(); len(results) > 0 {
		if err := stats.RenderRunSummary(cmd.OutOrStdout(), results); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return nil
}

func loadPracticeConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "strict", &practiceStrict, fileCfg.Practice.Strict)
	applyConfig(cmd, "source", &practiceSource, fileCfg.Practice.Source)
	applyConfig(cmd, "passages", &practicePassages, fileCfg.Practice.Passages)
	applyConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyConfig(cmd, "caps", &practiceCaps, fileCfg.Practice.CapsPct)
	applyConfig(cmd, "punct", &practicePunct, fileCfg.Practice.PunctPct)
	applyConfig(cmd, "punct-set", &practicePunctSet, fileCfg.Practice.PunctSet)

	cfg := model.Config{
		Strict:       practiceStrict,
		Source:       strings.ToLower(strings.TrimSpace(practiceSource)),
		PassagesPath: practicePassages,
		Words:        practiceWords,
		CapsPct:      practiceCaps,
		PunctPct:     practicePunct,
		PunctSet:     practicePunctSet,
		Seed:         practiceSeed,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func buildSource(cfg model.Config) (engine.Source, error) {
	passages, err := resolvePassages(cfg)
	if err != nil {
		return nil, err
	}
	switch cfg.Source {
	case model.SourceWords:
		vocabulary := textsource.Vocabulary(passages)
		return textsource.NewWords(vocabulary, textsource.WordsConfig{
			Count:    cfg.Words,
			CapsPct:  cfg.CapsPct,
			PunctPct: cfg.PunctPct,
			PunctSet: []rune(cfg.PunctSet),
		}, cfg.Seed), nil
	default:
		return textsource.NewPool(passages, cfg.Seed), nil
	}
}

func resolvePassages(cfg model.Config) ([]string, error) {
	if cfg.PassagesPath == "" {
		return textsource.DefaultPassages, nil
	}
	passages, err := textsource.LoadPassages(cfg.PassagesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load passages: %w", err)
	}
	return passages, nil
}

func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "speedtype")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() {
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
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newPassagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passages",
		Short: "Print the passage pool",
		Args:  cobra.NoArgs,
		RunE:  runPassagesCmd,
	}
	cmd.Flags().StringVar(&practicePassages, "passages", "", "file with one passage per line")
	return cmd
}

func runPassagesCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "passages", &practicePassages, fileCfg.Practice.Passages)
	passages, err := resolvePassages(model.Config{PassagesPath: practicePassages})
	if err != nil {
		return err
	}
	return writePassages(cmd.OutOrStdout(), passages)
}

func writePassages(w io.Writer, passages []string) error {
	for i, p := range passages {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", i+1, p); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// applyConfig copies a config file value into target unless the flag was
// set explicitly.
func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# speedtype configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# strict = %t             # Block deleting an incorrectly typed character
# source = %q      # Text source: "paragraphs" or "words"
# passages = "/path/to/passages.txt"  # One passage per line
# words = %d              # Words per text (words source)
# caps = %.2f             # Probability of capitalized first letter (0-1)
# punct = %.2f            # Punctuation probability per word (0-1)
# punct-set = %q      # Punctuation set
`,
		defaultStrict,
		defaultSource,
		defaultWords,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
	)
}

func validateConfig(cfg model.Config) error {
	switch cfg.Source {
	case model.SourceParagraphs, model.SourceWords:
	default:
		return fmt.Errorf("--source must be %q or %q", model.SourceParagraphs, model.SourceWords)
	}
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.PunctPct > 0 && cfg.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ruminaider/coinpicker/internal/config"
	"github.com/ruminaider/coinpicker/internal/paths"
	"github.com/spf13/cobra"
)

var (
	flagConfig     string
	flagEndpoint   string
	flagLabel      string
	flagItemHeight int
	flagRows       int
	flagTimeout    time.Duration
	flagLogFile    string
	flagDebug      bool
)

func addSettingsFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file (default ~/.coinpicker/config.yaml)")
	pf.StringVar(&flagEndpoint, "endpoint", "", "URL of the JSON coin list")
	pf.StringVar(&flagLabel, "label", "", "Trigger button label")
	pf.IntVar(&flagItemHeight, "item-height", 0, "Rows per list item")
	pf.IntVar(&flagRows, "rows", 0, "Number of visible list items")
	pf.DurationVar(&flagTimeout, "timeout", 0, "HTTP timeout for loading coins")
	pf.StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
	pf.BoolVar(&flagDebug, "debug", false, "Write debug logs to ~/.coinpicker/coinpicker.log")
}

// logPath returns the log file selected by --log-file or --debug, or "" when
// logging is off.
func logPath() string {
	if flagLogFile != "" {
		return flagLogFile
	}
	if flagDebug {
		return paths.LogFile()
	}
	return ""
}

// configPath returns the config file selected by --config.
func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return paths.ConfigFile()
}

// loadSettings reads the config file and applies flag overrides. Only flags
// set on the command line override file values.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Endpoint = flagEndpoint
	}
	if flags.Changed("label") {
		cfg.Label = flagLabel
	}
	if flags.Changed("item-height") {
		cfg.ItemHeight = flagItemHeight
	}
	if flags.Changed("rows") {
		cfg.VisibleCount = flagRows
	}
	if flags.Changed("timeout") {
		cfg.Timeout = flagTimeout
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newFileLogger returns a debug-level logger writing to path, or a logger
// that discards everything when path is empty. The TUI owns the terminal,
// so it never logs to stderr.
func newFileLogger(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, f.Close, nil
}

// newStderrLogger returns a warn-level logger for non-interactive commands.
func newStderrLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

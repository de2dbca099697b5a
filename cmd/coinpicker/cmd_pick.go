package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/coinpicker/cmd/coinpicker/tui"
	"github.com/ruminaider/coinpicker/internal/coins"
	"github.com/ruminaider/coinpicker/internal/window"
	"github.com/spf13/cobra"
)

func runPicker(cmd *cobra.Command, args []string) error {
	// TTY guard: fall back to the plain list when there is no terminal to
	// read keys from or draw on (piping, CI, scripts, etc.)
	if !term.IsTerminal(os.Stdin.Fd()) || !term.IsTerminal(os.Stderr.Fd()) {
		return listCmd.RunE(cmd, args)
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newFileLogger(logPath())
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closeLog()

	// Cancelling ctx aborts a fetch still in flight when the program exits.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	loader := coins.NewLoader(cfg.Endpoint,
		coins.WithTimeout(cfg.Timeout),
		coins.WithLogger(logger),
	)
	model := tui.NewModel(ctx, tui.Options{
		Label:     cfg.Label,
		Window:    window.New(cfg.ItemHeight, cfg.VisibleCount),
		Favorites: cfg.Favorites,
		Loader:    loader,
		Logger:    logger,
	})

	logger.Info("Starting picker", "endpoint", loader.Endpoint(), "rows", cfg.VisibleCount)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(pickerOutput(cmd)),
	)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	picked := finalModel.(tui.Model)
	logger.Info("Picker closed", "chosen", picked.Chosen(), "favorites", picked.Favorites())
	if chosen := picked.Chosen(); chosen != "" {
		fmt.Fprintln(cmd.OutOrStdout(), chosen)
	}
	return nil
}

// pickerOutput is where the picker draws. Only the chosen symbol goes to
// stdout, so `c=$(coinpicker)` captures just the symbol.
func pickerOutput(cmd *cobra.Command) io.Writer {
	return cmd.ErrOrStderr()
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ruminaider/coinpicker/internal/catalog"
	"github.com/ruminaider/coinpicker/internal/coins"
	"github.com/ruminaider/coinpicker/internal/config"
	"github.com/spf13/cobra"
)

var (
	listQuery     string
	listFavorites bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print coin symbols, optionally filtered",
	Long:  "Loads the coin list and prints the symbols that match --query, one per line. With --favorites only favorites from the config file are printed.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		opts := listOptions{Query: listQuery, Favorites: listFavorites}
		return runList(cmd.Context(), cmd.OutOrStdout(), cfg, opts, newStderrLogger(cmd.ErrOrStderr()))
	},
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Fuzzy search query")
	listCmd.Flags().BoolVar(&listFavorites, "favorites", false, "Only print favorites")
}

type listOptions struct {
	Query     string
	Favorites bool
}

// runList loads the coin list and writes the displayed items to out. An
// unreachable endpoint prints nothing and is logged, not returned.
func runList(ctx context.Context, out io.Writer, cfg config.Config, opts listOptions, logger *slog.Logger) error {
	loader := coins.NewLoader(cfg.Endpoint,
		coins.WithTimeout(cfg.Timeout),
		coins.WithLogger(logger),
	)

	p := catalog.NewPipeline(cfg.Favorites...)
	p.SetItems(loader.Load(ctx))
	p.SetQuery(opts.Query)
	if opts.Favorites {
		p.SetView(catalog.ViewFavorites)
	}

	for _, item := range p.Displayed() {
		if _, err := fmt.Fprintln(out, item); err != nil {
			return err
		}
	}
	return nil
}

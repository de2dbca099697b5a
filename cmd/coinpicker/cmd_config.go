package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/coinpicker/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the coinpicker configuration",
	Long:  "Commands for inspecting and creating ~/.coinpicker/config.yaml.",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), configPath())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath()
		if _, err := os.Stat(path); err == nil {
			overwrite := false
			err := huh.NewForm(huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("%s exists. Overwrite?", path)).
					Value(&overwrite),
			)).Run()
			if err != nil {
				return fmt.Errorf("prompt cancelled: %w", err)
			}
			if !overwrite {
				return nil
			}
		}

		cfg, err := promptConfig(config.Default())
		if err != nil {
			return err
		}
		if err := config.Save(path, cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

// promptConfig asks for each setting, starting from cfg.
func promptConfig(cfg config.Config) (config.Config, error) {
	rows := strconv.Itoa(cfg.VisibleCount)
	height := strconv.Itoa(cfg.ItemHeight)
	timeout := cfg.Timeout.String()
	favorites := strings.Join(cfg.Favorites, ", ")

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Coin list endpoint").
				Value(&cfg.Endpoint).
				Validate(config.ValidateEndpoint),
			huh.NewInput().
				Title("Trigger label").
				Value(&cfg.Label),
			huh.NewInput().
				Title("Visible rows").
				Value(&rows).
				Validate(positiveInt),
			huh.NewInput().
				Title("Rows per item").
				Value(&height).
				Validate(positiveInt),
			huh.NewInput().
				Title("Request timeout").
				Placeholder("e.g. 10s").
				Value(&timeout).
				Validate(validDuration),
			huh.NewInput().
				Title("Favorites").
				Description("Comma-separated symbols, e.g. btc, eth").
				Value(&favorites),
		),
	).Run()
	if err != nil {
		return config.Config{}, fmt.Errorf("prompt cancelled: %w", err)
	}

	// The validators above guarantee these parse.
	cfg.VisibleCount, _ = strconv.Atoi(strings.TrimSpace(rows))
	cfg.ItemHeight, _ = strconv.Atoi(strings.TrimSpace(height))
	cfg.Timeout, _ = time.ParseDuration(strings.TrimSpace(timeout))
	cfg.Favorites = splitFavorites(favorites)
	return cfg, nil
}

func positiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return errors.New("enter a whole number of at least 1")
	}
	return nil
}

func validDuration(s string) error {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil || d < 0 {
		return errors.New("enter a duration such as 10s")
	}
	return nil
}

// splitFavorites parses a comma-separated symbol list, dropping blanks.
func splitFavorites(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "coinpicker",
	Short: "Search and pick a coin symbol",
	Long:  "coinpicker loads the list of coin symbols from a JSON endpoint and lets you search it, star favorites and copy a symbol to the clipboard.",
	Args:  cobra.NoArgs,
	RunE:  runPicker,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "coinpicker %s\n", version)
	},
}

func init() {
	addSettingsFlags(rootCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

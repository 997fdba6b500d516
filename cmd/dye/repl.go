package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sfm61319/dye/internal/tui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive session",
	Long: `Start an interactive session where colors can be converted,
inspected and saved with a fixed command set. Type 'help' inside the
session for the command list, 'quit' or Esc to leave.

Examples:
  dye repl
  dye repl --db ./palettes.db`,
	Args: cobra.NoArgs,
	Run:  runRepl,
}

func runRepl(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := openStore(cfg)
	if err != nil {
		// Palette commands degrade gracefully without a store.
		fmt.Fprintf(os.Stderr, "Warning: palette database unavailable: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunRepl(store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

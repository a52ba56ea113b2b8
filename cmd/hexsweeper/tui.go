package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the terminal",
	Long: `Play in the terminal instead of a window.

Controls:
  Arrows/hjkl   - Move the cursor
  Enter/Space   - Reveal the tile under the cursor
  F             - Plant or remove a flag
  Mouse         - Left click reveals, right click flags
  1/2/3         - Switch to the easy/intermediate/advanced preset
  N             - Start over
  ?             - Show every key binding
  Q/Ctrl+C      - Quit`,
	Args: cobra.NoArgs,
	Run:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) {
	if err := buildApp().RunTUI(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

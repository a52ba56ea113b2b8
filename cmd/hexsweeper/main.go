// hexsweeper is minesweeper on a hexagonal board, playable in a
// desktop window or directly in the terminal.
//
// Usage:
//
//	hexsweeper            - Play in a window
//	hexsweeper tui        - Play in the terminal
//	hexsweeper version    - Print the build version
//
// Global flags:
//
//	--config <path>      - Load a specific config file
//	--log-level <level>  - Override the configured log level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vancomm/hexsweeper/internal/app"
	"github.com/vancomm/hexsweeper/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexsweeper",
	Short: "Minesweeper on a hexagonal board",
	Long: `HexSweeper is minesweeper played on a hexagonal grid: every tile
has up to six neighbors, mines are placed on the first reveal so the
opening click is always safe, and the flag limit equals the mine
count.

Run it bare for the desktop window, or use the tui command to play in
the terminal.

Examples:
  hexsweeper
  hexsweeper --config ./hexsweeper.yaml
  hexsweeper tui
  hexsweeper tui --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: ~/.hexsweeper/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)
}

// buildApp loads the configuration, applies flag overrides and
// assembles the application. Exits the process on failure.
func buildApp() *app.App {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	a, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return a
}

func runGUI(cmd *cobra.Command, args []string) {
	if err := buildApp().RunGUI(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

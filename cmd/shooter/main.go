// shooter is a small arcade shooter for the terminal, a desktop window, or SSH.
//
// Usage:
//
//	shooter                  - Play in the terminal (same as "shooter play")
//	shooter play             - Play in the terminal
//	shooter window           - Play in a desktop window
//	shooter serve            - Start SSH server for remote play
//	shooter scores           - Show the best recorded runs
//	shooter config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>      - Override the tick rate from the config
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.shooter/scores.db)
//	--config <path>   - Use a specific YAML config file
//	--log-file <path> - Write logs to a file
//	--sound           - Enable sound effects
//	--player <name>   - Name recorded with each run
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagSound   bool
	flagPlayer  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Shoot falling targets in your terminal",
	Long: `Move the ship along the bottom of the arena and shoot the targets
falling from the top. Each hit scores points.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the best runs
  config   - Print the effective configuration

Examples:
  shooter
  shooter play --seed 42
  shooter window --sound
  shooter serve --ssh :2222
  shooter scores --browse`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use loop.fps from the config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Enable sound effects (overrides audio.enabled)")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Name recorded with each run (default: current user)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

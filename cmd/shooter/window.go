package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the arena in an 800x600 desktop window.

Controls:
  Left/A       - Move left
  Right/D      - Move right
  Space        - Fire
  P            - Pause
  R            - Restart
  Esc          - Quit

Examples:
  shooter window
  shooter window --sound --fps 120`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("shooter", os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	store := openStore(logger)
	sound := newSound(cfg, logger)

	w := window.New(shooter.New(cfg), store, window.Options{
		Player: playerName(),
		Seed:   flagSeed,
		Sound:  sound,
		Logger: logger,
	})
	runErr := w.Run()

	sound.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("%v", runErr)
	}
}

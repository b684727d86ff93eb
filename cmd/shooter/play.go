package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Space/Up/W   - Fire
  P            - Pause
  R            - Restart
  Esc/Q        - Quit
  Ctrl+S       - Save a text screenshot to ~/.shooter/screenshots

Terminals only report key presses, so a movement or fire key stays
held for input.hold_ms after its last press. Keyboard autorepeat keeps
it held while the key is down.

Examples:
  shooter play
  shooter play --seed 42
  shooter play --config ./my-shooter.yaml --log-file shooter.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	// stderr belongs to the alternate screen; only log when asked to
	logger, closeLog, err := newLogger("shooter", io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(logger)
	sound := newSound(cfg, logger)

	runErr := tui.Run(shooter.New(cfg), store, runtimeConfig(cfg, width, height), tui.Options{
		Player: playerName(),
		HoldMS: cfg.Input.HoldMS,
		Sound:  sound,
		Logger: logger,
	})

	sound.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}

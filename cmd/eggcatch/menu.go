package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggcatch/internal/audio"
	"github.com/vovakirdan/eggcatch/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game, press B on the game-over screen to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  eggcatch menu
  eggcatch menu --fps 30
  eggcatch menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagMute, "mute", !env.Audio, "Disable sound")
	menuCmd.Flags().Float64Var(&flagVolume, "volume", env.Volume, "Sound volume from 0 to 1")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()

	store := openStore(logger)

	player := startAudio(logger)
	if p, ok := player.(*audio.Player); ok {
		defer p.Close()
	}

	err := tui.RunSession(terminalConfig(), tui.Options{
		Store:  store,
		Audio:  player,
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

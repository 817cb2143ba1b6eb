package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggcatch/internal/api"
	"github.com/vovakirdan/eggcatch/internal/audio"
	"github.com/vovakirdan/eggcatch/internal/games/catcher"
	"github.com/vovakirdan/eggcatch/internal/platform/tui"
	"github.com/vovakirdan/eggcatch/internal/registry"
	"github.com/vovakirdan/eggcatch/internal/spectate"
	"github.com/vovakirdan/eggcatch/internal/storage"
)

var (
	flagMute        bool
	flagVolume      float64
	flagSpectate    string
	flagSpectateFPS int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (eggcatch if omitted).

Controls:
  A/D, Left/Right  - Move the basket
  Mouse            - Steer the basket
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  eggcatch play
  eggcatch play eggcatch_hard
  eggcatch play --difficulty easy --mute
  eggcatch play --spectate :8080
  eggcatch play --config ./my-catcher.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", !env.Audio, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", env.Volume, "Sound volume from 0 to 1")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a live feed of the game on this address (e.g. :8080)")
	playCmd.Flags().IntVar(&flagSpectateFPS, "spectate-fps", 20, "Max frames per second sent to spectators")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "eggcatch"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'eggcatch list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(false)
	defer closeLog()

	store := openStore(logger)
	opts := tui.Options{Store: store, Logger: logger}

	player := startAudio(logger)
	opts.Audio = player
	if p, ok := player.(*audio.Player); ok {
		defer p.Close()
	}

	if flagSpectate != "" {
		hub := spectate.NewHub(flagSpectateFPS, logger)
		srv := startHTTP(flagSpectate, api.NewRouter(scoreReader(store), hub, logger), logger)
		defer func() {
			hub.Close()
			shutdownHTTP(srv)
		}()
		opts.Renderers = append(opts.Renderers, hub)
	}

	runErr := tui.Run(game, terminalConfig(), opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// startAudio opens the speaker unless muted. A machine without sound gets
// a silent player.
func startAudio(logger *log.Logger) catcher.Audio {
	if flagMute {
		return audio.Nop{}
	}
	p := audio.NewPlayer(flagVolume, logger)
	if !p.Start() {
		return audio.Nop{}
	}
	return p
}

// scoreReader keeps a nil store a nil interface.
func scoreReader(store *storage.Store) api.ScoreReader {
	if store == nil {
		return nil
	}
	return store
}

func startHTTP(addr string, handler http.Handler, logger *log.Logger) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("http listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", "err", err)
		}
	}()
	return srv
}

func shutdownHTTP(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	//nolint:errcheck // Best-effort shutdown on exit
	srv.Shutdown(ctx)
}

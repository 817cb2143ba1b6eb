package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggcatch/internal/api"
	"github.com/vovakirdan/eggcatch/internal/games/catcher"
	"github.com/vovakirdan/eggcatch/internal/spectate"
)

var (
	flagHTTPAddr string
	flagDemo     bool
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the leaderboard API and live spectating",
	Long: `Start an HTTP server with the JSON leaderboard under /api/v1.

With --demo the server also plays the game by itself and streams it to
websocket viewers on /api/v1/live.

Endpoints:
  GET /api/v1/health
  GET /api/v1/modes
  GET /api/v1/scores/:mode?limit=N
  GET /api/v1/scores/:mode/best
  GET /api/v1/stats/:mode
  GET /api/v1/live              (with --demo)

Examples:
  eggcatch web
  eggcatch web --http :9000 --demo`,
	Run: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagHTTPAddr, "http", env.HTTPAddr, "HTTP server address (host:port)")
	webCmd.Flags().BoolVar(&flagDemo, "demo", false, "Run an autoplaying game for spectators")
	webCmd.Flags().IntVar(&flagSpectateFPS, "spectate-fps", 20, "Max frames per second sent to spectators")
}

func runWeb(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(true)
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var live http.Handler
	if flagDemo {
		hub := spectate.NewHub(flagSpectateFPS, logger)
		defer hub.Close()
		live = hub

		game := catcher.New()
		game.Attach(catcher.Hooks{
			Renderers: []catcher.Renderer{hub},
			Logger:    logger,
		})
		cfg := terminalConfig()
		go func() {
			//nolint:errcheck // Run only returns nil on cancel
			spectate.NewDemo(game, cfg, logger).Run(ctx)
		}()
	}

	srv := startHTTP(flagHTTPAddr, api.NewRouter(scoreReader(store), live, logger), logger)

	fmt.Printf("Serving eggcatch on %s\n", flagHTTPAddr)
	fmt.Println("Press Ctrl+C to stop")

	<-ctx.Done()
	logger.Info("shutting down...")
	shutdownHTTP(srv)
}

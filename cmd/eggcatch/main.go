// eggcatch is a terminal arcade game: catch the falling eggs, dodge the bombs.
//
// Usage:
//
//	eggcatch list              - List available modes
//	eggcatch play [mode]       - Play a mode (default: eggcatch)
//	eggcatch menu              - Start menu to pick modes interactively
//	eggcatch scores <mode>     - Show high scores for a mode
//	eggcatch serve             - Start SSH server for remote play
//	eggcatch web               - Serve the leaderboard API and live feed
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.eggcatch/scores.db)
//
// Flag defaults can also come from EGGCATCH_* variables or a .env file.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/eggcatch/internal/config"
	"github.com/vovakirdan/eggcatch/internal/core"
	"github.com/vovakirdan/eggcatch/internal/games/catcher"
	"github.com/vovakirdan/eggcatch/internal/storage"
)

var (
	env = config.LoadEnv()

	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eggcatch",
	Short: "Egg Catcher - catch falling eggs in your terminal",
	Long: `Egg Catcher is a terminal arcade game. Move the basket, catch the
eggs, grab the golden ones and stay away from bombs.

Available commands:
  list     - Show all modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  scores   - View high scores
  serve    - Start SSH server for remote play
  web      - Serve the leaderboard API and live spectating

Examples:
  eggcatch play
  eggcatch play eggcatch_hard
  eggcatch menu
  eggcatch serve --ssh :2222
  eggcatch web --demo`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagDifficulty != "" {
			if _, ok := config.ParsePreset(flagDifficulty); !ok {
				return fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", flagDifficulty)
			}
		}
		if flagConfig != "" {
			if _, err := config.LoadCatcher(flagConfig); err != nil {
				return err
			}
		}
		catcher.SetConfigPath(flagConfig)
		catcher.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", env.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", env.DBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", env.LogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", env.LogFile, "Write logs to this file (terminal commands log nowhere otherwise)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
}

// newLogger builds the process logger. Terminal commands own the screen, so
// without --log-file they discard logs; servers fall back to stderr.
func newLogger(server bool) (*log.Logger, func()) {
	var out io.Writer = io.Discard
	closeFn := func() {}

	switch {
	case flagLogFile != "":
		path, err := storage.ExpandPath(flagLogFile)
		if err == nil {
			var f *os.File
			f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err == nil {
				out = f
				closeFn = func() { f.Close() }
			}
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
			if server {
				out = os.Stderr
			}
		}
	case server:
		out = os.Stderr
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "eggcatch",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger, closeFn
}

// openStore opens the score database. Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

package spectate

import (
	"context"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/eggcatch/internal/core"
	"github.com/vovakirdan/eggcatch/internal/games/catcher"
)

// restartDelay is how long the game-over screen stays up between demo runs.
const restartDelay = 3 * time.Second

// Demo plays the game on its own so spectators have something to watch when
// nobody is playing. Attach a Hub as a renderer before calling Run.
type Demo struct {
	game     *catcher.Game
	config   core.RuntimeConfig
	logger   *log.Logger
	overAt   time.Time
	sessions int
}

// NewDemo creates a demo runner for game.
func NewDemo(game *catcher.Game, cfg core.RuntimeConfig, logger *log.Logger) *Demo {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	return &Demo{game: game, config: cfg, logger: logger.WithPrefix("demo")}
}

// Run steps the game on a ticker until ctx is cancelled. Finished sessions
// restart with the next seed after restartDelay.
func (d *Demo) Run(ctx context.Context) error {
	d.restart()
	defer d.game.Stop()

	ticker := time.NewTicker(time.Second / time.Duration(d.config.TickRate))
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			d.step(now)
		case <-ctx.Done():
			d.logger.Info("stopped", "sessions", d.sessions)
			return nil
		}
	}
}

func (d *Demo) restart() {
	d.config.Seed++
	d.game.Reset(d.config)
	d.overAt = time.Time{}
	d.sessions++
}

func (d *Demo) step(now time.Time) {
	state := d.game.Step(now, Autopilot(d.game.Snapshot())).State
	if !state.GameOver {
		return
	}

	if d.overAt.IsZero() {
		d.overAt = now
		d.logger.Info("session over", "score", state.Score)
		return
	}
	if now.Sub(d.overAt) >= restartDelay {
		d.restart()
	}
}

// Autopilot steers toward the lowest good egg in s. It ignores bombs and
// rotten eggs, so it loses eventually.
func Autopilot(s catcher.Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	if s.Catcher.BasketW <= 0 {
		return in
	}

	target := s.FieldW / 2
	lowest := math.Inf(-1)
	for _, o := range s.Objects {
		if o.Kind != catcher.KindNormal && o.Kind != catcher.KindGolden {
			continue
		}
		if o.Y > lowest {
			lowest = o.Y
			target = o.X + o.W/2
		}
	}

	diff := target - (s.Catcher.BasketX + s.Catcher.BasketW/2)
	switch {
	case diff > s.Catcher.BasketW/4:
		in.Right = true
	case diff < -s.Catcher.BasketW/4:
		in.Left = true
	}
	return in
}

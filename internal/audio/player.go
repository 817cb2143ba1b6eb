package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays cues through the system speaker. Until Start succeeds every
// call is a no-op, so a machine without audio just runs silent.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	rate    beep.SampleRate
	volume  float64
	started bool
	logger  *log.Logger
}

// NewPlayer creates a player with a master volume in [0, 1].
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		rate:   defaultRate,
		volume: min(max(volume, 0), 1),
		logger: logger,
	}
}

// Start opens the speaker. On failure the player stays silent and Start
// reports false.
func (p *Player) Start() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return true
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("audio disabled", "err", err)
		return false
	}
	speaker.Play(p.mixer)
	p.started = true
	return true
}

// Close stops playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.started = false
}

// Started reports whether sound is live.
func (p *Player) Started() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.started
}

func (p *Player) Catch()       { p.play(CatchSound) }
func (p *Player) GoldenCatch() { p.play(GoldenSound) }
func (p *Player) Miss()        { p.play(MissSound) }
func (p *Player) Bomb()        { p.play(BombSound) }

func (p *Player) play(build func(beep.SampleRate, float64) beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started || p.volume <= 0 {
		return
	}
	s := build(p.rate, p.volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Nop discards every cue. Used for muted runs and SSH sessions.
type Nop struct{}

func (Nop) Catch()       {}
func (Nop) GoldenCatch() {}
func (Nop) Miss()        {}
func (Nop) Bomb()        {}

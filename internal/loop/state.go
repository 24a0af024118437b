package loop

import (
	"math/rand"

	"github.com/tomz197/shockwave/internal/draw"
	"github.com/tomz197/shockwave/internal/game"
	"github.com/tomz197/shockwave/internal/input"
)

// Options configures a game loop.
type Options struct {
	// TermSizeFunc reports the terminal size each frame. Nil falls back to
	// the local terminal (os.Stdout).
	TermSizeFunc draw.TermSizeFunc
	// Tuning overrides the default gameplay parameters when non-nil.
	Tuning *game.Tuning
	// Rand seeds the simulation's random source; nil seeds from time.
	Rand *rand.Rand
}

// State holds everything one running session needs: the simulation core,
// the input stream, and per-frame bookkeeping.
type State struct {
	Game    *game.Game
	Input   input.Input
	Running bool

	stream       *input.Stream
	termSizeFunc draw.TermSizeFunc

	// Previous-frame key state for edge-triggered actions: holding SPACE
	// fires one pulse, not one per frame.
	prevSpace  bool
	prevEnter  bool
	prevEscape bool
}

// NewState creates a session state with an idle game.
func NewState(opts Options) *State {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	g := game.New(game.Arena{Width: arenaWidth, Height: arenaHeight}, game.Options{
		Rand:   opts.Rand,
		Tuning: opts.Tuning,
	})
	return &State{
		Game:         g,
		Running:      true,
		termSizeFunc: sizeFunc,
	}
}

// spacePressed reports a fresh SPACE press this frame.
func (s *State) spacePressed() bool {
	return s.Input.Space && !s.prevSpace
}

// confirmPressed reports a fresh SPACE or ENTER press this frame.
func (s *State) confirmPressed() bool {
	return (s.Input.Space && !s.prevSpace) || (s.Input.Enter && !s.prevEnter)
}

// escapePressed reports a fresh ESCAPE press this frame.
func (s *State) escapePressed() bool {
	return s.Input.Escape && !s.prevEscape
}

// rememberKeys records this frame's key state for edge detection.
func (s *State) rememberKeys() {
	s.prevSpace = s.Input.Space
	s.prevEnter = s.Input.Enter
	s.prevEscape = s.Input.Escape
}

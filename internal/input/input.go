// Package input reads terminal key presses without blocking the game loop.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last
// press. Terminals deliver repeats with gaps, so a short window keeps taps
// visible across frames.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit   bool // q or Ctrl-C
	Space  bool // Fire the shockwave / confirm
	Enter  bool // Confirm / start
	Escape bool
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit   time.Time
	space  time.Time
	enter  time.Time
	escape time.Time
}

// Stream delivers input bytes via a channel and tracks key state.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and feeds the stream.
// The goroutine exits when the reader does (terminal closed, SSH session
// ended).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// reports which keys are currently pressed.
func ReadInput(s *Stream) Input {
	now := time.Now()

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				return Input{Quit: true}
			}
			applyByte(&s.state, b, now)
		default:
			return Input{
				Quit:   now.Sub(s.state.quit) < keyHoldDuration,
				Space:  now.Sub(s.state.space) < keyHoldDuration,
				Enter:  now.Sub(s.state.enter) < keyHoldDuration,
				Escape: now.Sub(s.state.escape) < keyHoldDuration,
			}
		}
	}
}

// Reset forgets all key state, e.g. when switching screens so the keypress
// that triggered the switch does not leak into the next one.
func (s *Stream) Reset() {
	s.state = keyState{}
}

// applyByte updates key press timestamps for a single input byte.
func applyByte(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', 0x03: // Ctrl-C
		state.quit = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	case 0x1b:
		state.escape = now
	}
}

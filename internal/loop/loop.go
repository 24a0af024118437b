// Package loop provides the main game loop: input, simulation commands,
// frame rendering.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/tomz197/shockwave/internal/draw"
	"github.com/tomz197/shockwave/internal/input"
)

const targetFrameTime = time.Second / targetFPS

// Run starts the game loop with the standard Input → Update → Draw cycle
// and blocks until the player quits or the reader closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	state := NewState(opts)
	state.stream = input.StartStream(r)

	out := bufio.NewWriterSize(w, 16*1024)

	draw.HideCursor(out)
	defer func() {
		draw.ShowCursor(out)
		draw.ClearScreen(out)
		out.Flush()
	}()
	draw.ClearScreen(out)

	canvas := draw.NewCanvas(maxRenderCols, maxRenderRows, arenaWidth, arenaHeight)

	for state.Running {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		state.Input = input.ReadInput(state.stream)
		if state.Input.Quit {
			state.Running = false
		}

		// ===== UPDATE PHASE =====
		if err := updateScreen(state, canvas); err != nil {
			return err
		}
		updateSession(state)
		state.rememberKeys()

		// ===== DRAW PHASE =====
		if err := drawFrame(state, out, canvas); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	return nil
}

// updateScreen tracks terminal resizes, capping and centering the render
// area in oversized terminals.
func updateScreen(state *State, canvas *draw.Canvas) error {
	termWidth, termHeight, err := state.termSizeFunc()
	if err != nil {
		return err
	}

	renderW := termWidth
	if renderW > maxRenderCols {
		renderW = maxRenderCols
	}
	renderH := termHeight
	if renderH > maxRenderRows {
		renderH = maxRenderRows
	}
	canvas.Resize(renderW, renderH)
	canvas.SetOffset((termWidth-renderW)/2, (termHeight-renderH)/2)
	return nil
}

// updateSession routes input to the simulation according to its phase.
func updateSession(state *State) {
	snap := state.Game.Snapshot()
	switch {
	case snap.Playing:
		if state.escapePressed() {
			state.stream.Reset()
			state.Game.Stop()
			return
		}
		if state.spacePressed() {
			state.Game.Defend()
		}
		state.Game.Tick()
		state.Game.AdvanceParticles()
	case snap.GameOver:
		if state.escapePressed() {
			state.stream.Reset()
			state.Game.Stop()
			return
		}
		if state.confirmPressed() {
			state.stream.Reset()
			state.Game.Start()
		}
	default: // Title screen
		if state.confirmPressed() {
			state.stream.Reset()
			state.Game.Start()
		}
	}
}

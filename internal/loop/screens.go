package loop

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/tomz197/shockwave/internal/draw"
	"github.com/tomz197/shockwave/internal/game"
)

// Visual parameters for the playfield.
const (
	coreRadius        = 14.0 // The thing being defended, drawn at arena center
	perimeterRadius   = 60.0 // Matches the breach radius so players can read it
	shockwaveMaxReach = 380.0
	particleFadeSkip  = 0.25 // Particles dimmer than this are not drawn
)

// drawFrame renders one complete frame: world canvas, border, text overlay.
func drawFrame(state *State, out *bufio.Writer, canvas *draw.Canvas) error {
	draw.ClearScreen(out)
	canvas.Clear()

	snap := state.Game.Snapshot()
	if snap.Playing || snap.GameOver {
		drawWorld(canvas, snap)
	}

	canvas.Render(out)
	canvas.RenderBorder(out)
	drawUI(out, canvas, snap)

	return out.Flush()
}

// drawWorld draws the arena contents in logical coordinates.
func drawWorld(canvas *draw.Canvas, snap game.Snapshot) {
	cx, cy := snap.Arena.Center()
	center := draw.Point{X: cx, Y: cy}

	canvas.DrawCircle(center, coreRadius)
	canvas.DrawCircle(center, perimeterRadius)

	if snap.Shockwave > 0 {
		drawShockwave(canvas, center, snap.Shockwave, snap.ShockwavePeak)
	}
	for _, e := range snap.Enemies {
		drawEnemy(canvas, e)
	}
	for _, p := range snap.Particles {
		if p.Opacity >= particleFadeSkip {
			canvas.SetFloat(p.X, p.Y)
		}
	}
}

// drawShockwave draws the expanding pulse ring. The magnitude counts down
// from its peak, so the ring grows as the value shrinks.
func drawShockwave(canvas *draw.Canvas, center draw.Point, magnitude, peak float64) {
	if peak <= 0 {
		return
	}
	progress := 1 - magnitude/peak
	if progress < 0 {
		progress = 0
	}
	radius := perimeterRadius + progress*(shockwaveMaxReach-perimeterRadius)
	canvas.DrawCircle(center, radius)
}

// drawEnemy draws an enemy as a rotating square.
func drawEnemy(canvas *draw.Canvas, e game.EnemyView) {
	points := canvas.BorrowPoints(4)
	// Corner distance for a square of side e.Size
	dist := e.Size * math.Sqrt2 / 2
	for i := 0; i < 4; i++ {
		a := e.Angle + math.Pi/4 + float64(i)*math.Pi/2
		points[i] = draw.Point{
			X: e.X + math.Cos(a)*dist,
			Y: e.Y + math.Sin(a)*dist,
		}
	}
	canvas.DrawPolygon(points, e.Health > 1)
}

// drawUI draws the text overlay for the current phase.
func drawUI(w io.Writer, canvas *draw.Canvas, snap game.Snapshot) {
	centerX := canvas.OffsetCol() + canvas.TerminalWidth()/2
	centerY := canvas.OffsetRow() + canvas.TerminalHeight()/2

	switch {
	case snap.Playing:
		drawPlayingHUD(w, canvas, snap, centerX)
	case snap.GameOver:
		drawGameOverScreen(w, snap, centerX, centerY)
	default:
		drawTitleScreen(w, centerX, centerY)
	}
}

// drawTitleScreen draws the title and controls.
func drawTitleScreen(w io.Writer, centerX, centerY int) {
	title := "S H O C K W A V E"
	writeCentered(w, centerX, centerY-3, title)

	subtitle := "Enemies converge on the core. Pulse to clear them all."
	writeCentered(w, centerX, centerY, subtitle)

	prompt := "Press SPACE to Start"
	writeCentered(w, centerX, centerY+3, prompt)

	controls := "Controls: SPACE to pulse, ESC to abandon, Q to quit"
	writeCentered(w, centerX, centerY+5, controls)
}

// drawPlayingHUD draws score, wave, combo and the health bar.
func drawPlayingHUD(w io.Writer, canvas *draw.Canvas, snap game.Snapshot, centerX int) {
	row := canvas.OffsetRow() + 1
	left := canvas.OffsetCol() + 2

	draw.MoveCursor(w, left, row)
	fmt.Fprintf(w, "Score: %d", snap.Score)

	waveText := fmt.Sprintf("Wave %d  x%d", snap.WaveNumber, snap.Combo)
	writeCentered(w, centerX, row, waveText)

	bar := healthBar(snap.Health, snap.MaxHealth, 10)
	right := canvas.OffsetCol() + canvas.TerminalWidth() - len([]rune(bar)) - 1
	draw.MoveCursor(w, right, row)
	fmt.Fprint(w, bar)

	if snap.WaveComplete {
		writeCentered(w, centerX, row+2, fmt.Sprintf("Wave %d cleared!", snap.WaveNumber))
	}
}

// drawGameOverScreen draws the end-of-run summary.
func drawGameOverScreen(w io.Writer, snap game.Snapshot, centerX, centerY int) {
	writeCentered(w, centerX, centerY-2, "GAME OVER")
	writeCentered(w, centerX, centerY, fmt.Sprintf("Score: %d   Wave: %d", snap.Score, snap.WaveNumber))
	writeCentered(w, centerX, centerY+2, "Press SPACE to Restart")
}

// healthBar renders health as a fixed-width block bar.
func healthBar(health, maxHealth, width int) string {
	if maxHealth <= 0 {
		maxHealth = 1
	}
	filled := health * width / maxHealth
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "HP " + strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// writeCentered writes text centered on the given column.
func writeCentered(w io.Writer, centerX, row int, text string) {
	col := centerX - len([]rune(text))/2
	if col < 1 {
		col = 1
	}
	draw.MoveCursor(w, col, row)
	fmt.Fprint(w, text)
}

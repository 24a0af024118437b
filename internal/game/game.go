// Package game implements the wave-defense simulation core: spawn timing,
// enemy motion, breach detection, scoring, combo and wave progression, and
// particle lifecycle. It is headless; a presentation layer renders Snapshot
// and forwards player commands.
//
// The core is fixed-step and single-writer: every command must be issued
// from one goroutine, with Tick driven at TickRate.
package game

import (
	"math/rand"
	"time"

	"github.com/tomz197/shockwave/internal/physics"
)

// Arena is the logical playfield supplied by the presentation layer.
// Enemies converge on its center and spawn just outside its bounds.
type Arena struct {
	Width  float64
	Height float64
}

// Center returns the convergence target.
func (a Arena) Center() (x, y float64) {
	return a.Width / 2, a.Height / 2
}

// Options configures a Game beyond its arena.
type Options struct {
	// Rand is the random source for spawn edges and burst directions.
	// Pass a seeded source for reproducible runs; nil seeds from time.
	Rand *rand.Rand
	// Tuning overrides the default gameplay parameters when non-nil.
	Tuning *Tuning
}

// Game owns all simulation state for one session.
type Game struct {
	tuning Tuning
	rng    *rand.Rand
	arena  Arena

	score        int
	health       int
	combo        int
	waveNumber   int
	playing      bool
	gameOver     bool
	waveComplete bool
	shockwave    float64

	wave       *Wave
	spawnTimer int // Ticks until the next spawn attempt
	enemies    []*Enemy
	particles  []*Particle

	sched       scheduler
	pendingWave *Task
	nextID      uint64
}

// New creates an idle game for the given arena. Call Start to begin playing.
func New(arena Arena, opts Options) *Game {
	g := &Game{
		arena:  arena,
		tuning: DefaultTuning(),
		rng:    opts.Rand,
		combo:  1,
	}
	if opts.Tuning != nil {
		g.tuning = *opts.Tuning
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.health = g.tuning.MaxHealth
	return g
}

// SetArena updates the playfield, e.g. after a terminal resize. Enemies
// already in flight keep converging on the new center.
func (g *Game) SetArena(arena Arena) {
	g.arena = arena
}

// Start resets the session and begins wave 1. It is the only way out of both
// the idle and the game-over state.
func (g *Game) Start() {
	g.sched.cancelAll()
	g.pendingWave = nil

	g.score = 0
	g.health = g.tuning.MaxHealth
	g.combo = 1
	g.waveNumber = 0
	g.shockwave = 0
	g.enemies = g.enemies[:0]
	g.particles = g.particles[:0]
	g.playing = true
	g.gameOver = false
	g.waveComplete = false

	g.startNewWave()
}

// Tick advances the simulation one step: deferred tasks, shockwave decay,
// spawning, enemy motion and breach resolution, wave completion. No-op once
// the game is over.
func (g *Game) Tick() {
	if g.gameOver || !g.playing {
		return
	}

	g.sched.advance()

	if g.shockwave > 0 {
		g.shockwave -= g.tuning.ShockwaveDecay
		if g.shockwave < 0 {
			g.shockwave = 0
		}
	}

	g.advanceSpawner()

	// Move enemies in storage order; the first one inside the collision
	// radius is resolved and the scan stops, so at most one breach
	// resolves per tick.
	cx, cy := g.arena.Center()
	radius := g.tuning.CollisionRadius
	for i, e := range g.enemies {
		e.advance(cx, cy)
		if physics.DistanceSquared(e.X, e.Y, cx, cy) < radius*radius {
			g.resolveBreach(i)
			break
		}
	}

	g.checkWaveComplete()
}

// resolveBreach handles enemy i reaching the core: damage, explosion,
// removal, and the game-over transition when health is exhausted.
func (g *Game) resolveBreach(i int) {
	e := g.enemies[i]
	g.health -= g.tuning.BreachDamage
	if g.health < 0 {
		g.health = 0
	}
	g.spawnBurst(e.X, e.Y, g.tuning.BurstSize)
	g.enemies = append(g.enemies[:i], g.enemies[i+1:]...)
	if g.health <= 0 {
		g.endGame()
	}
}

// Defend fires the player's shockwave: every active enemy explodes, the
// score grows by base * wave * combo, and the combo steps toward its cap.
// With no enemies on the field the pulse is a no-op and costs nothing.
func (g *Game) Defend() {
	if g.gameOver || !g.playing {
		return
	}
	if len(g.enemies) == 0 {
		return
	}

	g.shockwave = g.tuning.ShockwaveMagnitude
	for _, e := range g.enemies {
		g.spawnBurst(e.X, e.Y, g.tuning.BurstSize)
	}
	g.score += g.tuning.ScorePerWave * g.waveNumber * g.combo
	g.enemies = g.enemies[:0]
	if g.combo < g.tuning.ComboCap {
		g.combo++
	}

	// Only a defend that clears the wave's final enemies schedules the
	// next wave; mid-wave defends let the spawner keep feeding this one.
	if g.wave != nil && g.wave.EnemiesRemaining == 0 {
		g.pendingWave = g.sched.After(g.tuning.waveDelayTicks(), g.startNewWave)
	}
}

// Stop abandons the session and returns to the idle state, from playing or
// from game over. Deferred work is cancelled like on any other exit.
func (g *Game) Stop() {
	g.playing = false
	g.gameOver = false
	g.pendingWave.Cancel()
	g.pendingWave = nil
	g.sched.cancelAll()
}

// startNewWave advances to the next wave and arms its spawn timer.
func (g *Game) startNewWave() {
	g.pendingWave = nil
	g.waveNumber++
	g.wave = NewWave(g.waveNumber, g.tuning)
	g.waveComplete = false
	g.spawnTimer = g.wave.intervalTicks()
}

// endGame is the sole transition into the game-over state. Pending deferred
// work is cancelled so nothing mutates this session after it ends.
func (g *Game) endGame() {
	g.gameOver = true
	g.playing = false
	g.pendingWave.Cancel()
	g.pendingWave = nil
	g.sched.cancelAll()
}

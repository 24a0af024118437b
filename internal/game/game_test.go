package game

import (
	"math/rand"
	"testing"
)

// newTestGame returns a game with a fixed-seed random source so spawn edges
// and burst directions are reproducible.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	return New(Arena{Width: 800, Height: 600}, Options{
		Rand: rand.New(rand.NewSource(42)),
	})
}

// enemyAt places an enemy directly on the field, bypassing the spawner.
func enemyAt(g *Game, x, y float64) *Enemy {
	g.nextID++
	e := &Enemy{ID: g.nextID, X: x, Y: y, Speed: 3.5, Size: 30, Opacity: 1, Health: 1}
	g.enemies = append(g.enemies, e)
	return e
}

func TestStartResetsSession(t *testing.T) {
	g := newTestGame(t)
	g.Start()

	if g.waveNumber != 1 {
		t.Errorf("wave number = %d, want 1", g.waveNumber)
	}
	if g.wave == nil || g.wave.EnemiesRemaining != 6 {
		t.Errorf("wave 1 enemies remaining = %v, want 6", g.wave)
	}
	if g.health != 100 {
		t.Errorf("health = %d, want 100", g.health)
	}
	if g.score != 0 {
		t.Errorf("score = %d, want 0", g.score)
	}
	if g.combo != 1 {
		t.Errorf("combo = %d, want 1", g.combo)
	}
	if !g.playing || g.gameOver || g.waveComplete {
		t.Errorf("state = playing:%v gameOver:%v waveComplete:%v, want playing only",
			g.playing, g.gameOver, g.waveComplete)
	}
}

func TestStartAfterGameOverRestarts(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	g.score = 500
	g.endGame()

	g.Start()
	if g.score != 0 || g.gameOver || !g.playing {
		t.Errorf("restart left score=%d gameOver=%v playing=%v", g.score, g.gameOver, g.playing)
	}
}

func TestSpawnerKeepsSingleEnemy(t *testing.T) {
	g := newTestGame(t)
	g.Start()

	// Run across several spawn intervals; the field must never hold more
	// than one enemy even though the timer keeps firing.
	spawned := g.wave.EnemiesRemaining
	for i := 0; i < g.wave.intervalTicks()*6; i++ {
		g.Tick()
		if len(g.enemies) > 1 {
			t.Fatalf("tick %d: %d enemies alive, want at most 1", i, len(g.enemies))
		}
	}
	if g.wave.EnemiesRemaining == spawned {
		t.Error("spawner never produced an enemy")
	}
}

func TestSpawnedEnemyStartsOutsideArena(t *testing.T) {
	g := newTestGame(t)
	g.Start()

	for len(g.enemies) == 0 {
		g.Tick()
	}
	e := g.enemies[0]
	inside := e.X >= 0 && e.X <= g.arena.Width && e.Y >= 0 && e.Y <= g.arena.Height
	if inside {
		t.Errorf("enemy spawned inside the arena at (%.1f, %.1f)", e.X, e.Y)
	}
	if e.Speed != g.wave.EnemySpeed {
		t.Errorf("enemy speed = %v, want wave speed %v", e.Speed, g.wave.EnemySpeed)
	}
	if e.Health != 1 {
		t.Errorf("wave 1 enemy health = %d, want 1", e.Health)
	}
}

func TestEnemyHealthScalesWithWaveCapped(t *testing.T) {
	tests := []struct {
		wave int
		want int
	}{
		{1, 1},
		{2, 2},
		{3, 3},
		{5, 3},
		{12, 3},
	}
	for _, tt := range tests {
		g := newTestGame(t)
		g.Start()
		g.waveNumber = tt.wave
		g.wave = NewWave(tt.wave, g.tuning)
		e := g.newEnemyAtEdge()
		if e.Health != tt.want {
			t.Errorf("wave %d: enemy health = %d, want %d", tt.wave, e.Health, tt.want)
		}
	}
}

func TestEnemyConvergesOnCenter(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	e := enemyAt(g, 400, -50)

	cx, cy := g.arena.Center()
	before := (cy-e.Y)*(cy-e.Y) + (cx-e.X)*(cx-e.X)
	g.Tick()
	after := (cy-e.Y)*(cy-e.Y) + (cx-e.X)*(cx-e.X)
	if after >= before {
		t.Errorf("enemy did not approach center: %.1f -> %.1f", before, after)
	}
}

func TestEnemyAtCenterBreachesImmediately(t *testing.T) {
	// Zero distance to the target must not divide by zero; the enemy is
	// treated as already at the core and resolves as a breach.
	g := newTestGame(t)
	g.Start()
	cx, cy := g.arena.Center()
	enemyAt(g, cx, cy)

	g.Tick()
	if g.health != 90 {
		t.Errorf("health = %d, want 90", g.health)
	}
	if len(g.enemies) != 0 {
		t.Errorf("%d enemies left, want 0", len(g.enemies))
	}
	if len(g.particles) != g.tuning.BurstSize {
		t.Errorf("%d particles, want burst of %d", len(g.particles), g.tuning.BurstSize)
	}
	if g.gameOver {
		t.Error("game over after a single breach at full health")
	}
}

func TestSingleBreachResolvedPerTick(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	cx, cy := g.arena.Center()
	enemyAt(g, cx, cy)
	enemyAt(g, cx, cy)

	g.Tick()
	if g.health != 90 {
		t.Errorf("health = %d, want 90 (one breach per tick)", g.health)
	}
	if len(g.enemies) != 1 {
		t.Errorf("%d enemies left, want 1", len(g.enemies))
	}
}

func TestBreachAtZeroHealthEndsGame(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	g.health = 10
	cx, cy := g.arena.Center()
	enemyAt(g, cx, cy)

	g.Tick()
	if g.health != 0 {
		t.Errorf("health = %d, want 0", g.health)
	}
	if !g.gameOver || g.playing {
		t.Errorf("gameOver=%v playing=%v, want game over", g.gameOver, g.playing)
	}
}

func TestHealthNeverGoesNegative(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	g.health = 5
	cx, cy := g.arena.Center()
	enemyAt(g, cx, cy)

	g.Tick()
	if g.health != 0 {
		t.Errorf("health = %d, want clamp at 0", g.health)
	}
}

func TestDefendWithNoEnemiesIsNoop(t *testing.T) {
	g := newTestGame(t)
	g.Start()

	g.Defend()
	if g.score != 0 || g.combo != 1 || g.shockwave != 0 || len(g.particles) != 0 {
		t.Errorf("empty defend mutated state: score=%d combo=%d shockwave=%v particles=%d",
			g.score, g.combo, g.shockwave, len(g.particles))
	}
}

func TestDefendScoresAndAdvancesCombo(t *testing.T) {
	// Wave 3, one active enemy, combo 2: the pulse is worth 100*3*2.
	g := newTestGame(t)
	g.Start()
	g.waveNumber = 3
	g.wave = NewWave(3, g.tuning)
	g.combo = 2
	enemyAt(g, 100, 100)

	g.Defend()
	if g.score != 600 {
		t.Errorf("score = %d, want 600", g.score)
	}
	if g.combo != 3 {
		t.Errorf("combo = %d, want 3", g.combo)
	}
	if len(g.enemies) != 0 {
		t.Errorf("%d enemies left, want 0", len(g.enemies))
	}
	if g.shockwave != g.tuning.ShockwaveMagnitude {
		t.Errorf("shockwave = %v, want %v", g.shockwave, g.tuning.ShockwaveMagnitude)
	}
	if len(g.particles) != g.tuning.BurstSize {
		t.Errorf("%d particles, want %d", len(g.particles), g.tuning.BurstSize)
	}
}

func TestDefendComboCapped(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	g.combo = g.tuning.ComboCap
	enemyAt(g, 100, 100)

	g.Defend()
	if g.combo != g.tuning.ComboCap {
		t.Errorf("combo = %d, want cap %d", g.combo, g.tuning.ComboCap)
	}
}

func TestDefendBurstPerEnemy(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	enemyAt(g, 100, 100)
	enemyAt(g, 700, 500)
	enemyAt(g, 400, 50)

	g.Defend()
	want := 3 * g.tuning.BurstSize
	if want > g.tuning.MaxParticles {
		want = g.tuning.MaxParticles
	}
	if len(g.particles) != want {
		t.Errorf("%d particles, want %d", len(g.particles), want)
	}
}

func TestDefendMidWaveDoesNotScheduleNextWave(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	enemyAt(g, 100, 100)
	if g.wave.EnemiesRemaining == 0 {
		t.Fatal("test wants a wave with spawns left")
	}

	g.Defend()
	for i := 0; i < g.tuning.waveDelayTicks()+1; i++ {
		g.Tick()
	}
	if g.waveNumber != 1 {
		t.Errorf("wave advanced to %d after a mid-wave defend", g.waveNumber)
	}
}

func TestDefendOnLastEnemiesSchedulesNextWave(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	g.wave.EnemiesRemaining = 0
	enemyAt(g, 100, 100)

	g.Defend()
	if g.waveNumber != 1 {
		t.Fatalf("wave advanced immediately, want deferred start")
	}

	// Wave completion is observable during the delay window.
	g.Tick()
	if !g.waveComplete {
		t.Error("wave not flagged complete after clearing defend")
	}

	for i := 0; i < g.tuning.waveDelayTicks(); i++ {
		g.Tick()
	}
	if g.waveNumber != 2 {
		t.Errorf("wave number = %d, want 2 after the delay", g.waveNumber)
	}
	if g.waveComplete {
		t.Error("new wave still flagged complete")
	}
	if g.wave.EnemiesRemaining != 7 {
		t.Errorf("wave 2 enemies remaining = %d, want 7", g.wave.EnemiesRemaining)
	}
}

func TestWaveCompleteRequiresEmptyField(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	g.wave.EnemiesRemaining = 0
	enemyAt(g, 100, 100)

	g.Tick()
	if g.waveComplete {
		t.Error("wave flagged complete with an enemy still alive")
	}
}

func TestCommandsAfterGameOverAreNoops(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	g.endGame()
	enemyAt(g, 100, 100)
	before := len(g.enemies)

	g.Defend()
	g.Tick()
	if g.score != 0 || len(g.enemies) != before || len(g.particles) != 0 {
		t.Errorf("commands mutated a finished game: score=%d enemies=%d particles=%d",
			g.score, len(g.enemies), len(g.particles))
	}
}

func TestStaleWaveStartCannotFireAfterRestart(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	g.wave.EnemiesRemaining = 0
	enemyAt(g, 100, 100)
	g.Defend() // Schedules the deferred wave start

	g.Start() // Restart before it fires
	for i := 0; i < g.tuning.waveDelayTicks()+1; i++ {
		g.Tick()
	}
	if g.waveNumber != 1 {
		t.Errorf("wave number = %d, stale deferred start fired across restart", g.waveNumber)
	}
}

func TestStopReturnsToIdle(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	enemyAt(g, 100, 100)

	g.Stop()
	if g.playing || g.gameOver {
		t.Errorf("playing=%v gameOver=%v after Stop, want idle", g.playing, g.gameOver)
	}
}

func TestStopCancelsPendingWaveStart(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	g.wave.EnemiesRemaining = 0
	enemyAt(g, 100, 100)
	g.Defend() // Schedules the deferred wave start

	g.Stop()
	g.Start()
	for i := 0; i < g.tuning.waveDelayTicks()+1; i++ {
		g.Tick()
	}
	if g.waveNumber != 1 {
		t.Errorf("wave number = %d, deferred start survived Stop", g.waveNumber)
	}
}

func TestShockwaveDecaysToZero(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	enemyAt(g, 100, 100)
	g.Defend()

	last := g.shockwave
	for i := 0; g.shockwave > 0; i++ {
		g.Tick()
		if g.shockwave >= last && g.shockwave != 0 {
			t.Fatalf("shockwave did not shrink: %v -> %v", last, g.shockwave)
		}
		last = g.shockwave
		if i > 1000 {
			t.Fatal("shockwave never reached zero")
		}
	}
}

func TestSetArenaRetargetsEnemies(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	e := enemyAt(g, 0, 300)

	g.SetArena(Arena{Width: 400, Height: 600})
	g.Tick()
	if e.X <= 0 {
		t.Error("enemy not moving toward the new center")
	}
}

func TestSnapshotReflectsState(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	enemyAt(g, 100, 100)
	g.spawnBurst(50, 50, 5)

	s := g.Snapshot()
	if s.Score != g.score || s.Health != g.health || s.WaveNumber != g.waveNumber {
		t.Errorf("snapshot scalars diverge from state")
	}
	if len(s.Enemies) != 1 || len(s.Particles) != 5 {
		t.Errorf("snapshot has %d enemies, %d particles; want 1, 5", len(s.Enemies), len(s.Particles))
	}
	if s.EnemiesRemaining != g.wave.EnemiesRemaining {
		t.Errorf("snapshot enemies remaining = %d, want %d", s.EnemiesRemaining, g.wave.EnemiesRemaining)
	}

	// Mutating the snapshot must not touch live entities.
	s.Enemies[0].X = -999
	if g.enemies[0].X == -999 {
		t.Error("snapshot aliases live enemy state")
	}
}

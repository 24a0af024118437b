package game

// Wave is a timed batch of enemies sharing speed and spawn cadence.
// Waves are derived deterministically from their number; only
// EnemiesRemaining changes after creation.
type Wave struct {
	Number           int
	EnemiesRemaining int     // Enemies left to spawn (not left to kill)
	EnemySpeed       float64 // Units per tick
	SpawnInterval    float64 // Seconds between spawn attempts
}

// NewWave derives spawn parameters for the given wave number.
// Difficulty is monotonic: speed grows, the interval shrinks to a floor,
// and the enemy count grows to a cap.
func NewWave(number int, t Tuning) *Wave {
	count := t.BaseEnemyCount + number
	if count > t.MaxEnemyCount {
		count = t.MaxEnemyCount
	}
	interval := t.BaseSpawnInterval - float64(number)*t.SpawnIntervalStep
	if interval < t.MinSpawnInterval {
		interval = t.MinSpawnInterval
	}
	return &Wave{
		Number:           number,
		EnemiesRemaining: count,
		EnemySpeed:       t.BaseEnemySpeed + float64(number)*t.SpeedPerWave,
		SpawnInterval:    interval,
	}
}

// intervalTicks is the spawn cadence in simulation ticks.
func (w *Wave) intervalTicks() int {
	ticks := int(w.SpawnInterval * TickRate)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// advanceSpawner counts the spawn timer down and spawns a single enemy when
// it expires. The timer rearms on every expiry whether or not an enemy was
// produced: while an enemy is alive the attempt is a no-op, keeping at most
// one enemy on the field at a time.
func (g *Game) advanceSpawner() {
	if g.wave == nil || g.wave.EnemiesRemaining <= 0 {
		return
	}
	g.spawnTimer--
	if g.spawnTimer > 0 {
		return
	}
	g.spawnTimer = g.wave.intervalTicks()
	if len(g.enemies) > 0 {
		return
	}
	g.enemies = append(g.enemies, g.newEnemyAtEdge())
	g.wave.EnemiesRemaining--
}

// checkWaveComplete flags the current wave as complete once every enemy has
// been spawned and none are left on the field. Idempotent.
func (g *Game) checkWaveComplete() {
	if g.waveComplete || g.wave == nil {
		return
	}
	if g.wave.EnemiesRemaining == 0 && len(g.enemies) == 0 {
		g.waveComplete = true
	}
}

package game

// Snapshot is a read-only copy of the observable state for rendering.
// Entity slices are copied so the renderer never aliases live state.
type Snapshot struct {
	Score            int
	Health           int
	MaxHealth        int
	Combo            int
	WaveNumber       int
	EnemiesRemaining int
	Playing          bool
	GameOver         bool
	WaveComplete     bool
	Shockwave        float64
	ShockwavePeak    float64
	Arena            Arena
	Enemies          []EnemyView
	Particles        []ParticleView
}

// EnemyView is the renderable subset of an enemy.
type EnemyView struct {
	ID      uint64
	X, Y    float64
	Size    float64
	Angle   float64
	Opacity float64
	Health  int
}

// ParticleView is the renderable subset of a particle.
type ParticleView struct {
	ID      uint64
	X, Y    float64
	Scale   float64
	Opacity float64
	Angle   float64
}

// Snapshot captures the current observable state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Score:         g.score,
		Health:        g.health,
		MaxHealth:     g.tuning.MaxHealth,
		Combo:         g.combo,
		WaveNumber:    g.waveNumber,
		Playing:       g.playing,
		GameOver:      g.gameOver,
		WaveComplete:  g.waveComplete,
		Shockwave:     g.shockwave,
		ShockwavePeak: g.tuning.ShockwaveMagnitude,
		Arena:         g.arena,
		Enemies:       make([]EnemyView, 0, len(g.enemies)),
		Particles:     make([]ParticleView, 0, len(g.particles)),
	}
	if g.wave != nil {
		s.EnemiesRemaining = g.wave.EnemiesRemaining
	}
	for _, e := range g.enemies {
		s.Enemies = append(s.Enemies, EnemyView{
			ID: e.ID, X: e.X, Y: e.Y,
			Size: e.Size, Angle: e.Angle, Opacity: e.Opacity, Health: e.Health,
		})
	}
	for _, p := range g.particles {
		s.Particles = append(s.Particles, ParticleView{
			ID: p.ID, X: p.X, Y: p.Y,
			Scale: p.Scale, Opacity: p.Opacity, Angle: p.Angle,
		})
	}
	return s
}

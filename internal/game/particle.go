package game

import "math"

// Particle decay and burst parameters. Particles are pure visual feedback
// and never affect gameplay.
const (
	particleOpacityDecay = 0.05 // Linear opacity loss per advance
	particleScaleDecay   = 0.95 // Scale multiplier per advance
	particleRotationStep = 0.1  // Radians per advance
	particleMinSpeed     = 2.0
	particleMaxSpeed     = 5.0
	particleMinScale     = 5.0
	particleMaxScale     = 15.0
)

// Particle is a short-lived explosion fragment.
type Particle struct {
	ID      uint64
	X, Y    float64
	VX, VY  float64
	Scale   float64
	Opacity float64
	Angle   float64
}

// spawnBurst emits count particles from (x, y) in random directions, then
// truncates the population to the cap, dropping the oldest first. The cap
// bounds memory and render cost no matter how fast bursts arrive.
func (g *Game) spawnBurst(x, y float64, count int) {
	for i := 0; i < count; i++ {
		angle := g.rng.Float64() * 2 * math.Pi
		speed := particleMinSpeed + g.rng.Float64()*(particleMaxSpeed-particleMinSpeed)
		g.nextID++
		g.particles = append(g.particles, &Particle{
			ID:      g.nextID,
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Scale:   particleMinScale + g.rng.Float64()*(particleMaxScale-particleMinScale),
			Opacity: 1,
			Angle:   g.rng.Float64() * 2 * math.Pi,
		})
	}
	if over := len(g.particles) - g.tuning.MaxParticles; over > 0 {
		g.particles = append(g.particles[:0], g.particles[over:]...)
	}
}

// AdvanceParticles steps every particle one decay tick: move by velocity,
// fade opacity, shrink scale, rotate. Particles at zero opacity are dropped.
// Driven on its own cadence, decoupled from gameplay ticks so explosion
// playback never blocks the simulation. No-op once the session has ended.
func (g *Game) AdvanceParticles() {
	if g.gameOver || !g.playing {
		return
	}
	kept := g.particles[:0]
	for _, p := range g.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Opacity -= particleOpacityDecay
		p.Scale *= particleScaleDecay
		p.Angle += particleRotationStep
		if p.Opacity > 0 {
			kept = append(kept, p)
		}
	}
	g.particles = kept
}

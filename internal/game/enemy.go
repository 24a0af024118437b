package game

import (
	"math"

	"github.com/tomz197/shockwave/internal/physics"
)

// enemyRotationStep is the cosmetic per-tick rotation increment (radians).
const enemyRotationStep = 0.1

// Enemy is an attacker converging on the arena center. Health is a
// damage-resistance counter; a defend pulse consumes it whole, so it only
// matters for rendering weight today.
type Enemy struct {
	ID      uint64
	X, Y    float64
	Speed   float64 // Units per tick
	Size    float64
	Angle   float64 // Cosmetic rotation
	Opacity float64
	Health  int
}

// newEnemyAtEdge creates an enemy for the current wave at a uniformly random
// arena edge, offset outside the bounds so it slides into view.
func (g *Game) newEnemyAtEdge() *Enemy {
	off := g.tuning.SpawnEdgeOffset
	w := g.arena.Width
	h := g.arena.Height

	var x, y float64
	switch g.rng.Intn(4) {
	case 0: // Top
		x = g.rng.Float64() * w
		y = -off
	case 1: // Right
		x = w + off
		y = g.rng.Float64() * h
	case 2: // Bottom
		x = g.rng.Float64() * w
		y = h + off
	case 3: // Left
		x = -off
		y = g.rng.Float64() * h
	}

	health := g.waveNumber
	if health > g.tuning.EnemyHealthCap {
		health = g.tuning.EnemyHealthCap
	}
	if health < 1 {
		health = 1
	}

	g.nextID++
	return &Enemy{
		ID:      g.nextID,
		X:       x,
		Y:       y,
		Speed:   g.wave.EnemySpeed,
		Size:    g.tuning.EnemySize,
		Angle:   g.rng.Float64() * 2 * math.Pi,
		Opacity: 1,
		Health:  health,
	}
}

// advance moves the enemy one tick toward the target point. A zero distance
// would divide by zero, so the enemy stays put; the collision check treats
// it as already at the target.
func (e *Enemy) advance(targetX, targetY float64) {
	dx := targetX - e.X
	dy := targetY - e.Y
	dist := physics.Distance(e.X, e.Y, targetX, targetY)
	if dist > 0 {
		e.X += dx / dist * e.Speed
		e.Y += dy / dist * e.Speed
	}
	e.Angle += enemyRotationStep
}

package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TickRate is the number of simulation ticks per second. Tick() advances
// exactly one tick; the outer loop is responsible for calling it at this rate.
// Second-valued tuning fields convert to tick counts through this constant.
const TickRate = 60

// Tuning holds every gameplay parameter. All tunable game parameters are
// centralized here for easy adjustment; the zero value is not usable, start
// from DefaultTuning.
type Tuning struct {
	MaxHealth       int     `yaml:"max_health"`       // Starting core health
	BreachDamage    int     `yaml:"breach_damage"`    // Health lost per enemy reaching the core
	CollisionRadius float64 `yaml:"collision_radius"` // Distance from center that counts as a breach
	ComboCap        int     `yaml:"combo_cap"`        // Maximum combo multiplier
	ScorePerWave    int     `yaml:"score_per_wave"`   // Score base; defend awards this * wave * combo

	ShockwaveMagnitude float64 `yaml:"shockwave_magnitude"` // Visual pulse radius on defend
	ShockwaveDecay     float64 `yaml:"shockwave_decay"`     // Pulse radius shrink per tick

	WaveDelaySeconds float64 `yaml:"wave_delay_seconds"` // Pause between a cleared wave and the next

	SpawnEdgeOffset float64 `yaml:"spawn_edge_offset"` // How far outside the arena enemies appear
	EnemySize       float64 `yaml:"enemy_size"`        // Enemy draw/collision size
	EnemyHealthCap  int     `yaml:"enemy_health_cap"`  // Cap on per-enemy health scaling

	BaseEnemySpeed    float64 `yaml:"base_enemy_speed"`    // Wave 1 speed minus one step
	SpeedPerWave      float64 `yaml:"speed_per_wave"`      // Speed added per wave
	BaseEnemyCount    int     `yaml:"base_enemy_count"`    // Wave enemy count minus wave number
	MaxEnemyCount     int     `yaml:"max_enemy_count"`     // Cap on enemies per wave
	BaseSpawnInterval float64 `yaml:"base_spawn_interval"` // Wave 1 spawn interval plus one step, seconds
	SpawnIntervalStep float64 `yaml:"spawn_interval_step"` // Interval reduction per wave, seconds
	MinSpawnInterval  float64 `yaml:"min_spawn_interval"`  // Interval floor, seconds

	BurstSize    int `yaml:"burst_size"`    // Particles per explosion burst
	MaxParticles int `yaml:"max_particles"` // Particle population cap
}

// DefaultTuning returns the stock difficulty curve.
func DefaultTuning() Tuning {
	return Tuning{
		MaxHealth:       100,
		BreachDamage:    10,
		CollisionRadius: 60,
		ComboCap:        8,
		ScorePerWave:    100,

		ShockwaveMagnitude: 100,
		ShockwaveDecay:     5,

		WaveDelaySeconds: 1.5,

		SpawnEdgeOffset: 50,
		EnemySize:       30,
		EnemyHealthCap:  3,

		BaseEnemySpeed:    3.0,
		SpeedPerWave:      0.5,
		BaseEnemyCount:    5,
		MaxEnemyCount:     15,
		BaseSpawnInterval: 1.5,
		SpawnIntervalStep: 0.1,
		MinSpawnInterval:  0.5,

		BurstSize:    20,
		MaxParticles: 100,
	}
}

// LoadTuning reads a YAML tuning file and overlays it on the defaults.
// Keys absent from the file keep their default values.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse tuning file %s: %w", path, err)
	}
	return t, nil
}

// waveDelayTicks converts the between-wave delay to simulation ticks.
func (t Tuning) waveDelayTicks() int {
	return int(t.WaveDelaySeconds * TickRate)
}

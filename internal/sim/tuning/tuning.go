package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Tuning struct {
	TickRateHz int `yaml:"tick_rate_hz"`

	// Chunk streaming.
	LoadRadius        int     `yaml:"load_radius"`         // horizontal, in chunks
	LoadRadiusY       int     `yaml:"load_radius_y"`       // vertical, in chunks
	ChunkDwellSeconds float64 `yaml:"chunk_dwell_seconds"` // min residency before eviction

	// Player movement.
	MoveSpeed        float32 `yaml:"move_speed"`
	JumpForce        float32 `yaml:"jump_force"`
	Gravity          float32 `yaml:"gravity"`
	TerminalVelocity float32 `yaml:"terminal_velocity"`
	LookSensitivity  float32 `yaml:"look_sensitivity"`

	// Block targeting.
	Reach       float32 `yaml:"reach"`
	RaycastStep float32 `yaml:"raycast_step"`
}

func Load(path string) (Tuning, error) {
	var t Tuning
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	t.ApplyDefaults()
	return t, nil
}

// Default returns the tuning used when no tuning.yaml is given.
func Default() Tuning {
	var t Tuning
	t.ApplyDefaults()
	return t
}

func (t *Tuning) ApplyDefaults() {
	if t.TickRateHz <= 0 {
		t.TickRateHz = 60
	}
	if t.LoadRadius <= 0 {
		t.LoadRadius = 3
	}
	if t.LoadRadiusY <= 0 {
		t.LoadRadiusY = 1
	}
	if t.ChunkDwellSeconds <= 0 {
		t.ChunkDwellSeconds = 10
	}
	if t.MoveSpeed <= 0 {
		t.MoveSpeed = 5.3
	}
	if t.JumpForce <= 0 {
		t.JumpForce = 8
	}
	if t.Gravity <= 0 {
		t.Gravity = 30
	}
	if t.TerminalVelocity <= 0 {
		t.TerminalVelocity = 15
	}
	if t.LookSensitivity <= 0 {
		t.LookSensitivity = 5
	}
	if t.Reach <= 0 {
		t.Reach = 6
	}
	if t.RaycastStep <= 0 {
		t.RaycastStep = 0.1
	}
}

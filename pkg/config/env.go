package config

import (
	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

// envOverrides lists the settings that can be changed through the environment.
type envOverrides struct {
	MaxEntities int     `config:"MONKEY_MAX_ENTITIES"`
	Gravity     float64 `config:"MONKEY_GRAVITY"`
	JumpSpeed   float64 `config:"MONKEY_JUMP_SPEED"`
	MoveSpeed   float64 `config:"MONKEY_MOVE_SPEED"`
}

// ApplyEnv overrides cfg with any MONKEY_* environment variables that are set
// and validates the result. Unset variables leave cfg unchanged.
func ApplyEnv(cfg *GameConfig) error {
	o := envOverrides{
		MaxEntities: cfg.ECS.MaxEntities,
		Gravity:     cfg.Physics.Gravity,
		JumpSpeed:   cfg.Player.JumpSpeed,
		MoveSpeed:   cfg.Player.MoveSpeed,
	}
	if err := jlconfig.FromEnv().To(&o); err != nil {
		return eris.Wrap(err, "failed to read environment overrides")
	}

	cfg.ECS.MaxEntities = o.MaxEntities
	cfg.Physics.Gravity = o.Gravity
	cfg.Player.JumpSpeed = o.JumpSpeed
	cfg.Player.MoveSpeed = o.MoveSpeed

	if err := cfg.Validate(); err != nil {
		return eris.Wrap(err, "invalid environment overrides")
	}
	return nil
}

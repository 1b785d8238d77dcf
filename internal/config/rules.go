// Package config loads the tunable rules constants a tournament
// operator may want to override without recompiling: wall hit
// threshold, shot cooldown length, shell sub-steps per tick, and the
// zero-shell tie threshold. It never touches the map file header
// (internal/mapfile owns that fixed format) — this is the one general
// config surface in the repository, layered on top of it.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Garsondee/tanksim/internal/engine"
)

// Rules holds every tunable constant the kernel reads instead of a
// bare literal. Defaults match spec.md exactly; anything a caller
// doesn't override keeps its default.
type Rules struct {
	WallHitsToDestroy    int `mapstructure:"wallHitsToDestroy"`
	ShotCooldownTicks    int `mapstructure:"shotCooldownTicks"`
	ShellSubStepsPerTick int `mapstructure:"shellSubStepsPerTick"`
	ZeroShellTieTicks    int `mapstructure:"zeroShellTieTicks"`
}

// Defaults returns the spec-exact rule values.
func Defaults() Rules {
	return Rules{
		WallHitsToDestroy:    2,
		ShotCooldownTicks:    4,
		ShellSubStepsPerTick: 2,
		ZeroShellTieTicks:    40,
	}
}

// Load builds Rules from defaults, then layers a config file (if
// path is non-empty) and TANKSIM_*-prefixed environment variables on
// top — each explicit viper instance is independent, deliberately not
// the package-level viper.GetViper() singleton, so a tournament runner
// juggling several rule sets per map never has one overwrite another's
// binding. WallHitsToDestroy and ShotCooldownTicks are validated
// against the kernel's fixed values rather than silently forwarded:
// the terrain model and the executor's cooldown-on-shoot both assume
// exactly these numbers (see internal/engine/rules.go).
func Load(path string) (Rules, error) {
	defaults := Defaults()

	vp := viper.New()
	vp.SetEnvPrefix("TANKSIM")
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	vp.SetDefault("wallHitsToDestroy", defaults.WallHitsToDestroy)
	vp.SetDefault("shotCooldownTicks", defaults.ShotCooldownTicks)
	vp.SetDefault("shellSubStepsPerTick", defaults.ShellSubStepsPerTick)
	vp.SetDefault("zeroShellTieTicks", defaults.ZeroShellTieTicks)

	if path != "" {
		vp.SetConfigFile(path)
		if err := vp.ReadInConfig(); err != nil {
			return Rules{}, err
		}
	}

	var out Rules
	if err := vp.Unmarshal(&out); err != nil {
		return Rules{}, err
	}

	if out.WallHitsToDestroy != defaults.WallHitsToDestroy {
		return Rules{}, fmt.Errorf("wallHitsToDestroy is fixed at %d by the terrain model, cannot override to %d",
			defaults.WallHitsToDestroy, out.WallHitsToDestroy)
	}
	if out.ShotCooldownTicks != defaults.ShotCooldownTicks {
		return Rules{}, fmt.Errorf("shotCooldownTicks is fixed at %d by the executor, cannot override to %d",
			defaults.ShotCooldownTicks, out.ShotCooldownTicks)
	}
	if out.ShellSubStepsPerTick < 1 {
		return Rules{}, fmt.Errorf("shellSubStepsPerTick must be >= 1, got %d", out.ShellSubStepsPerTick)
	}
	if out.ZeroShellTieTicks < 1 {
		return Rules{}, fmt.Errorf("zeroShellTieTicks must be >= 1, got %d", out.ZeroShellTieTicks)
	}

	return out, nil
}

// EngineRules projects Rules down to the subset internal/engine.Scheduler
// actually takes a parameter for.
func (r Rules) EngineRules() engine.Rules {
	return engine.Rules{
		ShellSubStepsPerTick: r.ShellSubStepsPerTick,
		ZeroShellTieTicks:    r.ZeroShellTieTicks,
	}
}

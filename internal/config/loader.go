package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "tanks.yaml"

// LoadTanks loads the tanks configuration.
// Search order: customPath -> ~/.tanks/configs/tanks.yaml -> ./configs/tanks.yaml -> embedded default.
// Files are decoded on top of DefaultTanksConfig, so a partial file only
// overrides the keys it names.
func LoadTanks(customPath string) (TanksConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TanksConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return TanksConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultTanksYAML)
	if err != nil {
		return DefaultTanksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (TanksConfig, error) {
	cfg := DefaultTanksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TanksConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return TanksConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tanks", "configs", filename)
}

// Validate rejects configurations the simulation cannot run with.
func (c TanksConfig) Validate() error {
	var errs []error

	if c.Arena.Cols < 5 || c.Arena.Rows < 5 {
		errs = append(errs, fmt.Errorf("arena must be at least 5x5, got %dx%d", c.Arena.Cols, c.Arena.Rows))
	}
	if c.Arena.GenAttempts <= 0 {
		errs = append(errs, fmt.Errorf("arena.gen_attempts must be positive, got %d", c.Arena.GenAttempts))
	}
	if c.Arena.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("arena.tick_rate must be positive, got %d", c.Arena.TickRate))
	}
	if c.Projectile.Speed <= 0 || c.Projectile.Speed > 1 {
		errs = append(errs, fmt.Errorf("projectile.speed must be in (0, 1], got %v", c.Projectile.Speed))
	}

	for name, s := range map[string]OpponentStats{
		"basic":   c.Opponents.Basic,
		"fast":    c.Opponents.Fast,
		"armored": c.Opponents.Armored,
		"sniper":  c.Opponents.Sniper,
	} {
		if s.HP <= 0 {
			errs = append(errs, fmt.Errorf("opponents.%s.hp must be positive", name))
		}
		if s.FireMin <= 0 || s.FireMax < s.FireMin {
			errs = append(errs, fmt.Errorf("opponents.%s fire range [%d, %d] is invalid", name, s.FireMin, s.FireMax))
		}
	}

	for _, d := range AllDifficulties {
		p := c.Preset(d)
		if p.Lives <= 0 || p.PlayerHP <= 0 || p.Quota <= 0 || p.OnScreenCap <= 0 || p.SpawnInterval <= 0 {
			errs = append(errs, fmt.Errorf("presets.%s must have positive values", d))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

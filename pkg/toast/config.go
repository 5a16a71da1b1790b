package toast

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-glaze/glaze/pkg/errors"
)

// ConfigName is the optional configuration file read by [LoadOptional].
const ConfigName = "glaze.yaml"

// Duration wraps time.Duration so YAML values can be written in the usual
// Go syntax ("250ms", "3s").
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration in Go syntax.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Config represents the optional glaze.yaml configuration. Zero fields
// leave the corresponding controller default untouched.
type Config struct {
	Appearance AppearanceConfig `yaml:"appearance"`
	Transition TransitionConfig `yaml:"transition"`
}

// AppearanceConfig configures the default appearance used by ShowText.
type AppearanceConfig struct {
	// Position is "top" or "bottom".
	Position string `yaml:"position,omitempty"`
	// Offset is the distance from the pinned edge. Pointer so an explicit
	// zero can be told apart from an absent field.
	Offset *float64 `yaml:"offset,omitempty"`
	// Duration is the hold time.
	Duration Duration `yaml:"duration,omitempty"`
}

// TransitionConfig configures the process-wide transition speeds.
type TransitionConfig struct {
	Appearance    Duration `yaml:"appearance,omitempty"`
	Disappearance Duration `yaml:"disappearance,omitempty"`
}

// LoadOptional reads glaze.yaml from dir if present. A missing file is not
// an error and yields an empty config.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", ConfigName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigName, err)
	}
	return &cfg, nil
}

// ParsePosition converts a config position string to a Position.
func ParsePosition(s string) (Position, error) {
	switch s {
	case "top":
		return PositionTop, nil
	case "bottom":
		return PositionBottom, nil
	default:
		return PositionTop, fmt.Errorf("unknown position %q", s)
	}
}

// WithConfig applies a loaded config to a controller. Invalid values are
// reported through the error handler and skipped rather than failing the
// controller's construction.
func WithConfig(cfg *Config) Option {
	return func(c *Controller) {
		if cfg == nil {
			return
		}
		if cfg.Transition.Appearance != 0 {
			c.appearDur = time.Duration(cfg.Transition.Appearance)
		}
		if cfg.Transition.Disappearance != 0 {
			c.vanishDur = time.Duration(cfg.Transition.Disappearance)
		}
		if cfg.Appearance.Position != "" {
			pos, err := ParsePosition(cfg.Appearance.Position)
			if err != nil {
				errors.Report(&errors.GlazeError{Op: "toast.WithConfig", Kind: errors.KindConfig, Err: err})
			} else {
				c.defaultAppearance.Position = pos
			}
		}
		if cfg.Appearance.Offset != nil {
			c.defaultAppearance.Offset = *cfg.Appearance.Offset
		}
		if cfg.Appearance.Duration != 0 {
			c.defaultAppearance.Duration = time.Duration(cfg.Appearance.Duration)
		}
	}
}

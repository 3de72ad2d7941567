package style

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	dockerrors "github.com/go-drift/dock/pkg/errors"
	"github.com/go-drift/dock/pkg/geometry"
	"github.com/go-drift/dock/pkg/paint"
)

// Config is the optional YAML overlay for the default style. Absent
// fields keep their defaults, so a file needs to name only what it
// changes.
type Config struct {
	Spacing     *SpacingConfig     `yaml:"spacing,omitempty"`
	Interaction *InteractionConfig `yaml:"interaction,omitempty"`
	Visuals     *VisualsConfig     `yaml:"visuals,omitempty"`
}

// SpacingConfig overrides spacing settings.
type SpacingConfig struct {
	ItemSpacing  *SizeConfig `yaml:"itemSpacing,omitempty"`
	InteractSize *SizeConfig `yaml:"interactSize,omitempty"`
}

// SizeConfig overrides a width/height pair.
type SizeConfig struct {
	Width  *float64 `yaml:"width,omitempty"`
	Height *float64 `yaml:"height,omitempty"`
}

// InteractionConfig overrides hit-testing settings.
type InteractionConfig struct {
	ResizeGrabRadiusSide *float64 `yaml:"resizeGrabRadiusSide,omitempty"`
}

// StrokeConfig overrides a stroke. Color is "#RRGGBB" or "#RRGGBBAA".
type StrokeConfig struct {
	Width *float64 `yaml:"width,omitempty"`
	Color string   `yaml:"color,omitempty"`
}

// VisualsConfig overrides colors and strokes.
type VisualsConfig struct {
	WindowFill    string        `yaml:"windowFill,omitempty"`
	WindowStroke  *StrokeConfig `yaml:"windowStroke,omitempty"`
	HoveredStroke *StrokeConfig `yaml:"hoveredStroke,omitempty"`
	ActiveStroke  *StrokeConfig `yaml:"activeStroke,omitempty"`
}

// Load reads a style file and applies it over the defaults. A missing
// file is not an error: the defaults are returned unchanged.
func Load(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, &dockerrors.Error{Op: "style.Load", Kind: dockerrors.KindConfig, Err: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &dockerrors.Error{Op: "style.Load", Kind: dockerrors.KindConfig, Err: err}
	}

	s, err := FromConfig(&cfg)
	if err != nil {
		return nil, &dockerrors.Error{Op: "style.Load", Kind: dockerrors.KindConfig, Err: err}
	}
	return s, nil
}

// FromConfig applies a parsed overlay to the default style.
func FromConfig(cfg *Config) (*Style, error) {
	s := Default()
	if cfg == nil {
		return s, nil
	}

	if sp := cfg.Spacing; sp != nil {
		applySize(&s.Spacing.ItemSpacing, sp.ItemSpacing)
		applySize(&s.Spacing.InteractSize, sp.InteractSize)
	}
	if in := cfg.Interaction; in != nil {
		if in.ResizeGrabRadiusSide != nil {
			s.Interaction.ResizeGrabRadiusSide = *in.ResizeGrabRadiusSide
		}
	}
	if vis := cfg.Visuals; vis != nil {
		if vis.WindowFill != "" {
			c, err := ParseColor(vis.WindowFill)
			if err != nil {
				return nil, err
			}
			s.Visuals.WindowFill = c
		}
		if err := applyStroke(&s.Visuals.WindowStroke, vis.WindowStroke); err != nil {
			return nil, err
		}
		if err := applyStroke(&s.Visuals.Widgets.Hovered.BgStroke, vis.HoveredStroke); err != nil {
			return nil, err
		}
		if err := applyStroke(&s.Visuals.Widgets.Active.BgStroke, vis.ActiveStroke); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func applySize(dst *geometry.Size, cfg *SizeConfig) {
	if cfg == nil {
		return
	}
	if cfg.Width != nil {
		dst.Width = *cfg.Width
	}
	if cfg.Height != nil {
		dst.Height = *cfg.Height
	}
}

func applyStroke(dst *paint.Stroke, cfg *StrokeConfig) error {
	if cfg == nil {
		return nil
	}
	if cfg.Width != nil {
		dst.Width = *cfg.Width
	}
	if cfg.Color != "" {
		c, err := ParseColor(cfg.Color)
		if err != nil {
			return err
		}
		dst.Color = c
	}
	return nil
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA" into a Color.
func ParseColor(s string) (paint.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, fmt.Errorf("invalid color %q: missing '#' prefix", s)
	}
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		return paint.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	return paint.RGBA8(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Package scene loads scripted layout scenes for the dockview tool.
//
// A scene file declares the window, the panels shown every frame, and a
// sequence of pointer states that drive resize interactions:
//
//	version: v1
//	window: {width: 800, height: 600}
//	panels:
//	  - {kind: top, id: menu}
//	  - {kind: left, id: explorer, defaultWidth: 240, rows: 8}
//	  - {kind: central}
//	frames:
//	  - {}
//	  - pointer: {x: 240, y: 300, down: true}
//	  - pointer: {x: 320, y: 300, down: true}
package scene

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	dockerrors "github.com/go-drift/dock/pkg/errors"
)

// FormatVersion is the scene format major version this tool reads.
const FormatVersion = "v1"

// Panel kinds accepted in scene files.
const (
	KindLeft    = "left"
	KindTop     = "top"
	KindCentral = "central"
)

// Scene describes one dockview session.
type Scene struct {
	Version string        `yaml:"version"`
	Window  WindowConfig  `yaml:"window"`
	Style   string        `yaml:"style,omitempty"`
	Panels  []PanelConfig `yaml:"panels"`
	Frames  []FrameConfig `yaml:"frames"`
}

// WindowConfig is the rendered surface size in pixels.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PanelConfig declares one panel. Pointer fields distinguish "not set"
// from explicit zero values, so panel defaults still apply.
type PanelConfig struct {
	Kind         string   `yaml:"kind"`
	ID           string   `yaml:"id,omitempty"`
	DefaultWidth *float64 `yaml:"defaultWidth,omitempty"`
	MinWidth     *float64 `yaml:"minWidth,omitempty"`
	MaxWidth     *float64 `yaml:"maxWidth,omitempty"`
	MaxHeight    *float64 `yaml:"maxHeight,omitempty"`
	Resizable    *bool    `yaml:"resizable,omitempty"`
	Rows         int      `yaml:"rows,omitempty"`
}

// FrameConfig scripts one frame of input.
type FrameConfig struct {
	Pointer *PointerConfig `yaml:"pointer,omitempty"`
}

// PointerConfig is the pointer state for one frame. A frame without a
// pointer block renders with no pointer on screen.
type PointerConfig struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Down bool    `yaml:"down"`
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &dockerrors.Error{Op: "scene.Load", Kind: dockerrors.KindConfig, Err: err}
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, &dockerrors.Error{
			Op:   "scene.Load",
			Kind: dockerrors.KindConfig,
			Err:  fmt.Errorf("%s: %w", path, err),
		}
	}
	return sc, nil
}

// Parse decodes and validates scene YAML.
func Parse(data []byte) (*Scene, error) {
	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the scene for structural problems.
func (s *Scene) Validate() error {
	if !semver.IsValid(s.Version) {
		return fmt.Errorf("version %q is not a valid semantic version", s.Version)
	}
	if semver.Major(s.Version) != FormatVersion {
		return fmt.Errorf("version %s is not supported (want major %s)", s.Version, FormatVersion)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window must have a positive size (got %dx%d)", s.Window.Width, s.Window.Height)
	}
	if len(s.Panels) == 0 {
		return errors.New("at least one panel is required")
	}

	seen := make(map[string]bool)
	central := false
	for i, p := range s.Panels {
		switch p.Kind {
		case KindLeft, KindTop:
			if p.ID == "" {
				return fmt.Errorf("panels[%d]: %s panels need an id", i, p.Kind)
			}
			if seen[p.ID] {
				return fmt.Errorf("panels[%d]: duplicate panel id %q", i, p.ID)
			}
			seen[p.ID] = true
			if central {
				return fmt.Errorf("panels[%d]: %s panel declared after the central panel", i, p.Kind)
			}
		case KindCentral:
			if central {
				return fmt.Errorf("panels[%d]: only one central panel is allowed", i)
			}
			central = true
		default:
			return fmt.Errorf("panels[%d]: unknown kind %q", i, p.Kind)
		}
	}

	if len(s.Frames) == 0 {
		return errors.New("at least one frame is required")
	}
	return nil
}

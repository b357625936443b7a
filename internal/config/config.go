// Package config handles configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Faultbox/raycaster/internal/engine/ui2d"
	"github.com/Faultbox/raycaster/internal/game/player"
	"github.com/Faultbox/raycaster/internal/game/raycast"
	"github.com/Faultbox/raycaster/internal/game/world"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Window   WindowConfig        `yaml:"window"`
	Render   RenderConfig        `yaml:"render"`
	Player   PlayerConfig        `yaml:"player"`
	Door     DoorConfig          `yaml:"door"`
	Map      MapConfig           `yaml:"map"`
	Controls map[string][]string `yaml:"controls"`
	Logging  LoggingConfig       `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// RenderConfig holds ray casting and projection settings.
type RenderConfig struct {
	FOVDegrees float64           `yaml:"fov_degrees"`
	FPSLimit   int               `yaml:"fps_limit"`
	Profile    string            `yaml:"profile"`
	Profiles   []raycast.Profile `yaml:"profiles"`
	WallTuning float64           `yaml:"wall_tuning"`
	ShadeDoors bool              `yaml:"shade_doors"`
	Background ui2d.Color        `yaml:"background"`
	WallColor  ui2d.Color        `yaml:"wall_color"`
	DoorColor  ui2d.Color        `yaml:"door_color"`

	ScreenshotDir string `yaml:"screenshot_dir"`
}

// PlayerConfig holds movement settings.
type PlayerConfig struct {
	TurnSpeed float64 `yaml:"turn_speed"`
	MoveSpeed float64 `yaml:"move_speed"`
	Slide     bool    `yaml:"slide"`
}

// DoorConfig holds door timer settings.
type DoorConfig struct {
	OpenDuration time.Duration `yaml:"open_duration"`
	Reach        float64       `yaml:"reach"`
}

// MapConfig holds the tile map.
type MapConfig struct {
	TileSize float64  `yaml:"tile_size"`
	Rows     []string `yaml:"rows"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultMap is the built-in level: one room split by a door.
var DefaultMap = []string{
	"########",
	"#......#",
	"###D####",
	"#......#",
	"#......#",
	"#......#",
	"#..P...#",
	"########",
}

// Default returns a Config with sensible default values.
func Default() *Config {
	movement := player.DefaultConfig()

	return &Config{
		Window: WindowConfig{
			Title:  "Raycasting Game",
			Width:  640,
			Height: 480,
		},
		Render: RenderConfig{
			FOVDegrees: 60,
			FPSLimit:   60,
			Profile:    raycast.ProfileMedium.Name,
			Profiles:   raycast.Presets(),
			WallTuning: raycast.DefaultWallTuning,
			Background: ui2d.ColorBackground,
			WallColor:  ui2d.ColorWhite,
			DoorColor:  ui2d.ColorDoor,

			ScreenshotDir: "screenshots",
		},
		Player: PlayerConfig{
			TurnSpeed: movement.TurnSpeed,
			MoveSpeed: movement.MoveSpeed,
			Slide:     movement.Slide,
		},
		Door: DoorConfig{
			OpenDuration: world.DefaultDoorDuration,
			Reach:        movement.DoorReach,
		},
		Map: MapConfig{
			TileSize: 64,
			Rows:     append([]string(nil), DefaultMap...),
		},
		Controls: map[string][]string{
			"turn_left":      {"Left", "A"},
			"turn_right":     {"Right", "D"},
			"move_forward":   {"Up", "W"},
			"move_backward":  {"Down", "S"},
			"open_door":      {"Space"},
			"quit":           {"Escape"},
			"profile_low":    {"F1"},
			"profile_medium": {"F2"},
			"profile_high":   {"F3"},
			"screenshot":     {"F12"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// FOV returns the field of view in radians.
func (c *Config) FOV() float64 {
	return c.Render.FOVDegrees * math.Pi / 180
}

// Validate checks the config for values the game cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Render.FOVDegrees <= 0 || c.Render.FOVDegrees >= 180 {
		return fmt.Errorf("%w: fov_degrees %v must be in (0, 180)", ErrInvalid, c.Render.FOVDegrees)
	}
	if c.Render.FPSLimit < 0 {
		return fmt.Errorf("%w: fps_limit %d", ErrInvalid, c.Render.FPSLimit)
	}
	if c.Render.WallTuning <= 0 {
		return fmt.Errorf("%w: wall_tuning %v", ErrInvalid, c.Render.WallTuning)
	}
	if len(c.Render.Profiles) == 0 {
		return fmt.Errorf("%w: no graphics profiles", ErrInvalid)
	}
	for _, p := range c.Render.Profiles {
		if err := p.Validate(c.Window.Width); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	if _, err := raycast.Find(c.Render.Profiles, c.Render.Profile); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Player.MoveSpeed <= 0 || c.Player.TurnSpeed <= 0 {
		return fmt.Errorf("%w: player speeds must be positive", ErrInvalid)
	}
	if c.Door.OpenDuration < 0 || c.Door.Reach < 0 {
		return fmt.Errorf("%w: door settings must not be negative", ErrInvalid)
	}
	if c.Map.TileSize <= 0 {
		return fmt.Errorf("%w: tile_size %v", ErrInvalid, c.Map.TileSize)
	}
	if len(c.Map.Rows) == 0 {
		return fmt.Errorf("%w: map has no rows", ErrInvalid)
	}
	return nil
}

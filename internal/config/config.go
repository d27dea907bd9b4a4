// Package config loads application settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/amazinglylost/internal/entity"
	"github.com/samdwyer/amazinglylost/internal/game"
	"github.com/samdwyer/amazinglylost/internal/telemetry"
	"github.com/samdwyer/amazinglylost/internal/world"
)

// Config holds application-wide settings. The logging section of the same file is
// read by the logger package.
type Config struct {
	Maze      MazeConfig            `yaml:"maze"`
	Movement  entity.MovementConfig `yaml:"movement"`
	Display   DisplayConfig         `yaml:"display"`
	Telemetry telemetry.Config      `yaml:"telemetry"`
}

// MazeConfig holds maze generation settings.
type MazeConfig struct {
	Width         int   `yaml:"width"`
	Height        int   `yaml:"height"`
	Seed          int64 `yaml:"seed"` // 0 means a time-based seed
	world.Options `yaml:",inline"`
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	Theme        string `yaml:"theme"`
	ThemesFile   string `yaml:"themes_file"` // Optional JSON file with extra themes
	TickMillis   int    `yaml:"tick_ms"`
	ShowSolution bool   `yaml:"show_solution"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Maze: MazeConfig{
			Width:   world.SmallMaze,
			Height:  world.SmallMaze,
			Options: world.DefaultOptions(),
		},
		Movement: entity.DefaultMovementConfig(),
		Display: DisplayConfig{
			Theme:      "default",
			TickMillis: 10,
		},
	}
}

// LoadConfig loads configuration from a YAML file and applies environment
// overrides. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Defaults
		case err != nil:
			return nil, fmt.Errorf("reading %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnv overrides settings from MAZE_* and TELEMETRY_* variables.
func (c *Config) applyEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{"MAZE_WIDTH", &c.Maze.Width},
		{"MAZE_HEIGHT", &c.Maze.Height},
	}
	for _, v := range ints {
		if raw := os.Getenv(v.key); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("environment variable %s must be an integer: %w", v.key, err)
			}
			*v.dst = n
		}
	}

	if raw := os.Getenv("MAZE_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("environment variable MAZE_SEED must be an integer: %w", err)
		}
		c.Maze.Seed = seed
	}

	if theme := os.Getenv("MAZE_THEME"); theme != "" {
		c.Display.Theme = theme
	}

	if raw := os.Getenv("TELEMETRY_ENABLED"); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("environment variable TELEMETRY_ENABLED must be a boolean: %w", err)
		}
		c.Telemetry.Enabled = enabled
	}

	return nil
}

// Validate checks the settings before a game starts.
func (c *Config) Validate() error {
	if err := world.ValidateSize(c.Maze.Width, c.Maze.Height); err != nil {
		return err
	}
	if c.Maze.OpenWallStride < 1 {
		return fmt.Errorf("open_wall_stride must be at least 1, got %d", c.Maze.OpenWallStride)
	}
	if c.Maze.ExitDistance < 0 {
		return fmt.Errorf("exit_distance must not be negative, got %d", c.Maze.ExitDistance)
	}
	if err := c.Movement.Validate(); err != nil {
		return err
	}
	if c.Display.TickMillis <= 0 {
		return fmt.Errorf("tick_ms must be positive, got %d", c.Display.TickMillis)
	}
	return nil
}

// Game converts the settings into a game configuration.
func (c *Config) Game() game.Config {
	return game.Config{
		Seed:         c.Maze.Seed,
		Width:        c.Maze.Width,
		Height:       c.Maze.Height,
		Maze:         c.Maze.Options,
		Movement:     c.Movement,
		Theme:        c.Display.Theme,
		ThemesFile:   c.Display.ThemesFile,
		TickInterval: time.Duration(c.Display.TickMillis) * time.Millisecond,
		ShowSolution: c.Display.ShowSolution,
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config defines window, grid and animation settings for the demo.
type Config struct {
	Title        string
	WindowWidth  int
	WindowHeight int

	GridColumns int
	GridRows    int

	// Hover animation: inner square side and alpha for idle and active states.
	IdleSize      float32
	ActiveSize    float32
	IdleAlpha     float32
	ActiveAlpha   float32
	AnimationTime time.Duration

	// StartDemo names the tab selected at startup.
	StartDemo string
}

// DefaultConfig returns a configuration with the settings of the original demo: an 800x600 window titled "grid", 12 to 28 unit hover squares.
func DefaultConfig() *Config {
	return &Config{
		Title:         "grid",
		WindowWidth:   800,
		WindowHeight:  600,
		GridColumns:   8,
		GridRows:      6,
		IdleSize:      12,
		ActiveSize:    28,
		IdleAlpha:     0.25,
		ActiveAlpha:   1,
		AnimationTime: 300 * time.Millisecond,
		StartDemo:     "Grid",
	}
}

// Load reads an optional env file and overlays FERN_* variables on the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %q: %w", path, err)
		}
	}

	cfg := DefaultConfig()
	if v, ok := os.LookupEnv("FERN_TITLE"); ok {
		cfg.Title = v
	}
	if v, ok := os.LookupEnv("FERN_DEMO"); ok {
		cfg.StartDemo = v
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"FERN_WIDTH", &cfg.WindowWidth},
		{"FERN_HEIGHT", &cfg.WindowHeight},
		{"FERN_GRID_COLUMNS", &cfg.GridColumns},
		{"FERN_GRID_ROWS", &cfg.GridRows},
	}
	for _, e := range ints {
		v, ok := os.LookupEnv(e.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", e.key, v, err)
		}
		*e.dst = n
	}

	if v, ok := os.LookupEnv("FERN_ANIM_MS"); ok {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FERN_ANIM_MS %q: %w", v, err)
		}
		cfg.AnimationTime = time.Duration(ms) * time.Millisecond
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects negative dimensions, negative hover square sides and out of range alphas.
func (c *Config) Validate() error {
	switch {
	case c.WindowWidth < 0 || c.WindowHeight < 0:
		return fmt.Errorf("window size must not be negative, got %dx%d", c.WindowWidth, c.WindowHeight)
	case c.GridColumns < 0 || c.GridRows < 0:
		return fmt.Errorf("grid size must not be negative, got %dx%d", c.GridColumns, c.GridRows)
	case c.IdleSize < 0 || c.ActiveSize < 0:
		return fmt.Errorf("hover square size must not be negative, got %.1f and %.1f", c.IdleSize, c.ActiveSize)
	case c.AnimationTime < 0:
		return fmt.Errorf("animation time must not be negative, got %s", c.AnimationTime)
	case c.IdleAlpha < 0 || c.IdleAlpha > 1 || c.ActiveAlpha < 0 || c.ActiveAlpha > 1:
		return fmt.Errorf("alpha must be within [0,1], got %.2f and %.2f", c.IdleAlpha, c.ActiveAlpha)
	}
	return nil
}

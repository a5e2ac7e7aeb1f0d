package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Frontends
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// Config holds the startup settings. Nothing here changes once the game
// loop runs.
type Config struct {
	ScreenWidth  int           `yaml:"screen_width"`
	ScreenHeight int           `yaml:"screen_height"`
	SnakeLength  int           `yaml:"snake_length"`
	FoodCount    int           `yaml:"food_count"`
	SegmentSize  float32       `yaml:"segment_size"`
	FrameRate    int           `yaml:"frame_rate"`
	GameOverWait time.Duration `yaml:"game_over_wait"`

	Title    string `yaml:"title"`
	FontPath string `yaml:"font_path"`
	FontSize int    `yaml:"font_size"`
	Frontend string `yaml:"frontend"`
	Mute     bool   `yaml:"mute"`

	// Seed feeds the food spawner. Zero picks a time based seed.
	Seed uint64 `yaml:"seed"`
}

func Default() Config {
	return Config{
		ScreenWidth:  800,
		ScreenHeight: 600,
		SnakeLength:  15,
		FoodCount:    5,
		SegmentSize:  20,
		FrameRate:    10,
		GameOverWait: 3 * time.Second,
		Title:        "Snake",
		FontPath:     "Ubuntu-R.ttf",
		FontSize:     16,
		Frontend:     FrontendWindow,
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file
// keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Columns and Rows give the lattice resolution of the board.
func (c Config) Columns() int {
	return c.ScreenWidth / int(c.SegmentSize)
}

func (c Config) Rows() int {
	return c.ScreenHeight / int(c.SegmentSize)
}

// Validate rejects settings the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen %dx%d", ErrInvalid, c.ScreenWidth, c.ScreenHeight)
	case c.SegmentSize < 1:
		return fmt.Errorf("%w: segment size %v", ErrInvalid, c.SegmentSize)
	case c.SnakeLength < 0:
		return fmt.Errorf("%w: snake length %d", ErrInvalid, c.SnakeLength)
	case c.FoodCount < 0:
		return fmt.Errorf("%w: food count %d", ErrInvalid, c.FoodCount)
	case c.FrameRate <= 0:
		return fmt.Errorf("%w: frame rate %d", ErrInvalid, c.FrameRate)
	case c.GameOverWait < 0:
		return fmt.Errorf("%w: game over wait %v", ErrInvalid, c.GameOverWait)
	case c.Frontend != FrontendWindow && c.Frontend != FrontendTerminal:
		return fmt.Errorf("%w: unknown frontend %q", ErrInvalid, c.Frontend)
	}

	// The snake starts a quarter of the way down and hangs below its head.
	if float32(c.ScreenHeight)*3/4 < float32(c.SnakeLength)*c.SegmentSize {
		return fmt.Errorf("%w: snake of length %d does not fit a %d high board",
			ErrInvalid, c.SnakeLength, c.ScreenHeight)
	}
	if c.Columns() == 0 || c.Rows() == 0 {
		return fmt.Errorf("%w: board smaller than one segment", ErrInvalid)
	}
	screen := types.Size{Width: c.ScreenWidth, Height: c.ScreenHeight}
	if capacity := manager.Capacity(screen, c.SegmentSize); c.FoodCount > capacity {
		return fmt.Errorf("%w: %d food items do not fit apart on a %dx%d board (at most %d)",
			ErrInvalid, c.FoodCount, c.ScreenWidth, c.ScreenHeight, capacity)
	}
	return nil
}

package game

import (
	"time"

	"github.com/pkg/errors"
)

const (
	MovingPeriod     = 100 * time.Millisecond
	RestartDelay     = 1 * time.Second
	MaxSpawnAttempts = 64

	// the starting snake is laid out rightward from here, head at origin.X+2
	DefaultOriginX = 2
	DefaultOriginY = 2
	DefaultFoodX   = 6
	DefaultFoodY   = 4

	startingSnakeLength = 3
)

// Config fixes everything a GameState needs at construction time.
type Config struct {
	Width  int
	Height int

	MovingPeriod time.Duration
	RestartDelay time.Duration

	SnakeOrigin Cell
	InitialFood Cell

	// MaxSpawnAttempts bounds random sampling before falling back to a scan
	MaxSpawnAttempts int
}

func DefaultConfig(width int, height int) Config {
	return Config{
		Width:            width,
		Height:           height,
		MovingPeriod:     MovingPeriod,
		RestartDelay:     RestartDelay,
		SnakeOrigin:      Cell{X: DefaultOriginX, Y: DefaultOriginY},
		InitialFood:      Cell{X: DefaultFoodX, Y: DefaultFoodY},
		MaxSpawnAttempts: MaxSpawnAttempts,
	}
}

// Validate checks that the starting layout fits inside the board interior.
func (cfg Config) Validate() error {
	if cfg.MovingPeriod <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "moving period must be positive, got %s", cfg.MovingPeriod)
	}
	if cfg.RestartDelay <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "restart delay must be positive, got %s", cfg.RestartDelay)
	}
	if cfg.MaxSpawnAttempts < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max spawn attempts must not be negative, got %d", cfg.MaxSpawnAttempts)
	}

	board := Board{Width: cfg.Width, Height: cfg.Height}
	tail := cfg.SnakeOrigin
	head := Cell{X: tail.X + startingSnakeLength - 1, Y: tail.Y}
	if !board.IsInterior(tail) || !board.IsInterior(head) {
		return errors.Wrapf(ErrInvalidConfig, "board %dx%d cannot hold the starting snake %v..%v",
			cfg.Width, cfg.Height, tail, head)
	}
	if !board.IsInterior(cfg.InitialFood) {
		return errors.Wrapf(ErrInvalidConfig, "initial food %v is outside the %dx%d board interior",
			cfg.InitialFood, cfg.Width, cfg.Height)
	}
	if cfg.InitialFood.Y == tail.Y && cfg.InitialFood.X >= tail.X && cfg.InitialFood.X <= head.X {
		return errors.Wrapf(ErrInvalidConfig, "initial food %v overlaps the starting snake", cfg.InitialFood)
	}

	return nil
}

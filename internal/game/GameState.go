package game

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

const (
	DeathCauseWallCollision = "wall collision"
	DeathCauseSelfCollision = "self collision"
)

// Rand is the subset of a random generator used for food placement.
type Rand interface {
	Intn(n int) int
}

type Option func(*GameState)

// WithRand replaces the time-seeded generator, e.g. with a seeded one in tests.
func WithRand(r Rand) Option {
	return func(gs *GameState) {
		gs.rng = r
	}
}

// RenderState is a read-only snapshot of everything a renderer needs.
type RenderState struct {
	Snake      []Cell
	Heading    Direction
	Food       Cell
	FoodExists bool
	Width      int
	Height     int
	GameOver   bool
	DeathCause string
}

// GameState is the authoritative state of one game. It is not safe for
// concurrent use: a single loop must own it and call Advance and
// HandleDirectionInput, never re-entrantly.
type GameState struct {
	cfg   Config
	board Board
	rng   Rand

	snake       *Snake
	food        Cell
	foodExists  bool
	gameOver    bool
	deathCause  string
	waitingTime time.Duration
}

// NewDefault builds a game on a width x height board with the fixed timing constants.
func NewDefault(width int, height int, opts ...Option) (*GameState, error) {
	return New(DefaultConfig(width, height), opts...)
}

func New(cfg Config, opts ...Option) (*GameState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gs := &GameState{
		cfg:   cfg,
		board: Board{Width: cfg.Width, Height: cfg.Height},
	}
	for _, opt := range opts {
		opt(gs)
	}
	if gs.rng == nil {
		gs.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	gs.reset()
	return gs, nil
}

func (gs *GameState) reset() {
	gs.snake = NewSnake(gs.cfg.SnakeOrigin.X, gs.cfg.SnakeOrigin.Y)
	gs.food = gs.cfg.InitialFood
	gs.foodExists = true
	gs.gameOver = false
	gs.deathCause = ""
	gs.waitingTime = 0
}

func (gs *GameState) IsGameOver() bool {
	return gs.gameOver
}

func (gs *GameState) WaitingTime() time.Duration {
	return gs.waitingTime
}

// HandleDirectionInput turns the snake immediately. Non-directional keys keep
// the heading but still force a step. Reversals are dropped.
func (gs *GameState) HandleDirectionInput(key Key) {
	if gs.gameOver {
		return
	}

	candidate, ok := key.direction()
	if !ok {
		candidate = gs.snake.Heading()
	}

	if candidate == gs.snake.Heading().Opposite() {
		return
	}

	gs.step(candidate)
}

// Advance feeds elapsed time into the game. It moves the snake once the
// moving period has passed and restarts a finished game after the restart delay.
func (gs *GameState) Advance(dt time.Duration) {
	gs.waitingTime += dt

	if gs.gameOver {
		if gs.waitingTime > gs.cfg.RestartDelay {
			log.Debug("Restarting game", "width", gs.board.Width, "height", gs.board.Height)
			gs.reset()
		}
		return
	}

	if !gs.foodExists {
		if err := gs.spawnFood(); err != nil {
			log.Warn("Food placement skipped", "error", err, "snake_length", gs.snake.Len())
		}
	}

	if gs.waitingTime > gs.cfg.MovingPeriod {
		gs.step(DirectionNone)
	}
}

func (gs *GameState) step(dir Direction) {
	defer func() { gs.waitingTime = 0 }()

	next := gs.snake.PeekNextHead(dir)

	// 1. Collision: the move is never applied, the snake freezes in place
	if cause := gs.collisionCause(next); cause != "" {
		gs.gameOver = true
		gs.deathCause = cause
		log.Debug("Snake died", "cause", cause, "next_head", next, "length", gs.snake.Len())
		return
	}

	// 2. Move, then credit food eaten on the new head
	gs.snake.Advance(dir)
	if gs.foodExists && gs.food == gs.snake.Head() {
		gs.foodExists = false
		gs.snake.Grow()
	}
}

func (gs *GameState) collisionCause(next Cell) string {
	if gs.snake.OccupiesHazard(next) {
		return DeathCauseSelfCollision
	}
	if gs.board.IsWall(next) {
		return DeathCauseWallCollision
	}
	return ""
}

// spawnFood samples random interior cells, then falls back to scanning for
// free ones once MaxSpawnAttempts samples have all landed on the snake.
func (gs *GameState) spawnFood() error {
	innerWidth, innerHeight := gs.board.Width-2, gs.board.Height-2
	if innerWidth <= 0 || innerHeight <= 0 {
		return errors.Wrapf(ErrNoFreeCell, "board %dx%d has no interior", gs.board.Width, gs.board.Height)
	}

	for attempt := 0; attempt < gs.cfg.MaxSpawnAttempts; attempt++ {
		candidate := Cell{
			X: 1 + gs.rng.Intn(innerWidth),
			Y: 1 + gs.rng.Intn(innerHeight),
		}
		if !gs.snake.OccupiesHazard(candidate) {
			gs.placeFood(candidate)
			return nil
		}
	}

	var free []Cell
	for _, c := range gs.board.InteriorCells() {
		if !gs.snake.OccupiesHazard(c) {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return errors.Wrapf(ErrNoFreeCell, "snake of length %d fills the %dx%d interior",
			gs.snake.Len(), innerWidth, innerHeight)
	}

	gs.placeFood(free[gs.rng.Intn(len(free))])
	return nil
}

func (gs *GameState) placeFood(c Cell) {
	gs.food = c
	gs.foodExists = true
}

// Describe snapshots the state for rendering. It never mutates the game.
func (gs *GameState) Describe() RenderState {
	return RenderState{
		Snake:      gs.snake.Body(),
		Heading:    gs.snake.Heading(),
		Food:       gs.food,
		FoodExists: gs.foodExists,
		Width:      gs.board.Width,
		Height:     gs.board.Height,
		GameOver:   gs.gameOver,
		DeathCause: gs.deathCause,
	}
}

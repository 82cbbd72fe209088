package game

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// sequenceRand replays fixed values, wrapped into range.
type sequenceRand struct {
	values []int
	next   int
}

func (r *sequenceRand) Intn(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

func newTestGame(t *testing.T, width, height int) *GameState {
	gs, err := NewDefault(width, height, WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	return gs
}

func TestNewGameState(t *testing.T) {
	gs := newTestGame(t, 20, 20)

	state := gs.Describe()
	require.Equal(t, []Cell{{X: 4, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 2}}, state.Snake)
	require.Equal(t, DirectionRight, state.Heading)
	require.True(t, state.FoodExists)
	require.Equal(t, Cell{X: 6, Y: 4}, state.Food)
	require.Equal(t, 20, state.Width)
	require.Equal(t, 20, state.Height)
	require.False(t, state.GameOver)
	require.Equal(t, time.Duration(0), gs.WaitingTime())
}

func TestNewGameStateRejectsSmallBoards(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"snake head in wall", 5, 20},
		{"food column in wall", 7, 20},
		{"food row in wall", 20, 5},
		{"empty", 0, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewDefault(test.width, test.height)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}

	_, err := NewDefault(8, 6)
	require.NoError(t, err)
}

func TestConfigRejectsFoodOnSnake(t *testing.T) {
	cfg := DefaultConfig(20, 20)
	cfg.InitialFood = Cell{X: 3, Y: 2}

	require.True(t, errors.Is(cfg.Validate(), ErrInvalidConfig))
}

func TestConfigRejectsNonPositivePeriods(t *testing.T) {
	cfg := DefaultConfig(20, 20)
	cfg.MovingPeriod = 0
	require.True(t, errors.Is(cfg.Validate(), ErrInvalidConfig))

	cfg = DefaultConfig(20, 20)
	cfg.RestartDelay = -time.Second
	require.True(t, errors.Is(cfg.Validate(), ErrInvalidConfig))
}

func TestAdvanceMovesOnlyAfterMovingPeriod(t *testing.T) {
	gs := newTestGame(t, 20, 20)

	gs.Advance(60 * time.Millisecond)
	gs.Advance(40 * time.Millisecond)
	require.Equal(t, Cell{X: 4, Y: 2}, gs.snake.Head(), "exactly one period is not enough")
	require.Equal(t, 100*time.Millisecond, gs.WaitingTime())

	gs.Advance(time.Millisecond)
	require.Equal(t, Cell{X: 5, Y: 2}, gs.snake.Head())
	require.Equal(t, time.Duration(0), gs.WaitingTime())
}

func TestOppositeInputIsDiscarded(t *testing.T) {
	gs := newTestGame(t, 20, 20)
	gs.Advance(50 * time.Millisecond)
	before := gs.Describe()

	gs.HandleDirectionInput(KeyLeft)

	require.Equal(t, before, gs.Describe())
	require.Equal(t, DirectionRight, gs.snake.Heading())
	require.Equal(t, 50*time.Millisecond, gs.WaitingTime())
}

func TestDirectionalInputStepsImmediately(t *testing.T) {
	gs := newTestGame(t, 20, 20)
	gs.Advance(50 * time.Millisecond)

	gs.HandleDirectionInput(KeyDown)

	require.Equal(t, DirectionDown, gs.snake.Heading())
	require.Equal(t, Cell{X: 4, Y: 3}, gs.snake.Head())
	require.Equal(t, time.Duration(0), gs.WaitingTime())
}

func TestOtherKeyKeepsHeadingButSteps(t *testing.T) {
	gs := newTestGame(t, 20, 20)

	gs.HandleDirectionInput(KeyOther)

	require.Equal(t, DirectionRight, gs.snake.Heading())
	require.Equal(t, Cell{X: 5, Y: 2}, gs.snake.Head())
}

func TestInputIgnoredWhenGameOver(t *testing.T) {
	gs := newTestGame(t, 20, 20)
	gs.gameOver = true
	before := gs.Describe()

	gs.HandleDirectionInput(KeyDown)
	gs.HandleDirectionInput(KeyOther)

	require.Equal(t, before, gs.Describe())
}

func TestEatingGrowsByOne(t *testing.T) {
	gs := newTestGame(t, 20, 20)
	gs.food = Cell{X: 5, Y: 2}

	gs.Advance(MovingPeriod + time.Millisecond)

	state := gs.Describe()
	require.Len(t, state.Snake, 4)
	require.Equal(t, Cell{X: 5, Y: 2}, state.Snake[0])
	require.Equal(t, Cell{X: 2, Y: 2}, state.Snake[3])
	require.Equal(t, DirectionRight, state.Heading)
	require.False(t, state.FoodExists)
}

func TestFoodRespawnsOnNextAdvance(t *testing.T) {
	gs := newTestGame(t, 20, 20)
	gs.food = Cell{X: 5, Y: 2}
	gs.Advance(MovingPeriod + time.Millisecond)
	require.False(t, gs.foodExists)

	gs.Advance(time.Millisecond)

	require.True(t, gs.foodExists)
	require.True(t, gs.board.IsInterior(gs.food))
	require.False(t, gs.snake.OccupiesHazard(gs.food))
}

func TestWallCollision(t *testing.T) {
	gs := newTestGame(t, 10, 10)
	gs.snake = newTestSnake(DirectionRight, Cell{X: 8, Y: 5}, Cell{X: 7, Y: 5}, Cell{X: 6, Y: 5})
	before := gs.snake.Body()

	gs.step(DirectionNone)

	require.True(t, gs.IsGameOver())
	require.Equal(t, DeathCauseWallCollision, gs.Describe().DeathCause)
	require.Equal(t, before, gs.snake.Body())
	require.Equal(t, time.Duration(0), gs.WaitingTime())
}

func TestWallRingIsNotTraversable(t *testing.T) {
	tests := []struct {
		name    string
		heading Direction
		head    Cell
	}{
		{"top", DirectionUp, Cell{X: 5, Y: 1}},
		{"left", DirectionLeft, Cell{X: 1, Y: 5}},
		{"bottom", DirectionDown, Cell{X: 5, Y: 8}},
		{"right", DirectionRight, Cell{X: 8, Y: 5}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			gs := newTestGame(t, 10, 10)
			gs.snake = newTestSnake(test.heading, test.head)

			gs.Advance(MovingPeriod + time.Millisecond)

			require.True(t, gs.IsGameOver())
			require.Equal(t, test.head, gs.snake.Head())
		})
	}
}

func TestSelfCollision(t *testing.T) {
	gs := newTestGame(t, 20, 20)
	gs.snake = newTestSnake(DirectionLeft,
		Cell{X: 5, Y: 5},
		Cell{X: 6, Y: 5},
		Cell{X: 6, Y: 6},
		Cell{X: 5, Y: 6},
		Cell{X: 4, Y: 6},
	)
	before := gs.snake.Body()

	gs.HandleDirectionInput(KeyDown)

	require.True(t, gs.IsGameOver())
	require.Equal(t, DeathCauseSelfCollision, gs.Describe().DeathCause)
	require.Equal(t, before, gs.snake.Body())
}

func TestMovingIntoOutgoingTailIsLegal(t *testing.T) {
	gs := newTestGame(t, 20, 20)
	gs.snake = newTestSnake(DirectionLeft,
		Cell{X: 5, Y: 5},
		Cell{X: 6, Y: 5},
		Cell{X: 6, Y: 6},
		Cell{X: 5, Y: 6},
	)

	gs.HandleDirectionInput(KeyDown)

	require.False(t, gs.IsGameOver())
	require.Equal(t, Cell{X: 5, Y: 6}, gs.snake.Head())
}

func TestRestartAfterDelay(t *testing.T) {
	gs := newTestGame(t, 10, 10)
	gs.snake = newTestSnake(DirectionRight, Cell{X: 8, Y: 5}, Cell{X: 7, Y: 5}, Cell{X: 6, Y: 5})
	gs.foodExists = false
	gs.step(DirectionNone)
	require.True(t, gs.IsGameOver())

	gs.Advance(600 * time.Millisecond)
	require.True(t, gs.IsGameOver(), "restart must wait for the delay")

	gs.Advance(600 * time.Millisecond)

	fresh := newTestGame(t, 10, 10)
	require.Equal(t, fresh.Describe(), gs.Describe())
	require.Equal(t, time.Duration(0), gs.WaitingTime())
	require.False(t, gs.IsGameOver())
}

func TestFoodNeverSpawnsOnHazard(t *testing.T) {
	gs := newTestGame(t, 12, 8)
	gs.snake = newTestSnake(DirectionLeft,
		Cell{X: 1, Y: 1}, Cell{X: 2, Y: 1}, Cell{X: 3, Y: 1}, Cell{X: 4, Y: 1},
		Cell{X: 5, Y: 1}, Cell{X: 6, Y: 1}, Cell{X: 7, Y: 1}, Cell{X: 8, Y: 1},
		Cell{X: 9, Y: 1}, Cell{X: 10, Y: 1}, Cell{X: 10, Y: 2}, Cell{X: 9, Y: 2},
		Cell{X: 8, Y: 2}, Cell{X: 7, Y: 2}, Cell{X: 6, Y: 2}, Cell{X: 5, Y: 2},
	)

	for i := 0; i < 500; i++ {
		gs.foodExists = false
		require.NoError(t, gs.spawnFood())

		require.True(t, gs.foodExists)
		require.True(t, gs.board.IsInterior(gs.food), "food %v outside interior", gs.food)
		require.False(t, gs.snake.OccupiesHazard(gs.food), "food %v on snake", gs.food)
	}
}

func TestSpawnFoodFallsBackToScan(t *testing.T) {
	gs := newTestGame(t, 8, 6)
	gs.rng = &sequenceRand{values: []int{0}}
	gs.snake = newTestSnake(DirectionLeft, Cell{X: 1, Y: 1}, Cell{X: 2, Y: 1}, Cell{X: 3, Y: 1})
	gs.foodExists = false

	require.NoError(t, gs.spawnFood())

	// every sample hits the head at (1, 1), so the pick comes from the scanned free cells
	require.Equal(t, Cell{X: 3, Y: 1}, gs.food)
	require.Equal(t, MaxSpawnAttempts*2+1, gs.rng.(*sequenceRand).next)
}

func TestSpawnFoodOnFullBoardUsesTail(t *testing.T) {
	gs := &GameState{
		cfg:   DefaultConfig(5, 4),
		board: Board{Width: 5, Height: 4},
		rng:   &sequenceRand{values: []int{0}},
		snake: newTestSnake(DirectionLeft,
			Cell{X: 1, Y: 1}, Cell{X: 2, Y: 1}, Cell{X: 3, Y: 1},
			Cell{X: 3, Y: 2}, Cell{X: 2, Y: 2}, Cell{X: 1, Y: 2},
		),
	}

	require.NoError(t, gs.spawnFood())
	require.Equal(t, Cell{X: 1, Y: 2}, gs.food)
}

func TestSpawnFoodWithoutInteriorFails(t *testing.T) {
	gs := &GameState{
		cfg:   DefaultConfig(2, 2),
		board: Board{Width: 2, Height: 2},
		rng:   &sequenceRand{values: []int{0}},
		snake: newTestSnake(DirectionRight, Cell{X: 0, Y: 0}),
	}

	err := gs.spawnFood()

	require.True(t, errors.Is(err, ErrNoFreeCell))
	require.False(t, gs.foodExists)
}

func TestDescribeDoesNotMutate(t *testing.T) {
	gs := newTestGame(t, 20, 20)

	state := gs.Describe()
	state.Snake[0] = Cell{X: 99, Y: 99}

	require.Equal(t, Cell{X: 4, Y: 2}, gs.snake.Head())
	require.Equal(t, gs.Describe(), gs.Describe())
}

package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnectionLimiter(t *testing.T) {
	limiter := newConnectionLimiter(2)

	seen, ok := limiter.tryAcquire("10.0.0.1")
	require.True(t, ok)
	require.Equal(t, 0, seen)

	seen, ok = limiter.tryAcquire("10.0.0.1")
	require.True(t, ok)
	require.Equal(t, 1, seen)

	seen, ok = limiter.tryAcquire("10.0.0.1")
	require.False(t, ok)
	require.Equal(t, 2, seen)

	_, ok = limiter.tryAcquire("10.0.0.2")
	require.True(t, ok, "limits are per IP")

	require.Equal(t, 1, limiter.release("10.0.0.1"))
	_, ok = limiter.tryAcquire("10.0.0.1")
	require.True(t, ok)

	require.Equal(t, 1, limiter.release("10.0.0.1"))
	require.Equal(t, 0, limiter.release("10.0.0.1"))
	require.NotContains(t, limiter.counts, "10.0.0.1")
}

func TestUIOptionsCarryBoardFlags(t *testing.T) {
	boardWidth, boardHeight, frameRate = 24, 16, 20

	opts := uiOptions(80, 24)

	require.Equal(t, 24, opts.BoardWidth)
	require.Equal(t, 16, opts.BoardHeight)
	require.Equal(t, 20, opts.FrameRate)
	require.Equal(t, 80, opts.ScreenWidth)
	require.Equal(t, 24, opts.ScreenHeight)
	require.Empty(t, opts.GameOptions)
}

package coinflip

import (
	"bytes"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilankog99/gamesuite/internal/console"
)

func TestFlip(t *testing.T) {
	// Given: a seeded generator
	rng := rand.New(rand.NewSource(1))

	// When: flipping many times
	seen := map[Side]int{}
	for i := 0; i < 1000; i++ {
		side := Flip(rng)
		require.Contains(t, []Side{Heads, Tails}, side)
		seen[side]++
	}

	// Then: both sides come up
	require.Positive(t, seen[Heads])
	require.Positive(t, seen[Tails])
}

func TestGame_Run(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Given: one flip then quit, with no suspense delay
	input := strings.NewReader("\nno\n")
	output := &bytes.Buffer{}
	game := New(logger, console.New(input, output), rand.New(rand.NewSource(1)), 0)

	// When: running the session
	err := game.Run()

	// Then: a result is announced
	require.NoError(t, err)
	assert.Contains(t, output.String(), "Flipping coin...")
	assert.Contains(t, output.String(), "The coin landed on:")
}

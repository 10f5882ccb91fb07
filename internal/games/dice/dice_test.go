package dice

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

func TestRoll(t *testing.T) {
	// Given: a seeded generator and a six sided die
	rng := rand.New(rand.NewSource(1))

	// When: rolling many times
	seen := map[int]int{}
	for i := 0; i < 1000; i++ {
		roll := Roll(rng, 6)

		// Then: every roll stays in 1..6
		require.GreaterOrEqual(t, roll, 1)
		require.LessOrEqual(t, roll, 6)
		seen[roll]++
	}

	// Then: every face comes up
	for face := 1; face <= 6; face++ {
		assert.Positive(t, seen[face], "face %d never rolled", face)
	}
}

func TestRoller_Run(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Rolls and quits", func(t *testing.T) {
		input := strings.NewReader("6\nno\n")
		output := &bytes.Buffer{}
		roller := New(logger, console.New(input, output), rand.New(rand.NewSource(1)), 2)

		err := roller.Run()

		require.NoError(t, err)
		assert.Contains(t, output.String(), "You rolled a ")
	})

	t.Run("Rejects dice below the minimum", func(t *testing.T) {
		// Given: a one sided die, then a coin shaped one
		input := strings.NewReader("1\n2\nno\n")
		output := &bytes.Buffer{}
		roller := New(logger, console.New(input, output), rand.New(rand.NewSource(1)), 2)

		err := roller.Run()

		require.NoError(t, err)
		assert.Contains(t, output.String(), "Value must be at least 2.")
	})
}

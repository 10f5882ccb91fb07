package rps

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

func TestParseChoice(t *testing.T) {
	t.Run("Resolves numbers, words and letters", func(t *testing.T) {
		tests := []struct {
			input string
			want  Choice
		}{
			{"1", Rock},
			{"rock", Rock},
			{"R", Rock},
			{"2", Paper},
			{"Paper", Paper},
			{"p", Paper},
			{"3", Scissors},
			{"SCISSORS", Scissors},
			{"s", Scissors},
			{"  rock  ", Rock},
		}

		for _, tc := range tests {
			got, err := ParseChoice(tc.input)

			require.NoError(t, err, "input %q", tc.input)
			require.Equal(t, tc.want, got, "input %q", tc.input)
		}
	})

	t.Run("Rejects anything else", func(t *testing.T) {
		_, err := ParseChoice("lizard")

		require.ErrorIs(t, err, ErrUnknownChoice)
	})
}

func TestBeats(t *testing.T) {
	// Then: the relation is the classic cycle and nothing more
	assert.True(t, Beats(Rock, Scissors))
	assert.True(t, Beats(Scissors, Paper))
	assert.True(t, Beats(Paper, Rock))

	assert.False(t, Beats(Scissors, Rock))
	assert.False(t, Beats(Paper, Scissors))
	assert.False(t, Beats(Rock, Paper))

	for _, choice := range choices {
		assert.False(t, Beats(choice, choice))
	}
}

func TestGame_Run(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Two player round with a winner", func(t *testing.T) {
		// Given: two named players, rock against scissors, one round
		input := strings.NewReader("yes\nAlice\nBob\n1\n3\nno\n")
		output := &bytes.Buffer{}
		game := New(logger, console.New(input, output), rand.New(rand.NewSource(1)))

		// When: running the session
		err := game.Run()

		// Then: Alice wins the round and the scores show it
		require.NoError(t, err)
		assert.Contains(t, output.String(), "Alice chose rock")
		assert.Contains(t, output.String(), "Bob chose scissors")
		assert.Contains(t, output.String(), "Alice wins!")
		assert.Contains(t, output.String(), "Alice's score: 1")
		assert.Contains(t, output.String(), "Bob's score: 0")
	})

	t.Run("Invalid choice is re-prompted", func(t *testing.T) {
		input := strings.NewReader("yes\n\n\nlizard\n2\n2\nno\n")
		output := &bytes.Buffer{}
		game := New(logger, console.New(input, output), rand.New(rand.NewSource(1)))

		err := game.Run()

		require.NoError(t, err)
		assert.Contains(t, output.String(), "Invalid choice. Please try again.")
		assert.Contains(t, output.String(), "It's a tie!")
	})

	t.Run("Solo mode plays against the bot", func(t *testing.T) {
		input := strings.NewReader("no\nAlice\n1\nno\n")
		output := &bytes.Buffer{}
		game := New(logger, console.New(input, output), rand.New(rand.NewSource(7)))

		err := game.Run()

		require.NoError(t, err)
		assert.Contains(t, output.String(), "You'll be playing against The Bot.")
		assert.Contains(t, output.String(), "The Bot chose")
	})
}

package tictactoe

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilankog99/gamesuite/internal/console"
)

func TestSession_Run(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Human against the computer plays out to a tie", func(t *testing.T) {
		// Given: a scripted human whose moves force the deterministic
		// computer into a drawn game
		input := strings.NewReader("yes\n1\n2\n7\n6\n8\nno\n")
		output := &bytes.Buffer{}
		session := NewSession(logger, console.New(input, output))

		// When: running the session
		err := session.Run()

		// Then: the game ends in a tie and the session exits cleanly
		require.NoError(t, err)
		assert.Contains(t, output.String(), "It's a tie!")
	})

	t.Run("Two humans, X wins the top row", func(t *testing.T) {
		// Given: X takes 1,2,3 while O wanders below
		input := strings.NewReader("no\n1\n4\n2\n5\n3\nno\n")
		output := &bytes.Buffer{}
		session := NewSession(logger, console.New(input, output))

		err := session.Run()

		require.NoError(t, err)
		assert.Contains(t, output.String(), "Player X wins!")
	})
}

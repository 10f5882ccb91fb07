package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/ilankog99/gamesuite/internal/console"
)

// Session - the interactive shell around the engine: builds the players,
// runs the step loop, announces the result, and offers a rematch.
type Session struct {
	logger *slog.Logger
	term   *console.Console
}

func NewSession(logger *slog.Logger, term *console.Console) *Session {
	return &Session{
		logger: logger.With("component", "tictactoe"),
		term:   term,
	}
}

func (that *Session) Run() error {
	that.term.Clear()
	that.term.Printf("Tic-Tac-Toe\n\n")

	vsComputer, err := that.term.ReadYesNo("Do you want to play against the computer?")
	if err != nil {
		return fmt.Errorf("failed to read game mode: %w", err)
	}

	for {
		if err = that.playGame(vsComputer); err != nil {
			return err
		}

		again, err := that.term.ReadYesNo("Would you like to play again?")
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}

		if !again {
			return nil
		}

		that.term.Clear()
	}
}

func (that *Session) playGame(vsComputer bool) error {
	playerX := NewHumanPlayer(PlayerX, that.term)

	var playerO Player = NewHumanPlayer(PlayerO, that.term)
	if vsComputer {
		playerO = NewComputerPlayer(PlayerO)
	}

	engine := NewEngine(playerX, playerO)
	that.logger.Info("game started", "vs_computer", vsComputer)

	for {
		that.term.Printf("\n%s\n", engine.Render())

		result, err := engine.Step()
		if err != nil {
			return fmt.Errorf("failed to advance game: %w", err)
		}

		if !result.IsTerminal() {
			continue
		}

		that.term.Printf("\n%s\n", engine.Render())

		switch result.Status {
		case StatusWon:
			that.term.Printf("Player %s wins!\n", result.Winner)
		case StatusDrawn:
			that.term.Printf("It's a tie!\n")
		}

		that.logger.Info("game finished", "status", result.Status, "winner", string(result.Winner))

		return nil
	}
}

package tictactoe

import (
	"fmt"

	"github.com/ilankog99/gamesuite/internal/console"
)

// Player - a participant able to choose the next move for its mark.
type Player interface {
	Mark() Mark
	ChooseMove(board *Board) (int, error)
}

// HumanPlayer - reads a move from the terminal. Malformed input and
// occupied cells are answered with a re-prompt, the board is never
// touched, and only a valid cell is ever returned.
type HumanPlayer struct {
	mark Mark
	term *console.Console
}

func NewHumanPlayer(mark Mark, term *console.Console) *HumanPlayer {
	return &HumanPlayer{
		mark: mark,
		term: term,
	}
}

func (that *HumanPlayer) Mark() Mark {
	return that.mark
}

func (that *HumanPlayer) ChooseMove(board *Board) (int, error) {
	prompt := fmt.Sprintf("Player %s, enter your move (1-9): ", that.mark)

	for {
		position, err := that.term.ReadInt(prompt, 1, BoardSize)
		if err != nil {
			return 0, fmt.Errorf("failed to read move: %w", err)
		}

		cell := position - 1

		mark, err := board.Get(cell)
		if err != nil {
			return 0, fmt.Errorf("failed to check cell: %w", err)
		}

		if mark != EmptyCell {
			that.term.Printf("That cell is already taken. Please pick another one!\n")
			continue
		}

		return cell, nil
	}
}

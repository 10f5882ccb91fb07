package tictactoe

import (
	"fmt"

	"github.com/ilankog99/gamesuite/internal/apperror"
)

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDrawn   = "drawn"
)

// Result - the outcome of a game as seen after a ply. Winner is set only
// when Status is StatusWon.
type Result struct {
	Status string
	Winner Mark
}

// IsTerminal - reports whether no further plies are valid.
func (that Result) IsTerminal() bool {
	return that.Status != StatusOngoing
}

// Engine - drives one game between two players. X always moves first.
// Once the result is terminal the engine accepts no further moves.
type Engine struct {
	board   *Board
	players [2]Player
	active  int
	result  Result
}

func NewEngine(playerX, playerO Player) *Engine {
	return &Engine{
		board:   NewBoard(),
		players: [2]Player{playerX, playerO},
		active:  0,
		result:  Result{Status: StatusOngoing},
	}
}

// Step - advances the game by exactly one ply. On a terminal result it
// returns that result unchanged. A player returning a cell the board
// rejects is a defect in the player, never retried.
func (that *Engine) Step() (Result, error) {
	if that.result.IsTerminal() {
		return that.result, nil
	}

	player := that.players[that.active]

	cell, err := player.ChooseMove(that.board)
	if err != nil {
		return that.result, fmt.Errorf("player %s failed to choose a move: %w", player.Mark(), err)
	}

	if err = that.board.Set(cell, player.Mark()); err != nil {
		return that.result, fmt.Errorf("%w: player %s, cell %d: %w", apperror.ErrStrategyFault, player.Mark(), cell, err)
	}

	switch {
	case that.hasWinningLine():
		that.result = Result{Status: StatusWon, Winner: player.Mark()}
	case that.board.IsFull():
		that.result = Result{Status: StatusDrawn}
	default:
		that.active = 1 - that.active
	}

	return that.result, nil
}

// Result - returns the result as of the last ply.
func (that *Engine) Result() Result {
	return that.result
}

// Render - returns a text snapshot of the board for display.
func (that *Engine) Render() string {
	return that.board.String()
}

func (that *Engine) hasWinningLine() bool {
	_, ok := that.board.WinningLine()
	return ok
}

package tictactoe

import (
	"fmt"
	"strings"

	"github.com/ilankog99/gamesuite/internal/apperror"
)

type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

const BoardSize = 9

// Lines - the 8 winning triples: rows top to bottom, then columns left to
// right, then the two diagonals. The order is fixed, WinningLine reports
// the first match.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board - a 3x3 grid stored row-major, mutated only through Set.
type Board struct {
	cells [BoardSize]Mark
}

func NewBoard() *Board {
	return &Board{}
}

// Get - returns the mark at the given cell.
func (that *Board) Get(cell int) (Mark, error) {
	if cell < 0 || cell >= BoardSize {
		return EmptyCell, fmt.Errorf("%w: %d", apperror.ErrInvalidCell, cell)
	}

	return that.cells[cell], nil
}

// Set - places a mark on an empty cell. The board is left unchanged on error.
func (that *Board) Set(cell int, mark Mark) error {
	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidCell, cell)
	}

	if that.cells[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.cells[cell] = mark

	return nil
}

// IsFull - reports whether no empty cell remains.
func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// WinningLine - returns the first line whose three cells hold the same
// non-empty mark.
func (that *Board) WinningLine() ([3]int, bool) {
	for _, line := range Lines {
		a, b, c := that.cells[line[0]], that.cells[line[1]], that.cells[line[2]]
		if a != EmptyCell && a == b && b == c {
			return line, true
		}
	}

	return [3]int{}, false
}

// Count - returns how many cells hold the given mark.
func (that *Board) Count(mark Mark) int {
	total := 0
	for _, cell := range that.cells {
		if cell == mark {
			total++
		}
	}

	return total
}

// String - renders the board for display. Empty cells show their 1-based
// position so a player can pick one.
func (that *Board) String() string {
	var builder strings.Builder

	for row := 0; row < 3; row++ {
		labels := make([]string, 3)
		for col := 0; col < 3; col++ {
			cell := row*3 + col
			if that.cells[cell] == EmptyCell {
				labels[col] = fmt.Sprintf("%d", cell+1)
			} else {
				labels[col] = string(that.cells[cell])
			}
		}

		builder.WriteString(strings.Join(labels, " | "))
		builder.WriteString("\n")
		builder.WriteString(strings.Repeat("-", 9))
		builder.WriteString("\n")
	}

	return builder.String()
}

func toggleMark(mark Mark) Mark {
	if mark == PlayerX {
		return PlayerO
	}

	return PlayerX
}

package tictactoe

import "errors"

var ErrNoAvailableMoves = errors.New("no available moves")

const centerCell = 4

var (
	cornerCells = [4]int{0, 2, 6, 8}
	edgeCells   = [4]int{1, 3, 5, 7}
)

// ComputerPlayer - picks moves with a fixed, deterministic policy:
// complete an own line, block the opponent's, take the center, take the
// first empty corner, take the first empty edge. The enumeration order
// never changes.
type ComputerPlayer struct {
	mark Mark
}

func NewComputerPlayer(mark Mark) *ComputerPlayer {
	return &ComputerPlayer{mark: mark}
}

func (that *ComputerPlayer) Mark() Mark {
	return that.mark
}

func (that *ComputerPlayer) ChooseMove(board *Board) (int, error) {
	if cell, ok := findCompletingCell(board, that.mark); ok {
		return cell, nil
	}

	if cell, ok := findCompletingCell(board, toggleMark(that.mark)); ok {
		return cell, nil
	}

	if board.cells[centerCell] == EmptyCell {
		return centerCell, nil
	}

	for _, cell := range cornerCells {
		if board.cells[cell] == EmptyCell {
			return cell, nil
		}
	}

	for _, cell := range edgeCells {
		if board.cells[cell] == EmptyCell {
			return cell, nil
		}
	}

	return 0, ErrNoAvailableMoves
}

// findCompletingCell - returns the empty cell of the first line where the
// given mark already holds the other two cells.
func findCompletingCell(board *Board, mark Mark) (int, bool) {
	for _, line := range Lines {
		count := 0
		empty := -1

		for _, cell := range line {
			switch board.cells[cell] {
			case mark:
				count++
			case EmptyCell:
				empty = cell
			}
		}

		if count == 2 && empty != -1 {
			return empty, true
		}
	}

	return 0, false
}

package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
)

const BoardSize = 9

const rowSeparator = "---+---+---\n"

// Space is a validated cell index, row-major from the top-left corner.
type Space uint8

// NewSpace - validates a raw cell index.
func NewSpace(raw int) (Space, error) {
	if raw < 0 || raw >= BoardSize {
		return 0, fmt.Errorf("%w: %d", apperror.ErrInvalidSpace, raw)
	}

	return Space(raw), nil
}

func (that Space) Int() int {
	return int(that)
}

type Board struct {
	cells [BoardSize]Mark
}

func NewBoard() Board {
	return Board{}
}

// Mark - sets the cell to the given mark. Occupancy is not checked here.
func (that *Board) Mark(space Space, mark Mark) {
	that.cells[space] = mark
}

func (that Board) Get(space Space) Mark {
	return that.cells[space]
}

func (that Board) Occupied(space Space) bool {
	return that.cells[space] != MarkEmpty
}

// DisplayArray - returns the label of every cell in order, EmptyCell for unplayed cells.
func (that Board) DisplayArray() [BoardSize]string {
	var labels [BoardSize]string
	for i, mark := range that.cells {
		labels[i] = mark.Label()
	}

	return labels
}

func (that Board) String() string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString(rowSeparator)
		}

		i := row * 3
		fmt.Fprintf(&sb, " %s | %s | %s \n", that.cells[i], that.cells[i+1], that.cells[i+2])
	}

	return sb.String()
}

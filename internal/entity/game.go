package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
)

// Rules holds optional rule extensions. The zero value keeps the lenient rules:
// an occupied cell may be marked again and the move is still recorded.
type Rules struct {
	StrictMoves bool
}

// Game is a value type: copying it yields an independent snapshot.
type Game struct {
	turn    Mark
	board   Board
	history History
	rules   Rules
}

func NewGame() Game {
	return NewGameWithRules(Rules{})
}

func NewGameWithRules(rules Rules) Game {
	return Game{
		turn:    MarkX,
		board:   NewBoard(),
		history: NewHistory(),
		rules:   rules,
	}
}

func (that Game) Turn() Mark {
	return that.turn
}

func (that Game) Board() Board {
	return that.board
}

func (that Game) History() History {
	return that.history
}

// ApplyMove - validates the raw cell index and plays the current turn on it.
// Either the board, the history and the turn all advance, or nothing changes.
func (that *Game) ApplyMove(raw int) error {
	space, err := NewSpace(raw)
	if err != nil {
		return err
	}

	if that.history.Full() {
		return apperror.ErrHistoryFull
	}

	if that.rules.StrictMoves && that.board.Occupied(space) {
		return fmt.Errorf("%w: space %d is already marked", apperror.ErrInvalidMove, space)
	}

	that.board.Mark(space, that.turn)

	// can't fail, capacity was checked above
	_ = that.history.Add(space)

	that.turn = that.turn.Next()

	return nil
}

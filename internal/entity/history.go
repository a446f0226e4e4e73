package entity

import "github.com/rocketscienceinc/tictactoe-server/internal/apperror"

// History is the bounded log of played spaces. One board holds at most BoardSize moves.
type History struct {
	spaces [BoardSize]Space
	size   uint8
}

func NewHistory() History {
	return History{}
}

func (that *History) Add(space Space) error {
	if that.Full() {
		return apperror.ErrHistoryFull
	}

	that.spaces[that.size] = space
	that.size++

	return nil
}

func (that History) Len() int {
	return int(that.size)
}

func (that History) Full() bool {
	return int(that.size) == len(that.spaces)
}

// Spaces - returns a copy of the played spaces in play order.
func (that History) Spaces() []Space {
	spaces := make([]Space, that.size)
	copy(spaces, that.spaces[:that.size])

	return spaces
}

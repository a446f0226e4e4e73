package entity

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

// Mark is the occupant of a board cell. The zero value is MarkEmpty.
type Mark uint8

const (
	MarkEmpty Mark = iota
	MarkX
	MarkO
)

// Next - returns the mark that moves after that one.
func (that Mark) Next() Mark {
	switch that {
	case MarkX:
		return MarkO
	default:
		return MarkX
	}
}

// Label - returns the player label, or EmptyCell for an unplayed cell.
func (that Mark) Label() string {
	switch that {
	case MarkX:
		return PlayerX
	case MarkO:
		return PlayerO
	default:
		return EmptyCell
	}
}

func (that Mark) String() string {
	if that == MarkEmpty {
		return " "
	}
	return that.Label()
}

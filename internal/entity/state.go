package entity

const (
	EventGameCreated = "game.created"
	EventGameMoved   = "game.moved"
)

// GameState is the external view of a game.
type GameState struct {
	ID      string             `json:"game_id"`
	Board   [BoardSize]*string `json:"board"`
	Turn    string             `json:"turn"`
	History []int              `json:"history"`
	Grid    string             `json:"grid"`
}

// GameEvent is published on every change of a game.
type GameEvent struct {
	Type string     `json:"type"`
	Game *GameState `json:"game"`
}

func NewGameState(id string, game Game) *GameState {
	state := &GameState{
		ID:      id,
		Turn:    game.Turn().Label(),
		History: make([]int, 0, game.History().Len()),
		Grid:    game.Board().String(),
	}

	for i, label := range game.Board().DisplayArray() {
		if label != EmptyCell {
			state.Board[i] = &label
		}
	}

	for _, space := range game.History().Spaces() {
		state.History = append(state.History, space.Int())
	}

	return state
}

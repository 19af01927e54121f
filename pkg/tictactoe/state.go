package tictactoe

// State is the phase of a match. It is derived from the board on every
// query and never stored, so it cannot go stale or disagree with the
// stones on the board.
type State uint8

const (
	TurnPlayerOne State = iota
	TurnPlayerTwo
	VictoryPlayerOne
	VictoryPlayerTwo
	Draw
)

// IsTerminal reports whether the match is over. A terminal state never
// changes again: the board stops accepting moves.
func (that State) IsTerminal() bool {
	switch that {
	case VictoryPlayerOne, VictoryPlayerTwo, Draw:
		return true
	default:
		return false
	}
}

func (that State) String() string {
	switch that {
	case TurnPlayerOne:
		return "player one to move"
	case TurnPlayerTwo:
		return "player two to move"
	case VictoryPlayerOne:
		return "player one wins"
	case VictoryPlayerTwo:
		return "player two wins"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

package entity

// Player is one of the two sides of the game. The zero value is not a player.
type Player uint8

const (
	Noughts Player = iota + 1
	Crosses
)

const (
	SymbolNoughts = "O"
	SymbolCrosses = "X"
)

// String - returns the display symbol of the player.
func (that Player) String() string {
	switch that {
	case Noughts:
		return SymbolNoughts
	case Crosses:
		return SymbolCrosses
	default:
		return "?"
	}
}

// Next - returns the player whose turn comes after this one.
func (that Player) Next() Player {
	if that == Crosses {
		return Noughts
	}
	return Crosses
}

func (that Player) IsValid() bool {
	return that == Noughts || that == Crosses
}

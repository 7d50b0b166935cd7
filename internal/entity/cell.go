package entity

const emptySymbol = " "

// Cell is the occupancy of one board position.
type Cell struct {
	owner Player
}

// EmptyCell is a cell no player has claimed.
var EmptyCell = Cell{}

// Occupied - returns a cell owned by the given player.
func Occupied(player Player) Cell {
	return Cell{owner: player}
}

func (that Cell) Owner() (Player, bool) {
	return that.owner, that.owner.IsValid()
}

func (that Cell) IsEmpty() bool {
	return !that.owner.IsValid()
}

func (that Cell) OwnedBy(player Player) bool {
	return player.IsValid() && that.owner == player
}

func (that Cell) String() string {
	if that.IsEmpty() {
		return emptySymbol
	}
	return that.owner.String()
}

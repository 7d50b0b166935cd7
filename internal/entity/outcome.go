package entity

const (
	StatusRunning = "running"
	StatusWon     = "won"
	StatusTie     = "tie"
)

// Outcome is the state of a game: still running, won by a player, or tied.
type Outcome struct {
	Status string
	Winner Player
}

var (
	Running = Outcome{Status: StatusRunning}
	Tie     = Outcome{Status: StatusTie}
)

func Won(player Player) Outcome {
	return Outcome{Status: StatusWon, Winner: player}
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusTie
}

func (that Outcome) String() string {
	if that.Status == StatusWon {
		return "player " + that.Winner.String() + " won"
	}
	return that.Status
}

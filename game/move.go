package game

import "fmt"

// Turn represents a single turn of one player.
// Build turns with Placement or Movement so that equal turns compare equal.
type Turn struct {
	Action ActionType
	Colour Colour
	From   int // Unused for placements
	To     int
}

// Placement pushes a piece of colour onto place idx.
func Placement(colour Colour, idx int) Turn {
	return Turn{Action: PlaceAction, Colour: colour, To: idx}
}

// Movement pops the top piece at from and pushes it onto to.
func Movement(colour Colour, from, to int) Turn {
	return Turn{Action: MoveAction, Colour: colour, From: from, To: to}
}

func (t Turn) String() string {
	if t.Action == PlaceAction {
		return fmt.Sprintf("%s places at %d", t.Colour, t.To+1)
	}
	return fmt.Sprintf("%s moves %d to %d", t.Colour, t.From+1, t.To+1)
}

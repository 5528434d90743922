package game

// ActionType represents the kind of turn a player takes.
type ActionType int

const (
	PlaceAction ActionType = iota // Push a new piece onto a place
	MoveAction                    // Pop a piece from one place and push it onto another
)

func (a ActionType) String() string {
	if a == PlaceAction {
		return "place"
	}
	return "move"
}

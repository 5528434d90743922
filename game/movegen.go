package game

// Offsets probed from a place in the movement phase: both neighbours and the opposite place.
var moveOffsets = [3]int{1, 4, 7}

// LegalTurns returns the turns colour may take on board, ordered by place then offset.
func LegalTurns(colour Colour, board Board) []Turn {
	turns := make([]Turn, 0, NumPlaces)
	if board.Phase() == PlacementPhase {
		for i := 0; i < NumPlaces; i++ {
			turn := Placement(colour, i)
			if board.IsPossibleTurn(turn) {
				turns = append(turns, turn)
			}
		}
		return turns
	}

	own := PieceOf(colour)
	for i := 0; i < NumPlaces; i++ {
		if board[i].PeekTop() != own {
			continue
		}
		for _, offset := range moveOffsets {
			turn := Movement(colour, i, (i+offset)%NumPlaces)
			if board.IsPossibleTurn(turn) {
				turns = append(turns, turn)
			}
		}
	}
	return turns
}

// StalemateOutcome is the result when stuck, the side to move, has no legal turn: stuck loses.
func StalemateOutcome(stuck Colour) EndState {
	return Win(stuck.Opponent())
}

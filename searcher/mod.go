package searcher

import (
	"errors"

	"secondbest/game"
)

// Scores are from the perspective colour's point of view
const WIN = 100.0
const LOSS = -WIN
const DRAW = 0.0

var (
	ErrNoLegalTurns  = errors.New("no legal turns")
	ErrNoAlternative = errors.New("no alternative turn")
)

func outcomeScore(end game.EndState, perspective game.Colour) float64 {
	winner, ok := end.Winner()
	switch {
	case !ok:
		return DRAW
	case winner == perspective:
		return WIN
	default:
		return LOSS
	}
}

package player

import (
	"errors"

	"secondbest/game"
)

var ErrWrongPhase = errors.New("proposal does not fit the phase")

// Player is a participant of the game, asked once per ply by the driver.
// secondBest is set when the player's first proposal was challenged and must be replayed.
type Player interface {
	Colour() game.Colour
	ProposePlacement(board game.Board, secondBest bool) (int, error)
	ProposeMove(board game.Board, secondBest bool) (from, to int, err error)
	// Challenges reports whether turn, proposed by the opponent, is to be replayed.
	Challenges(board game.Board, turn game.Turn) (bool, error)
}

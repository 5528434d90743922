package gamemaster

import (
	"errors"
	"fmt"

	"secondbest/game"
)

var (
	ErrGameOver    = errors.New("game is over - no turns allowed")
	ErrWrongColour = errors.New("not this colour's turn")
	ErrWrongPhase  = errors.New("turn does not fit the phase")
	ErrIllegalTurn = errors.New("illegal turn")
)

// Update is a committed turn with the board it produced.
type Update struct {
	Ply   int
	Turn  game.Turn
	Board game.Board
}

// Referee owns the authoritative board of a local game and checks every turn against it.
type Referee struct {
	board   game.Board
	history []game.Turn
	updates []Update
}

func NewReferee() *Referee {
	return &Referee{board: game.NewBoard()}
}

// NewRefereeFrom starts a game from board, with White to move.
func NewRefereeFrom(board game.Board) *Referee {
	return &Referee{board: board}
}

// Board returns a copy of the current board.
func (r *Referee) Board() game.Board {
	return r.board
}

func (r *Referee) Ply() int {
	return len(r.history)
}

// ToMove returns White after an even number of turns and Black otherwise.
func (r *Referee) ToMove() game.Colour {
	if len(r.history)%2 == 0 {
		return game.White
	}
	return game.Black
}

func (r *Referee) Phase() game.Phase {
	return r.board.Phase()
}

// Outcome reports a finished game: a mill (or a double mill) on the board, or a side to move
// without any legal turn.
func (r *Referee) Outcome() (game.EndState, bool) {
	if end, over := r.board.IsWon(); over {
		return end, true
	}
	mover := r.ToMove()
	if len(game.LegalTurns(mover, r.board)) == 0 {
		return game.StalemateOutcome(mover), true
	}
	return game.Draw, false
}

// Check validates turn against the current position without applying it.
func (r *Referee) Check(turn game.Turn) error {
	if end, over := r.Outcome(); over {
		return fmt.Errorf("%v after %s: %w", turn, end, ErrGameOver)
	}
	if turn.Colour != r.ToMove() {
		return fmt.Errorf("%v while %s is to move: %w", turn, r.ToMove(), ErrWrongColour)
	}
	want := game.PlaceAction
	if r.Phase() == game.MovementPhase {
		want = game.MoveAction
	}
	if turn.Action != want {
		return fmt.Errorf("%v in the %s phase: %w", turn, r.Phase(), ErrWrongPhase)
	}
	if !r.board.IsPossibleTurn(turn) {
		return fmt.Errorf("%v on %v: %w", turn, r.board, ErrIllegalTurn)
	}
	return nil
}

// Play checks, applies and records turn.
func (r *Referee) Play(turn game.Turn) error {
	if err := r.Check(turn); err != nil {
		return err
	}
	r.board.DoTurn(turn)
	r.history = append(r.history, turn)
	r.updates = append(r.updates, Update{Ply: len(r.history), Turn: turn, Board: r.board})
	return nil
}

// History returns the committed turns in order.
func (r *Referee) History() []game.Turn {
	history := make([]game.Turn, len(r.history))
	copy(history, r.history)
	return history
}

// UpdatesSince returns the updates committed after ply, for players that follow the game.
func (r *Referee) UpdatesSince(ply int) []Update {
	if ply < 0 {
		ply = 0
	}
	if ply >= len(r.updates) {
		return nil
	}
	updates := make([]Update, len(r.updates)-ply)
	copy(updates, r.updates[ply:])
	return updates
}

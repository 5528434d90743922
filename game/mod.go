package game

import "fmt"

const (
	NumPlaces   = 8  // Places on the ring
	PlaceHeight = 3  // Slots per place
	MaxPieces   = 16 // Pieces on the board once the placement phase is over
)

// Colour identifies a side. White always moves first.
type Colour int

const (
	White Colour = iota
	Black
)

func (c Colour) Opponent() Colour {
	if c == White {
		return Black
	}
	return White
}

func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return fmt.Sprintf("Colour(%d)", int(c))
	}
}

// Piece is the content of one slot of a place: blank or a piece of some colour.
type Piece uint8

const (
	Blank Piece = iota
	WhitePiece
	BlackPiece
)

// PieceOf returns the piece of the given colour.
func PieceOf(c Colour) Piece {
	if c == White {
		return WhitePiece
	}
	return BlackPiece
}

// String returns the letter used in board text: w, b or . for blank.
func (p Piece) String() string {
	switch p {
	case WhitePiece:
		return "w"
	case BlackPiece:
		return "b"
	default:
		return "."
	}
}

// Colour reports the colour of an occupied slot, false when blank.
func (p Piece) Colour() (Colour, bool) {
	switch p {
	case WhitePiece:
		return White, true
	case BlackPiece:
		return Black, true
	default:
		return White, false
	}
}

// EndState is the result of a finished game.
type EndState uint8

const (
	WhiteWins EndState = iota
	BlackWins
	Draw
)

// Win returns the end state in which the given colour has won.
func Win(c Colour) EndState {
	if c == White {
		return WhiteWins
	}
	return BlackWins
}

// Winner returns the winning colour, false for a draw.
func (e EndState) Winner() (Colour, bool) {
	switch e {
	case WhiteWins:
		return White, true
	case BlackWins:
		return Black, true
	default:
		return White, false
	}
}

func (e EndState) String() string {
	if c, ok := e.Winner(); ok {
		return c.String()
	}
	return "Draw"
}

// Phase of the game, derived from the number of pieces on the board.
type Phase int

const (
	PlacementPhase Phase = iota
	MovementPhase
)

func (p Phase) String() string {
	if p == PlacementPhase {
		return "placement"
	}
	return "movement"
}

package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// Board is the ring of places. It is a value type: assigning a board copies every place,
// so look-ahead can play turns on a copy without touching the original.
type Board [NumPlaces]Place

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

func (b Board) CountPieces() int {
	total := 0
	for _, place := range b {
		total += place.CountPieces()
	}
	return total
}

// Phase returns the phase implied by the pieces on the board.
func (b Board) Phase() Phase {
	if b.CountPieces() < MaxPieces {
		return PlacementPhase
	}
	return MovementPhase
}

// IsPossibleTurn reports whether turn can be applied to the board. It never panics.
func (b Board) IsPossibleTurn(turn Turn) bool {
	switch turn.Action {
	case PlaceAction:
		return inRange(turn.To) && !b[turn.To].IsFull()
	case MoveAction:
		if !inRange(turn.From) || !inRange(turn.To) || turn.From == turn.To {
			return false
		}
		if b[turn.From].PeekTop() != PieceOf(turn.Colour) {
			return false
		}
		return !b[turn.To].IsFull() && AreAdjacent(turn.From, turn.To)
	default:
		return false
	}
}

// DoTurn applies turn to the board. Applying an impossible turn is a programming error.
func (b *Board) DoTurn(turn Turn) {
	if !b.IsPossibleTurn(turn) {
		panic(fmt.Sprintf("illegal turn %v on board %v", turn, *b))
	}
	switch turn.Action {
	case PlaceAction:
		b[turn.To].addPiece(turn.Colour)
	case MoveAction:
		b[turn.From].removePiece(turn.Colour)
		b[turn.To].addPiece(turn.Colour)
	}
}

// IsWon checks both mills for every place: three stacked pieces of one colour, or four
// ring-consecutive tops of one colour. When both colours have a mill the game is drawn.
func (b Board) IsWon() (EndState, bool) {
	won := [2]bool{}
	for i := 0; i < NumPlaces; i++ {
		if c, ok := b[i].stackedColour(); ok {
			won[c] = true
		}
		if c, ok := b.topsColour(i); ok {
			won[c] = true
		}
	}
	switch {
	case won[White] && won[Black]:
		return Draw, true
	case won[White]:
		return WhiteWins, true
	case won[Black]:
		return BlackWins, true
	default:
		return Draw, false
	}
}

// topsColour reports the shared colour of the tops of the 4 places starting at start.
func (b Board) topsColour(start int) (Colour, bool) {
	top := b[start].PeekTop()
	if top == Blank {
		return White, false
	}
	for k := 1; k < 4; k++ {
		if b[(start+k)%NumPlaces].PeekTop() != top {
			return White, false
		}
	}
	return top.Colour()
}

func (p Place) stackedColour() (Colour, bool) {
	if p[0] == Blank || p[0] != p[1] || p[1] != p[2] {
		return White, false
	}
	return p[0].Colour()
}

// AreAdjacent reports whether two places are ring neighbours or diametrically opposite.
func AreAdjacent(i, j int) bool {
	d := (i - j + NumPlaces) % NumPlaces
	d = min(d, NumPlaces-d)
	return d == 1 || d == NumPlaces/2
}

func inRange(idx int) bool {
	return idx >= 0 && idx < NumPlaces
}

// Hash identifies the position, used as a position id in logs and exported records.
func (b Board) Hash() uint64 {
	hasher := fnv.New64a()
	for _, place := range b {
		for _, piece := range place {
			binary.Write(hasher, binary.LittleEndian, uint8(piece))
		}
	}
	return hasher.Sum64()
}

// String renders the board on one line, bottom slot first: "[wb.] [...] ...".
func (b Board) String() string {
	var sb strings.Builder
	for i, place := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(place.String())
	}
	return sb.String()
}

package game

import "fmt"

// Place is a stack of pieces, filled bottom-up and emptied from the top.
type Place [PlaceHeight]Piece

// String renders the slots bottom first in brackets, e.g. "[wb.]".
func (p Place) String() string {
	return "[" + p[0].String() + p[1].String() + p[2].String() + "]"
}

func (p Place) IsFull() bool {
	return p[PlaceHeight-1] != Blank
}

func (p Place) IsEmpty() bool {
	return p[0] == Blank
}

// PeekTop returns the highest occupied slot, or Blank for an empty place.
func (p Place) PeekTop() Piece {
	for i := PlaceHeight - 1; i >= 0; i-- {
		if p[i] != Blank {
			return p[i]
		}
	}
	return Blank
}

func (p Place) CountPieces() int {
	count := 0
	for _, piece := range p {
		if piece != Blank {
			count++
		}
	}
	return count
}

func (p *Place) addPiece(colour Colour) {
	n := p.CountPieces()
	if n == PlaceHeight {
		panic(fmt.Sprintf("cannot add %s piece: place is full %v", colour, *p))
	}
	p[n] = PieceOf(colour)
}

// removePiece pops the top piece, which must belong to colour so that buried pieces stay put.
func (p *Place) removePiece(colour Colour) {
	n := p.CountPieces()
	if n == 0 {
		panic(fmt.Sprintf("cannot remove %s piece: place is empty", colour))
	}
	if p[n-1] != PieceOf(colour) {
		panic(fmt.Sprintf("cannot remove %s piece: top of %v belongs to the opponent", colour, *p))
	}
	p[n-1] = Blank
}

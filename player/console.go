package player

import (
	"fmt"
	"io"

	"secondbest/game"
)

func pieceString(piece game.Piece) string {
	switch piece {
	case game.WhitePiece:
		return "□"
	case game.BlackPiece:
		return "■"
	default:
		return " "
	}
}

func placeString(place game.Place) string {
	s := ""
	for _, piece := range place {
		s += pieceString(piece)
	}
	return s
}

// RenderBoard draws the ring as two columns, place 1 bottom left and place 8 bottom right.
func RenderBoard(w io.Writer, b game.Board) {
	fmt.Fprintf(w, "4    [%s] [%s]    5\n", placeString(b[3]), placeString(b[4]))
	fmt.Fprintf(w, "3   [%s]   [%s]   6\n", placeString(b[2]), placeString(b[5]))
	fmt.Fprintf(w, "2   [%s]   [%s]   7\n", placeString(b[1]), placeString(b[6]))
	fmt.Fprintf(w, "1    [%s] [%s]    8\n", placeString(b[0]), placeString(b[7]))
}

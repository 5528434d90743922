package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadBoard = errors.New("malformed board")

// ParseBoard reads the format written by Board.String: up to 8 whitespace separated stacks,
// bottom slot first, using 'w', 'b' and '.', optionally wrapped in brackets. Missing places are empty.
func ParseBoard(text string) (Board, error) {
	var b Board
	fields := strings.Fields(text)
	if len(fields) > NumPlaces {
		return b, fmt.Errorf("%d places: %w", len(fields), ErrBadBoard)
	}
	for i, field := range fields {
		stack := strings.TrimSuffix(strings.TrimPrefix(field, "["), "]")
		if len(stack) > PlaceHeight {
			return b, fmt.Errorf("place %d holds %q: %w", i+1, stack, ErrBadBoard)
		}
		for k, r := range stack {
			var piece Piece
			switch r {
			case 'w':
				piece = WhitePiece
			case 'b':
				piece = BlackPiece
			case '.':
				piece = Blank
			default:
				return b, fmt.Errorf("place %d has unknown piece %q: %w", i+1, r, ErrBadBoard)
			}
			if piece != Blank && k > 0 && b[i][k-1] == Blank {
				return b, fmt.Errorf("place %d has a floating piece: %w", i+1, ErrBadBoard)
			}
			b[i][k] = piece
		}
	}
	return b, nil
}

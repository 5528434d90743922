package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"secondbest/game"
)

// Human is a player typing turns on a line-based console. Places are numbered 1 to 8.
type Human struct {
	colour  game.Colour
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHuman(colour game.Colour, in io.Reader, out io.Writer) *Human {
	return &Human{
		colour:  colour,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (h *Human) Colour() game.Colour {
	return h.colour
}

func (h *Human) ProposePlacement(board game.Board, secondBest bool) (int, error) {
	h.announce(board, secondBest)
	for {
		fmt.Fprintf(h.out, "%s, place a piece. (1-8): ", h.colour)
		line, err := h.readLine()
		if err != nil {
			return 0, err
		}
		numbers, ok := parsePlaces(line)
		if ok && len(numbers) == 1 {
			return numbers[0], nil
		}
		fmt.Fprintln(h.out, "Invalid input")
	}
}

func (h *Human) ProposeMove(board game.Board, secondBest bool) (int, int, error) {
	h.announce(board, secondBest)
	for {
		fmt.Fprintf(h.out, "%s, move a piece. (1-8) (1-8): ", h.colour)
		line, err := h.readLine()
		if err != nil {
			return 0, 0, err
		}
		numbers, ok := parsePlaces(line)
		if ok && len(numbers) == 2 {
			return numbers[0], numbers[1], nil
		}
		fmt.Fprintln(h.out, "Invalid input")
	}
}

func (h *Human) Challenges(board game.Board, turn game.Turn) (bool, error) {
	after := board
	if board.IsPossibleTurn(turn) {
		after.DoTurn(turn)
	}
	RenderBoard(h.out, after)
	fmt.Fprintf(h.out, "%s.\n", turn)
	for {
		fmt.Fprint(h.out, "Second best? (y/n): ")
		line, err := h.readLine()
		if err != nil {
			return false, err
		}
		switch line {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		fmt.Fprintln(h.out, "Invalid input")
	}
}

func (h *Human) announce(board game.Board, secondBest bool) {
	if secondBest {
		fmt.Fprintln(h.out, "Second best! Try a new move.")
	}
	RenderBoard(h.out, board)
}

func (h *Human) readLine() (string, error) {
	if !h.scanner.Scan() {
		if err := h.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading %s input: %w", h.colour, err)
		}
		return "", fmt.Errorf("reading %s input: %w", h.colour, io.EOF)
	}
	return strings.TrimSpace(h.scanner.Text()), nil
}

// parsePlaces reads 1-based place numbers separated by non-digits and returns them 0-based.
func parsePlaces(line string) ([]int, bool) {
	fields := strings.FieldsFunc(line, func(r rune) bool { return !unicode.IsDigit(r) })
	if len(fields) == 0 {
		return nil, false
	}
	places := make([]int, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n < 1 || n > game.NumPlaces {
			return nil, false
		}
		places[i] = n - 1
	}
	return places, true
}

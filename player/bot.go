package player

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"secondbest/experiments/metrics"
	"secondbest/game"
	"secondbest/searcher"
)

// Bot is a player backed by a searcher.
type Bot struct {
	colour   game.Colour
	searcher *searcher.Searcher
	proposed bool
	// First proposal on lastBoard, excluded when asked to replay on the same board
	lastTurn  game.Turn
	lastBoard game.Board
}

func NewBot(colour game.Colour, s *searcher.Searcher) *Bot {
	return &Bot{colour: colour, searcher: s}
}

func (b *Bot) Colour() game.Colour {
	return b.colour
}

func (b *Bot) ProposePlacement(board game.Board, secondBest bool) (int, error) {
	turn, err := b.propose(board, secondBest)
	if err != nil {
		return 0, err
	}
	if turn.Action != game.PlaceAction {
		return 0, fmt.Errorf("%s bot found %v: %w", b.colour, turn, ErrWrongPhase)
	}
	return turn.To, nil
}

func (b *Bot) ProposeMove(board game.Board, secondBest bool) (int, int, error) {
	turn, err := b.propose(board, secondBest)
	if err != nil {
		return 0, 0, err
	}
	if turn.Action != game.MoveAction {
		return 0, 0, fmt.Errorf("%s bot found %v: %w", b.colour, turn, ErrWrongPhase)
	}
	return turn.From, turn.To, nil
}

func (b *Bot) propose(board game.Board, secondBest bool) (game.Turn, error) {
	var exclude []game.Turn
	if secondBest && b.proposed && b.lastBoard == board {
		exclude = append(exclude, b.lastTurn)
	}

	turn, err := b.searcher.ChooseTurn(b.colour, board, secondBest, exclude...)
	if err != nil {
		return game.Turn{}, fmt.Errorf("%s bot cannot propose: %w", b.colour, err)
	}
	if !secondBest {
		b.proposed = true
		b.lastTurn = turn
		b.lastBoard = board
	}

	log.Info().
		Str("colour", b.colour.String()).
		Str("turn", turn.String()).
		Bool("secondBest", secondBest).
		Msg("bot proposes")
	return turn, nil
}

// Challenges ranks the opponent's turns as if deciding for the opponent, and challenges
// any turn among the best.
func (b *Bot) Challenges(board game.Board, turn game.Turn) (bool, error) {
	challenged, err := b.searcher.IsChallenged(board, turn)
	if err != nil {
		return false, fmt.Errorf("%s bot cannot judge %v: %w", b.colour, turn, err)
	}
	log.Info().
		Str("colour", b.colour.String()).
		Str("turn", turn.String()).
		Bool("challenged", challenged).
		Msg("bot judges opponent turn")
	return challenged, nil
}

// LastSearch returns the metrics of the bot's most recent search.
func (b *Bot) LastSearch() metrics.SearchMetric {
	return b.searcher.LastSearch()
}

package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"secondbest/experiments/metrics"
	"secondbest/game"
	"secondbest/gamemaster"
	"secondbest/meta"
	"secondbest/player"
	"secondbest/searcher"
	"secondbest/utils"
)

var (
	ErrSameTurn       = errors.New("replay repeats the challenged turn")
	ErrTooManyInvalid = errors.New("too many invalid proposals")
)

type Option func(e *LocalEngine)

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns <= 0 {
			panic("max turns must be positive")
		}
		e.maxTurns = turns
	}
}

func WithMaxInvalid(proposals int) Option {
	return func(e *LocalEngine) {
		if proposals <= 0 {
			panic("max invalid proposals must be positive")
		}
		e.maxInvalid = proposals
	}
}

// WithBoard starts the game from board instead of an empty one. White moves first.
func WithBoard(board game.Board) Option {
	return func(e *LocalEngine) {
		e.referee = gamemaster.NewRefereeFrom(board)
	}
}

// WithObserver registers a function called with every committed turn.
func WithObserver(observe func(gamemaster.Update)) Option {
	return func(e *LocalEngine) {
		e.observers = append(e.observers, observe)
	}
}

// LocalEngine drives a game between two in-process players, including the second best challenge.
type LocalEngine struct {
	referee    *gamemaster.Referee
	players    [2]player.Player // Indexed by colour
	maxTurns   int
	maxInvalid int
	observers  []func(gamemaster.Update)
}

func Local(players []player.Player, options ...Option) *LocalEngine {
	if len(players) != 2 {
		panic("need exactly two players")
	}
	if players[0].Colour() == players[1].Colour() {
		panic("players must have different colours")
	}

	e := &LocalEngine{ // Default values
		referee:    gamemaster.NewReferee(),
		maxTurns:   meta.MAX_TURNS,
		maxInvalid: meta.MAX_INVALID_PROPOSALS,
	}
	for _, p := range players {
		e.players[p.Colour()] = p
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until the game is over or the turn limit is reached.
func (e *LocalEngine) Run() (Result, error) {
	start := time.Now()
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.referee.ToMove())

	for {
		if end, over := e.referee.Outcome(); over {
			log.Info().Msgf("game over after %d turns: %s", e.referee.Ply(), end)
			return e.result(end, start, moveMetrics, false), nil
		}
		if e.referee.Ply() >= e.maxTurns {
			log.Warn().Msgf("stopped after %d turns, the game is drawn", e.maxTurns)
			return e.result(game.Draw, start, moveMetrics, true), nil
		}

		moveMetric, err := e.playTurn()
		if err != nil {
			return e.result(game.Draw, start, moveMetrics, false), err
		}
		moveMetrics = append(moveMetrics, moveMetric)
	}
}

func (e *LocalEngine) playTurn() (metrics.MoveMetric, error) {
	colour := e.referee.ToMove()
	mover := e.players[colour]
	opponent := e.players[colour.Opponent()]
	board := e.referee.Board()
	ply := e.referee.Ply()

	first, err := e.propose(mover, board, false, nil)
	if err != nil {
		return metrics.MoveMetric{}, err
	}
	moveMetric := metrics.MoveMetric{
		Step:         ply + 1,
		Colour:       colour.String(),
		Position:     board.Hash(),
		SearchMetric: lastSearch(mover),
	}

	challenged, err := opponent.Challenges(board, first)
	if err != nil {
		return metrics.MoveMetric{}, fmt.Errorf("%s judging %v: %w", opponent.Colour(), first, err)
	}

	turn := first
	if challenged {
		moveMetric.Challenged = true
		log.Info().Msgf("%s challenges %v: second best!", opponent.Colour(), first)

		turn, moveMetric.Replayed, err = e.replay(mover, board, first)
		if err != nil {
			return metrics.MoveMetric{}, err
		}
		if moveMetric.Replayed {
			moveMetric.SearchMetric = lastSearch(mover)
		}
	}

	if err := e.referee.Play(turn); err != nil {
		return metrics.MoveMetric{}, fmt.Errorf("committing %v: %w", turn, err)
	}
	moveMetric.Turn = turn.String()
	log.Info().
		Int("ply", ply+1).
		Str("turn", turn.String()).
		Str("board", e.referee.Board().String()).
		Msg("turn played")

	for _, update := range e.referee.UpdatesSince(ply) {
		for _, observe := range e.observers {
			observe(update)
		}
	}
	return moveMetric, nil
}

// replay asks the mover for a turn other than the challenged one. The challenged turn stands
// when the mover has no other legal turn or reports that it has no alternative.
func (e *LocalEngine) replay(mover player.Player, board game.Board, challenged game.Turn) (game.Turn, bool, error) {
	if len(game.LegalTurns(mover.Colour(), board)) < 2 {
		log.Warn().Msgf("%v is the only turn of %s, it stands", challenged, mover.Colour())
		return challenged, false, nil
	}

	turn, err := e.propose(mover, board, true, &challenged)
	switch {
	case errors.Is(err, searcher.ErrNoAlternative):
		log.Warn().Err(err).Msgf("%s has no alternative, %v stands", mover.Colour(), challenged)
		return challenged, false, nil
	case err != nil:
		return game.Turn{}, false, err
	}
	return turn, true, nil
}

// propose asks the mover for a turn until the referee accepts one.
func (e *LocalEngine) propose(mover player.Player, board game.Board, secondBest bool, rejected *game.Turn) (game.Turn, error) {
	for attempt := 1; attempt <= e.maxInvalid; attempt++ {
		turn, err := ask(mover, board, secondBest)
		if err != nil {
			return game.Turn{}, fmt.Errorf("%s proposing: %w", mover.Colour(), err)
		}

		err = e.referee.Check(turn)
		if err == nil && rejected != nil && turn == *rejected {
			err = ErrSameTurn
		}
		if err == nil {
			return turn, nil
		}
		log.Warn().Err(err).Int("attempt", attempt).Msgf("%s proposed an invalid turn", mover.Colour())
	}
	return game.Turn{}, fmt.Errorf("%s after %d attempts: %w", mover.Colour(), e.maxInvalid, ErrTooManyInvalid)
}

func ask(mover player.Player, board game.Board, secondBest bool) (game.Turn, error) {
	if board.Phase() == game.PlacementPhase {
		to, err := mover.ProposePlacement(board, secondBest)
		if err != nil {
			return game.Turn{}, err
		}
		return game.Placement(mover.Colour(), to), nil
	}
	from, to, err := mover.ProposeMove(board, secondBest)
	if err != nil {
		return game.Turn{}, err
	}
	return game.Movement(mover.Colour(), from, to), nil
}

func lastSearch(p player.Player) metrics.SearchMetric {
	if searching, ok := p.(interface{ LastSearch() metrics.SearchMetric }); ok {
		return searching.LastSearch()
	}
	return metrics.SearchMetric{}
}

func (e *LocalEngine) result(end game.EndState, start time.Time, moveMetrics []metrics.MoveMetric, truncated bool) Result {
	endTime := time.Now()
	return Result{
		Outcome: end,
		Board:   e.referee.Board(),
		History: e.referee.History(),
		GameMetric: metrics.GameMetric{
			Outcome:    end.String(),
			StartTime:  start,
			EndTime:    endTime,
			Duration:   endTime.Sub(start),
			TotalTurns: e.referee.Ply(),
			Challenges: utils.Count(moveMetrics, func(m metrics.MoveMetric) bool { return m.Challenged }),
			Truncated:  truncated,
		},
		MoveMetrics: moveMetrics,
	}
}

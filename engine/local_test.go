package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"secondbest/experiments/metrics"
	"secondbest/game"
	"secondbest/gamemaster"
	"secondbest/player"
	"secondbest/searcher"
)

var errScriptDone = errors.New("script exhausted")

// scripted plays a fixed list of turns and answers challenges from a fixed list (false when exhausted).
type scripted struct {
	colour     game.Colour
	turns      []game.Turn
	challenges []bool
	noReplay   bool // Report no alternative when asked for second best
	next       int
	judged     int
	replays    int
}

func (s *scripted) Colour() game.Colour {
	return s.colour
}

func (s *scripted) nextTurn(secondBest bool) (game.Turn, error) {
	if secondBest {
		s.replays++
		if s.noReplay {
			return game.Turn{}, fmt.Errorf("scripted: %w", searcher.ErrNoAlternative)
		}
	}
	if s.next >= len(s.turns) {
		return game.Turn{}, errScriptDone
	}
	turn := s.turns[s.next]
	s.next++
	return turn, nil
}

func (s *scripted) ProposePlacement(board game.Board, secondBest bool) (int, error) {
	turn, err := s.nextTurn(secondBest)
	return turn.To, err
}

func (s *scripted) ProposeMove(board game.Board, secondBest bool) (int, int, error) {
	turn, err := s.nextTurn(secondBest)
	return turn.From, turn.To, err
}

func (s *scripted) Challenges(board game.Board, turn game.Turn) (bool, error) {
	s.judged++
	if s.judged > len(s.challenges) {
		return false, nil
	}
	return s.challenges[s.judged-1], nil
}

// searching reports a different search after each proposal, like a bot re-ranking on a replay.
type searching struct {
	*scripted
}

func (s searching) LastSearch() metrics.SearchMetric {
	return metrics.SearchMetric{Depth: 1, Candidates: s.next}
}

func places(colour game.Colour, indices ...int) []game.Turn {
	turns := make([]game.Turn, len(indices))
	for i, idx := range indices {
		turns[i] = game.Placement(colour, idx)
	}
	return turns
}

func TestLocalEngine(t *testing.T) {
	t.Run("plays until a mill", func(t *testing.T) {
		white := &scripted{colour: game.White, turns: places(game.White, 0, 0, 0)}
		black := &scripted{colour: game.Black, turns: places(game.Black, 1, 2)}

		result, err := Local([]player.Player{white, black}).Run()
		require.NoError(t, err)
		require.Equal(t, game.WhiteWins, result.Outcome)
		require.Equal(t, []game.Turn{
			game.Placement(game.White, 0),
			game.Placement(game.Black, 1),
			game.Placement(game.White, 0),
			game.Placement(game.Black, 2),
			game.Placement(game.White, 0),
		}, result.History)
		require.Len(t, result.MoveMetrics, 5)
		require.Equal(t, 5, result.GameMetric.TotalTurns)
		require.Equal(t, "White", result.GameMetric.Outcome)
		require.False(t, result.GameMetric.Truncated)
	})

	t.Run("accepts players in any order", func(t *testing.T) {
		white := &scripted{colour: game.White, turns: places(game.White, 0, 0, 0)}
		black := &scripted{colour: game.Black, turns: places(game.Black, 1, 2)}

		result, err := Local([]player.Player{black, white}).Run()
		require.NoError(t, err)
		require.Equal(t, game.WhiteWins, result.Outcome)
	})

	t.Run("retries invalid proposals", func(t *testing.T) {
		white := &scripted{colour: game.White, turns: places(game.White, 8, -1, 0, 0, 0)}
		black := &scripted{colour: game.Black, turns: places(game.Black, 1, 2)}

		result, err := Local([]player.Player{white, black}).Run()
		require.NoError(t, err)
		require.Equal(t, game.WhiteWins, result.Outcome)
		require.Len(t, result.History, 5, "invalid proposals must not be recorded")
	})

	t.Run("gives up after too many invalid proposals", func(t *testing.T) {
		white := &scripted{colour: game.White, turns: places(game.White, 8, 9, 10)}
		black := &scripted{colour: game.Black}

		_, err := Local([]player.Player{white, black}, WithMaxInvalid(3)).Run()
		require.ErrorIs(t, err, ErrTooManyInvalid)
	})

	t.Run("passes on player errors", func(t *testing.T) {
		white := &scripted{colour: game.White}
		black := &scripted{colour: game.Black}

		_, err := Local([]player.Player{white, black}).Run()
		require.ErrorIs(t, err, errScriptDone)
	})

	t.Run("replays a challenged turn with a different one", func(t *testing.T) {
		white := &scripted{colour: game.White, turns: []game.Turn{
			game.Placement(game.White, 0),
			game.Placement(game.White, 0), // Same as the challenged turn
			game.Placement(game.White, 3),
		}}
		black := &scripted{colour: game.Black, challenges: []bool{true}}

		e := Local([]player.Player{white, black}, WithMaxTurns(1))
		result, err := e.Run()
		require.NoError(t, err)
		require.Equal(t, []game.Turn{game.Placement(game.White, 3)}, result.History)
		require.Equal(t, 2, white.replays, "white should be asked again after repeating itself")
		require.True(t, result.MoveMetrics[0].Challenged)
		require.True(t, result.MoveMetrics[0].Replayed)
		require.Equal(t, 1, result.GameMetric.Challenges)
	})

	t.Run("records the search behind a replayed turn", func(t *testing.T) {
		white := searching{&scripted{colour: game.White, turns: places(game.White, 0, 3)}}
		black := &scripted{colour: game.Black, challenges: []bool{true}}

		result, err := Local([]player.Player{white, black}, WithMaxTurns(1)).Run()
		require.NoError(t, err)
		require.True(t, result.MoveMetrics[0].Replayed)
		require.Equal(t, 2, result.MoveMetrics[0].Candidates, "metrics should come from the second proposal")
	})

	t.Run("keeps the first search when the challenged turn stands", func(t *testing.T) {
		white := searching{&scripted{colour: game.White, turns: places(game.White, 5), noReplay: true}}
		black := &scripted{colour: game.Black, challenges: []bool{true}}

		result, err := Local([]player.Player{white, black}, WithMaxTurns(1)).Run()
		require.NoError(t, err)
		require.False(t, result.MoveMetrics[0].Replayed)
		require.Equal(t, 1, result.MoveMetrics[0].Candidates)
	})

	t.Run("lets the challenged turn stand without an alternative", func(t *testing.T) {
		white := &scripted{colour: game.White, turns: places(game.White, 5), noReplay: true}
		black := &scripted{colour: game.Black, challenges: []bool{true}}

		result, err := Local([]player.Player{white, black}, WithMaxTurns(1)).Run()
		require.NoError(t, err)
		require.Equal(t, places(game.White, 5), result.History)
		require.True(t, result.MoveMetrics[0].Challenged)
		require.False(t, result.MoveMetrics[0].Replayed)
	})

	t.Run("lets the only legal turn stand", func(t *testing.T) {
		// White can only move the top of place 1 onto place 8
		board, err := game.ParseBoard("bw bwb [...] bwb wwb wwb [...] wb")
		require.NoError(t, err)
		require.Len(t, game.LegalTurns(game.White, board), 1)

		white := &scripted{colour: game.White, turns: []game.Turn{game.Movement(game.White, 0, 7)}}
		black := &scripted{colour: game.Black, challenges: []bool{true}}

		result, err := Local([]player.Player{white, black}, WithBoard(board), WithMaxTurns(1)).Run()
		require.NoError(t, err)
		require.Equal(t, []game.Turn{game.Movement(game.White, 0, 7)}, result.History)
		require.Zero(t, white.replays)
	})

	t.Run("draws at the turn limit", func(t *testing.T) {
		white := &scripted{colour: game.White, turns: places(game.White, 0, 1)}
		black := &scripted{colour: game.Black, turns: places(game.Black, 0, 1)}

		result, err := Local([]player.Player{white, black}, WithMaxTurns(4)).Run()
		require.NoError(t, err)
		require.Equal(t, game.Draw, result.Outcome)
		require.True(t, result.GameMetric.Truncated)
		require.Len(t, result.History, 4)
	})

	t.Run("ends at once when the side to move is stuck", func(t *testing.T) {
		board, err := game.ParseBoard("wwb wwb wb [...] wwb wwb wb [...]")
		require.NoError(t, err)
		white := &scripted{colour: game.White}
		black := &scripted{colour: game.Black}

		result, err := Local([]player.Player{white, black}, WithBoard(board)).Run()
		require.NoError(t, err)
		require.Equal(t, game.BlackWins, result.Outcome)
		require.Empty(t, result.History)
	})

	t.Run("notifies observers of every committed turn", func(t *testing.T) {
		white := &scripted{colour: game.White, turns: places(game.White, 0, 0, 0)}
		black := &scripted{colour: game.Black, turns: places(game.Black, 1, 2)}

		var updates []gamemaster.Update
		result, err := Local([]player.Player{white, black}, WithObserver(func(u gamemaster.Update) {
			updates = append(updates, u)
		})).Run()
		require.NoError(t, err)
		require.Len(t, updates, len(result.History))
		for i, u := range updates {
			require.Equal(t, i+1, u.Ply)
			require.Equal(t, result.History[i], u.Turn)
		}
	})

	t.Run("plays a full game between bots", func(t *testing.T) {
		white := player.NewBot(game.White, searcher.NewSearcher(searcher.WithDepth(1), searcher.WithSeed(1), searcher.WithMetrics()))
		black := player.NewBot(game.Black, searcher.NewSearcher(searcher.WithDepth(1), searcher.WithSeed(2), searcher.WithMetrics()))

		result, err := Local([]player.Player{white, black}, WithMaxTurns(60)).Run()
		require.NoError(t, err)

		referee := gamemaster.NewReferee()
		for _, turn := range result.History {
			require.NoError(t, referee.Play(turn), "recorded turn %v should replay", turn)
		}
		if !result.GameMetric.Truncated {
			end, over := referee.Outcome()
			require.True(t, over)
			require.Equal(t, result.Outcome, end)
		}
		for _, m := range result.MoveMetrics {
			require.Equal(t, 1, m.Depth)
			require.Positive(t, m.Candidates)
		}
	})

	t.Run("rejects players of the same colour", func(t *testing.T) {
		require.Panics(t, func() {
			Local([]player.Player{&scripted{colour: game.White}, &scripted{colour: game.White}})
		})
		require.Panics(t, func() {
			Local([]player.Player{&scripted{colour: game.White}})
		})
	})
}

package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"secondbest/game"
)

func mustBoard(t *testing.T, text string) game.Board {
	t.Helper()
	b, err := game.ParseBoard(text)
	require.NoError(t, err)
	return b
}

// White has two stacked pieces at place 1 and is to place.
const verticalThreat = "ww b b"

// Black tops at 1-3 and 5-7 over white pieces: Black completes a horizontal mill through
// place 4 or place 8 whatever White places.
const doubleMillThreat = "wb wb wb [...] wb wb wb [...]"

func TestScore(t *testing.T) {
	t.Run("immediate win scores WIN at any depth", func(t *testing.T) {
		b := mustBoard(t, verticalThreat)
		s := NewSearcher()

		for depth := 0; depth <= 3; depth++ {
			require.Equal(t, WIN, s.Score(game.Placement(game.White, 0), b, game.White, depth),
				"Completing the stack should win at depth %d", depth)
			require.Equal(t, LOSS, s.Score(game.Placement(game.White, 0), b, game.Black, depth),
				"The same turn is a loss from Black's perspective")
		}
	})

	t.Run("horizon scores DRAW", func(t *testing.T) {
		s := NewSearcher()
		require.Equal(t, DRAW, s.Score(game.Placement(game.White, 0), game.NewBoard(), game.White, 0))
	})

	t.Run("simultaneous mills score DRAW", func(t *testing.T) {
		// Moving the white top off place 1 reveals a black top that completes Black's mill,
		// and lands on place 8 to complete White's stack.
		b := mustBoard(t, "bw b b b [...] [...] [...] ww")
		s := NewSearcher()

		require.Equal(t, DRAW, s.Score(game.Movement(game.White, 0, 7), b, game.White, 2))
	})

	t.Run("averaging replies", func(t *testing.T) {
		b := mustBoard(t, doubleMillThreat)
		s := NewSearcher()

		// Place 2 becomes full: 2 of Black's 7 placements win
		require.InDelta(t, -200.0/7, s.Score(game.Placement(game.White, 1), b, game.White, 1), 1e-9)
		// All 8 places stay open: 2 of Black's 8 placements win
		require.InDelta(t, -25.0, s.Score(game.Placement(game.White, 3), b, game.White, 1), 1e-9)
	})

	t.Run("unstoppable threat makes every candidate negative", func(t *testing.T) {
		b := mustBoard(t, doubleMillThreat)
		s := NewSearcher()

		turns := game.LegalTurns(game.White, b)
		require.Len(t, turns, game.NumPlaces)
		for _, turn := range turns {
			require.Less(t, s.Score(turn, b, game.White, 1), 0.0, "%v should not escape the threat", turn)
		}
	})

	t.Run("stuck side loses", func(t *testing.T) {
		// Movement phase, every top is white
		b := mustBoard(t, "bbw bbw bw [...] bbw bbw bw [...]")
		require.Equal(t, game.MovementPhase, b.Phase())
		_, over := b.IsWon()
		require.False(t, over)
		s := NewSearcher()

		require.Equal(t, WIN, s.expect(b, game.Black, game.White, 1), "Black cannot move")
		require.Equal(t, LOSS, s.expect(b, game.Black, game.Black, 1))
	})

	t.Run("score is within bounds", func(t *testing.T) {
		b := mustBoard(t, "wb b w bw")
		s := NewSearcher()

		for _, turn := range game.LegalTurns(game.White, b) {
			score := s.Score(turn, b, game.White, 2)
			require.GreaterOrEqual(t, score, LOSS)
			require.LessOrEqual(t, score, WIN)
		}
	})

	t.Run("scoring leaves the board untouched", func(t *testing.T) {
		b := mustBoard(t, doubleMillThreat)
		before := b
		s := NewSearcher()

		s.Score(game.Placement(game.White, 3), b, game.White, 2)

		require.Equal(t, before, b)
	})
}

func TestCachedAndParallelScoring(t *testing.T) {
	boards := map[string]string{
		"opening":   "w b [...] wb",
		"threat":    doubleMillThreat,
		"movement":  "bw wb bw wb bw wb bw wb",
		"late game": "bw bwb wb w wwb bw wb b",
	}
	for name, text := range boards {
		t.Run(name, func(t *testing.T) {
			b := mustBoard(t, text)
			plain := NewSearcher(WithDepth(2), WithSeed(1))
			tuned := NewSearcher(WithDepth(2), WithSeed(1), WithCache(), WithGoroutines(4))

			for _, colour := range []game.Colour{game.White, game.Black} {
				expected, err := plain.Rank(colour, b)
				if err != nil {
					require.ErrorIs(t, err, ErrNoLegalTurns)
					continue
				}
				got, err := tuned.Rank(colour, b)
				require.NoError(t, err)

				require.Equal(t, expected.Scored, got.Scored, "Scores should be bit-identical")
				require.Equal(t, expected.Best, got.Best)
				require.Equal(t, expected.SecondBest, got.SecondBest)
			}
			require.Greater(t, tuned.cache.len(), 0, "Cache should hold node means")
		})
	}
}

func TestCache(t *testing.T) {
	t.Run("nil cache stores nothing", func(t *testing.T) {
		var c *cache
		c.put(cacheKey{depth: 1}, 5)

		_, ok := c.get(cacheKey{depth: 1})
		require.False(t, ok)
		require.Equal(t, 0, c.len())
	})

	t.Run("clearing when full", func(t *testing.T) {
		c := newCache(2)
		c.put(cacheKey{depth: 1}, 1)
		c.put(cacheKey{depth: 2}, 2)
		c.put(cacheKey{depth: 3}, 3)

		require.Equal(t, 1, c.len(), "Cache should start over once full")
		value, ok := c.get(cacheKey{depth: 3})
		require.True(t, ok)
		require.Equal(t, 3.0, value)
	})
}

package searcher

import (
	"golang.org/x/exp/rand"

	"secondbest/experiments/metrics"
	"secondbest/game"
	"secondbest/meta"
)

// Searcher recommends turns by averaging the outcomes of every continuation up to a fixed depth.
// Opponent replies are treated as uniformly distributed, not as adversarial.
//
// A Searcher is not safe for concurrent use; it parallelizes internally when configured to.
type Searcher struct {
	depth      int
	goroutines int
	rng        *rand.Rand
	cache      *cache
	metrics    metrics.Collector
	last       metrics.SearchMetric
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		depth:      meta.SEARCH_DEPTH,
		goroutines: 1,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.rng == nil {
		s.rng = defaultRand()
	}
	return s
}

func (s *Searcher) Depth() int {
	return s.depth
}

// LastSearch returns the metrics of the most recent ranking, if metrics are collected.
func (s *Searcher) LastSearch() metrics.SearchMetric {
	return s.last
}

// Score plays turn on a copy of board and returns its value for perspective, between LOSS and WIN.
// A finished game scores its outcome, the horizon scores DRAW, anything else scores the mean
// of every reply of the next mover searched one ply shallower.
func (s *Searcher) Score(turn game.Turn, board game.Board, perspective game.Colour, depth int) float64 {
	board.DoTurn(turn)
	s.metrics.AddNode()

	if end, over := board.IsWon(); over {
		s.metrics.AddTerminal()
		return outcomeScore(end, perspective)
	}
	if depth <= 0 {
		return DRAW
	}
	return s.expect(board, turn.Colour.Opponent(), perspective, depth)
}

// expect returns the mean score of mover's replies on board.
func (s *Searcher) expect(board game.Board, mover, perspective game.Colour, depth int) float64 {
	key := cacheKey{board: board, mover: mover, perspective: perspective, depth: depth}
	if value, ok := s.cache.get(key); ok {
		s.metrics.AddCacheHit()
		return value
	}

	var value float64
	turns := game.LegalTurns(mover, board)
	if len(turns) == 0 {
		value = outcomeScore(game.StalemateOutcome(mover), perspective)
	} else {
		sum := 0.0
		for _, turn := range turns {
			sum += s.Score(turn, board, perspective, depth-1)
		}
		value = sum / float64(len(turns))
	}

	s.cache.put(key, value)
	return value
}

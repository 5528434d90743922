package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"secondbest/experiments/metrics"
	"secondbest/meta"
)

type Option func(s *Searcher)

// WithDepth sets the number of plies looked at beyond each candidate turn.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth >= 0 {
			s.depth = depth
		}
	}
}

// WithGoroutines scores root candidates concurrently. Scores do not depend on it.
func WithGoroutines(goroutines int) Option {
	return func(s *Searcher) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

// WithCache memoizes node means across searches.
func WithCache() Option {
	return func(s *Searcher) {
		s.cache = newCache(meta.CACHE_ENTRIES)
	}
}

func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(s *Searcher) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func defaultRand() *rand.Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}

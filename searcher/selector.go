package searcher

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"secondbest/game"
	"secondbest/utils"
)

type ScoredTurn struct {
	Turn  game.Turn
	Score float64
}

// Ranking partitions the candidate turns of one colour by score. SecondBest holds the turns with
// the highest score strictly below BestScore, or the best turns when all candidates tie.
type Ranking struct {
	Colour          game.Colour
	Scored          []ScoredTurn
	Best            []game.Turn
	SecondBest      []game.Turn
	BestScore       float64
	SecondBestScore float64
}

// Rank scores every legal turn of colour on board.
func (s *Searcher) Rank(colour game.Colour, board game.Board) (Ranking, error) {
	turns := game.LegalTurns(colour, board)
	if len(turns) == 0 {
		return Ranking{}, fmt.Errorf("cannot rank %s turns on %v: %w", colour, board, ErrNoLegalTurns)
	}

	s.metrics.Start(s.depth, s.goroutines, s.cache != nil)
	s.metrics.AddCandidates(len(turns))
	scores := s.scoreAll(turns, board, colour)
	s.last = s.metrics.Complete()

	scored := make([]ScoredTurn, len(turns))
	for i, turn := range turns {
		scored[i] = ScoredTurn{Turn: turn, Score: scores[i]}
	}
	ranking := partition(colour, scored)

	log.Debug().
		Str("colour", colour.String()).
		Int("candidates", len(turns)).
		Int("depth", s.depth).
		Float64("best", ranking.BestScore).
		Int("bestTurns", len(ranking.Best)).
		Float64("secondBest", ranking.SecondBestScore).
		Int("secondBestTurns", len(ranking.SecondBest)).
		Msg("ranked turns")

	return ranking, nil
}

func (s *Searcher) scoreAll(turns []game.Turn, board game.Board, colour game.Colour) []float64 {
	scores := make([]float64, len(turns))
	if s.goroutines <= 1 {
		for i, turn := range turns {
			scores[i] = s.Score(turn, board, colour, s.depth)
		}
		return scores
	}

	// Each candidate writes only its own slot
	var g errgroup.Group
	g.SetLimit(s.goroutines)
	for i, turn := range turns {
		g.Go(func() error {
			scores[i] = s.Score(turn, board, colour, s.depth)
			return nil
		})
	}
	g.Wait()
	return scores
}

func partition(colour game.Colour, scored []ScoredTurn) Ranking {
	r := Ranking{Colour: colour, Scored: scored}

	r.BestScore = scored[0].Score
	for _, st := range scored[1:] {
		r.BestScore = max(r.BestScore, st.Score)
	}
	found := false
	for _, st := range scored {
		if st.Score < r.BestScore && (!found || st.Score > r.SecondBestScore) {
			r.SecondBestScore = st.Score
			found = true
		}
	}
	if !found {
		r.SecondBestScore = r.BestScore
	}

	for _, st := range scored {
		if st.Score == r.BestScore {
			r.Best = append(r.Best, st.Turn)
		}
		if st.Score == r.SecondBestScore {
			r.SecondBest = append(r.SecondBest, st.Turn)
		}
	}
	return r
}

// BestAndSecondBest returns the best and second-best buckets of colour's turns.
func (s *Searcher) BestAndSecondBest(colour game.Colour, board game.Board) (best, secondBest []game.Turn, err error) {
	ranking, err := s.Rank(colour, board)
	if err != nil {
		return nil, nil, err
	}
	return ranking.Best, ranking.SecondBest, nil
}

// ChooseTurn picks uniformly at random from the requested bucket, leaving out excluded turns.
// When exclusions empty the bucket, it picks among the highest scored turns that remain.
func (s *Searcher) ChooseTurn(colour game.Colour, board game.Board, wantSecondBest bool, exclude ...game.Turn) (game.Turn, error) {
	ranking, err := s.Rank(colour, board)
	if err != nil {
		return game.Turn{}, err
	}

	bucket := ranking.Best
	if wantSecondBest {
		bucket = ranking.SecondBest
	}
	candidates := without(bucket, exclude)
	if len(candidates) == 0 {
		candidates = ranking.bestExcluding(exclude)
	}
	if len(candidates) == 0 {
		return game.Turn{}, fmt.Errorf("all %d %s turns excluded: %w", len(ranking.Scored), colour, ErrNoAlternative)
	}
	return candidates[s.rng.Intn(len(candidates))], nil
}

// IsChallenged reports whether proposed is among the best turns of its colour, as ranked by this searcher.
func (s *Searcher) IsChallenged(board game.Board, proposed game.Turn) (bool, error) {
	ranking, err := s.Rank(proposed.Colour, board)
	if err != nil {
		return false, err
	}
	return utils.FindIndex(ranking.Best, proposed) >= 0, nil
}

func (r Ranking) bestExcluding(exclude []game.Turn) []game.Turn {
	var remaining []ScoredTurn
	for _, st := range r.Scored {
		if utils.FindIndex(exclude, st.Turn) < 0 {
			remaining = append(remaining, st)
		}
	}
	if len(remaining) == 0 {
		return nil
	}
	return partition(r.Colour, remaining).Best
}

func without(turns []game.Turn, exclude []game.Turn) []game.Turn {
	kept := make([]game.Turn, 0, len(turns))
	for _, turn := range turns {
		if utils.FindIndex(exclude, turn) < 0 {
			kept = append(kept, turn)
		}
	}
	return kept
}

package experiments

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"secondbest/engine"
	"secondbest/experiments/metrics"
	"secondbest/game"
	"secondbest/meta"
	"secondbest/player"
	"secondbest/searcher"
)

const NumGames = 10 // Per matchup

// DepthConfigs pairs a shallow baseline (the first config) against deeper searchers.
var DepthConfigs = []metrics.AgentConfig{
	{ID: 0, Depth: 1, Goroutines: 1},
	{ID: 1, Depth: 2, Goroutines: 1},
	{ID: 2, Depth: 3, Goroutines: meta.GO_ROUTINES, Cached: true},
	{ID: 3, Depth: meta.SEARCH_DEPTH, Goroutines: meta.GO_ROUTINES, Cached: true},
}

// RunDepthExperiment plays games between the first config, the baseline, and each other config,
// alternating colours, and stores the configs, game and move records and every game's history in dir.
func RunDepthExperiment(dir string, configs []metrics.AgentConfig, games int) error {
	if len(configs) < 2 {
		return errors.New("need a baseline and at least one other config")
	}
	baseline := configs[0]
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs[1:] {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting depth experiment in %s...", dir)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])
		wins := map[int]int{}

		for i := 0; i < games; i++ {
			// Swap colours every other game
			white, black := matchUp[0], matchUp[1]
			if i%2 == 1 {
				white, black = black, white
			}

			id := uuid.NewString()
			result, err := runGame(white, black, uint64(i))
			if err != nil {
				return fmt.Errorf("game %s between agents %d and %d: %w", id, white.ID, black.ID, err)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         id,
				Agent1:     white.ID,
				Agent2:     black.ID,
				GameMetric: result.GameMetric,
			})
			for _, mm := range result.MoveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       id,
					MoveMetric: mm,
				})
			}
			err = writer.WriteHistory(id, result.History)
			if err != nil {
				return fmt.Errorf("failed to store history of game %s: %w", id, err)
			}

			if winner, ok := result.Outcome.Winner(); ok {
				if winner == game.White {
					wins[white.ID]++
				} else {
					wins[black.ID]++
				}
			}
			log.Info().Msgf("completed matchup %d of %d game %d with outcome: %s", mi+1, len(matchUps), i+1, result.Outcome)
		}
		log.Info().Msgf("completed matchup %d of %d, wins by agent: %v", mi+1, len(matchUps), wins)
	}

	log.Info().Msg("completed depth experiment")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return nil
}

// runGame plays a single game between two bots. offset varies the seeds from game to game.
func runGame(white, black metrics.AgentConfig, offset uint64) (engine.Result, error) {
	players := []player.Player{
		player.NewBot(game.White, createSearcher(white, offset)),
		player.NewBot(game.Black, createSearcher(black, offset)),
	}
	return engine.Local(players).Run()
}

func createSearcher(config metrics.AgentConfig, offset uint64) *searcher.Searcher {
	options := []searcher.Option{
		searcher.WithDepth(config.Depth),
		searcher.WithMetrics(),
	}
	if config.Goroutines > 1 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.Cached {
		options = append(options, searcher.WithCache())
	}

	seed := config.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	options = append(options, searcher.WithSeed(seed+offset))

	return searcher.NewSearcher(options...)
}

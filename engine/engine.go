package engine

import (
	"secondbest/experiments/metrics"
	"secondbest/game"
)

type Result struct {
	Outcome     game.EndState
	Board       game.Board // Final position
	History     []game.Turn
	GameMetric  metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}

type Engine interface {
	// Run plays a game till it is won, drawn or the turn limit is reached
	Run() (Result, error)
}

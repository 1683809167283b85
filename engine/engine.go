package engine

import (
	"clobber/experiments/metrics"
	"clobber/game"
)

type Engine interface {
	// Run plays the game until the side to move is stuck and returns the winner
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

var _ Engine = (*Local)(nil)

package metrics

import (
	"clobber/game"
	"time"
)

// SearchMetric describes a single FindMove call.
type SearchMetric struct {
	Depth      int
	Workers    int
	Nodes      int // search tree nodes visited, root included
	Score      int
	Duration   time.Duration
	Randomized bool // move was drawn at random instead of searched
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	TotalNodes     int
}

// Collector accumulates move metrics over one game.
type Collector interface {
	Start(starting game.Player)
	AddMove(metric MoveMetric)
	Complete(winner game.Player) (GameMetric, []MoveMetric)
}

type collector struct {
	starting   game.Player
	startTime  time.Time
	moves      []MoveMetric
	totalNodes int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(starting game.Player) {
	c.starting = starting
	c.startTime = time.Now()
	c.moves = nil
	c.totalNodes = 0
}

func (c *collector) AddMove(metric MoveMetric) {
	c.moves = append(c.moves, metric)
	c.totalNodes += metric.Nodes
}

func (c *collector) Complete(winner game.Player) (GameMetric, []MoveMetric) {
	end := time.Now()
	return GameMetric{
		StartingPlayer: c.starting,
		Winner:         winner,
		StartTime:      c.startTime,
		EndTime:        end,
		Duration:       end.Sub(c.startTime),
		TotalMoves:     len(c.moves),
		TotalNodes:     c.totalNodes,
	}, c.moves
}

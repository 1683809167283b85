package metrics

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the games and searched moves of one agent configuration.
type Summary struct {
	Agent            int
	Games            int
	Wins             int
	WinRate          float64
	Moves            int // searched moves only; random moves are excluded
	MeanNodes        float64
	StdDevNodes      float64
	MeanMoveDuration time.Duration
}

// Summarize groups records by agent. A move belongs to the agent that played
// the moving colour in its game.
func Summarize(games []GameRecord, moves []MoveRecord) []Summary {
	type tally struct {
		games, wins int
		nodes       []float64
		durations   []float64
	}
	tallies := map[int]*tally{}
	get := func(agent int) *tally {
		t, ok := tallies[agent]
		if !ok {
			t = &tally{}
			tallies[agent] = t
		}
		return t
	}

	byID := make(map[int]GameRecord, len(games))
	for _, g := range games {
		byID[g.ID] = g
		for _, agent := range []int{g.Agent1, g.Agent2} {
			get(agent).games++
		}
		if g.Winner == g.StartingPlayer {
			get(g.Agent1).wins++
		} else {
			get(g.Agent2).wins++
		}
	}

	for _, m := range moves {
		g, ok := byID[m.Game]
		if !ok || m.Randomized {
			continue
		}
		agent := g.Agent2
		if m.Player == g.StartingPlayer {
			agent = g.Agent1
		}
		t := get(agent)
		t.nodes = append(t.nodes, float64(m.Nodes))
		t.durations = append(t.durations, float64(m.Duration))
	}

	summaries := make([]Summary, 0, len(tallies))
	for agent, t := range tallies {
		s := Summary{Agent: agent, Games: t.games, Wins: t.wins, Moves: len(t.nodes)}
		if t.games > 0 {
			s.WinRate = float64(t.wins) / float64(t.games)
		}
		if len(t.nodes) > 0 {
			s.MeanNodes = stat.Mean(t.nodes, nil)
			s.MeanMoveDuration = time.Duration(stat.Mean(t.durations, nil))
		}
		if len(t.nodes) > 1 {
			s.StdDevNodes = stat.StdDev(t.nodes, nil)
		}
		summaries = append(summaries, s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Agent < summaries[j].Agent })
	return summaries
}

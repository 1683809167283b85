package experiments

import (
	"clobber/engine"
	"clobber/experiments/metrics"
	"clobber/game"
	"clobber/meta"
	"clobber/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Baseline is the reference player every experiment measures against.
var Baseline = metrics.AgentConfig{ID: 0, Heuristic: meta.DEFAULT_HEURISTIC, Depth: 2, Workers: 1}

// RunHeuristicExperiment pits every heuristic, searched at the default depth,
// against the baseline. It returns the directory the records were written to.
func RunHeuristicExperiment(board *game.Board, root string, games int, seed uint64) (string, error) {
	configs := []metrics.AgentConfig{}
	for i, id := range []int{game.MobilityHeuristic, game.PieceCountHeuristic, game.MaterialHeuristic} {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Heuristic: id, Depth: meta.DEFAULT_DEPTH, Workers: 1})
	}
	return runAgainstBaseline("heuristics", board, root, Baseline, configs, games, seed)
}

// RunDepthExperiment measures how search depth trades nodes for strength.
// Every agent plays partly at random so that repeated games differ.
func RunDepthExperiment(board *game.Board, root string, games int, seed uint64) (string, error) {
	configs := []metrics.AgentConfig{}
	for depth := 1; depth <= meta.DEFAULT_DEPTH; depth++ {
		configs = append(configs, metrics.AgentConfig{ID: depth, Heuristic: meta.DEFAULT_HEURISTIC, Depth: depth, Random: true, Workers: 1})
	}
	baseline := Baseline
	baseline.Random = true
	return runAgainstBaseline("depth", board, root, baseline, configs, games, seed)
}

func runAgainstBaseline(name string, board *game.Board, root string, baseline metrics.AgentConfig, configs []metrics.AgentConfig, games int, seed uint64) (string, error) {
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}
	return runExperiment(name, board, root, append(configs, baseline), matchUps, games, seed)
}

func runExperiment(name string, board *game.Board, root string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, games int, seed uint64) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting match-up %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < games; i++ {
			// Black always moves first, so the colours swap every game
			black, white := matchUp[0], matchUp[1]
			if i%2 == 1 {
				black, white = white, black
			}

			count++
			winner, gameMetric, moveMetrics, err := runGame(board, black, white, seed+uint64(count)*2)
			if err != nil {
				return "", errors.Wrapf(err, "match-up %d game %d", mi+1, i+1)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     black.ID,
				Agent2:     white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed match-up %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", errors.Wrap(err, "failed to create experiment writer")
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	if err := writer.WriteSummaries(metrics.Summarize(gameRecords, moveRecords)); err != nil {
		return "", err
	}
	log.Info().Msgf("stored %d games and %d moves in %s", len(gameRecords), len(moveRecords), writer.Dir())

	return writer.Dir(), nil
}

// runGame plays a single game on a copy of board.
func runGame(board *game.Board, black, white metrics.AgentConfig, seed uint64) (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	blackAgent, err := CreateAgent(black, seed)
	if err != nil {
		return 0, metrics.GameMetric{}, nil, err
	}
	whiteAgent, err := CreateAgent(white, seed+1)
	if err != nil {
		return 0, metrics.GameMetric{}, nil, err
	}

	e := engine.LocalEngine(board, [2]engine.Agent{blackAgent, whiteAgent})
	return e.Run()
}

// CreateAgent builds the agent described by config. The seed only matters
// for randomized agents.
func CreateAgent(config metrics.AgentConfig, seed uint64) (engine.Agent, error) {
	evaluate, err := game.HeuristicByID(config.Heuristic)
	if err != nil {
		return nil, errors.WithMessagef(err, "agent %d", config.ID)
	}
	depth := config.Depth
	if depth <= 0 {
		depth = meta.DEFAULT_DEPTH
	}

	options := []searcher.Option{}
	if config.Workers > 1 {
		options = append(options, searcher.WithParallel(config.Workers))
	}

	agent := engine.NewSearchAgent(searcher.NewMinimax(depth, evaluate, options...))
	if config.Random {
		agent = engine.NewRandomizedAgent(agent, meta.RANDOM_MOVE_PROBABILITY, seed)
	}
	return agent, nil
}

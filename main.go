package main

import (
	"clobber/boardfile"
	"clobber/engine"
	"clobber/experiments"
	"clobber/experiments/metrics"
	"clobber/game"
	"clobber/meta"
	"clobber/render"
	"clobber/searcher"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type options struct {
	board       string
	interactive bool
	players     [2]metrics.AgentConfig
	seed        uint64
	trace       string
	experiment  string
	games       int
}

func main() {
	opts := options{}
	flag.StringVar(&opts.board, "board", "", "Path to the board file")
	flag.BoolVar(&opts.interactive, "interactive", false, "Show the board after every move, marking the move played")
	flag.IntVar(&opts.players[0].Heuristic, "player1-strategy", meta.DEFAULT_HEURISTIC, "Heuristic of the first player (Black): 1 mobility, 2 piece count, 3 material, 4 player mobility")
	flag.IntVar(&opts.players[1].Heuristic, "player2-strategy", meta.DEFAULT_HEURISTIC, "Heuristic of the second player (White)")
	flag.IntVar(&opts.players[0].Depth, "player1-depth", meta.DEFAULT_DEPTH, "Search depth of the first player")
	flag.IntVar(&opts.players[1].Depth, "player2-depth", meta.DEFAULT_DEPTH, "Search depth of the second player")
	flag.BoolVar(&opts.players[0].Random, "player1-random", false, "Let the first player sometimes play a random move")
	flag.BoolVar(&opts.players[1].Random, "player2-random", false, "Let the second player sometimes play a random move")
	flag.Uint64Var(&opts.seed, "seed", uint64(time.Now().UnixNano()), "Seed for random moves")
	workers := flag.Int("parallel", 1, "Number of goroutines searching the root moves")
	flag.StringVar(&opts.trace, "trace", "", "Write the first player's initial search tree to this file in DOT format")
	flag.StringVar(&opts.experiment, "experiment", "", "Run the heuristic and depth experiments and store CSV records in this directory")
	flag.IntVar(&opts.games, "games", meta.NUM_GAMES, "Number of games per experiment match-up")
	level := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	for i := range opts.players {
		opts.players[i].ID = i + 1
		opts.players[i].Workers = *workers
	}

	if opts.board == "" {
		fmt.Fprintln(os.Stderr, "a board file is required")
		flag.Usage()
		os.Exit(2)
	}
	board, err := boardfile.Load(opts.board)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if opts.experiment != "" {
		err = runExperiments(board, opts)
	} else {
		err = play(board, opts)
	}
	if err != nil {
		log.Error().Err(err).Msg("failed")
		os.Exit(1)
	}
}

func runExperiments(board *game.Board, opts options) error {
	dir, err := experiments.RunHeuristicExperiment(board, opts.experiment, opts.games, opts.seed)
	if err != nil {
		return errors.Wrap(err, "heuristic experiment")
	}
	log.Info().Msgf("heuristic records in %s", dir)

	dir, err = experiments.RunDepthExperiment(board, opts.experiment, opts.games, opts.seed)
	if err != nil {
		return errors.Wrap(err, "depth experiment")
	}
	log.Info().Msgf("depth records in %s", dir)
	return nil
}

func play(board *game.Board, opts options) error {
	var agents [2]engine.Agent
	for i, config := range opts.players {
		agent, err := experiments.CreateAgent(config, opts.seed+uint64(i))
		if err != nil {
			return err
		}
		agents[i] = agent
	}

	if opts.trace != "" {
		if err := writeTrace(board, opts.players[0], opts.trace); err != nil {
			return err
		}
	}

	e := engine.LocalEngine(board, agents, engine.WithObserver(printRounds(os.Stdout, board, opts.interactive)))
	winner, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Printf("\n%s\n", e.State.Board)
	fmt.Printf("Rounds: %d, winner: player %s\n", gameMetric.TotalMoves, winner)
	fmt.Fprintf(os.Stderr, "Nodes visited: %d, time: %s\n", gameMetric.TotalNodes, gameMetric.Duration)
	return nil
}

// printRounds prints the starting board and returns an observer printing the
// board after every move. Interactive output marks the move just played.
func printRounds(w io.Writer, board *game.Board, interactive bool) engine.Observer {
	if interactive {
		fmt.Fprintln(w, render.Board(board))
		return func(step int, before *game.GameState, move game.Move, after *game.GameState) {
			fmt.Fprintf(w, "\nRound %d: %s plays %s\n", step, before.CurrentPlayer, move)
			fmt.Fprintln(w, render.Move(after.Board, move))
		}
	}

	fmt.Fprintf(w, "Start\n%s\n", board)
	return func(step int, _ *game.GameState, _ game.Move, after *game.GameState) {
		fmt.Fprintf(w, "Round %d\n%s\n", step, after.Board)
	}
}

// writeTrace repeats the first search of config on board with a tracer
// attached and stores the tree.
func writeTrace(board *game.Board, config metrics.AgentConfig, path string) error {
	evaluate, err := game.HeuristicByID(config.Heuristic)
	if err != nil {
		return err
	}
	depth := config.Depth
	if depth < 1 {
		depth = meta.DEFAULT_DEPTH
	}
	tracer := searcher.NewTracer()
	searcher.NewMinimax(depth, evaluate, searcher.WithTracer(tracer)).FindMove(game.NewGameState(board))

	dot, err := tracer.DOT()
	if err != nil {
		return errors.Wrap(err, "failed to render search tree")
	}
	if err := os.WriteFile(path, []byte(dot), 0644); err != nil {
		return errors.Wrap(err, "failed to write search tree")
	}
	log.Info().Msgf("search tree with %d nodes written to %s", tracer.Len(), path)
	return nil
}

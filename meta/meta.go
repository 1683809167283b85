// meta/meta.go
package meta

// DEFAULT_DEPTH is the search depth in plies when none is given.
const DEFAULT_DEPTH = 4

// DEFAULT_HEURISTIC is the piece count heuristic.
const DEFAULT_HEURISTIC = 2

// RANDOM_MOVE_PROBABILITY is how often a randomized player skips the search
// and plays a uniformly random legal move.
const RANDOM_MOVE_PROBABILITY = 0.3

// MAX_TURNS guards the game loop. Every capture removes a piece, so a real
// game never gets close.
const MAX_TURNS = 10000

// NUM_GAMES is the number of games per match-up in an experiment.
const NUM_GAMES = 10

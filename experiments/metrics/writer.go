package metrics

import (
	"clobber/game"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// AgentConfig is one player configuration taking part in an experiment.
type AgentConfig struct {
	ID        int
	Heuristic int
	Depth     int
	Random    bool
	Workers   int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing Black
	Agent2 int // AgentConfig.ID playing White
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> and writes every file there.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create directory")
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir is the directory the records are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "heuristic", "depth", "random", "workers"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			game.HeuristicName(config.Heuristic),
			strconv.Itoa(config.Depth),
			strconv.FormatBool(config.Random),
			strconv.Itoa(config.Workers),
		})
	}
	return errors.Wrap(w.writeCSV("agent_configs.csv", header, rows), "failed to write agent configs")
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "moves", "nodes", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingPlayer.String(),
			record.Winner.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.TotalNodes),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return errors.Wrap(w.writeCSV("game_records.csv", header, rows), "failed to write game records")
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "depth", "workers", "nodes", "score", "randomized", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			record.Move.String(),
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Workers),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Score),
			strconv.FormatBool(record.Randomized),
			record.Duration.String(),
		})
	}
	return errors.Wrap(w.writeCSV("move_records.csv", header, rows), "failed to write move records")
}

func (w *Writer) WriteSummaries(summaries []Summary) error {
	header := []string{"agent", "games", "wins", "win_rate", "moves", "mean_nodes_per_move", "stddev_nodes_per_move", "mean_move_duration"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			strconv.Itoa(s.Agent),
			strconv.Itoa(s.Games),
			strconv.Itoa(s.Wins),
			strconv.FormatFloat(s.WinRate, 'f', 3, 64),
			strconv.Itoa(s.Moves),
			strconv.FormatFloat(s.MeanNodes, 'f', 1, 64),
			strconv.FormatFloat(s.StdDevNodes, 'f', 1, 64),
			s.MeanMoveDuration.String(),
		})
	}
	return errors.Wrap(w.writeCSV("summary.csv", header, rows), "failed to write summaries")
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) (err error) {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierror.Append(err, cerr).ErrorOrNil()
		}
	}()

	writer := csv.NewWriter(f)
	if err = writer.Write(header); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	if err = writer.WriteAll(rows); err != nil {
		return errors.Wrap(err, "failed to write rows")
	}
	return nil
}

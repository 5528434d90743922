package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"secondbest/game"
)

type AgentConfig struct {
	ID         int
	Depth      int
	Goroutines int
	Cached     bool
	Seed       uint64
}

type GameRecord struct {
	ID     string // UUID
	Agent1 int    // AgentConfig.ID, playing White
	Agent2 int    // AgentConfig.ID, playing Black
	GameMetric
}

type MoveRecord struct {
	Game string // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

func NewWriter(baseDir string) (*Writer, error) {
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "depth", "goroutines", "cached", "seed"}
	rows := make([][]string, len(configs))
	for i, config := range configs {
		rows[i] = []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Depth),
			strconv.Itoa(config.Goroutines),
			strconv.FormatBool(config.Cached),
			strconv.FormatUint(config.Seed, 10),
		}
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "outcome", "turns", "challenges", "truncated", "start_time", "end_time", "duration"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			record.ID,
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.Outcome,
			strconv.Itoa(record.TotalTurns),
			strconv.Itoa(record.Challenges),
			strconv.FormatBool(record.Truncated),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "colour", "turn", "position", "challenged", "replayed",
		"depth", "goroutines", "cached", "duration", "candidates", "nodes", "terminals", "cache_hits"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			record.Game,
			strconv.Itoa(record.Step),
			record.Colour,
			record.Turn,
			strconv.FormatUint(record.Position, 16),
			strconv.FormatBool(record.Challenged),
			strconv.FormatBool(record.Replayed),
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Goroutines),
			strconv.FormatBool(record.Cached),
			record.Duration.String(),
			strconv.Itoa(record.Candidates),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Terminals),
			strconv.Itoa(record.CacheHits),
		}
	}
	return w.write("move_records.csv", header, rows)
}

// WriteHistory stores the ordered turns of one game, with 1-based places.
func (w *Writer) WriteHistory(gameID string, history []game.Turn) error {
	header := []string{"ply", "colour", "action", "from", "to"}
	rows := make([][]string, len(history))
	for i, turn := range history {
		from := ""
		if turn.Action == game.MoveAction {
			from = strconv.Itoa(turn.From + 1)
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			turn.Colour.String(),
			turn.Action.String(),
			from,
			strconv.Itoa(turn.To + 1),
		}
	}
	return w.write(fmt.Sprintf("history_%s.csv", gameID), header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) (err error) {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", name, cerr)
		}
	}()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

// Command analyze prints quick, human-readable statistics about how well each
// configuration in a directory shuffles. For every config it replays a number
// of seeded shuffles and reports displacement, misplaced tiles, how often a
// shuffle starts solved, and whether any board broke the solvability parity.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/mcp-training/fifteenpuzzle/game/config"
	"github.com/wricardo/mcp-training/fifteenpuzzle/game/engine"
)

// ShuffleStats summarizes a batch of shuffles of one configuration
type ShuffleStats struct {
	Samples          int
	Steps            int
	MinDisplacement  int
	MaxDisplacement  int
	MeanDisplacement float64
	MeanMisplaced    float64
	SolvedStarts     int
	ParityViolations int
	InvalidBoards    int
	BlankCells       [engine.Size][engine.Size]int
}

// SolvedRatio is the share of shuffles that left the board solved
func (s ShuffleStats) SolvedRatio() float64 {
	if s.Samples == 0 {
		return 0
	}
	return float64(s.SolvedStarts) / float64(s.Samples)
}

// analyzeShuffles replays samples shuffles of steps, seeded "<seedPrefix>-<i>"
func analyzeShuffles(steps, samples int, seedPrefix string) ShuffleStats {
	stats := ShuffleStats{Samples: samples, Steps: steps, MinDisplacement: -1}
	if samples <= 0 {
		stats.MinDisplacement = 0
		return stats
	}

	totalDisplacement, totalMisplaced := 0, 0
	for i := 0; i < samples; i++ {
		board := engine.ShuffledBoard(fmt.Sprintf("%s-%d", seedPrefix, i), 0, steps)

		if board.Validate() != nil {
			stats.InvalidBoards++
			continue
		}
		if engine.Parity(board) != 0 {
			stats.ParityViolations++
		}
		if board.IsSolved() {
			stats.SolvedStarts++
		}

		d := engine.Displacement(board)
		totalDisplacement += d
		totalMisplaced += engine.MisplacedTiles(board)
		if stats.MinDisplacement < 0 || d < stats.MinDisplacement {
			stats.MinDisplacement = d
		}
		if d > stats.MaxDisplacement {
			stats.MaxDisplacement = d
		}

		blank := board.Blank()
		stats.BlankCells[blank.Row][blank.Col]++
	}

	stats.MeanDisplacement = float64(totalDisplacement) / float64(samples)
	stats.MeanMisplaced = float64(totalMisplaced) / float64(samples)
	return stats
}

func printStats(w io.Writer, name string, stats ShuffleStats) {
	fmt.Fprintf(w, "\n=== Analyzing %s ===\n", name)
	fmt.Fprintf(w, "Shuffle steps: %s, samples: %s\n", humanize.Comma(int64(stats.Steps)), humanize.Comma(int64(stats.Samples)))
	fmt.Fprintf(w, "Displacement: min %d, mean %.1f, max %d\n", stats.MinDisplacement, stats.MeanDisplacement, stats.MaxDisplacement)
	fmt.Fprintf(w, "Misplaced tiles: mean %.1f of %d\n", stats.MeanMisplaced, engine.Size*engine.Size-1)
	fmt.Fprintf(w, "Solved starts: %d (%.1f%%)\n", stats.SolvedStarts, stats.SolvedRatio()*100)

	fmt.Fprintln(w, "Blank cell distribution:")
	for r := 0; r < engine.Size; r++ {
		fmt.Fprint(w, " ")
		for c := 0; c < engine.Size; c++ {
			fmt.Fprintf(w, " %5d", stats.BlankCells[r][c])
		}
		fmt.Fprintln(w)
	}

	switch {
	case stats.InvalidBoards > 0:
		fmt.Fprintf(w, "⚠️  CRITICAL: %d shuffles produced an invalid board\n", stats.InvalidBoards)
	case stats.ParityViolations > 0:
		fmt.Fprintf(w, "⚠️  CRITICAL: %d shuffles produced an unsolvable board\n", stats.ParityViolations)
	default:
		fmt.Fprintln(w, "✅ Every shuffle is a solvable permutation")
	}
	if stats.Steps > 0 && stats.SolvedStarts > 0 {
		fmt.Fprintf(w, "⚠️  WARNING: %d shuffles started solved; consider more shuffle steps\n", stats.SolvedStarts)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	manager, err := config.NewManager(cmd.String("config-dir"))
	if err != nil {
		return err
	}

	configs, err := manager.ListConfigs()
	if err != nil {
		return err
	}
	if len(configs) == 0 {
		return fmt.Errorf("no valid configurations in %s", cmd.String("config-dir"))
	}

	samples := int(cmd.Int("samples"))
	for _, info := range configs {
		stats := analyzeShuffles(info.ShuffleSteps, samples, info.ConfigID)
		printStats(os.Stdout, info.Filename, stats)
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "analyze",
		Usage: "Shuffle statistics for puzzle configurations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "Directory containing puzzle configurations",
				Sources: cli.EnvVars("CONFIG_DIR"),
			},
			&cli.IntFlag{
				Name:  "samples",
				Value: 200,
				Usage: "Shuffles to replay per configuration",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wricardo/mcp-training/fifteenpuzzle/game/engine"
)

func TestAnalyzeShuffles_ZeroSteps(t *testing.T) {
	stats := analyzeShuffles(0, 10, "zero")

	if stats.SolvedStarts != 10 {
		t.Errorf("Expected every zero-step shuffle solved, got %d", stats.SolvedStarts)
	}
	if stats.SolvedRatio() != 1 {
		t.Errorf("Expected solved ratio 1, got %v", stats.SolvedRatio())
	}
	if stats.MaxDisplacement != 0 || stats.MinDisplacement != 0 {
		t.Errorf("Expected no displacement, got %d..%d", stats.MinDisplacement, stats.MaxDisplacement)
	}
	if stats.BlankCells[engine.Size-1][engine.Size-1] != 10 {
		t.Errorf("Expected blank always home, got %v", stats.BlankCells)
	}
}

func TestAnalyzeShuffles_Permutations(t *testing.T) {
	tests := []struct {
		name  string
		steps int
	}{
		{"one step", 1},
		{"short", 15},
		{"classic", engine.DefaultShuffleSteps},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := analyzeShuffles(tt.steps, 50, tt.name)

			if stats.InvalidBoards != 0 {
				t.Errorf("Expected no invalid boards, got %d", stats.InvalidBoards)
			}
			if stats.ParityViolations != 0 {
				t.Errorf("Expected no parity violations, got %d", stats.ParityViolations)
			}
			if stats.SolvedStarts != 0 {
				t.Errorf("Expected no solved starts, got %d", stats.SolvedStarts)
			}
			if stats.MinDisplacement < 1 {
				t.Errorf("Expected every board displaced, min %d", stats.MinDisplacement)
			}

			total := 0
			for _, row := range stats.BlankCells {
				for _, n := range row {
					total += n
				}
			}
			if total != 50 {
				t.Errorf("Blank distribution counts %d boards, want 50", total)
			}
		})
	}
}

func TestAnalyzeShuffles_Reproducible(t *testing.T) {
	a := analyzeShuffles(100, 20, "same")
	b := analyzeShuffles(100, 20, "same")
	if a != b {
		t.Errorf("Same seeds should give identical stats:\n%+v\n%+v", a, b)
	}
}

func TestAnalyzeShuffles_NoSamples(t *testing.T) {
	stats := analyzeShuffles(100, 0, "none")
	if stats.SolvedRatio() != 0 || stats.MinDisplacement != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	printStats(&buf, "classic.json", analyzeShuffles(1000, 5, "print"))

	out := buf.String()
	for _, want := range []string{
		"=== Analyzing classic.json ===",
		"Shuffle steps: 1,000, samples: 5",
		"Blank cell distribution:",
		"✅ Every shuffle is a solvable permutation",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}
